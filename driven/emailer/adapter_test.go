// Copyright 2022 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package emailer

import (
	"testing"

	"gotest.tools/assert"
)

func TestSplitRecipients(t *testing.T) {
	assert.DeepEqual(t, splitRecipients("a@acme.com"), []string{"a@acme.com"})
	assert.DeepEqual(t, splitRecipients(" a@acme.com, b@acme.com ,,"), []string{"a@acme.com", "b@acme.com"})
	assert.DeepEqual(t, splitRecipients(" , "), []string{})
}

func TestSendWithoutDialer(t *testing.T) {
	adapter := NewEmailerAdapter("", 0, "", "", "noreply@orgs.local")

	err := adapter.Send("a@acme.com", "subject", "body", nil)
	assert.ErrorContains(t, err, "email dialer")
}

func TestSendWithoutRecipients(t *testing.T) {
	adapter := NewEmailerAdapter("smtp.orgs.local", 587, "user", "password", "noreply@orgs.local")

	err := adapter.Send(" ", "subject", "body", nil)
	assert.ErrorContains(t, err, "mail recipients")
}
