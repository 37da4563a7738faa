// Copyright 2023 Board of Trustees of the University of Illinois.
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

package validation_test

import (
	"org-building-block/core/validation"
	"strings"
	"testing"

	"gotest.tools/assert"
)

func TestValidateOrganizationName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple", input: "Acme", want: true},
		{name: "allowed charset", input: "Acme Two_Labs-1", want: true},
		{name: "empty", input: "", want: false},
		{name: "max length", input: strings.Repeat("a", 100), want: true},
		{name: "too long", input: strings.Repeat("a", 101), want: false},
		{name: "dot", input: "Acme.com", want: false},
		{name: "script", input: "<script>", want: false},
		{name: "non ascii", input: "Açme", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, validation.ValidateOrganizationName(tt.input), tt.want)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "a@acme.com", want: true},
		{input: "first.last+tag@sub.acme.io", want: true},
		{input: "a@acme", want: false},
		{input: "acme.com", want: false},
		{input: "a@acme.c", want: false},
		{input: " a@acme.com", want: false},
		{input: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, validation.ValidateEmail(tt.input), tt.want)
		})
	}
}

func TestValidateCreateInput(t *testing.T) {
	valid := func() validation.Fields {
		return validation.Fields{
			validation.FieldOrganizationName: "Acme",
			validation.FieldEmail:            "a@acme.com",
			validation.FieldPassword:         "Passw0rd!",
		}
	}

	tests := []struct {
		name       string
		modify     func(f validation.Fields)
		wantOK     bool
		wantReason string
	}{
		{name: "valid", modify: func(f validation.Fields) {}, wantOK: true},
		{name: "invalid name", modify: func(f validation.Fields) { f[validation.FieldOrganizationName] = "Acme!" }, wantReason: validation.ReasonInvalidOrganizationName},
		{name: "missing name", modify: func(f validation.Fields) { delete(f, validation.FieldOrganizationName) }, wantReason: validation.ReasonInvalidOrganizationName},
		{name: "invalid email", modify: func(f validation.Fields) { f[validation.FieldEmail] = "nope" }, wantReason: validation.ReasonInvalidEmail},
		{name: "short password", modify: func(f validation.Fields) { f[validation.FieldPassword] = "short" }, wantReason: validation.ReasonPasswordTooShort},
		{name: "leading space", modify: func(f validation.Fields) { f[validation.FieldOrganizationName] = " Acme" }, wantReason: validation.ReasonNameEdgeSpaces},
		{name: "trailing space", modify: func(f validation.Fields) { f[validation.FieldOrganizationName] = "Acme " }, wantReason: validation.ReasonNameEdgeSpaces},
		{name: "double space", modify: func(f validation.Fields) { f[validation.FieldOrganizationName] = "Acme  Two" }, wantReason: validation.ReasonNameConsecutiveSpaces},
		{name: "priority name before email", modify: func(f validation.Fields) {
			f[validation.FieldOrganizationName] = "Acme!"
			f[validation.FieldEmail] = "nope"
		}, wantReason: validation.ReasonInvalidOrganizationName},
		{name: "priority password before spacing", modify: func(f validation.Fields) {
			f[validation.FieldOrganizationName] = " Acme"
			f[validation.FieldPassword] = "short"
		}, wantReason: validation.ReasonPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := valid()
			tt.modify(fields)

			ok, reason := validation.ValidateCreateInput(fields)
			assert.Equal(t, ok, tt.wantOK)
			assert.Equal(t, reason, tt.wantReason)
		})
	}
}

func TestValidateUpdateInput(t *testing.T) {
	tests := []struct {
		name       string
		fields     validation.Fields
		wantReason string
	}{
		{name: "only current name", fields: validation.Fields{validation.FieldOrganizationName: "Acme"}},
		{name: "missing current name", fields: validation.Fields{validation.FieldEmail: "a@acme.com"}, wantReason: validation.ReasonMissingOrganizationName},
		{name: "invalid new name", fields: validation.Fields{validation.FieldOrganizationName: "Acme", validation.FieldNewOrganizationName: "Acme$"}, wantReason: validation.ReasonInvalidNewOrganizationName},
		{name: "new name double space", fields: validation.Fields{validation.FieldOrganizationName: "Acme", validation.FieldNewOrganizationName: "Acme  Two"}, wantReason: validation.ReasonNameConsecutiveSpaces},
		{name: "invalid email", fields: validation.Fields{validation.FieldOrganizationName: "Acme", validation.FieldEmail: "a@"}, wantReason: validation.ReasonInvalidEmail},
		{name: "short password", fields: validation.Fields{validation.FieldOrganizationName: "Acme", validation.FieldPassword: "1234"}, wantReason: validation.ReasonNewPasswordTooShort},
		{name: "all valid", fields: validation.Fields{validation.FieldOrganizationName: "Acme", validation.FieldNewOrganizationName: "Acme Two",
			validation.FieldEmail: "b@acme.com", validation.FieldPassword: "N3wPassword"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := validation.ValidateUpdateInput(tt.fields)
			assert.Equal(t, ok, tt.wantReason == "")
			assert.Equal(t, reason, tt.wantReason)
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	input := validation.Fields{
		"name":    "  Acme  ",
		"comment": "hello <SCRIPT type=\"text/javascript\">alert(1)</script>world",
		"multi":   "a<script>\nalert(1)\n</script>b",
		"count":   3,
		"flag":    true,
	}

	got := validation.SanitizeInput(input)

	assert.Equal(t, got["name"], "Acme")
	assert.Equal(t, got["comment"], "hello world")
	assert.Equal(t, got["multi"], "ab")
	assert.Equal(t, got["count"], 3)
	assert.Equal(t, got["flag"], true)
	assert.Equal(t, input["name"], "  Acme  ", "input must not be modified")
}
