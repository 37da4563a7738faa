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

package model

import (
	"fmt"
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeAdminCredential admin credential type
	TypeAdminCredential logutils.MessageDataType = "admin credential"
	//TypeCredentialUpdate credential update type
	TypeCredentialUpdate logutils.MessageDataType = "admin credential update"
	//TypePassword password type
	TypePassword logutils.MessageDataType = "password"
	//TypeEmail email type
	TypeEmail logutils.MessageDataType = "email"
)

// AdminCredential represents the admin login identity of an organization
type AdminCredential struct {
	ID           string
	Email        string
	PasswordHash string

	//denormalized back-reference, not a foreign key
	OrganizationName string

	Active bool

	DateCreated time.Time
	DateUpdated time.Time
}

func (c AdminCredential) String() string {
	return fmt.Sprintf("[ID:%s\tEmail:%s\tOrganizationName:%s\tActive:%t]", c.ID, c.Email, c.OrganizationName, c.Active)
}

// CredentialUpdate represents the changes of an admin credential record
type CredentialUpdate struct {
	Email            *string
	PasswordHash     *string
	OrganizationName *string

	DateUpdated time.Time
}

// IsEmpty tells if there are no field changes
func (u CredentialUpdate) IsEmpty() bool {
	return u.Email == nil && u.PasswordHash == nil && u.OrganizationName == nil
}
