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
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeAdminContext admin context type
	TypeAdminContext logutils.MessageDataType = "admin context"
	//TypeAccessToken access token type
	TypeAccessToken logutils.MessageDataType = "access token"
	//TypeAPIKey api key type
	TypeAPIKey logutils.MessageDataType = "api key"

	//TokenTypeBearer is the token type reported on login
	TokenTypeBearer string = "bearer"
)

// AdminContext is the authenticated identity of an organization admin
type AdminContext struct {
	AdminID          string `json:"admin_id"`
	Email            string `json:"email"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
}

// LoginResult is the result of a successful admin login
type LoginResult struct {
	AccessToken string
	TokenType   string

	AdminContext AdminContext
}
