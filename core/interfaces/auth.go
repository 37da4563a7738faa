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

package interfaces

import (
	"org-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
)

// Auth is the interface which defines the APIs provided by the auth package
type Auth interface {
	//Authenticate verifies admin credentials.
	//	Input:
	//		email (string): Admin email
	//		password (string): Admin password
	//		l (*logs.Log): Log object pointer for request
	//	Returns:
	//		Admin context (*AdminContext): admin id, email, organization id and organization name
	//	Unknown email and wrong password fail with the same invalid credentials error.
	Authenticate(email string, password string, l *logs.Log) (*model.AdminContext, error)

	//IssueToken issues a signed, time-limited access token for the admin context
	IssueToken(adminContext model.AdminContext) (string, error)

	//VerifyToken verifies the signature and expiry of an access token and re-checks
	//that the admin it was issued to still exists and is active.
	//	Input:
	//		token (string): Access token
	//		l (*logs.Log): Log object pointer for request
	//	Returns:
	//		Admin context (*AdminContext): the context embedded in the token
	VerifyToken(token string, l *logs.Log) (*model.AdminContext, error)

	//Login authenticates the admin and issues an access token
	Login(email string, password string, l *logs.Log) (*model.LoginResult, error)

	//HashPassword hashes an admin password for storage
	HashPassword(password string) (string, error)
	//CheckPassword tells if the password matches the stored hash
	CheckPassword(hash string, password string) bool
}
