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

package auth

import (
	"org-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
)

//GetHost returns the host/issuer of the auth service
func (a *Auth) GetHost() string {
	return a.host
}

//Authenticate verifies admin credentials.
//	Input:
//		email (string): Admin email
//		password (string): Admin password
//		l (*logs.Log): Log object pointer for request
//	Returns:
//		Admin context (*AdminContext): admin id, email, organization id and organization name
func (a *Auth) Authenticate(email string, password string, l *logs.Log) (*model.AdminContext, error) {
	return a.authenticate(email, password, l)
}

//IssueToken issues a signed access token which expires after the configured duration
func (a *Auth) IssueToken(adminContext model.AdminContext) (string, error) {
	return a.issueToken(adminContext)
}

//VerifyToken verifies an access token and re-checks the admin it was issued to.
//	Input:
//		token (string): Access token
//		l (*logs.Log): Log object pointer for request
//	Returns:
//		Admin context (*AdminContext): the context embedded in the token
func (a *Auth) VerifyToken(token string, l *logs.Log) (*model.AdminContext, error) {
	return a.verifyToken(token, l)
}

//Login logs an organization admin in.
//	Input:
//		email (string): Admin email
//		password (string): Admin password
//		l (*logs.Log): Log object pointer for request
//	Returns:
//		Login result (*LoginResult): Signed access token and the admin context it carries
func (a *Auth) Login(email string, password string, l *logs.Log) (*model.LoginResult, error) {
	return a.login(email, password, l)
}

//HashPassword hashes an admin password for storage
func (a *Auth) HashPassword(password string) (string, error) {
	return a.hashPassword(password)
}

//CheckPassword tells if the password matches the stored hash
func (a *Auth) CheckPassword(hash string, password string) bool {
	return a.checkPassword(hash, password)
}
