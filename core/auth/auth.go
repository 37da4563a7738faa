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
	stderrors "errors"
	"org-building-block/core/interfaces"
	"org-building-block/core/model"
	"org-building-block/utils"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"golang.org/x/crypto/bcrypt"
)

const (
	typeAccessTokenClaims logutils.MessageDataType = "access token claims"
	typePasswordHash      logutils.MessageDataType = "password hash"

	//the password compared against when the email is unknown
	dummyPassword string = "dummy password for timing"
)

// Auth represents the auth functionality unit
type Auth struct {
	storage interfaces.Storage
	logger  *logs.Logger

	host       string //token issuer
	jwtKey     []byte
	tokenExp   time.Duration
	bcryptCost int

	dummyHash []byte
}

// accessTokenClaims is the payload of an admin access token
type accessTokenClaims struct {
	Email   string `json:"email"`
	OrgID   string `json:"org_id"`
	OrgName string `json:"org_name"`
	jwt.RegisteredClaims
}

// NewAuth creates a new auth instance
func NewAuth(host string, jwtSecret string, tokenExpMinutes int, bcryptCost int, storage interfaces.Storage, logger *logs.Logger) (*Auth, error) {
	if len(jwtSecret) == 0 {
		return nil, errors.ErrorData(logutils.StatusMissing, "jwt secret key", nil)
	}
	if tokenExpMinutes <= 0 {
		return nil, errors.ErrorData(logutils.StatusInvalid, "access token expiration", &logutils.FieldArgs{"minutes": tokenExpMinutes})
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, errors.ErrorData(logutils.StatusInvalid, "bcrypt cost", &logutils.FieldArgs{"cost": bcryptCost})
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), bcryptCost)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionGenerate, typePasswordHash, nil, err)
	}

	auth := &Auth{storage: storage, logger: logger, host: host, jwtKey: []byte(jwtSecret),
		tokenExp: time.Duration(tokenExpMinutes) * time.Minute, bcryptCost: bcryptCost, dummyHash: dummyHash}
	return auth, nil
}

func (a *Auth) authenticate(email string, password string, l *logs.Log) (*model.AdminContext, error) {
	credential, err := a.storage.FindCredentialByEmail(email)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAdminCredential, nil, err).SetStatus(utils.ErrorStatus(err))
	}
	if credential == nil {
		//spend the same time as a real comparison so the response does not tell the email is unknown
		bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))
		return nil, invalidCredentialsError()
	}

	err = bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password))
	if err != nil {
		return nil, invalidCredentialsError()
	}

	if !credential.Active {
		return nil, errors.ErrorData("deactivated", model.TypeAdminCredential, nil).SetStatus(utils.ErrorStatusAccountDeactivated)
	}

	organization, err := a.storage.FindOrganization(credential.OrganizationName)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err).SetStatus(utils.ErrorStatus(err))
	}
	if organization == nil || organization.AdminUserID != credential.ID {
		details := logutils.Fields{"credential_id": credential.ID, "organization_name": credential.OrganizationName}
		if l != nil {
			l.ErrorWithDetails("integrity violation: admin credential without its organization", details)
		}
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, nil).SetStatus(utils.ErrorStatusIntegrityViolation)
	}

	return &model.AdminContext{AdminID: credential.ID, Email: credential.Email,
		OrganizationID: organization.ID, OrganizationName: organization.Name}, nil
}

func (a *Auth) issueToken(adminContext model.AdminContext) (string, error) {
	now := time.Now().UTC()
	claims := accessTokenClaims{
		Email:   adminContext.Email,
		OrgID:   adminContext.OrganizationID,
		OrgName: adminContext.OrganizationName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminContext.AdminID,
			Issuer:    a.host,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenExp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.jwtKey)
	if err != nil {
		return "", errors.WrapErrorAction("signing", model.TypeAccessToken, nil, err)
	}
	return signed, nil
}

func (a *Auth) verifyToken(token string, l *logs.Log) (*model.AdminContext, error) {
	if len(token) == 0 {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeAccessToken, nil).SetStatus(utils.ErrorStatusInvalidToken)
	}

	claims := accessTokenClaims{}
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return a.jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(a.host), jwt.WithExpirationRequired())
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.WrapErrorAction(logutils.ActionValidate, model.TypeAccessToken, nil, err).SetStatus(utils.ErrorStatusExpired)
		}
		return nil, errors.WrapErrorAction(logutils.ActionValidate, model.TypeAccessToken, nil, err).SetStatus(utils.ErrorStatusInvalidToken)
	}

	if len(claims.Subject) == 0 || len(claims.Email) == 0 || len(claims.OrgID) == 0 || len(claims.OrgName) == 0 {
		return nil, errors.ErrorData(logutils.StatusInvalid, typeAccessTokenClaims, nil).SetStatus(utils.ErrorStatusInvalidToken)
	}

	//the token is stateless, so check the admin is still there and active
	credential, err := a.storage.FindCredentialByID(claims.Subject)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAdminCredential, nil, err).SetStatus(utils.ErrorStatus(err))
	}
	if credential == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeAdminCredential, &logutils.FieldArgs{"id": claims.Subject}).SetStatus(utils.ErrorStatusInvalidToken)
	}
	if !credential.Active {
		return nil, errors.ErrorData("deactivated", model.TypeAdminCredential, &logutils.FieldArgs{"id": claims.Subject}).SetStatus(utils.ErrorStatusInvalidToken)
	}
	//a renamed organization invalidates the tokens issued for its old name
	if credential.OrganizationName != claims.OrgName {
		return nil, errors.ErrorData("stale", model.TypeAccessToken, &logutils.FieldArgs{"id": claims.Subject}).SetStatus(utils.ErrorStatusInvalidToken)
	}

	return &model.AdminContext{AdminID: credential.ID, Email: credential.Email,
		OrganizationID: claims.OrgID, OrganizationName: credential.OrganizationName}, nil
}

func (a *Auth) login(email string, password string, l *logs.Log) (*model.LoginResult, error) {
	adminContext, err := a.authenticate(email, password, l)
	if err != nil {
		return nil, err
	}

	token, err := a.issueToken(*adminContext)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionGenerate, model.TypeAccessToken, nil, err)
	}

	return &model.LoginResult{AccessToken: token, TokenType: model.TokenTypeBearer, AdminContext: *adminContext}, nil
}

func (a *Auth) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		if stderrors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", errors.New("Password must be at most 72 bytes").SetStatus(utils.ErrorStatusValidation)
		}
		return "", errors.WrapErrorAction(logutils.ActionGenerate, typePasswordHash, nil, err)
	}
	return string(hash), nil
}

func (a *Auth) checkPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func invalidCredentialsError() error {
	return errors.ErrorData(logutils.StatusInvalid, "credentials", nil).SetStatus(utils.ErrorStatusInvalidCredentials)
}
