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

package web

import (
	"crypto/subtle"
	"net/http"
	"org-building-block/core"
	"org-building-block/core/model"
	"org-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	typeCheckAdminAuthRequestToken logutils.MessageActionType = "checking admin auth"

	headerAPIKey string = "X-Api-Key"
)

// Auth handler
type Auth struct {
	adminAuth  *AdminAuth
	systemAuth *SystemAuth

	logger *logs.Logger
}

// Authorization is an interface for auth types
type Authorization interface {
	check(req *http.Request, l *logs.Log) (*model.AdminContext, error)
}

// NewAuth creates new auth handler
func NewAuth(coreAPIs *core.APIs, systemAPIKey string, logger *logs.Logger) *Auth {
	adminAuth := newAdminAuth(coreAPIs, logger)
	systemAuth := newSystemAuth(systemAPIKey, logger)

	return &Auth{adminAuth: adminAuth, systemAuth: systemAuth, logger: logger}
}

// AdminAuth checks the bearer access token of an organization admin
type AdminAuth struct {
	coreAPIs *core.APIs
	logger   *logs.Logger
}

func (auth *AdminAuth) check(req *http.Request, l *logs.Log) (*model.AdminContext, error) {
	token := utils.GetBearerToken(req.Header.Get("Authorization"))
	if len(token) == 0 {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeAccessToken, nil).SetStatus(utils.ErrorStatusInvalidToken)
	}

	adminContext, err := auth.coreAPIs.Auth.VerifyToken(token, l)
	if err != nil {
		return nil, errors.WrapErrorAction(typeCheckAdminAuthRequestToken, model.TypeAccessToken, nil, err).SetStatus(utils.ErrorStatus(err))
	}
	return adminContext, nil
}

func newAdminAuth(coreAPIs *core.APIs, logger *logs.Logger) *AdminAuth {
	return &AdminAuth{coreAPIs: coreAPIs, logger: logger}
}

// SystemAuth checks the api key of the system APIs. The system APIs are disabled without a key.
type SystemAuth struct {
	apiKey string
	logger *logs.Logger
}

func (auth *SystemAuth) check(req *http.Request, l *logs.Log) (*model.AdminContext, error) {
	if len(auth.apiKey) == 0 {
		return nil, errors.ErrorData("disabled", model.TypeAPIKey, nil).SetStatus(utils.ErrorStatusInvalidToken)
	}

	apiKey := req.Header.Get(headerAPIKey)
	if subtle.ConstantTimeCompare([]byte(apiKey), []byte(auth.apiKey)) != 1 {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeAPIKey, nil).SetStatus(utils.ErrorStatusInvalidToken)
	}
	return nil, nil
}

func newSystemAuth(apiKey string, logger *logs.Logger) *SystemAuth {
	if len(apiKey) == 0 {
		logger.Warn("system api key is not set, the system apis are disabled")
	}
	return &SystemAuth{apiKey: apiKey, logger: logger}
}
