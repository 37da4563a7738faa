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
	"encoding/json"
	"net/http"
	"org-building-block/core"
	"org-building-block/core/model"
	Def "org-building-block/driver/web/docs/gen"

	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// AuthApisHandler handles the admin auth APIs
type AuthApisHandler struct {
	coreAPIs *core.APIs
}

// login authenticates an admin and gives an access token
func (h AuthApisHandler) login(l *logs.Log, r *http.Request, _ *model.AdminContext) logs.HTTPResponse {
	var requestData Def.PostAdminLoginJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return badRequestResponse(l, logutils.TypeRequestBody, err, detailInvalidBody)
	}

	result, err := h.coreAPIs.Auth.Login(requestData.Email, requestData.Password, l)
	if err != nil {
		return errorResponse(l, err)
	}

	return jsonResponse(l, loginResultToDef(*result), model.TypeAccessToken)
}

// verify gives the admin context of a valid access token
func (h AuthApisHandler) verify(l *logs.Log, r *http.Request, adminContext *model.AdminContext) logs.HTTPResponse {
	return jsonResponse(l, adminContextToDef(*adminContext), model.TypeAdminContext)
}

// NewAuthApisHandler creates new auth rest Handler instance
func NewAuthApisHandler(coreAPIs *core.APIs) AuthApisHandler {
	return AuthApisHandler{coreAPIs: coreAPIs}
}
