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
	Def "org-building-block/driver/web/docs/gen"
	"org-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	retryAfterSeconds string = "5"

	detailOrganizationNotFound string = "Organization not found"
	detailForbidden            string = "Not authorized to access this organization"
	detailInvalidCredentials   string = "Invalid email or password"
	detailAccountDeactivated   string = "Account is deactivated"
	detailInvalidToken         string = "Invalid authentication credentials"
	detailExpiredToken         string = "Token has expired"
	detailUnavailable          string = "Service temporarily unavailable"
	detailInternal             string = "Internal server error"
)

// jsonResponse gives a success response with data as JSON body
func jsonResponse(l *logs.Log, data interface{}, dataType logutils.MessageDataType) logs.HTTPResponse {
	responseJSON, err := json.Marshal(data)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, dataType, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(responseJSON)
}

// detailResponse gives a {"detail"} JSON response
func detailResponse(code int, detail string, headers map[string][]string) logs.HTTPResponse {
	body, _ := json.Marshal(Def.Error{Detail: detail})
	if headers == nil {
		headers = map[string][]string{}
	}
	headers["Content-Type"] = []string{"application/json; charset=utf-8"}
	return logs.HTTPResponse{ResponseCode: code, Headers: headers, Body: body}
}

// errorResponse maps an error to its response. Only validation and uniqueness errors
// show their own message, the rest get a fixed detail and are logged in full.
func errorResponse(l *logs.Log, err error) logs.HTTPResponse {
	code := utils.HTTPStatus(err)
	if code >= http.StatusInternalServerError {
		l.LogError("request failed", err)
	} else {
		l.WarnError("request rejected", err)
	}

	switch code {
	case http.StatusBadRequest:
		return detailResponse(code, err.Error(), nil)
	case http.StatusNotFound:
		return detailResponse(code, detailOrganizationNotFound, nil)
	case http.StatusForbidden:
		return detailResponse(code, detailForbidden, nil)
	case http.StatusUnauthorized:
		headers := map[string][]string{"WWW-Authenticate": {"Bearer"}}
		return detailResponse(code, unauthorizedDetail(utils.ErrorStatus(err)), headers)
	case http.StatusServiceUnavailable:
		var headers map[string][]string
		if utils.IsRetryable(err) {
			headers = map[string][]string{"Retry-After": {retryAfterSeconds}}
		}
		return detailResponse(code, detailUnavailable, headers)
	default:
		return detailResponse(http.StatusInternalServerError, detailInternal, nil)
	}
}

func unauthorizedDetail(status string) string {
	switch status {
	case utils.ErrorStatusInvalidCredentials:
		return detailInvalidCredentials
	case utils.ErrorStatusAccountDeactivated:
		return detailAccountDeactivated
	case utils.ErrorStatusExpired:
		return detailExpiredToken
	default:
		return detailInvalidToken
	}
}

// badRequestResponse is given for bodies and params which cannot be read
func badRequestResponse(l *logs.Log, dataType logutils.MessageDataType, err error, detail string) logs.HTTPResponse {
	if err != nil {
		l.WarnError("bad "+string(dataType), err)
	} else {
		l.Warnf("bad %s: %s", dataType, detail)
	}
	return detailResponse(http.StatusBadRequest, detail, nil)
}
