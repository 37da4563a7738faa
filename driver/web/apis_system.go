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
	"net/http"
	"org-building-block/core"
	"org-building-block/core/model"
	"strconv"

	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// SystemApisHandler handles system APIs implementation
type SystemApisHandler struct {
	coreAPIs *core.APIs
}

// getOrganizations lists the organizations, at most core.MaxOrganizationsLimit of them
func (h SystemApisHandler) getOrganizations(l *logs.Log, r *http.Request, _ *model.AdminContext) logs.HTTPResponse {
	limit := core.MaxOrganizationsLimit
	if limitArg := r.URL.Query().Get("limit"); len(limitArg) > 0 {
		var err error
		limit, err = strconv.Atoi(limitArg)
		if err != nil {
			return badRequestResponse(l, logutils.TypeQueryParam, err, "Invalid limit")
		}
	}

	organizations, err := h.coreAPIs.System.SysGetOrganizations(limit, l)
	if err != nil {
		return errorResponse(l, err)
	}

	return jsonResponse(l, organizationsToDef(organizations), model.TypeOrganization)
}

// getIntegrity reports the drift between organizations, admins and tenant collections
func (h SystemApisHandler) getIntegrity(l *logs.Log, r *http.Request, _ *model.AdminContext) logs.HTTPResponse {
	report, err := h.coreAPIs.System.SysCheckIntegrity(l)
	if err != nil {
		return errorResponse(l, err)
	}

	return jsonResponse(l, integrityReportToDef(*report), model.TypeIntegrityReport)
}

// NewSystemApisHandler creates new system rest Handler instance
func NewSystemApisHandler(coreAPIs *core.APIs) SystemApisHandler {
	return SystemApisHandler{coreAPIs: coreAPIs}
}
