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
	"fmt"
	"net/http"
	"org-building-block/core"
	"org-building-block/core/model"
	"org-building-block/core/validation"
	Def "org-building-block/driver/web/docs/gen"
	"org-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	detailInvalidBody          string = "Invalid request body"
	detailMissingOrganization  string = "Organization name is required"
	messageOrganizationUpdated string = "Organization updated successfully"
)

// AdminApisHandler handles the organization APIs used by the organization admins
type AdminApisHandler struct {
	coreAPIs *core.APIs
}

// createOrganization creates an organization, its admin and its tenant collection
func (h AdminApisHandler) createOrganization(l *logs.Log, r *http.Request, _ *model.AdminContext) logs.HTTPResponse {
	var requestData Def.PostOrgCreateJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return badRequestResponse(l, logutils.TypeRequestBody, err, detailInvalidBody)
	}

	organization, err := h.coreAPIs.Administration.AdmCreateOrganization(requestData.OrganizationName, requestData.Email, requestData.Password, l)
	if err != nil {
		return errorResponse(l, err)
	}

	return jsonResponse(l, organizationToDef(*organization), model.TypeOrganization)
}

// getOrganization gives the organization of the admin
func (h AdminApisHandler) getOrganization(l *logs.Log, r *http.Request, adminContext *model.AdminContext) logs.HTTPResponse {
	name := r.URL.Query().Get("organization_name")
	if len(name) == 0 {
		name = r.URL.Query().Get("org_name")
	}
	if len(name) == 0 {
		return badRequestResponse(l, logutils.TypeQueryParam, nil, detailMissingOrganization)
	}

	if err := checkOrganizationAccess(adminContext, name); err != nil {
		return errorResponse(l, err)
	}

	organization, err := h.coreAPIs.Administration.AdmGetOrganization(name, l)
	if err != nil {
		return errorResponse(l, err)
	}
	//same name, other tenant
	if organization.ID != adminContext.OrganizationID {
		return errorResponse(l, errors.ErrorData(logutils.StatusInvalid, model.TypeAdminContext, &logutils.FieldArgs{"organization_id": organization.ID}).
			SetStatus(utils.ErrorStatusUnauthorized))
	}

	return jsonResponse(l, organizationToDef(*organization), model.TypeOrganization)
}

// updateOrganization renames the organization or changes its admin email or password
func (h AdminApisHandler) updateOrganization(l *logs.Log, r *http.Request, adminContext *model.AdminContext) logs.HTTPResponse {
	var requestData Def.PutOrgUpdateJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return badRequestResponse(l, logutils.TypeRequestBody, err, detailInvalidBody)
	}
	if len(requestData.OrganizationName) == 0 {
		return badRequestResponse(l, logutils.TypeRequestBody, nil, validation.ReasonMissingOrganizationName)
	}

	if err := checkOrganizationAccess(adminContext, requestData.OrganizationName); err != nil {
		return errorResponse(l, err)
	}

	organization, err := h.coreAPIs.Administration.AdmUpdateOrganization(requestData.OrganizationName, requestData.NewOrganizationName,
		requestData.Email, requestData.Password, adminContext.Email, l)
	if err != nil {
		return errorResponse(l, err)
	}

	return jsonResponse(l, organizationUpdatedToDef(*organization, messageOrganizationUpdated), model.TypeOrganization)
}

// deleteOrganization deletes the organization, its admin and its tenant collection
func (h AdminApisHandler) deleteOrganization(l *logs.Log, r *http.Request, adminContext *model.AdminContext) logs.HTTPResponse {
	var requestData Def.DeleteOrgDeleteJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return badRequestResponse(l, logutils.TypeRequestBody, err, detailInvalidBody)
	}
	if len(requestData.OrganizationName) == 0 {
		return badRequestResponse(l, logutils.TypeRequestBody, nil, detailMissingOrganization)
	}

	if err := checkOrganizationAccess(adminContext, requestData.OrganizationName); err != nil {
		return errorResponse(l, err)
	}

	err = h.coreAPIs.Administration.AdmDeleteOrganization(requestData.OrganizationName, adminContext.Email, l)
	if err != nil {
		return errorResponse(l, err)
	}

	message := fmt.Sprintf("Organization '%s' deleted successfully", requestData.OrganizationName)
	return jsonResponse(l, Def.Message{Message: message}, model.TypeOrganization)
}

// checkOrganizationAccess allows admins to act on their own organization only. It is checked
// before the lookup, so other organizations are never confirmed to exist.
func checkOrganizationAccess(adminContext *model.AdminContext, organizationName string) error {
	if adminContext == nil || adminContext.OrganizationName != organizationName {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeAdminContext, &logutils.FieldArgs{"organization_name": organizationName}).
			SetStatus(utils.ErrorStatusUnauthorized)
	}
	return nil
}

// NewAdminApisHandler creates new admin rest Handler instance
func NewAdminApisHandler(coreAPIs *core.APIs) AdminApisHandler {
	return AdminApisHandler{coreAPIs: coreAPIs}
}
