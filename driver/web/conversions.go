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
	"org-building-block/core/model"
	Def "org-building-block/driver/web/docs/gen"
	"org-building-block/utils"

	openapi_types "github.com/deepmap/oapi-codegen/pkg/types"
)

// Organization
func organizationToDef(item model.Organization) Def.Organization {
	return Def.Organization{Id: item.ID, OrganizationName: item.Name, CollectionName: item.CollectionName,
		AdminEmail: openapi_types.Email(item.AdminEmail), AdminId: item.AdminUserID, CreatedAt: item.DateCreated}
}

func organizationUpdatedToDef(item model.Organization, message string) Def.OrganizationUpdated {
	updatedAt := item.DateUpdated
	return Def.OrganizationUpdated{Message: message, Id: item.ID, OrganizationName: item.Name, CollectionName: item.CollectionName,
		AdminEmail: openapi_types.Email(item.AdminEmail), AdminId: item.AdminUserID, CreatedAt: item.DateCreated, UpdatedAt: &updatedAt}
}

func organizationsToDef(items []model.Organization) Def.OrganizationList {
	result := make([]Def.OrganizationSummary, len(items))
	for i, item := range items {
		result[i] = Def.OrganizationSummary{Id: item.ID, OrganizationName: item.Name,
			AdminEmail: openapi_types.Email(item.AdminEmail), CreatedAt: item.DateCreated}
	}
	return Def.OrganizationList{Count: len(result), Organizations: result}
}

// Auth
func adminContextToDef(item model.AdminContext) Def.AdminContext {
	return Def.AdminContext{AdminId: item.AdminID, Email: openapi_types.Email(item.Email),
		OrganizationId: item.OrganizationID, OrganizationName: item.OrganizationName}
}

func loginResultToDef(item model.LoginResult) Def.LoginResponse {
	return Def.LoginResponse{AccessToken: item.AccessToken, TokenType: Def.LoginResponseTokenType(item.TokenType),
		AdminId: item.AdminContext.AdminID, OrganizationId: item.AdminContext.OrganizationID,
		OrganizationName: item.AdminContext.OrganizationName}
}

// System
func healthToDef(item model.Health, service string) Def.Health {
	database := Def.Connected
	if !item.Database {
		database = Def.Disconnected
	}
	var healthErr *string
	if len(item.Error) > 0 {
		healthErr = &item.Error
	}
	return Def.Health{Status: Def.HealthStatus(item.Status), Database: database, Service: service, Error: healthErr}
}

func integrityReportToDef(item model.IntegrityReport) Def.IntegrityReport {
	issues := make([]Def.IntegrityIssue, len(item.Issues))
	for i, issue := range item.Issues {
		issues[i] = Def.IntegrityIssue{Problem: Def.IntegrityIssueProblem(issue.Problem),
			OrganizationName: utils.StringOrNil(issue.OrganizationName), CredentialId: utils.StringOrNil(issue.CredentialID),
			CollectionName: utils.StringOrNil(issue.CollectionName)}
	}
	return Def.IntegrityReport{Issues: issues, CheckedAt: item.DateChecked}
}
