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

package core

import (
	"org-building-block/core/model"
	"org-building-block/utils"
	"time"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//MaxOrganizationsLimit is the max number of organizations listed at once
	MaxOrganizationsLimit int = 50
)

func (app *application) sysGetHealth(l *logs.Log) model.Health {
	err := app.storage.Ping()
	if err != nil {
		l.WarnError("storage ping failed", err)
		return model.Health{Status: model.HealthStatusDegraded, Database: false, Error: "database unavailable"}
	}
	return model.Health{Status: model.HealthStatusHealthy, Database: true}
}

func (app *application) sysGetOrganizations(limit int, l *logs.Log) ([]model.Organization, error) {
	if limit <= 0 || limit > MaxOrganizationsLimit {
		limit = MaxOrganizationsLimit
	}

	organizations, err := app.storage.FindOrganizations(limit)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err).SetStatus(utils.ErrorStatus(err))
	}
	return organizations, nil
}

// sysCheckIntegrity reports the drift between organizations, credentials and tenant collections. It does not repair anything.
func (app *application) sysCheckIntegrity(l *logs.Log) (*model.IntegrityReport, error) {
	organizations, err := app.storage.FindOrganizations(0)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err).SetStatus(utils.ErrorStatus(err))
	}
	credentials, err := app.storage.FindCredentials()
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAdminCredential, nil, err).SetStatus(utils.ErrorStatus(err))
	}
	collections, err := app.storage.FindTenantCollectionNames()
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeTenantCollection, nil, err).SetStatus(utils.ErrorStatus(err))
	}

	credentialsByID := make(map[string]model.AdminCredential, len(credentials))
	for _, credential := range credentials {
		credentialsByID[credential.ID] = credential
	}
	collectionsSet := make(map[string]bool, len(collections))
	for _, collection := range collections {
		collectionsSet[collection] = true
	}

	issues := []model.IntegrityIssue{}
	usedCredentials := map[string]bool{}
	usedCollections := map[string]bool{}
	for _, organization := range organizations {
		credential, ok := credentialsByID[organization.AdminUserID]
		if !ok {
			issues = append(issues, model.IntegrityIssue{Problem: model.IntegrityIssueMissingCredential, OrganizationName: organization.Name, CredentialID: organization.AdminUserID})
		} else {
			usedCredentials[credential.ID] = true
			if credential.OrganizationName != organization.Name || credential.Email != organization.AdminEmail {
				issues = append(issues, model.IntegrityIssue{Problem: model.IntegrityIssueCredentialMismatch, OrganizationName: organization.Name, CredentialID: credential.ID})
			}
		}

		if !collectionsSet[organization.CollectionName] {
			issues = append(issues, model.IntegrityIssue{Problem: model.IntegrityIssueMissingCollection, OrganizationName: organization.Name, CollectionName: organization.CollectionName})
		}
		usedCollections[organization.CollectionName] = true
	}

	for _, credential := range credentials {
		if !usedCredentials[credential.ID] {
			issues = append(issues, model.IntegrityIssue{Problem: model.IntegrityIssueOrphanedCredential, OrganizationName: credential.OrganizationName, CredentialID: credential.ID})
		}
	}
	for _, collection := range collections {
		if !usedCollections[collection] {
			issues = append(issues, model.IntegrityIssue{Problem: model.IntegrityIssueOrphanedCollection, CollectionName: collection})
		}
	}

	if len(issues) > 0 {
		l.Warnf("integrity check found %d issues", len(issues))
	}
	return &model.IntegrityReport{Issues: issues, DateChecked: time.Now().UTC()}, nil
}
