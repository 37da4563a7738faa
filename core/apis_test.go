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

package core_test

import (
	"fmt"
	"org-building-block/core"
	"org-building-block/core/auth"
	"org-building-block/core/mocks"
	"org-building-block/core/model"
	"org-building-block/utils"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gotest.tools/assert"
)

func newTestCore(t *testing.T) (*core.APIs, *mocks.MemoryStorage, *logs.Log) {
	storage := mocks.NewMemoryStorage()
	logger := logs.NewLogger("test", nil)
	authImpl, err := auth.NewAuth("http://localhost", "test-secret", 30, bcrypt.MinCost, storage, logger)
	assert.NilError(t, err)

	coreAPIs := core.NewCoreAPIs("1.1.1", "build", storage, authImpl, nil, logger)
	return coreAPIs, storage, logger.NewLog("1", logs.RequestContext{})
}

func createAcme(t *testing.T, coreAPIs *core.APIs, l *logs.Log) *model.Organization {
	organization, err := coreAPIs.Administration.AdmCreateOrganization("Acme", "a@acme.com", "Passw0rd!", l)
	assert.NilError(t, err)
	return organization
}

func strPtr(v string) *string {
	return &v
}

func TestGetVersion(t *testing.T) {
	coreAPIs, _, _ := newTestCore(t)

	assert.Equal(t, coreAPIs.GetVersion(), "1.1.1", "result is different")
	assert.Equal(t, coreAPIs.Default.GetVersion(), "1.1.1", "result is different")
}

//Create

func TestAdmCreateOrganization(t *testing.T) {
	coreAPIs, storage, l := newTestCore(t)

	organization := createAcme(t, coreAPIs, l)
	assert.Equal(t, organization.Name, "Acme")
	assert.Equal(t, organization.CollectionName, "org_acme")
	assert.Equal(t, organization.AdminEmail, "a@acme.com")
	assert.Assert(t, organization.ID != "")
	assert.Assert(t, !organization.DateCreated.IsZero())

	credential, err := storage.FindCredentialByID(organization.AdminUserID)
	assert.NilError(t, err)
	assert.Assert(t, credential != nil)
	assert.Equal(t, credential.OrganizationName, "Acme")
	assert.Assert(t, credential.Active)
	assert.Assert(t, credential.PasswordHash != "Passw0rd!")
	assert.NilError(t, bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte("Passw0rd!")))

	metadata := storage.TenantCollectionMetadata("org_acme")
	assert.Equal(t, len(metadata), 1)
	assert.Equal(t, metadata[0].OrgID, organization.ID)
	assert.Equal(t, metadata[0].SchemaVersion, model.TenantSchemaVersion)

	//get returns the same view
	got, err := coreAPIs.Administration.AdmGetOrganization("Acme", l)
	assert.NilError(t, err)
	assert.Equal(t, got.ID, organization.ID)
	assert.Equal(t, got.Name, organization.Name)
	assert.Equal(t, got.CollectionName, organization.CollectionName)
	assert.Equal(t, got.AdminEmail, organization.AdminEmail)
}

func TestAdmCreateOrganizationValidation(t *testing.T) {
	coreAPIs, storage, l := newTestCore(t)

	tests := []struct {
		name     string
		orgName  string
		email    string
		password string
	}{
		{name: "empty name", orgName: "", email: "a@acme.com", password: "Passw0rd!"},
		{name: "bad charset", orgName: "Acme!", email: "a@acme.com", password: "Passw0rd!"},
		{name: "bad email", orgName: "Acme", email: "acme.com", password: "Passw0rd!"},
		{name: "short password", orgName: "Acme", email: "a@acme.com", password: "short"},
		{name: "leading space", orgName: " Acme", email: "a@acme.com", password: "Passw0rd!"},
		{name: "double space", orgName: "Acme  Two", email: "a@acme.com", password: "Passw0rd!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := coreAPIs.Administration.AdmCreateOrganization(tt.orgName, tt.email, tt.password, l)
			assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusValidation)
		})
	}

	organizations, err := storage.FindOrganizations(0)
	assert.NilError(t, err)
	assert.Equal(t, len(organizations), 0)
}

func TestAdmCreateOrganizationAlreadyExists(t *testing.T) {
	coreAPIs, storage, l := newTestCore(t)
	createAcme(t, coreAPIs, l)

	//same name
	_, err := coreAPIs.Administration.AdmCreateOrganization("Acme", "b@acme.com", "Passw0rd!", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusAlreadyExists)
	//same email
	_, err = coreAPIs.Administration.AdmCreateOrganization("Other", "a@acme.com", "Passw0rd!", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusAlreadyExists)
	//same derived collection name
	_, err = coreAPIs.Administration.AdmCreateOrganization("ACME", "c@acme.com", "Passw0rd!", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusAlreadyExists)

	organizations, err := storage.FindOrganizations(0)
	assert.NilError(t, err)
	assert.Equal(t, len(organizations), 1)
	credentials, err := storage.FindCredentials()
	assert.NilError(t, err)
	assert.Equal(t, len(credentials), 1)
}

func TestAdmCreateOrganizationsAreUnique(t *testing.T) {
	coreAPIs, storage, l := newTestCore(t)

	for i := 0; i < 10; i++ {
		_, err := coreAPIs.Administration.AdmCreateOrganization(fmt.Sprintf("Org %d", i), fmt.Sprintf("admin%d@org.com", i), "Passw0rd!", l)
		assert.NilError(t, err)
	}

	organizations, err := storage.FindOrganizations(0)
	assert.NilError(t, err)
	assert.Equal(t, len(organizations), 10)

	names, emails, collections := map[string]bool{}, map[string]bool{}, map[string]bool{}
	for _, organization := range organizations {
		assert.Assert(t, !names[organization.Name])
		assert.Assert(t, !emails[organization.AdminEmail])
		assert.Assert(t, !collections[organization.CollectionName])
		names[organization.Name], emails[organization.AdminEmail], collections[organization.CollectionName] = true, true, true
	}

	report, err := coreAPIs.System.SysCheckIntegrity(l)
	assert.NilError(t, err)
	assert.Equal(t, len(report.Issues), 0)
}

func TestAdmCreateOrganizationConcurrent(t *testing.T) {
	coreAPIs, storage, l := newTestCore(t)

	var wg sync.WaitGroup
	results := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = coreAPIs.Administration.AdmCreateOrganization("Acme", fmt.Sprintf("admin%d@acme.com", i), "Passw0rd!", l)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusAlreadyExists)
		}
	}
	assert.Equal(t, succeeded, 1)

	organizations, err := storage.FindOrganizations(0)
	assert.NilError(t, err)
	assert.Equal(t, len(organizations), 1)

	report, err := coreAPIs.System.SysCheckIntegrity(l)
	assert.NilError(t, err)
	assert.Equal(t, len(report.Issues), 0)
}

func TestAdmCreateOrganizationCompensation(t *testing.T) {
	unavailable := errors.New("timeout").SetStatus(utils.ErrorStatusStoreUnavailable)

	tests := []struct {
		name   string
		fail   []string
		status string
	}{
		{name: "organization insert fails", fail: []string{"InsertOrganization"}, status: utils.ErrorStatusStoreUnavailable},
		{name: "tenant collection fails", fail: []string{"CreateTenantCollection"}, status: utils.ErrorStatusStoreUnavailable},
		{name: "credential cleanup fails", fail: []string{"InsertOrganization", "DeleteCredential"}, status: utils.ErrorStatusIntegrityViolation},
		{name: "collection cleanup fails", fail: []string{"CreateTenantCollection", "DropTenantCollection"}, status: utils.ErrorStatusIntegrityViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coreAPIs, storage, l := newTestCore(t)
			for _, method := range tt.fail {
				storage.FailNext(method, unavailable)
			}

			_, err := coreAPIs.Administration.AdmCreateOrganization("Acme", "a@acme.com", "Passw0rd!", l)
			assert.Equal(t, utils.ErrorStatus(err), tt.status)

			if tt.status == utils.ErrorStatusStoreUnavailable {
				//nothing left behind
				report, err := coreAPIs.System.SysCheckIntegrity(l)
				assert.NilError(t, err)
				assert.Equal(t, len(report.Issues), 0)
				organization, err := storage.FindOrganization("Acme")
				assert.NilError(t, err)
				assert.Assert(t, organization == nil)

				//and it can be retried
				createAcme(t, coreAPIs, l)
			}
		})
	}
}

func TestAdmCreateOrganizationNotifiesListeners(t *testing.T) {
	storage := mocks.NewMemoryStorage()
	logger := logs.NewLogger("test", nil)
	authImpl, err := auth.NewAuth("http://localhost", "test-secret", 30, bcrypt.MinCost, storage, logger)
	assert.NilError(t, err)

	sent := make(chan string, 1)
	emailer := mocks.NewEmailer(t)
	emailer.On("Send", "a@acme.com", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("*string")).
		Return(nil).Run(func(args mock.Arguments) { sent <- args.String(0) }).Once()

	coreAPIs := core.NewCoreAPIs("1.1.1", "build", storage, authImpl, emailer, logger)
	createAcme(t, coreAPIs, logger.NewLog("1", logs.RequestContext{}))

	select {
	case to := <-sent:
		assert.Equal(t, to, "a@acme.com")
	case <-time.After(5 * time.Second):
		t.Fatal("welcome email was not sent")
	}
}

//Get

func TestAdmGetOrganizationNotFound(t *testing.T) {
	coreAPIs, _, l := newTestCore(t)

	_, err := coreAPIs.Administration.AdmGetOrganization("Acme", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusNotFound)
}

func TestAdmGetOrganizationIntegrityViolation(t *testing.T) {
	coreAPIs, storage, l := newTestCore(t)
	organization := createAcme(t, coreAPIs, l)

	assert.NilError(t, storage.DropTenantCollection(organization.CollectionName))
	_, err := coreAPIs.Administration.AdmGetOrganization("Acme", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusIntegrityViolation)

	assert.NilError(t, storage.DeleteCredential(organization.AdminUserID))
	_, err = coreAPIs.Administration.AdmGetOrganization("Acme", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusIntegrityViolation)
}

func TestAdmGetOrganizationStoreUnavailable(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("FindOrganization", "Acme").Return(nil, errors.New("timeout").SetStatus(utils.ErrorStatusStoreUnavailable))

	logger := logs.NewLogger("test", nil)
	coreAPIs := core.NewCoreAPIs("1.1.1", "build", storage, nil, nil, logger)

	_, err := coreAPIs.Administration.AdmGetOrganization("Acme", logger.NewLog("1", logs.RequestContext{}))
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusStoreUnavailable)
	assert.Assert(t, utils.IsRetryable(err))
}

//Update

func TestAdmUpdateOrganizationRename(t *testing.T) {
	coreAPIs, storage, l := newTestCore(t)
	organization := createAcme(t, coreAPIs, l)

	updated, err := coreAPIs.Administration.AdmUpdateOrganization("Acme", strPtr("Acme2"), nil, nil, "a@acme.com", l)
	assert.NilError(t, err)
	assert.Equal(t, updated.Name, "Acme2")
	assert.Equal(t, updated.CollectionName, "org_acme2")
	assert.Equal(t, updated.ID, organization.ID)

	_, err = coreAPIs.Administration.AdmGetOrganization("Acme", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusNotFound)

	got, err := coreAPIs.Administration.AdmGetOrganization("Acme2", l)
	assert.NilError(t, err)
	assert.Equal(t, got.CollectionName, "org_acme2")

	assert.Equal(t, len(storage.TenantCollectionMetadata("org_acme")), 0)
	assert.Equal(t, len(storage.TenantCollectionMetadata("org_acme2")), 1)

	credential, err := storage.FindCredentialByID(organization.AdminUserID)
	assert.NilError(t, err)
	assert.Equal(t, credential.OrganizationName, "Acme2")

	//login with the unchanged email still works
	result, err := coreAPIs.Auth.Login("a@acme.com", "Passw0rd!", l)
	assert.NilError(t, err)
	assert.Equal(t, result.AdminContext.OrganizationName, "Acme2")
}

func TestAdmUpdateOrganizationEmailAndPassword(t *testing.T) {
	coreAPIs, _, l := newTestCore(t)
	createAcme(t, coreAPIs, l)

	updated, err := coreAPIs.Administration.AdmUpdateOrganization("Acme", nil, strPtr("new@acme.com"), strPtr("N3wPassword"), "a@acme.com", l)
	assert.NilError(t, err)
	assert.Equal(t, updated.AdminEmail, "new@acme.com")

	_, err = coreAPIs.Auth.Login("a@acme.com", "Passw0rd!", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusInvalidCredentials)
	_, err = coreAPIs.Auth.Login("new@acme.com", "Passw0rd!", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusInvalidCredentials)
	_, err = coreAPIs.Auth.Login("new@acme.com", "N3wPassword", l)
	assert.NilError(t, err)

	//the old admin email is not the admin anymore
	_, err = coreAPIs.Administration.AdmUpdateOrganization("Acme", strPtr("Acme2"), nil, nil, "a@acme.com", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusUnauthorized)
}

func TestAdmUpdateOrganizationErrors(t *testing.T) {
	coreAPIs, _, l := newTestCore(t)
	createAcme(t, coreAPIs, l)
	_, err := coreAPIs.Administration.AdmCreateOrganization("Beta", "b@beta.com", "Passw0rd!", l)
	assert.NilError(t, err)

	tests := []struct {
		name        string
		orgName     string
		newName     *string
		newEmail    *string
		newPassword *string
		caller      string
		status      string
	}{
		{name: "not found", orgName: "Gamma", newName: strPtr("Gamma2"), caller: "a@acme.com", status: utils.ErrorStatusNotFound},
		{name: "other admin", orgName: "Acme", newName: strPtr("Acme2"), caller: "b@beta.com", status: utils.ErrorStatusUnauthorized},
		{name: "name taken", orgName: "Acme", newName: strPtr("Beta"), caller: "a@acme.com", status: utils.ErrorStatusAlreadyExists},
		{name: "collection taken", orgName: "Acme", newName: strPtr("BETA"), caller: "a@acme.com", status: utils.ErrorStatusAlreadyExists},
		{name: "email taken", orgName: "Acme", newEmail: strPtr("b@beta.com"), caller: "a@acme.com", status: utils.ErrorStatusAlreadyExists},
		{name: "invalid new name", orgName: "Acme", newName: strPtr("Acme  2"), caller: "a@acme.com", status: utils.ErrorStatusValidation},
		{name: "invalid email", orgName: "Acme", newEmail: strPtr("bad"), caller: "a@acme.com", status: utils.ErrorStatusValidation},
		{name: "short password", orgName: "Acme", newPassword: strPtr("short"), caller: "a@acme.com", status: utils.ErrorStatusValidation},
		{name: "missing name", orgName: "", newName: strPtr("Acme2"), caller: "a@acme.com", status: utils.ErrorStatusValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := coreAPIs.Administration.AdmUpdateOrganization(tt.orgName, tt.newName, tt.newEmail, tt.newPassword, tt.caller, l)
			assert.Equal(t, utils.ErrorStatus(err), tt.status)
		})
	}

	//nothing changed
	got, err := coreAPIs.Administration.AdmGetOrganization("Acme", l)
	assert.NilError(t, err)
	assert.Equal(t, got.AdminEmail, "a@acme.com")
	assert.Equal(t, got.CollectionName, "org_acme")
}

func TestAdmUpdateOrganizationNoChanges(t *testing.T) {
	coreAPIs, _, l := newTestCore(t)
	organization := createAcme(t, coreAPIs, l)

	updated, err := coreAPIs.Administration.AdmUpdateOrganization("Acme", strPtr("Acme"), strPtr("a@acme.com"), nil, "a@acme.com", l)
	assert.NilError(t, err)
	assert.DeepEqual(t, *updated, *organization)
}

func TestAdmUpdateOrganizationReverts(t *testing.T) {
	unavailable := errors.New("timeout").SetStatus(utils.ErrorStatusStoreUnavailable)

	tests := []struct {
		name     string
		fail     []string
		status   string
		dataType string
	}{
		{name: "organization update fails", fail: []string{"UpdateOrganization"}, status: utils.ErrorStatusStoreUnavailable, dataType: string(model.TypeOrganizationUpdate)},
		{name: "credential update fails", fail: []string{"UpdateCredential"}, status: utils.ErrorStatusStoreUnavailable},
		{name: "collection rename fails", fail: []string{"RenameTenantCollection"}, status: utils.ErrorStatusStoreUnavailable},
		{name: "transaction fails", fail: []string{"PerformTransaction"}, status: utils.ErrorStatusStoreUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coreAPIs, storage, l := newTestCore(t)
			organization := createAcme(t, coreAPIs, l)
			for _, method := range tt.fail {
				storage.FailNext(method, unavailable)
			}

			_, err := coreAPIs.Administration.AdmUpdateOrganization("Acme", strPtr("Acme Two"), strPtr("new@acme.com"), strPtr("N3wPassword"), "a@acme.com", l)
			assert.Equal(t, utils.ErrorStatus(err), tt.status)
			if tt.dataType != "" {
				assert.Assert(t, strings.Contains(err.Error(), tt.dataType), err.Error())
			}

			//everything is as before
			got, err := coreAPIs.Administration.AdmGetOrganization("Acme", l)
			assert.NilError(t, err)
			assert.DeepEqual(t, *got, *organization)
			_, err = coreAPIs.Auth.Login("a@acme.com", "Passw0rd!", l)
			assert.NilError(t, err)

			report, err := coreAPIs.System.SysCheckIntegrity(l)
			assert.NilError(t, err)
			assert.Equal(t, len(report.Issues), 0)
		})
	}
}

//Delete

func TestAdmDeleteOrganization(t *testing.T) {
	coreAPIs, storage, l := newTestCore(t)
	organization := createAcme(t, coreAPIs, l)

	err := coreAPIs.Administration.AdmDeleteOrganization("Acme", "b@beta.com", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusUnauthorized)

	err = coreAPIs.Administration.AdmDeleteOrganization("Acme", "a@acme.com", l)
	assert.NilError(t, err)

	_, err = coreAPIs.Administration.AdmGetOrganization("Acme", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusNotFound)

	//repeated delete
	err = coreAPIs.Administration.AdmDeleteOrganization("Acme", "a@acme.com", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusNotFound)

	credential, err := storage.FindCredentialByID(organization.AdminUserID)
	assert.NilError(t, err)
	assert.Assert(t, credential == nil)
	exists, err := storage.TenantCollectionExists(organization.CollectionName)
	assert.NilError(t, err)
	assert.Assert(t, !exists)

	_, err = coreAPIs.Auth.Login("a@acme.com", "Passw0rd!", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusInvalidCredentials)
}

func TestAdmDeleteOrganizationWithMissingCollection(t *testing.T) {
	coreAPIs, storage, l := newTestCore(t)
	organization := createAcme(t, coreAPIs, l)
	assert.NilError(t, storage.DropTenantCollection(organization.CollectionName))

	err := coreAPIs.Administration.AdmDeleteOrganization("Acme", "a@acme.com", l)
	assert.NilError(t, err)
}

func TestAdmDeleteOrganizationPartialFailure(t *testing.T) {
	coreAPIs, storage, l := newTestCore(t)
	organization := createAcme(t, coreAPIs, l)
	storage.FailNext("DeleteCredential", errors.New("timeout").SetStatus(utils.ErrorStatusStoreUnavailable))

	err := coreAPIs.Administration.AdmDeleteOrganization("Acme", "a@acme.com", l)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusStoreUnavailable)

	//the organization stays, so the delete can be run again
	report, err := coreAPIs.System.SysCheckIntegrity(l)
	assert.NilError(t, err)
	assert.Equal(t, len(report.Issues), 1)
	assert.Equal(t, report.Issues[0].Problem, model.IntegrityIssueMissingCollection)
	assert.Equal(t, report.Issues[0].CollectionName, organization.CollectionName)

	err = coreAPIs.Administration.AdmDeleteOrganization("Acme", "a@acme.com", l)
	assert.NilError(t, err)
}

//System

func TestSysGetHealth(t *testing.T) {
	coreAPIs, storage, l := newTestCore(t)

	health := coreAPIs.System.SysGetHealth(l)
	assert.Equal(t, health.Status, model.HealthStatusHealthy)
	assert.Assert(t, health.Database)

	storage.FailNext("Ping", errors.New("timeout").SetStatus(utils.ErrorStatusStoreUnavailable))
	health = coreAPIs.System.SysGetHealth(l)
	assert.Equal(t, health.Status, model.HealthStatusDegraded)
	assert.Assert(t, !health.Database)
}

func TestSysGetOrganizations(t *testing.T) {
	coreAPIs, _, l := newTestCore(t)
	for i := 0; i < 55; i++ {
		_, err := coreAPIs.Administration.AdmCreateOrganization(fmt.Sprintf("Org %d", i), fmt.Sprintf("admin%d@org.com", i), "Passw0rd!", l)
		assert.NilError(t, err)
	}

	organizations, err := coreAPIs.System.SysGetOrganizations(10, l)
	assert.NilError(t, err)
	assert.Equal(t, len(organizations), 10)

	organizations, err = coreAPIs.System.SysGetOrganizations(100, l)
	assert.NilError(t, err)
	assert.Equal(t, len(organizations), core.MaxOrganizationsLimit)
}

func TestSysCheckIntegrity(t *testing.T) {
	coreAPIs, storage, l := newTestCore(t)
	acme := createAcme(t, coreAPIs, l)
	_, err := coreAPIs.Administration.AdmCreateOrganization("Beta", "b@beta.com", "Passw0rd!", l)
	assert.NilError(t, err)

	//orphaned credential and collection
	assert.NilError(t, storage.InsertCredential(model.AdminCredential{ID: "orphan", Email: "o@orphan.com", PasswordHash: "x", OrganizationName: "Orphan"}))
	assert.NilError(t, storage.CreateTenantCollection("org_orphan", model.TenantCollectionMetadata{ID: "m", OrgID: "x"}))
	//acme loses its collection, beta its credential
	assert.NilError(t, storage.DropTenantCollection(acme.CollectionName))
	beta, err := storage.FindOrganization("Beta")
	assert.NilError(t, err)
	assert.NilError(t, storage.DeleteCredential(beta.AdminUserID))

	report, err := coreAPIs.System.SysCheckIntegrity(l)
	assert.NilError(t, err)

	problems := map[string]int{}
	for _, issue := range report.Issues {
		problems[issue.Problem]++
	}
	assert.DeepEqual(t, problems, map[string]int{
		model.IntegrityIssueMissingCollection:  1,
		model.IntegrityIssueMissingCredential:  1,
		model.IntegrityIssueOrphanedCredential: 1,
		model.IntegrityIssueOrphanedCollection: 1,
	})
}
