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

package storage

import (
	"context"
	"fmt"
	"org-building-block/core/interfaces"
	"org-building-block/core/model"
	"org-building-block/utils"
	"testing"
	"time"

	"github.com/rokwire/logging-library-go/v2/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/go-playground/validator.v9"
	"gotest.tools/assert"
)

func TestStorageStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "duplicate key", err: mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}, want: utils.ErrorStatusAlreadyExists},
		{name: "namespace exists", err: mongo.CommandError{Code: 48, Name: "NamespaceExists"}, want: utils.ErrorStatusAlreadyExists},
		{name: "namespace not found", err: mongo.CommandError{Code: 26, Name: "NamespaceNotFound"}, want: utils.ErrorStatusNotFound},
		{name: "deadline", err: fmt.Errorf("find: %w", context.DeadlineExceeded), want: utils.ErrorStatusStoreUnavailable},
		{name: "disconnected", err: mongo.ErrClientDisconnected, want: utils.ErrorStatusStoreUnavailable},
		{name: "other", err: errors.New("boom"), want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, storageStatus(tt.err), tt.want)
		})
	}
}

func TestPerformTransactionWithoutTransactions(t *testing.T) {
	sa := &Adapter{db: &database{transactions: false}, validate: validator.New()}

	called := false
	err := sa.PerformTransaction(func(adapter interfaces.Storage) error {
		called = true
		assert.Equal(t, adapter, interfaces.Storage(sa))
		return nil
	})
	assert.NilError(t, err)
	assert.Assert(t, called)

	failure := errors.New("failed").SetStatus(utils.ErrorStatusAlreadyExists)
	err = sa.PerformTransaction(func(adapter interfaces.Storage) error { return failure })
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusAlreadyExists)
}

func TestInsertValidatesRecords(t *testing.T) {
	sa := &Adapter{db: &database{}, validate: validator.New()}

	err := sa.InsertOrganization(model.Organization{ID: "1", Name: "Acme", CollectionName: "acme", AdminEmail: "a@acme.com", AdminUserID: "2"})
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusValidation)

	err = sa.InsertCredential(model.AdminCredential{ID: "2", Email: "a@acme.com", OrganizationName: "Acme"})
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusValidation)
}

func TestConversions(t *testing.T) {
	now := time.Now().UTC()
	organization := model.Organization{ID: "1", Name: "Acme", CollectionName: "org_acme", AdminEmail: "a@acme.com",
		AdminUserID: "2", DateCreated: now, DateUpdated: now}
	stored := organizationToStorage(organization)
	assert.NilError(t, validator.New().Struct(stored))
	assert.DeepEqual(t, organizationFromStorage(&stored), organization)

	credential := model.AdminCredential{ID: "2", Email: "a@acme.com", PasswordHash: "hash", OrganizationName: "Acme", Active: true,
		DateCreated: now, DateUpdated: now}
	storedCredential := credentialToStorage(credential)
	assert.DeepEqual(t, credentialFromStorage(&storedCredential), credential)

	metadata := tenantMetadataToStorage(model.TenantCollectionMetadata{ID: "3", OrgID: "1", SchemaVersion: model.TenantSchemaVersion, DateCreated: now})
	assert.Equal(t, metadata.OrgID, "1")
	assert.Equal(t, metadata.Metadata.SchemaVersion, "1.0")
	assert.Equal(t, len(metadata.Data), 0)

	assert.Equal(t, len(organizationsFromStorage(nil)), 0)
}
