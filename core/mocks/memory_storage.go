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

package mocks

import (
	"org-building-block/core/interfaces"
	"org-building-block/core/model"
	"org-building-block/utils"
	"sort"
	"sync"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

type memoryState struct {
	organizations map[string]model.Organization    //by name
	credentials   map[string]model.AdminCredential //by id
	collections   map[string][]model.TenantCollectionMetadata
}

func newMemoryState() memoryState {
	return memoryState{organizations: map[string]model.Organization{},
		credentials: map[string]model.AdminCredential{},
		collections: map[string][]model.TenantCollectionMetadata{}}
}

// MemoryStorage is an in-memory Storage with the unique constraints and error statuses of the
// MongoDB adapter.
type MemoryStorage struct {
	state memoryState
	fail  map[string]error //method name -> error returned once

	mu sync.Mutex
}

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{state: newMemoryState(), fail: map[string]error{}}
}

// FailNext makes the next call of the named method return err
func (m *MemoryStorage) FailNext(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fail[method] = err
}

func (m *MemoryStorage) injected(method string) error {
	err, ok := m.fail[method]
	if !ok {
		return nil
	}
	delete(m.fail, method)
	return err
}

// PerformTransaction runs transaction step by step, like a deployment without transactions
func (m *MemoryStorage) PerformTransaction(transaction func(adapter interfaces.Storage) error) error {
	m.mu.Lock()
	err := m.injected("PerformTransaction")
	m.mu.Unlock()
	if err != nil {
		return err
	}

	return transaction(m)
}

// Ping checks the storage
func (m *MemoryStorage) Ping() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.injected("Ping")
}

// FindOrganization finds an organization by name
func (m *MemoryStorage) FindOrganization(name string) (*model.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("FindOrganization"); err != nil {
		return nil, err
	}
	organization, ok := m.state.organizations[name]
	if !ok {
		return nil, nil
	}
	return &organization, nil
}

// FindOrganizations finds organizations ordered by creation date
func (m *MemoryStorage) FindOrganizations(limit int) ([]model.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("FindOrganizations"); err != nil {
		return nil, err
	}
	result := make([]model.Organization, 0, len(m.state.organizations))
	for _, organization := range m.state.organizations {
		result = append(result, organization)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DateCreated.Equal(result[j].DateCreated) {
			return result[i].Name < result[j].Name
		}
		return result[i].DateCreated.Before(result[j].DateCreated)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// InsertOrganization inserts an organization
func (m *MemoryStorage) InsertOrganization(organization model.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("InsertOrganization"); err != nil {
		return err
	}
	for _, existing := range m.state.organizations {
		if existing.ID == organization.ID || existing.Name == organization.Name || existing.AdminEmail == organization.AdminEmail ||
			existing.CollectionName == organization.CollectionName || existing.AdminUserID == organization.AdminUserID {
			return duplicateError(model.TypeOrganization)
		}
	}
	m.state.organizations[organization.Name] = organization
	return nil
}

// UpdateOrganization applies the changes to an organization
func (m *MemoryStorage) UpdateOrganization(name string, update model.OrganizationUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("UpdateOrganization"); err != nil {
		return err
	}
	organization, ok := m.state.organizations[name]
	if !ok {
		return notFoundError(model.TypeOrganization, name)
	}

	updated := organization
	if update.Name != nil {
		updated.Name = *update.Name
	}
	if update.CollectionName != nil {
		updated.CollectionName = *update.CollectionName
	}
	if update.AdminEmail != nil {
		updated.AdminEmail = *update.AdminEmail
	}
	updated.DateUpdated = update.DateUpdated

	for key, existing := range m.state.organizations {
		if key == name {
			continue
		}
		if existing.Name == updated.Name || existing.AdminEmail == updated.AdminEmail || existing.CollectionName == updated.CollectionName {
			return duplicateError(model.TypeOrganization)
		}
	}

	delete(m.state.organizations, name)
	m.state.organizations[updated.Name] = updated
	return nil
}

// DeleteOrganization deletes an organization, no-op when it is absent
func (m *MemoryStorage) DeleteOrganization(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("DeleteOrganization"); err != nil {
		return err
	}
	delete(m.state.organizations, name)
	return nil
}

// FindCredentialByEmail finds a credential by email
func (m *MemoryStorage) FindCredentialByEmail(email string) (*model.AdminCredential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("FindCredentialByEmail"); err != nil {
		return nil, err
	}
	for _, credential := range m.state.credentials {
		if credential.Email == email {
			return &credential, nil
		}
	}
	return nil, nil
}

// FindCredentialByID finds a credential by id
func (m *MemoryStorage) FindCredentialByID(id string) (*model.AdminCredential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("FindCredentialByID"); err != nil {
		return nil, err
	}
	credential, ok := m.state.credentials[id]
	if !ok {
		return nil, nil
	}
	return &credential, nil
}

// FindCredentials finds all credentials
func (m *MemoryStorage) FindCredentials() ([]model.AdminCredential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("FindCredentials"); err != nil {
		return nil, err
	}
	result := make([]model.AdminCredential, 0, len(m.state.credentials))
	for _, credential := range m.state.credentials {
		result = append(result, credential)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Email < result[j].Email })
	return result, nil
}

// InsertCredential inserts a credential
func (m *MemoryStorage) InsertCredential(credential model.AdminCredential) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("InsertCredential"); err != nil {
		return err
	}
	for _, existing := range m.state.credentials {
		if existing.ID == credential.ID || existing.Email == credential.Email {
			return duplicateError(model.TypeAdminCredential)
		}
	}
	m.state.credentials[credential.ID] = credential
	return nil
}

// UpdateCredential applies the changes to a credential
func (m *MemoryStorage) UpdateCredential(id string, update model.CredentialUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("UpdateCredential"); err != nil {
		return err
	}
	credential, ok := m.state.credentials[id]
	if !ok {
		return notFoundError(model.TypeAdminCredential, id)
	}
	if update.Email != nil {
		for _, existing := range m.state.credentials {
			if existing.ID != id && existing.Email == *update.Email {
				return duplicateError(model.TypeAdminCredential)
			}
		}
		credential.Email = *update.Email
	}
	if update.PasswordHash != nil {
		credential.PasswordHash = *update.PasswordHash
	}
	if update.OrganizationName != nil {
		credential.OrganizationName = *update.OrganizationName
	}
	credential.DateUpdated = update.DateUpdated

	m.state.credentials[id] = credential
	return nil
}

// DeleteCredential deletes a credential, no-op when it is absent
func (m *MemoryStorage) DeleteCredential(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("DeleteCredential"); err != nil {
		return err
	}
	delete(m.state.credentials, id)
	return nil
}

// SetCredentialActive activates or deactivates a credential
func (m *MemoryStorage) SetCredentialActive(id string, active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if credential, ok := m.state.credentials[id]; ok {
		credential.Active = active
		m.state.credentials[id] = credential
	}
}

// TenantCollectionExists tells if the tenant collection exists
func (m *MemoryStorage) TenantCollectionExists(name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("TenantCollectionExists"); err != nil {
		return false, err
	}
	_, ok := m.state.collections[name]
	return ok, nil
}

// FindTenantCollectionNames finds the names of all tenant collections
func (m *MemoryStorage) FindTenantCollectionNames() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("FindTenantCollectionNames"); err != nil {
		return nil, err
	}
	result := make([]string, 0, len(m.state.collections))
	for name := range m.state.collections {
		if model.IsTenantCollectionName(name) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result, nil
}

// TenantCollectionMetadata gives the records seeded into a tenant collection
func (m *MemoryStorage) TenantCollectionMetadata(name string) []model.TenantCollectionMetadata {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]model.TenantCollectionMetadata(nil), m.state.collections[name]...)
}

// CreateTenantCollection creates a tenant collection and seeds its metadata
func (m *MemoryStorage) CreateTenantCollection(name string, metadata model.TenantCollectionMetadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("CreateTenantCollection"); err != nil {
		return err
	}
	if _, ok := m.state.collections[name]; ok {
		return duplicateError(model.TypeTenantCollection)
	}
	m.state.collections[name] = []model.TenantCollectionMetadata{metadata}
	return nil
}

// RenameTenantCollection renames a tenant collection
func (m *MemoryStorage) RenameTenantCollection(name string, newName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("RenameTenantCollection"); err != nil {
		return err
	}
	records, ok := m.state.collections[name]
	if !ok {
		return notFoundError(model.TypeTenantCollection, name)
	}
	if _, ok := m.state.collections[newName]; ok {
		return duplicateError(model.TypeTenantCollection)
	}
	delete(m.state.collections, name)
	m.state.collections[newName] = records
	return nil
}

// DropTenantCollection drops a tenant collection, no-op when it is absent
func (m *MemoryStorage) DropTenantCollection(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected("DropTenantCollection"); err != nil {
		return err
	}
	delete(m.state.collections, name)
	return nil
}

func duplicateError(dataType logutils.MessageDataType) error {
	return errors.ErrorData("duplicate", dataType, nil).SetStatus(utils.ErrorStatusAlreadyExists)
}

func notFoundError(dataType logutils.MessageDataType, key string) error {
	return errors.ErrorData(logutils.StatusMissing, dataType, &logutils.FieldArgs{"key": key}).SetStatus(utils.ErrorStatusNotFound)
}
