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

package interfaces

import (
	"org-building-block/core/model"
)

// Storage interface to communicate with the storage
type Storage interface {
	//PerformTransaction runs the function on a storage bound to a single transaction when
	//the deployment supports it, otherwise sequentially
	PerformTransaction(func(adapter Storage) error) error
	Ping() error

	//Organizations
	FindOrganization(name string) (*model.Organization, error)
	FindOrganizations(limit int) ([]model.Organization, error)
	InsertOrganization(organization model.Organization) error
	UpdateOrganization(name string, update model.OrganizationUpdate) error
	DeleteOrganization(name string) error

	//Credentials
	FindCredentialByEmail(email string) (*model.AdminCredential, error)
	FindCredentialByID(id string) (*model.AdminCredential, error)
	FindCredentials() ([]model.AdminCredential, error)
	InsertCredential(credential model.AdminCredential) error
	UpdateCredential(id string, update model.CredentialUpdate) error
	DeleteCredential(id string) error

	//TenantCollections
	TenantCollectionExists(name string) (bool, error)
	FindTenantCollectionNames() ([]string, error)
	CreateTenantCollection(name string, metadata model.TenantCollectionMetadata) error
	RenameTenantCollection(name string, newName string) error
	DropTenantCollection(name string) error
}

// Emailer is used by core to send emails
type Emailer interface {
	Send(toEmail string, subject string, body string, attachmentFilename *string) error
}
