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
	"org-building-block/core/model"
)

//Organization
func organizationFromStorage(item *organization) model.Organization {
	if item == nil {
		return model.Organization{}
	}

	return model.Organization{ID: item.ID, Name: item.Name, CollectionName: item.CollectionName,
		AdminEmail: item.AdminEmail, AdminUserID: item.AdminUserID, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func organizationsFromStorage(itemsList []organization) []model.Organization {
	items := make([]model.Organization, len(itemsList))
	for i := range itemsList {
		items[i] = organizationFromStorage(&itemsList[i])
	}
	return items
}

func organizationToStorage(item model.Organization) organization {
	return organization{ID: item.ID, Name: item.Name, CollectionName: item.CollectionName,
		AdminEmail: item.AdminEmail, AdminUserID: item.AdminUserID, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

//AdminCredential
func credentialFromStorage(item *adminUser) model.AdminCredential {
	if item == nil {
		return model.AdminCredential{}
	}

	return model.AdminCredential{ID: item.ID, Email: item.Email, PasswordHash: item.PasswordHash,
		OrganizationName: item.OrganizationName, Active: item.Active, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func credentialsFromStorage(itemsList []adminUser) []model.AdminCredential {
	items := make([]model.AdminCredential, len(itemsList))
	for i := range itemsList {
		items[i] = credentialFromStorage(&itemsList[i])
	}
	return items
}

func credentialToStorage(item model.AdminCredential) adminUser {
	return adminUser{ID: item.ID, Email: item.Email, PasswordHash: item.PasswordHash,
		OrganizationName: item.OrganizationName, Active: item.Active, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

//TenantCollectionMetadata
func tenantMetadataToStorage(item model.TenantCollectionMetadata) tenantMetadata {
	return tenantMetadata{ID: item.ID, OrgID: item.OrgID,
		Metadata: tenantMetadataInfo{SchemaVersion: item.SchemaVersion, DateCreated: item.DateCreated},
		Data:     map[string]interface{}{}}
}
