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
	"time"
)

type organization struct {
	ID             string `bson:"_id" validate:"required"`
	Name           string `bson:"organization_name" validate:"required,max=100"`
	CollectionName string `bson:"collection_name" validate:"required,startswith=org_"`

	AdminEmail  string `bson:"admin_email" validate:"required"`
	AdminUserID string `bson:"admin_user_id" validate:"required"`

	DateCreated time.Time `bson:"created_at"`
	DateUpdated time.Time `bson:"updated_at"`
}

type adminUser struct {
	ID           string `bson:"_id" validate:"required"`
	Email        string `bson:"email" validate:"required"`
	PasswordHash string `bson:"password_hash" validate:"required"`

	OrganizationName string `bson:"organization_name" validate:"required"`

	Active bool `bson:"is_active"`

	DateCreated time.Time `bson:"created_at"`
	DateUpdated time.Time `bson:"updated_at"`
}

type tenantMetadata struct {
	ID    string `bson:"_id"`
	OrgID string `bson:"org_id"`

	Metadata tenantMetadataInfo     `bson:"metadata"`
	Data     map[string]interface{} `bson:"data"`
}

type tenantMetadataInfo struct {
	SchemaVersion string    `bson:"schema_version"`
	DateCreated   time.Time `bson:"created_at"`
}
