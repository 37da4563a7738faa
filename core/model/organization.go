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

package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeOrganization organization type
	TypeOrganization logutils.MessageDataType = "organization"
	//TypeOrganizationName organization name type
	TypeOrganizationName logutils.MessageDataType = "organization name"
	//TypeOrganizationUpdate organization update type
	TypeOrganizationUpdate logutils.MessageDataType = "organization update"
	//TypeTenantCollection tenant collection type
	TypeTenantCollection logutils.MessageDataType = "tenant collection"
	//TypeTenantCollectionMetadata tenant collection metadata type
	TypeTenantCollectionMetadata logutils.MessageDataType = "tenant collection metadata"
	//TypeIntegrityReport integrity report type
	TypeIntegrityReport logutils.MessageDataType = "integrity report"

	//TenantCollectionPrefix is the prefix of every tenant collection name
	TenantCollectionPrefix string = "org_"
	//TenantSchemaVersion is the schema version seeded into new tenant collections
	TenantSchemaVersion string = "1.0"
)

var collectionNameInvalidChars = regexp.MustCompile(`[^a-z0-9_]`)

// Organization represents the organization (tenant) entity
type Organization struct {
	ID             string `json:"id"`
	Name           string `json:"organization_name"`
	CollectionName string `json:"collection_name"`

	AdminEmail  string `json:"admin_email"`
	AdminUserID string `json:"admin_user_id"`

	DateCreated time.Time `json:"created_at"`
	DateUpdated time.Time `json:"updated_at"`
}

func (o Organization) String() string {
	return fmt.Sprintf("[ID:%s\tName:%s\tCollectionName:%s\tAdminEmail:%s\tAdminUserID:%s]", o.ID, o.Name, o.CollectionName, o.AdminEmail, o.AdminUserID)
}

// OrganizationUpdate represents the staged changes of an organization record
type OrganizationUpdate struct {
	Name           *string
	CollectionName *string
	AdminEmail     *string

	DateUpdated time.Time
}

// IsEmpty tells if there are no staged field changes
func (u OrganizationUpdate) IsEmpty() bool {
	return u.Name == nil && u.CollectionName == nil && u.AdminEmail == nil
}

// TenantCollectionMetadata is the record seeded into a new tenant collection
type TenantCollectionMetadata struct {
	ID            string
	OrgID         string
	SchemaVersion string
	DateCreated   time.Time
}

// CollectionNameForOrganization derives the tenant collection name of an organization.
//
// The name is always "org_" followed by the sanitized organization name, so it starts
// with a letter and the prefix is applied exactly once.
func CollectionNameForOrganization(organizationName string) string {
	return TenantCollectionPrefix + sanitizeCollectionName(organizationName)
}

// lowercase, spaces to underscores, anything outside [a-z0-9_] removed
func sanitizeCollectionName(name string) string {
	sanitized := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	return collectionNameInvalidChars.ReplaceAllString(sanitized, "")
}

// IsTenantCollectionName tells if a collection name belongs to the tenant collections namespace
func IsTenantCollectionName(name string) bool {
	return strings.HasPrefix(name, TenantCollectionPrefix)
}
