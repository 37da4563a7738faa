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

	"github.com/rokwire/logging-library-go/v2/logs"
)

// Default exposes the default APIs for the driver adapters
type Default interface {
	GetVersion() string
}

// Administration exposes the organization lifecycle APIs used by organization admins
type Administration interface {
	AdmCreateOrganization(name string, email string, password string, l *logs.Log) (*model.Organization, error)
	AdmGetOrganization(name string, l *logs.Log) (*model.Organization, error)
	AdmUpdateOrganization(name string, newName *string, newEmail *string, newPassword *string, callerEmail string, l *logs.Log) (*model.Organization, error)
	AdmDeleteOrganization(name string, callerEmail string, l *logs.Log) error
}

// System exposes system APIs for the driver adapters
type System interface {
	SysGetHealth(l *logs.Log) model.Health
	SysGetOrganizations(limit int, l *logs.Log) ([]model.Organization, error)
	SysCheckIntegrity(l *logs.Log) (*model.IntegrityReport, error)
}

// ApplicationListener represents application listener
type ApplicationListener interface {
	OnOrganizationCreated(organization model.Organization)
	OnOrganizationDeleted(organizationName string)
}
