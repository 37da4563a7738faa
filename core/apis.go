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
	"org-building-block/core/interfaces"
	"org-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
)

// APIs exposes to the drivers adapters access to the core functionality
type APIs struct {
	Default        interfaces.Default        //expose to the drivers adapters
	Administration interfaces.Administration //expose to the drivers adapters
	System         interfaces.System         //expose to the drivers adapters

	Auth interfaces.Auth //expose to the drivers auth

	app *application
}

// AddListener adds application listener
func (c *APIs) AddListener(listener interfaces.ApplicationListener) {
	c.app.addListener(listener)
}

// GetVersion gives the service version
func (c *APIs) GetVersion() string {
	return c.app.version
}

// NewCoreAPIs creates new CoreAPIs. The emailer may be nil, then no welcome emails are sent.
func NewCoreAPIs(version string, build string, storage interfaces.Storage, auth interfaces.Auth, emailer interfaces.Emailer, logger *logs.Logger) *APIs {
	//add application instance
	listeners := []interfaces.ApplicationListener{}
	application := application{version: version, build: build, storage: storage, auth: auth, listeners: listeners, logger: logger}
	application.addListener(&eventLogger{logger: logger})
	if emailer != nil {
		application.addListener(&welcomeNotifier{emailer: emailer, logger: logger})
	}

	//add coreAPIs instance
	defaultImpl := &defaultImpl{app: &application}
	administrationImpl := &administrationImpl{app: &application}
	systemImpl := &systemImpl{app: &application}

	//+ auth
	coreAPIs := APIs{Default: defaultImpl, Administration: administrationImpl, System: systemImpl, Auth: auth, app: &application}

	return &coreAPIs
}

///

// defaultImpl
type defaultImpl struct {
	app *application
}

func (s *defaultImpl) GetVersion() string {
	return s.app.version
}

///

// administrationImpl
type administrationImpl struct {
	app *application
}

func (s *administrationImpl) AdmCreateOrganization(name string, email string, password string, l *logs.Log) (*model.Organization, error) {
	return s.app.admCreateOrganization(name, email, password, l)
}

func (s *administrationImpl) AdmGetOrganization(name string, l *logs.Log) (*model.Organization, error) {
	return s.app.admGetOrganization(name, l)
}

func (s *administrationImpl) AdmUpdateOrganization(name string, newName *string, newEmail *string, newPassword *string, callerEmail string, l *logs.Log) (*model.Organization, error) {
	return s.app.admUpdateOrganization(name, newName, newEmail, newPassword, callerEmail, l)
}

func (s *administrationImpl) AdmDeleteOrganization(name string, callerEmail string, l *logs.Log) error {
	return s.app.admDeleteOrganization(name, callerEmail, l)
}

///

// systemImpl
type systemImpl struct {
	app *application
}

func (s *systemImpl) SysGetHealth(l *logs.Log) model.Health {
	return s.app.sysGetHealth(l)
}

func (s *systemImpl) SysGetOrganizations(limit int, l *logs.Log) ([]model.Organization, error) {
	return s.app.sysGetOrganizations(limit, l)
}

func (s *systemImpl) SysCheckIntegrity(l *logs.Log) (*model.IntegrityReport, error) {
	return s.app.sysCheckIntegrity(l)
}
