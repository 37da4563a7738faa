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
	"fmt"
	"org-building-block/core/interfaces"
	"org-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
)

// application represents the core application code based on hexagonal architecture
type application struct {
	version string
	build   string

	storage interfaces.Storage
	auth    interfaces.Auth

	listeners []interfaces.ApplicationListener

	logger *logs.Logger
}

// addListener adds application listener
func (app *application) addListener(listener interfaces.ApplicationListener) {
	app.listeners = append(app.listeners, listener)
}

// listeners never block the operation and never change its outcome
func (app *application) notifyOrganizationCreated(organization model.Organization) {
	for _, listener := range app.listeners {
		go listener.OnOrganizationCreated(organization)
	}
}

func (app *application) notifyOrganizationDeleted(organizationName string) {
	for _, listener := range app.listeners {
		go listener.OnOrganizationDeleted(organizationName)
	}
}

// welcomeNotifier emails the admin of a new organization
type welcomeNotifier struct {
	emailer interfaces.Emailer
	logger  *logs.Logger
}

func (n *welcomeNotifier) OnOrganizationCreated(organization model.Organization) {
	subject := "Your organization is ready"
	body := fmt.Sprintf("Organization \"%s\" was created. Sign in with %s to manage it.", organization.Name, organization.AdminEmail)
	err := n.emailer.Send(organization.AdminEmail, subject, body, nil)
	if err != nil {
		n.logger.Warnf("error sending welcome email for organization %s: %s", organization.Name, err.Error())
	}
}

func (n *welcomeNotifier) OnOrganizationDeleted(organizationName string) {}

// eventLogger logs the lifecycle events
type eventLogger struct {
	logger *logs.Logger
}

func (e *eventLogger) OnOrganizationCreated(organization model.Organization) {
	e.logger.Infof("created organization %s with collection %s", organization.Name, organization.CollectionName)
}

func (e *eventLogger) OnOrganizationDeleted(organizationName string) {
	e.logger.Infof("deleted organization %s and all associated data", organizationName)
}
