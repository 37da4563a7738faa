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
	"org-building-block/core/validation"
	"org-building-block/utils"
	"time"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	messageOrganizationExists   string = "Organization name already exists"
	messageEmailExists          string = "Admin email already registered"
	messageCollectionExists     string = "Organization collection already exists"
	messageOrganizationNotFound string = "Organization not found"
	messageNotOrganizationAdmin string = "Admin does not own this organization"
)

func (app *application) admCreateOrganization(name string, email string, password string, l *logs.Log) (*model.Organization, error) {
	//1. validate and sanitize, the password is hashed as given
	fields := validation.Fields{validation.FieldOrganizationName: name, validation.FieldEmail: email, validation.FieldPassword: password}
	if valid, reason := validation.ValidateCreateInput(fields); !valid {
		return nil, errors.New(reason).SetStatus(utils.ErrorStatusValidation)
	}
	sanitized := validation.SanitizeInput(validation.Fields{validation.FieldOrganizationName: name, validation.FieldEmail: email})
	name, _ = sanitized[validation.FieldOrganizationName].(string)
	email, _ = sanitized[validation.FieldEmail].(string)

	//2. organization name
	existingOrg, err := app.storage.FindOrganization(name)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, logutils.StringArgs(name), err).SetStatus(utils.ErrorStatus(err))
	}
	if existingOrg != nil {
		return nil, errors.New(messageOrganizationExists).SetStatus(utils.ErrorStatusAlreadyExists)
	}

	//3. admin email
	existingCredential, err := app.storage.FindCredentialByEmail(email)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAdminCredential, nil, err).SetStatus(utils.ErrorStatus(err))
	}
	if existingCredential != nil {
		return nil, errors.New(messageEmailExists).SetStatus(utils.ErrorStatusAlreadyExists)
	}

	//4. collection name
	collectionName := model.CollectionNameForOrganization(name)
	collectionExists, err := app.storage.TenantCollectionExists(collectionName)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeTenantCollection, logutils.StringArgs(collectionName), err).SetStatus(utils.ErrorStatus(err))
	}
	if collectionExists {
		return nil, errors.New(messageCollectionExists).SetStatus(utils.ErrorStatusAlreadyExists)
	}

	passwordHash, err := app.auth.HashPassword(password)
	if err != nil {
		return nil, passwordError(err)
	}

	now := time.Now().UTC()
	credential := model.AdminCredential{ID: uuid.NewString(), Email: email, PasswordHash: passwordHash,
		OrganizationName: name, Active: true, DateCreated: now, DateUpdated: now}
	organization := model.Organization{ID: uuid.NewString(), Name: name, CollectionName: collectionName,
		AdminEmail: email, AdminUserID: credential.ID, DateCreated: now, DateUpdated: now}

	//5-6. credential first, then the organization referencing it
	err = app.storage.PerformTransaction(func(storage interfaces.Storage) error {
		err := storage.InsertCredential(credential)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionInsert, model.TypeAdminCredential, nil, err).SetStatus(utils.ErrorStatus(err))
		}
		err = storage.InsertOrganization(organization)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, nil, err).SetStatus(utils.ErrorStatus(err))
		}
		return nil
	})
	if err != nil {
		//without transactions the credential may be left behind
		if compErr := app.storage.DeleteCredential(credential.ID); compErr != nil {
			return nil, app.integrityViolation("create organization: credential cleanup failed", logutils.Fields{"organization_name": name, "credential_id": credential.ID}, compErr, l)
		}
		return nil, app.publicStoreError(err, logutils.ActionInsert, model.TypeOrganization, l)
	}

	//7. tenant collection with its metadata record
	metadata := model.TenantCollectionMetadata{ID: uuid.NewString(), OrgID: organization.ID, SchemaVersion: model.TenantSchemaVersion, DateCreated: now}
	err = app.storage.CreateTenantCollection(collectionName, metadata)
	if err != nil {
		ownCollection := collectionName
		if utils.ErrorStatus(err) == utils.ErrorStatusAlreadyExists {
			//created by someone else meanwhile, not ours to drop
			ownCollection = ""
		}
		compErr := app.removeOrganizationRecords(ownCollection, organization.Name, credential.ID)
		if compErr != nil {
			return nil, app.integrityViolation("create organization: tenant collection cleanup failed", logutils.Fields{"organization_name": name, "collection_name": collectionName}, compErr, l)
		}
		return nil, app.publicStoreError(err, logutils.ActionCreate, model.TypeTenantCollection, l)
	}

	app.notifyOrganizationCreated(organization)

	//8. the assembled view
	return &organization, nil
}

func (app *application) admGetOrganization(name string, l *logs.Log) (*model.Organization, error) {
	organization, err := app.findOrganization(name)
	if err != nil {
		return nil, err
	}

	err = app.checkOrganizationIntegrity(*organization, nil, l)
	if err != nil {
		return nil, err
	}

	return organization, nil
}

func (app *application) admUpdateOrganization(name string, newName *string, newEmail *string, newPassword *string, callerEmail string, l *logs.Log) (*model.Organization, error) {
	newName, newEmail, newPassword = emptyToNil(newName), emptyToNil(newEmail), emptyToNil(newPassword)

	fields := validation.Fields{validation.FieldOrganizationName: name}
	if newName != nil {
		fields[validation.FieldNewOrganizationName] = *newName
	}
	if newEmail != nil {
		fields[validation.FieldEmail] = *newEmail
	}
	if newPassword != nil {
		fields[validation.FieldPassword] = *newPassword
	}
	if valid, reason := validation.ValidateUpdateInput(fields); !valid {
		return nil, errors.New(reason).SetStatus(utils.ErrorStatusValidation)
	}
	sanitized := validation.SanitizeInput(fields)
	if newName != nil {
		value, _ := sanitized[validation.FieldNewOrganizationName].(string)
		newName = &value
	}
	if newEmail != nil {
		value, _ := sanitized[validation.FieldEmail].(string)
		newEmail = &value
	}

	//1. lookup
	organization, err := app.findOrganization(name)
	if err != nil {
		return nil, err
	}

	//2. authorization
	if organization.AdminEmail != callerEmail {
		return nil, errors.New(messageNotOrganizationAdmin).SetStatus(utils.ErrorStatusUnauthorized)
	}

	//reconciliation, do not mutate drifted records
	credential := &model.AdminCredential{}
	err = app.checkOrganizationIntegrity(*organization, credential, l)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	orgUpdate := model.OrganizationUpdate{DateUpdated: now}
	credUpdate := model.CredentialUpdate{DateUpdated: now}

	//3. name, all uniqueness checks happen before any change
	if newName != nil && *newName != organization.Name {
		existing, err := app.storage.FindOrganization(*newName)
		if err != nil {
			return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganizationName, logutils.StringArgs(*newName), err).SetStatus(utils.ErrorStatus(err))
		}
		if existing != nil {
			return nil, errors.New(messageOrganizationExists).SetStatus(utils.ErrorStatusAlreadyExists)
		}

		newCollectionName := model.CollectionNameForOrganization(*newName)
		if newCollectionName != organization.CollectionName {
			exists, err := app.storage.TenantCollectionExists(newCollectionName)
			if err != nil {
				return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeTenantCollection, logutils.StringArgs(newCollectionName), err).SetStatus(utils.ErrorStatus(err))
			}
			if exists {
				return nil, errors.New(messageCollectionExists).SetStatus(utils.ErrorStatusAlreadyExists)
			}
			orgUpdate.CollectionName = &newCollectionName
		}
		orgUpdate.Name = newName
		credUpdate.OrganizationName = newName
	}

	//4. email
	if newEmail != nil && *newEmail != organization.AdminEmail {
		existing, err := app.storage.FindCredentialByEmail(*newEmail)
		if err != nil {
			return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAdminCredential, nil, err).SetStatus(utils.ErrorStatus(err))
		}
		if existing != nil && existing.ID != credential.ID {
			return nil, errors.New(messageEmailExists).SetStatus(utils.ErrorStatusAlreadyExists)
		}
		orgUpdate.AdminEmail = newEmail
		credUpdate.Email = newEmail
	}

	//5. password
	if newPassword != nil {
		passwordHash, err := app.auth.HashPassword(*newPassword)
		if err != nil {
			return nil, passwordError(err)
		}
		credUpdate.PasswordHash = &passwordHash
	}

	if orgUpdate.IsEmpty() && credUpdate.IsEmpty() {
		return organization, nil
	}

	//rename the tenant collection first
	if orgUpdate.CollectionName != nil {
		err = app.storage.RenameTenantCollection(organization.CollectionName, *orgUpdate.CollectionName)
		if err != nil {
			return nil, app.publicStoreError(err, logutils.ActionUpdate, model.TypeTenantCollection, l)
		}
	}

	//6. credential and organization together
	err = app.storage.PerformTransaction(func(storage interfaces.Storage) error {
		if !credUpdate.IsEmpty() {
			err := storage.UpdateCredential(credential.ID, credUpdate)
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeAdminCredential, nil, err).SetStatus(utils.ErrorStatus(err))
			}
		}
		if !orgUpdate.IsEmpty() {
			err := storage.UpdateOrganization(organization.Name, orgUpdate)
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganizationUpdate, nil, err).SetStatus(utils.ErrorStatus(err))
			}
		}
		return nil
	})
	if err != nil {
		compErr := app.revertOrganizationUpdate(*organization, *credential, orgUpdate, credUpdate)
		if compErr != nil {
			return nil, app.integrityViolation("update organization: revert failed", logutils.Fields{"organization_name": organization.Name, "credential_id": credential.ID}, compErr, l)
		}
		return nil, app.publicStoreError(err, logutils.ActionUpdate, model.TypeOrganizationUpdate, l)
	}

	updated := *organization
	if orgUpdate.Name != nil {
		updated.Name = *orgUpdate.Name
	}
	if orgUpdate.CollectionName != nil {
		updated.CollectionName = *orgUpdate.CollectionName
	}
	if orgUpdate.AdminEmail != nil {
		updated.AdminEmail = *orgUpdate.AdminEmail
	}
	updated.DateUpdated = now

	l.Infof("updated organization %s", updated.Name)
	return &updated, nil
}

func (app *application) admDeleteOrganization(name string, callerEmail string, l *logs.Log) error {
	//1. lookup
	organization, err := app.findOrganization(name)
	if err != nil {
		return err
	}

	//2. authorization
	if organization.AdminEmail != callerEmail {
		return errors.New(messageNotOrganizationAdmin).SetStatus(utils.ErrorStatusUnauthorized)
	}

	//3-5. the organization record goes last
	err = app.removeOrganizationRecords(organization.CollectionName, organization.Name, organization.AdminUserID)
	if err != nil {
		return app.publicStoreError(err, logutils.ActionDelete, model.TypeOrganization, l)
	}

	app.notifyOrganizationDeleted(organization.Name)
	return nil
}

///

func (app *application) findOrganization(name string) (*model.Organization, error) {
	organization, err := app.storage.FindOrganization(name)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, logutils.StringArgs(name), err).SetStatus(utils.ErrorStatus(err))
	}
	if organization == nil {
		return nil, errors.New(messageOrganizationNotFound).SetStatus(utils.ErrorStatusNotFound)
	}
	return organization, nil
}

// checkOrganizationIntegrity verifies the organization credential and tenant collection. The
// credential is copied into found when it is not nil.
func (app *application) checkOrganizationIntegrity(organization model.Organization, found *model.AdminCredential, l *logs.Log) error {
	credential, err := app.storage.FindCredentialByID(organization.AdminUserID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeAdminCredential, nil, err).SetStatus(utils.ErrorStatus(err))
	}
	details := logutils.Fields{"organization_name": organization.Name, "credential_id": organization.AdminUserID, "collection_name": organization.CollectionName}
	if credential == nil {
		return app.integrityViolation("organization without its admin credential", details, nil, l)
	}
	if credential.OrganizationName != organization.Name || credential.Email != organization.AdminEmail {
		return app.integrityViolation("admin credential does not match its organization", details, nil, l)
	}

	exists, err := app.storage.TenantCollectionExists(organization.CollectionName)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeTenantCollection, nil, err).SetStatus(utils.ErrorStatus(err))
	}
	if !exists {
		return app.integrityViolation("organization without its tenant collection", details, nil, l)
	}

	if found != nil {
		*found = *credential
	}
	return nil
}

// removeOrganizationRecords drops the collection, then deletes the credential and the organization.
// Every step is a no-op for absent records. An empty collection name skips the drop.
func (app *application) removeOrganizationRecords(collectionName string, organizationName string, credentialID string) error {
	if len(collectionName) > 0 {
		err := app.storage.DropTenantCollection(collectionName)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeTenantCollection, logutils.StringArgs(collectionName), err).SetStatus(utils.ErrorStatus(err))
		}
	}
	err := app.storage.DeleteCredential(credentialID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeAdminCredential, nil, err).SetStatus(utils.ErrorStatus(err))
	}
	err = app.storage.DeleteOrganization(organizationName)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeOrganization, logutils.StringArgs(organizationName), err).SetStatus(utils.ErrorStatus(err))
	}
	return nil
}

// revertOrganizationUpdate restores the credential, the organization and the collection name
// after a failed update. Without transactions any of them may have been changed.
func (app *application) revertOrganizationUpdate(organization model.Organization, credential model.AdminCredential,
	orgUpdate model.OrganizationUpdate, credUpdate model.CredentialUpdate) error {
	now := time.Now().UTC()

	//the organization is found under its new name when its update went through
	current, err := app.storage.FindOrganization(organization.Name)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}
	if current == nil && orgUpdate.Name != nil {
		restore := model.OrganizationUpdate{Name: &organization.Name, CollectionName: &organization.CollectionName, AdminEmail: &organization.AdminEmail, DateUpdated: now}
		err = app.storage.UpdateOrganization(*orgUpdate.Name, restore)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, nil, err)
		}
	} else if current != nil && current.AdminEmail != organization.AdminEmail {
		restore := model.OrganizationUpdate{AdminEmail: &organization.AdminEmail, DateUpdated: now}
		err = app.storage.UpdateOrganization(organization.Name, restore)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, nil, err)
		}
	}

	if !credUpdate.IsEmpty() {
		restore := model.CredentialUpdate{Email: &credential.Email, PasswordHash: &credential.PasswordHash,
			OrganizationName: &credential.OrganizationName, DateUpdated: credential.DateUpdated}
		err = app.storage.UpdateCredential(credential.ID, restore)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeAdminCredential, nil, err)
		}
	}

	if orgUpdate.CollectionName != nil {
		err = app.storage.RenameTenantCollection(*orgUpdate.CollectionName, organization.CollectionName)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeTenantCollection, nil, err)
		}
	}
	return nil
}

// integrityViolation logs a broken cross-entity invariant and gives the error returned to the caller
func (app *application) integrityViolation(message string, details logutils.Fields, err error, l *logs.Log) error {
	if err != nil {
		details["error"] = err.Error()
	}
	l.ErrorWithDetails("integrity violation: "+message, details)
	return errors.New(message).SetStatus(utils.ErrorStatusIntegrityViolation)
}

// publicStoreError logs a failed store mutation and gives the error returned to the caller
func (app *application) publicStoreError(err error, action logutils.MessageActionType, dataType logutils.MessageDataType, l *logs.Log) error {
	status := utils.ErrorStatus(err)
	l.WarnError("lifecycle step failed", err)
	if status == utils.ErrorStatusAlreadyExists {
		//lost a race with a concurrent operation on the same name, email or collection
		return errors.New("Organization already exists").SetStatus(status)
	}
	return errors.WrapErrorAction(action, dataType, nil, err).SetStatus(status)
}

// passwordError keeps validation errors as they are, they are shown to the caller
func passwordError(err error) error {
	if utils.ErrorStatus(err) == utils.ErrorStatusValidation {
		return err
	}
	return errors.WrapErrorAction(logutils.ActionGenerate, model.TypePassword, nil, err)
}

func emptyToNil(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}
