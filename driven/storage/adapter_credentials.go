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
	"org-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FindCredentialByEmail finds an admin credential by email, nil if it does not exist
func (sa *Adapter) FindCredentialByEmail(email string) (*model.AdminCredential, error) {
	return sa.findCredential("email", email)
}

// FindCredentialByID finds an admin credential by id, nil if it does not exist
func (sa *Adapter) FindCredentialByID(id string) (*model.AdminCredential, error) {
	return sa.findCredential("_id", id)
}

func (sa *Adapter) findCredential(key string, value string) (*model.AdminCredential, error) {
	filter := bson.D{primitive.E{Key: key, Value: value}}
	var result []adminUser
	err := sa.db.adminUsers.FindWithContext(sa.ctx(), filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAdminCredential, &logutils.FieldArgs{key: value}, err).SetStatus(storageStatus(err))
	}
	if len(result) == 0 {
		//not found
		return nil, nil
	}

	credential := credentialFromStorage(&result[0])
	return &credential, nil
}

// FindCredentials finds all admin credentials
func (sa *Adapter) FindCredentials() ([]model.AdminCredential, error) {
	var result []adminUser
	err := sa.db.adminUsers.FindWithContext(sa.ctx(), nil, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAdminCredential, nil, err).SetStatus(storageStatus(err))
	}

	return credentialsFromStorage(result), nil
}

// InsertCredential inserts an admin credential
func (sa *Adapter) InsertCredential(credential model.AdminCredential) error {
	storageCredential := credentialToStorage(credential)
	err := sa.validate.Struct(storageCredential)
	if err != nil {
		return errors.WrapErrorData(logutils.StatusInvalid, model.TypeAdminCredential, nil, err).SetStatus(utils.ErrorStatusValidation)
	}

	_, err = sa.db.adminUsers.InsertOneWithContext(sa.ctx(), storageCredential)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeAdminCredential, &logutils.FieldArgs{"email": credential.Email}, err).SetStatus(storageStatus(err))
	}

	return nil
}

// UpdateCredential applies the changes to the admin credential with the given id
func (sa *Adapter) UpdateCredential(id string, update model.CredentialUpdate) error {
	set := bson.D{primitive.E{Key: "updated_at", Value: update.DateUpdated}}
	if update.Email != nil {
		set = append(set, primitive.E{Key: "email", Value: *update.Email})
	}
	if update.PasswordHash != nil {
		set = append(set, primitive.E{Key: "password_hash", Value: *update.PasswordHash})
	}
	if update.OrganizationName != nil {
		set = append(set, primitive.E{Key: "organization_name", Value: *update.OrganizationName})
	}

	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	updateDoc := bson.D{primitive.E{Key: "$set", Value: set}}

	res, err := sa.db.adminUsers.UpdateOneWithContext(sa.ctx(), filter, updateDoc, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeAdminCredential, &logutils.FieldArgs{"id": id}, err).SetStatus(storageStatus(err))
	}
	if res.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeAdminCredential, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}

	return nil
}

// DeleteCredential deletes an admin credential, no-op if it does not exist
func (sa *Adapter) DeleteCredential(id string) error {
	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	_, err := sa.db.adminUsers.DeleteOneWithContext(sa.ctx(), filter, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeAdminCredential, &logutils.FieldArgs{"id": id}, err).SetStatus(storageStatus(err))
	}

	return nil
}
