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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindOrganization finds an organization by name, nil if it does not exist
func (sa *Adapter) FindOrganization(name string) (*model.Organization, error) {
	filter := bson.D{primitive.E{Key: "organization_name", Value: name}}
	var result []organization
	err := sa.db.organizations.FindWithContext(sa.ctx(), filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"organization_name": name}, err).SetStatus(storageStatus(err))
	}
	if len(result) == 0 {
		//not found
		return nil, nil
	}

	organization := organizationFromStorage(&result[0])
	return &organization, nil
}

// FindOrganizations finds the oldest organizations first, up to limit
func (sa *Adapter) FindOrganizations(limit int) ([]model.Organization, error) {
	findOptions := options.Find().SetSort(bson.D{primitive.E{Key: "created_at", Value: 1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	var result []organization
	err := sa.db.organizations.FindWithContext(sa.ctx(), nil, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err).SetStatus(storageStatus(err))
	}

	return organizationsFromStorage(result), nil
}

// InsertOrganization inserts an organization
func (sa *Adapter) InsertOrganization(organization model.Organization) error {
	storageOrganization := organizationToStorage(organization)
	err := sa.validate.Struct(storageOrganization)
	if err != nil {
		return errors.WrapErrorData(logutils.StatusInvalid, model.TypeOrganization, nil, err).SetStatus(utils.ErrorStatusValidation)
	}

	_, err = sa.db.organizations.InsertOneWithContext(sa.ctx(), storageOrganization)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, &logutils.FieldArgs{"organization_name": organization.Name}, err).SetStatus(storageStatus(err))
	}

	return nil
}

// UpdateOrganization applies the staged changes to the organization with the given name
func (sa *Adapter) UpdateOrganization(name string, update model.OrganizationUpdate) error {
	set := bson.D{primitive.E{Key: "updated_at", Value: update.DateUpdated}}
	if update.Name != nil {
		set = append(set, primitive.E{Key: "organization_name", Value: *update.Name})
	}
	if update.CollectionName != nil {
		set = append(set, primitive.E{Key: "collection_name", Value: *update.CollectionName})
	}
	if update.AdminEmail != nil {
		set = append(set, primitive.E{Key: "admin_email", Value: *update.AdminEmail})
	}

	filter := bson.D{primitive.E{Key: "organization_name", Value: name}}
	updateDoc := bson.D{primitive.E{Key: "$set", Value: set}}

	res, err := sa.db.organizations.UpdateOneWithContext(sa.ctx(), filter, updateDoc, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"organization_name": name}, err).SetStatus(storageStatus(err))
	}
	if res.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"organization_name": name}).SetStatus(utils.ErrorStatusNotFound)
	}

	return nil
}

// DeleteOrganization deletes an organization, no-op if it does not exist
func (sa *Adapter) DeleteOrganization(name string) error {
	filter := bson.D{primitive.E{Key: "organization_name", Value: name}}
	_, err := sa.db.organizations.DeleteOneWithContext(sa.ctx(), filter, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeOrganization, &logutils.FieldArgs{"organization_name": name}, err).SetStatus(storageStatus(err))
	}

	return nil
}
