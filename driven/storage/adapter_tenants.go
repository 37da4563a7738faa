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
	"context"
	"org-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TenantCollectionExists tells if the tenant collection exists
func (sa *Adapter) TenantCollectionExists(name string) (bool, error) {
	names, err := sa.listCollectionNames(bson.D{primitive.E{Key: "name", Value: name}})
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeTenantCollection, logutils.StringArgs(name), err).SetStatus(storageStatus(err))
	}
	return len(names) > 0, nil
}

// FindTenantCollectionNames finds the names of all tenant collections
func (sa *Adapter) FindTenantCollectionNames() ([]string, error) {
	filter := bson.D{primitive.E{Key: "name", Value: primitive.Regex{Pattern: "^" + model.TenantCollectionPrefix}}}
	names, err := sa.listCollectionNames(filter)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeTenantCollection, nil, err).SetStatus(storageStatus(err))
	}
	return names, nil
}

// CreateTenantCollection creates the tenant collection and seeds its metadata record
func (sa *Adapter) CreateTenantCollection(name string, metadata model.TenantCollectionMetadata) error {
	ctx, cancel := context.WithTimeout(sa.ctx(), sa.db.mongoTimeout)
	defer cancel()

	//fails with NamespaceExists if the collection is already there
	err := sa.db.db.CreateCollection(ctx, name)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCreate, model.TypeTenantCollection, logutils.StringArgs(name), err).SetStatus(storageStatus(err))
	}

	_, err = sa.db.db.Collection(name).InsertOne(ctx, tenantMetadataToStorage(metadata))
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeTenantCollectionMetadata, logutils.StringArgs(name), err).SetStatus(storageStatus(err))
	}

	return nil
}

// RenameTenantCollection renames the tenant collection, fails if the new name is taken
func (sa *Adapter) RenameTenantCollection(name string, newName string) error {
	ctx, cancel := context.WithTimeout(sa.ctx(), sa.db.mongoTimeout)
	defer cancel()

	dbName := sa.db.db.Name()
	command := bson.D{
		primitive.E{Key: "renameCollection", Value: dbName + "." + name},
		primitive.E{Key: "to", Value: dbName + "." + newName},
		primitive.E{Key: "dropTarget", Value: false},
	}
	err := sa.db.dbClient.Database("admin").RunCommand(ctx, command).Err()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeTenantCollection, &logutils.FieldArgs{"name": name, "new_name": newName}, err).SetStatus(storageStatus(err))
	}

	return nil
}

// DropTenantCollection drops the tenant collection, no-op if it does not exist
func (sa *Adapter) DropTenantCollection(name string) error {
	ctx, cancel := context.WithTimeout(sa.ctx(), sa.db.mongoTimeout)
	defer cancel()

	err := sa.db.db.Collection(name).Drop(ctx)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeTenantCollection, logutils.StringArgs(name), err).SetStatus(storageStatus(err))
	}

	return nil
}

func (sa *Adapter) listCollectionNames(filter interface{}) ([]string, error) {
	ctx, cancel := context.WithTimeout(sa.ctx(), sa.db.mongoTimeout)
	defer cancel()

	return sa.db.db.ListCollectionNames(ctx, filter)
}
