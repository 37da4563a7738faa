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
	"time"

	"github.com/rokwire/logging-library-go/v2/logs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

type database struct {
	mongoDBAuth      string
	mongoDBName      string
	mongoTimeout     time.Duration
	mongoMaxPoolSize uint64

	logger *logs.Logger

	db       *mongo.Database
	dbClient *mongo.Client

	//false for a standalone server, which does not support transactions
	transactions bool

	organizations *collectionWrapper
	adminUsers    *collectionWrapper
}

func (m *database) start() error {
	m.logger.Info("database -> start")

	//connect to the database
	clientOptions := options.Client().ApplyURI(m.mongoDBAuth).SetServerSelectionTimeout(m.mongoTimeout).SetConnectTimeout(m.mongoTimeout)
	if m.mongoMaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(m.mongoMaxPoolSize)
	}
	connectContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	client, err := mongo.Connect(connectContext, clientOptions)
	cancel()
	if err != nil {
		return err
	}

	//ping the database
	pingContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	err = client.Ping(pingContext, nil)
	cancel()
	if err != nil {
		return err
	}

	db := client.Database(m.mongoDBName)

	organizations := &collectionWrapper{database: m, coll: db.Collection("organizations")}
	adminUsers := &collectionWrapper{database: m, coll: db.Collection("admin_users")}

	//apply checks
	var group errgroup.Group
	group.Go(func() error { return m.applyOrganizationsChecks(organizations) })
	group.Go(func() error { return m.applyAdminUsersChecks(adminUsers) })
	err = group.Wait()
	if err != nil {
		return err
	}

	transactions, err := m.supportsTransactions(db)
	if err != nil {
		return err
	}
	if !transactions {
		m.logger.Warn("standalone mongodb deployment - multi document transactions are not available")
	}

	//asign the db, db client and the collections
	m.db = db
	m.dbClient = client
	m.transactions = transactions
	m.organizations = organizations
	m.adminUsers = adminUsers

	return nil
}

func (m *database) stop() error {
	if m.dbClient == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	defer cancel()

	return m.dbClient.Disconnect(ctx)
}

func (m *database) applyOrganizationsChecks(organizations *collectionWrapper) error {
	m.logger.Info("apply organizations checks.....")

	//add organization_name index - unique
	err := organizations.AddIndex(bson.D{primitive.E{Key: "organization_name", Value: 1}}, true)
	if err != nil {
		return err
	}

	//add admin_email index - unique
	err = organizations.AddIndex(bson.D{primitive.E{Key: "admin_email", Value: 1}}, true)
	if err != nil {
		return err
	}

	//add collection_name index - unique
	err = organizations.AddIndex(bson.D{primitive.E{Key: "collection_name", Value: 1}}, true)
	if err != nil {
		return err
	}

	//add admin_user_id index - unique
	err = organizations.AddIndex(bson.D{primitive.E{Key: "admin_user_id", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("organizations checks passed")
	return nil
}

func (m *database) applyAdminUsersChecks(adminUsers *collectionWrapper) error {
	m.logger.Info("apply admin users checks.....")

	//add email index - unique
	err := adminUsers.AddIndex(bson.D{primitive.E{Key: "email", Value: 1}}, true)
	if err != nil {
		return err
	}

	//add organization_name index
	err = adminUsers.AddIndex(bson.D{primitive.E{Key: "organization_name", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("admin users checks passed")
	return nil
}

// replica set members report setName, mongos reports msg "isdbgrid"
func (m *database) supportsTransactions(db *mongo.Database) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	defer cancel()

	var hello bson.M
	err := db.RunCommand(ctx, bson.D{primitive.E{Key: "hello", Value: 1}}).Decode(&hello)
	if err != nil {
		return false, err
	}

	if setName, ok := hello["setName"].(string); ok && len(setName) > 0 {
		return true, nil
	}
	if msg, ok := hello["msg"].(string); ok && msg == "isdbgrid" {
		return true, nil
	}
	return false, nil
}
