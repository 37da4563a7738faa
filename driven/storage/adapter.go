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
	stderrors "errors"
	"org-building-block/core/interfaces"
	"org-building-block/utils"
	"strconv"
	"time"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/go-playground/validator.v9"
)

const (
	//mongodb server error codes
	codeNamespaceNotFound int32 = 26
	codeNamespaceExists   int32 = 48

	typeStorageAdapter logutils.MessageDataType = "storage adapter"
)

// Adapter implements the Storage interface
type Adapter struct {
	db *database

	//set when the adapter is bound to a transaction
	context TransactionContext

	validate *validator.Validate
	logger   *logs.Logger
}

// TransactionContext wraps mongo.SessionContext for use by external packages
type TransactionContext interface {
	mongo.SessionContext
}

// NewStorageAdapter creates a new storage adapter instance
func NewStorageAdapter(mongoDBAuth string, mongoDBName string, mongoTimeout string, mongoMaxPoolSize string, logger *logs.Logger) *Adapter {
	timeout, err := strconv.Atoi(mongoTimeout)
	if err != nil {
		logger.Infof("Set default timeout - 5000")
		timeout = 5000
	}
	timeoutMS := time.Duration(timeout) * time.Millisecond

	maxPoolSize, err := strconv.ParseUint(mongoMaxPoolSize, 10, 64)
	if err != nil {
		logger.Infof("Set default max pool size - 50")
		maxPoolSize = 50
	}

	db := &database{mongoDBAuth: mongoDBAuth, mongoDBName: mongoDBName, mongoTimeout: timeoutMS, mongoMaxPoolSize: maxPoolSize, logger: logger}
	return &Adapter{db: db, validate: validator.New(), logger: logger}
}

// Start starts the storage
func (sa *Adapter) Start() error {
	err := sa.db.start()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, typeStorageAdapter, nil, err).SetStatus(storageStatus(err))
	}

	return nil
}

// Stop closes the connection to the storage
func (sa *Adapter) Stop() error {
	err := sa.db.stop()
	if err != nil {
		return errors.WrapErrorAction("stopping", typeStorageAdapter, nil, err)
	}
	return nil
}

// Ping checks the storage connection
func (sa *Adapter) Ping() error {
	if sa.db.dbClient == nil {
		return errors.ErrorData(logutils.StatusMissing, "mongodb client", nil).SetStatus(utils.ErrorStatusStoreUnavailable)
	}

	ctx, cancel := context.WithTimeout(context.Background(), sa.db.mongoTimeout)
	defer cancel()

	err := sa.db.dbClient.Ping(ctx, nil)
	if err != nil {
		return errors.WrapErrorAction("pinging", typeStorageAdapter, nil, err).SetStatus(utils.ErrorStatusStoreUnavailable)
	}
	return nil
}

// PerformTransaction performs a transaction
func (sa *Adapter) PerformTransaction(transaction func(adapter interfaces.Storage) error) error {
	//already bound to a transaction or no transactions support
	if sa.context != nil || !sa.db.transactions {
		return transaction(sa)
	}

	// transaction
	callback := func(sessionContext mongo.SessionContext) (interface{}, error) {
		adapter := &Adapter{db: sa.db, context: sessionContext, validate: sa.validate, logger: sa.logger}

		err := transaction(adapter)
		if err != nil {
			return nil, errors.WrapErrorAction("performing", logutils.TypeTransaction, nil, err).SetStatus(utils.ErrorStatus(err))
		}

		return nil, nil
	}

	session, err := sa.db.dbClient.StartSession()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionStart, "mongo session", nil, err).SetStatus(storageStatus(err))
	}
	defer session.EndSession(context.Background())

	_, err = session.WithTransaction(context.Background(), callback)
	if err != nil {
		status := utils.ErrorStatus(err)
		if status == "" {
			status = storageStatus(err)
		}
		return errors.WrapErrorAction("finishing", logutils.TypeTransaction, nil, err).SetStatus(status)
	}
	return nil
}

func (sa *Adapter) ctx() context.Context {
	if sa.context == nil {
		return context.Background()
	}
	return sa.context
}

// storageStatus maps mongodb driver errors to error statuses
func storageStatus(err error) string {
	switch {
	case mongo.IsDuplicateKeyError(err) || hasServerErrorCode(err, codeNamespaceExists):
		return utils.ErrorStatusAlreadyExists
	case hasServerErrorCode(err, codeNamespaceNotFound):
		return utils.ErrorStatusNotFound
	case mongo.IsTimeout(err) || mongo.IsNetworkError(err) || stderrors.Is(err, context.DeadlineExceeded) ||
		stderrors.Is(err, mongo.ErrClientDisconnected):
		return utils.ErrorStatusStoreUnavailable
	}
	return ""
}

func hasServerErrorCode(err error, code int32) bool {
	var serverErr mongo.ServerError
	if stderrors.As(err, &serverErr) {
		return serverErr.HasErrorCode(int(code))
	}
	return false
}
