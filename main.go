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

package main

import (
	"context"
	"org-building-block/core"
	"org-building-block/core/auth"
	"org-building-block/core/interfaces"
	"org-building-block/driven/emailer"
	"org-building-block/driven/storage"
	"org-building-block/driver/web"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rokwire/core-auth-library-go/v3/envloader"
	"github.com/rokwire/logging-library-go/v2/logs"
)

var (
	// Version : version of this executable
	Version string
	// Build : build date of this executable
	Build string
)

const (
	defaultPort               = "8000"
	defaultHost               = "http://localhost:8000"
	defaultMongoDatabase      = "organization_master"
	defaultTokenExpireMinutes = 30
	defaultBcryptCost         = 12

	shutdownTimeout = 15 * time.Second
)

func main() {
	if len(Version) == 0 {
		Version = "dev"
	}

	serviceID := "orgs"

	loggerOpts := logs.LoggerOpts{SuppressRequests: logs.NewStandardHealthCheckHTTPRequestProperties("/health")}
	logger := logs.NewLogger(serviceID, &loggerOpts)
	envLoader := envloader.NewEnvLoader(Version, logger)

	level := envLoader.GetAndLogEnvVar("ORGS_LOG_LEVEL", false, false)
	logLevel := logs.LogLevelFromString(level)
	if logLevel != nil {
		logger.SetLevel(*logLevel)
	}

	port := envLoader.GetAndLogEnvVar("ORGS_PORT", false, false)
	//Default port of 8000
	if port == "" {
		port = defaultPort
	}
	host := envLoader.GetAndLogEnvVar("ORGS_HOST", false, false)
	if host == "" {
		host = defaultHost
	}

	// mongoDB adapter
	mongoDBAuth := envLoader.GetAndLogEnvVar("ORGS_MONGO_AUTH", true, true)
	mongoDBName := envLoader.GetAndLogEnvVar("ORGS_MONGO_DATABASE", false, false)
	if mongoDBName == "" {
		mongoDBName = defaultMongoDatabase
	}
	mongoTimeout := envLoader.GetAndLogEnvVar("ORGS_MONGO_TIMEOUT", false, false)
	mongoMaxPoolSize := envLoader.GetAndLogEnvVar("ORGS_MONGO_MAX_POOL_SIZE", false, false)
	storageAdapter := storage.NewStorageAdapter(mongoDBAuth, mongoDBName, mongoTimeout, mongoMaxPoolSize, logger)
	err := storageAdapter.Start()
	if err != nil {
		logger.Fatalf("Cannot start the mongoDB adapter: %v", err)
	}

	//auth
	jwtSecret := envLoader.GetAndLogEnvVar("ORGS_JWT_SECRET_KEY", true, true)
	tokenExpMinutesStr := envLoader.GetAndLogEnvVar("ORGS_ACCESS_TOKEN_EXPIRE_MINUTES", false, false)
	tokenExpMinutes := intOrDefault(tokenExpMinutesStr, defaultTokenExpireMinutes, "ORGS_ACCESS_TOKEN_EXPIRE_MINUTES", logger)
	bcryptCostStr := envLoader.GetAndLogEnvVar("ORGS_BCRYPT_COST", false, false)
	bcryptCost := intOrDefault(bcryptCostStr, defaultBcryptCost, "ORGS_BCRYPT_COST", logger)
	authImpl, err := auth.NewAuth(host, jwtSecret, tokenExpMinutes, bcryptCost, storageAdapter, logger)
	if err != nil {
		logger.Fatalf("Error initializing auth: %v", err)
	}

	//emailer, welcome emails are sent only when smtp is configured
	var emailerAdapter interfaces.Emailer
	smtpHost := envLoader.GetAndLogEnvVar("ORGS_SMTP_HOST", false, false)
	if smtpHost != "" {
		smtpPort := envLoader.GetAndLogEnvVar("ORGS_SMTP_PORT", false, false)
		smtpUser := envLoader.GetAndLogEnvVar("ORGS_SMTP_USER", false, true)
		smtpPassword := envLoader.GetAndLogEnvVar("ORGS_SMTP_PASSWORD", false, true)
		smtpFrom := envLoader.GetAndLogEnvVar("ORGS_SMTP_EMAIL_FROM", false, false)
		smtpPortNum, _ := strconv.Atoi(smtpPort)
		emailerAdapter = emailer.NewEmailerAdapter(smtpHost, smtpPortNum, smtpUser, smtpPassword, smtpFrom)
	}

	//core
	coreAPIs := core.NewCoreAPIs(Version, Build, storageAdapter, authImpl, emailerAdapter, logger)

	//web adapter
	systemAPIKey := envLoader.GetAndLogEnvVar("ORGS_SYSTEM_API_KEY", false, true)
	corsAllowedOrigins := splitList(envLoader.GetAndLogEnvVar("ORGS_CORS_ALLOWED_ORIGINS", false, false))
	webAdapter, err := web.NewWebAdapter(host, port, corsAllowedOrigins, systemAPIKey, coreAPIs, logger)
	if err != nil {
		logger.Fatalf("Error initializing web adapter: %v", err)
	}

	go func() {
		err := webAdapter.Start()
		if err != nil {
			logger.Fatalf("Error starting web adapter: %v", err)
		}
	}()

	//graceful shutdown, the web adapter first so no request uses a closed store
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = webAdapter.Shutdown(ctx)
	if err != nil {
		logger.Errorf("Error shutting down web adapter: %v", err)
	}
	err = storageAdapter.Stop()
	if err != nil {
		logger.Errorf("Error stopping the mongoDB adapter: %v", err)
	}
}

func intOrDefault(valueStr string, defaultValue int, name string, logger *logs.Logger) int {
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logger.Infof("Error parsing %s, applying defaults: %v", name, err)
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
