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

package web

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"org-building-block/core"
	"org-building-block/core/model"
	"org-building-block/driver/web/docs"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	typeOpenAPIDoc   logutils.MessageDataType = "openapi doc"
	typeOpenAPIRoute logutils.MessageDataType = "openapi route"
	typeWebServer    logutils.MessageDataType = "web server"
)

// Adapter entity
type Adapter struct {
	host               string
	port               string
	corsAllowedOrigins []string

	auth    *Auth
	metrics *metrics

	openAPIRouter routers.Router
	server        *http.Server

	defaultApisHandler DefaultApisHandler
	adminApisHandler   AdminApisHandler
	authApisHandler    AuthApisHandler
	systemApisHandler  SystemApisHandler

	coreAPIs *core.APIs
	logger   *logs.Logger
}

type handlerFunc = func(*logs.Log, *http.Request, *model.AdminContext) logs.HTTPResponse

// Start starts the module. It blocks until the server is shut down.
func (we *Adapter) Start() error {
	we.logger.Infof("web adapter listening on port %s", we.port)

	err := we.server.ListenAndServe()
	if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return errors.WrapErrorAction(logutils.ActionStart, typeWebServer, nil, err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for the active ones to complete
func (we *Adapter) Shutdown(ctx context.Context) error {
	err := we.server.Shutdown(ctx)
	if err != nil {
		return errors.WrapErrorAction("shutting down", typeWebServer, nil, err)
	}
	return nil
}

// Handler gives the HTTP handler serving all the routes
func (we *Adapter) Handler() http.Handler {
	return we.server.Handler
}

func (we *Adapter) routes() http.Handler {
	router := mux.NewRouter().StrictSlash(true)

	///default ///
	router.HandleFunc("/", we.wrapFunc(we.defaultApisHandler.getRoot, nil)).Methods("GET")
	router.HandleFunc("/version", we.wrapFunc(we.defaultApisHandler.getVersion, nil)).Methods("GET")
	router.HandleFunc("/health", we.wrapFunc(we.defaultApisHandler.getHealth, nil)).Methods("GET")
	router.PathPrefix("/doc/ui").Handler(we.serveDocUI())
	router.HandleFunc("/doc", we.serveDoc).Methods("GET")
	router.Handle("/metrics", we.metrics.handler()).Methods("GET")
	///

	///organizations ///
	orgSubRouter := router.PathPrefix("/org").Subrouter()
	orgSubRouter.HandleFunc("/create", we.wrapFunc(we.adminApisHandler.createOrganization, nil)).Methods("POST")
	orgSubRouter.HandleFunc("/get", we.wrapFunc(we.adminApisHandler.getOrganization, we.auth.adminAuth)).Methods("GET")
	orgSubRouter.HandleFunc("/update", we.wrapFunc(we.adminApisHandler.updateOrganization, we.auth.adminAuth)).Methods("PUT")
	orgSubRouter.HandleFunc("/delete", we.wrapFunc(we.adminApisHandler.deleteOrganization, we.auth.adminAuth)).Methods("DELETE")
	///

	///admin auth ///
	adminSubRouter := router.PathPrefix("/admin").Subrouter()
	adminSubRouter.HandleFunc("/login", we.wrapFunc(we.authApisHandler.login, nil)).Methods("POST")
	adminSubRouter.HandleFunc("/verify", we.wrapFunc(we.authApisHandler.verify, we.auth.adminAuth)).Methods("GET")
	///

	///system ///
	systemSubRouter := router.PathPrefix("/system").Subrouter()
	systemSubRouter.HandleFunc("/organizations", we.wrapFunc(we.systemApisHandler.getOrganizations, we.auth.systemAuth)).Methods("GET")
	systemSubRouter.HandleFunc("/integrity", we.wrapFunc(we.systemApisHandler.getIntegrity, we.auth.systemAuth)).Methods("GET")
	///

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: we.corsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Api-Key"},
	})
	return corsHandler.Handler(router)
}

func (we *Adapter) serveDoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(docs.OpenAPI)
}

func (we *Adapter) serveDocUI() http.Handler {
	url := fmt.Sprintf("%s/doc", we.host)
	return httpSwagger.Handler(httpSwagger.URL(url))
}

func (we *Adapter) wrapFunc(handler handlerFunc, authorization Authorization) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		started := time.Now()
		logObj := we.logger.NewRequestLog(req)
		logObj.RequestReceived()

		response := we.process(logObj, req, handler, authorization)

		logObj.SendHTTPResponse(w, response)
		we.metrics.observeRequest(req, response.ResponseCode, time.Since(started))
		logObj.RequestComplete()
	}
}

func (we *Adapter) process(l *logs.Log, req *http.Request, handler handlerFunc, authorization Authorization) logs.HTTPResponse {
	//1. validate request
	err := we.validateRequest(req)
	if err != nil {
		l.WarnError("request does not match the api doc", err)
		return detailResponse(http.StatusBadRequest, "Invalid request", nil)
	}

	//2. authorization
	var adminContext *model.AdminContext
	if authorization != nil {
		adminContext, err = authorization.check(req, l)
		if err != nil {
			return errorResponse(l, err)
		}
	}

	//3. process it
	return handler(l, req, adminContext)
}

func (we *Adapter) validateRequest(req *http.Request) error {
	route, pathParams, err := we.openAPIRouter.FindRoute(req)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, typeOpenAPIRoute, nil, err)
	}

	requestValidationInput := &openapi3filter.RequestValidationInput{
		Request:    req,
		PathParams: pathParams,
		Route:      route,
		Options: &openapi3filter.Options{
			//the security schemes are checked by the adapter auth
			AuthenticationFunc: func(ctx context.Context, input *openapi3filter.AuthenticationInput) error { return nil },
		},
	}
	err = openapi3filter.ValidateRequest(req.Context(), requestValidationInput)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionValidate, logutils.TypeRequest, nil, err)
	}
	return nil
}

// NewWebAdapter creates new WebAdapter instance
func NewWebAdapter(host string, port string, corsAllowedOrigins []string, systemAPIKey string, coreAPIs *core.APIs, logger *logs.Logger) (*Adapter, error) {
	loader := &openapi3.Loader{Context: context.Background(), IsExternalRefsAllowed: true}
	doc, err := loader.LoadFromData(docs.OpenAPI)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionLoad, typeOpenAPIDoc, nil, err)
	}
	err = doc.Validate(loader.Context)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionValidate, typeOpenAPIDoc, nil, err)
	}
	openAPIRouter, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInitialize, "openapi router", nil, err)
	}

	if len(corsAllowedOrigins) == 0 {
		corsAllowedOrigins = []string{"*"}
	}

	auth := NewAuth(coreAPIs, systemAPIKey, logger)
	webMetrics := newMetrics()

	defaultApisHandler := NewDefaultApisHandler(coreAPIs)
	adminApisHandler := NewAdminApisHandler(coreAPIs)
	authApisHandler := NewAuthApisHandler(coreAPIs)
	systemApisHandler := NewSystemApisHandler(coreAPIs)

	adapter := &Adapter{host: host, port: port, corsAllowedOrigins: corsAllowedOrigins, auth: auth, metrics: webMetrics,
		openAPIRouter: openAPIRouter, defaultApisHandler: defaultApisHandler, adminApisHandler: adminApisHandler,
		authApisHandler: authApisHandler, systemApisHandler: systemApisHandler, coreAPIs: coreAPIs, logger: logger}
	adapter.server = &http.Server{Addr: ":" + port, Handler: adapter.routes(), ReadHeaderTimeout: 10 * time.Second}

	//add listener to the application
	coreAPIs.AddListener(&AppListener{metrics: webMetrics})

	return adapter, nil
}

// AppListener implements core.ApplicationListener interface
type AppListener struct {
	metrics *metrics
}

// OnOrganizationCreated notifies that an organization has been created
func (al *AppListener) OnOrganizationCreated(organization model.Organization) {
	al.metrics.organizationEvent(eventCreated)
}

// OnOrganizationDeleted notifies that an organization has been deleted
func (al *AppListener) OnOrganizationDeleted(organizationName string) {
	al.metrics.organizationEvent(eventDeleted)
}
