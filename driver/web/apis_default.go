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
	"net/http"
	"org-building-block/core"
	"org-building-block/core/model"
	Def "org-building-block/driver/web/docs/gen"

	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	serviceName string = "Organization Management Service"

	typeServiceInfo logutils.MessageDataType = "service info"
	typeHealth      logutils.MessageDataType = "health"
)

// DefaultApisHandler handles default APIs implementation - version, health etc
type DefaultApisHandler struct {
	coreAPIs *core.APIs
}

// getRoot gives basic info about the service
func (h DefaultApisHandler) getRoot(l *logs.Log, r *http.Request, _ *model.AdminContext) logs.HTTPResponse {
	info := Def.ServiceInfo{Message: serviceName + " is running", Status: model.HealthStatusHealthy,
		Version: h.coreAPIs.GetVersion(), Docs: "/doc/ui/"}
	return jsonResponse(l, info, typeServiceInfo)
}

// getVersion gives the service version
func (h DefaultApisHandler) getVersion(l *logs.Log, r *http.Request, _ *model.AdminContext) logs.HTTPResponse {
	version := h.coreAPIs.Default.GetVersion()

	headers := map[string][]string{"Content-Type": {"text/plain"}}
	return logs.HTTPResponse{ResponseCode: http.StatusOK, Headers: headers, Body: []byte(version)}
}

// getHealth pings the database. A degraded service still answers with 200.
func (h DefaultApisHandler) getHealth(l *logs.Log, r *http.Request, _ *model.AdminContext) logs.HTTPResponse {
	health := h.coreAPIs.System.SysGetHealth(l)
	return jsonResponse(l, healthToDef(health, serviceName), typeHealth)
}

// NewDefaultApisHandler creates new rest services Handler instance
func NewDefaultApisHandler(coreAPIs *core.APIs) DefaultApisHandler {
	return DefaultApisHandler{coreAPIs: coreAPIs}
}
