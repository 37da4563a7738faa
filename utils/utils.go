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

package utils

import (
	"net/http"
	"strings"

	"github.com/rokwire/logging-library-go/v2/errors"
)

const (
	// ErrorStatusValidation bad input shape
	ErrorStatusValidation string = "validation-error"
	// ErrorStatusAlreadyExists uniqueness violation
	ErrorStatusAlreadyExists string = "already-exists"
	// ErrorStatusNotFound missing entity
	ErrorStatusNotFound string = "not-found"
	// ErrorStatusUnauthorized caller is not the organization admin
	ErrorStatusUnauthorized string = "unauthorized"
	// ErrorStatusInvalidCredentials wrong email or password
	ErrorStatusInvalidCredentials string = "invalid-credentials"
	// ErrorStatusAccountDeactivated admin credential is not active
	ErrorStatusAccountDeactivated string = "account-deactivated"
	// ErrorStatusInvalidToken token signature, claims or subject are not valid
	ErrorStatusInvalidToken string = "invalid-token"
	// ErrorStatusExpired token is expired
	ErrorStatusExpired string = "expired"
	// ErrorStatusIntegrityViolation cross-entity invariant is broken
	ErrorStatusIntegrityViolation string = "integrity-violation"
	// ErrorStatusStoreUnavailable store timed out or is unreachable
	ErrorStatusStoreUnavailable string = "store-unavailable"
)

// ErrorStatus gives the status set on a logging library error, or "" for any other error
func ErrorStatus(err error) string {
	if loggingErr, ok := err.(*errors.Error); ok {
		return loggingErr.Status()
	}
	return ""
}

// IsRetryable tells if the error is transient and the caller may retry
func IsRetryable(err error) bool {
	return ErrorStatus(err) == ErrorStatusStoreUnavailable
}

// HTTPStatus gives the HTTP status code for the error status of err
func HTTPStatus(err error) int {
	switch ErrorStatus(err) {
	case ErrorStatusValidation, ErrorStatusAlreadyExists:
		return http.StatusBadRequest
	case ErrorStatusNotFound:
		return http.StatusNotFound
	case ErrorStatusUnauthorized:
		return http.StatusForbidden
	case ErrorStatusInvalidCredentials, ErrorStatusAccountDeactivated, ErrorStatusInvalidToken, ErrorStatusExpired:
		return http.StatusUnauthorized
	case ErrorStatusStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetBearerToken extracts the token from an Authorization header value
func GetBearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// StringOrNil returns a pointer to v or nil if v is empty
func StringOrNil(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
