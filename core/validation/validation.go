// Copyright 2023 Board of Trustees of the University of Illinois.
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

// Package validation holds the input shape checks and sanitization applied before any
// organization lifecycle operation. Everything here is pure.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	//FieldOrganizationName organization name field
	FieldOrganizationName string = "organization_name"
	//FieldNewOrganizationName new organization name field
	FieldNewOrganizationName string = "new_organization_name"
	//FieldEmail email field
	FieldEmail string = "email"
	//FieldPassword password field
	FieldPassword string = "password"

	//MaxOrganizationNameLength max length of an organization name
	MaxOrganizationNameLength int = 100
	//MinPasswordLength min length of an admin password
	MinPasswordLength int = 8

	//reasons reported by the validators
	ReasonInvalidOrganizationName    string = "Invalid organization name"
	ReasonInvalidNewOrganizationName string = "Invalid new organization name"
	ReasonInvalidEmail               string = "Invalid email address"
	ReasonPasswordTooShort           string = "Password must be at least 8 characters"
	ReasonNewPasswordTooShort        string = "New password must be at least 8 characters"
	ReasonNameEdgeSpaces             string = "Organization name cannot start or end with spaces"
	ReasonNameConsecutiveSpaces      string = "Organization name cannot contain consecutive spaces"
	ReasonMissingOrganizationName    string = "Current organization name is required"
)

var (
	organizationNamePattern = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)
	emailPattern            = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	scriptTagPattern        = regexp.MustCompile(`(?is)<script.*?>.*?</script>`)
)

// Fields is a set of named request inputs
type Fields map[string]interface{}

func (f Fields) string(key string) string {
	value, _ := f[key].(string)
	return value
}

func (f Fields) optionalString(key string) (string, bool) {
	value, ok := f[key].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// ValidateOrganizationName checks length and charset of an organization name
func ValidateOrganizationName(name string) bool {
	if name == "" || utf8.RuneCountInString(name) > MaxOrganizationNameLength {
		return false
	}
	return organizationNamePattern.MatchString(name)
}

// ValidateEmail checks the local@domain.tld shape of an email address
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword checks the minimum password length
func ValidatePassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

// ValidateCreateInput validates the inputs of an organization creation.
//
// The reason is the first failing check in this order: name, email, password length,
// leading/trailing space, consecutive spaces.
func ValidateCreateInput(fields Fields) (bool, string) {
	name := fields.string(FieldOrganizationName)
	if !ValidateOrganizationName(name) {
		return false, ReasonInvalidOrganizationName
	}
	if !ValidateEmail(fields.string(FieldEmail)) {
		return false, ReasonInvalidEmail
	}
	if !ValidatePassword(fields.string(FieldPassword)) {
		return false, ReasonPasswordTooShort
	}
	if reason := checkNameSpacing(name); reason != "" {
		return false, reason
	}
	return true, ""
}

// ValidateUpdateInput validates the inputs of an organization update. Absent optional
// fields are not checked.
func ValidateUpdateInput(fields Fields) (bool, string) {
	if fields.string(FieldOrganizationName) == "" {
		return false, ReasonMissingOrganizationName
	}
	if newName, ok := fields.optionalString(FieldNewOrganizationName); ok {
		if !ValidateOrganizationName(newName) {
			return false, ReasonInvalidNewOrganizationName
		}
		if reason := checkNameSpacing(newName); reason != "" {
			return false, reason
		}
	}
	if email, ok := fields.optionalString(FieldEmail); ok && !ValidateEmail(email) {
		return false, ReasonInvalidEmail
	}
	if password, ok := fields.optionalString(FieldPassword); ok && !ValidatePassword(password) {
		return false, ReasonNewPasswordTooShort
	}
	return true, ""
}

func checkNameSpacing(name string) string {
	if strings.HasPrefix(name, " ") || strings.HasSuffix(name, " ") {
		return ReasonNameEdgeSpaces
	}
	if strings.Contains(name, "  ") {
		return ReasonNameConsecutiveSpaces
	}
	return ""
}

// SanitizeInput trims string fields and strips <script> elements from them. Other
// values pass through unchanged. The input is not modified.
func SanitizeInput(fields Fields) Fields {
	sanitized := make(Fields, len(fields))
	for key, value := range fields {
		if s, ok := value.(string); ok {
			s = strings.TrimSpace(s)
			sanitized[key] = scriptTagPattern.ReplaceAllString(s, "")
		} else {
			sanitized[key] = value
		}
	}
	return sanitized
}
