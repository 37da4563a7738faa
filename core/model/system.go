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

package model

import "time"

const (
	//HealthStatusHealthy the store answers
	HealthStatusHealthy string = "healthy"
	//HealthStatusDegraded the service runs but the store does not answer
	HealthStatusDegraded string = "degraded"

	//IntegrityIssueMissingCredential organization without its admin credential
	IntegrityIssueMissingCredential string = "missing-credential"
	//IntegrityIssueCredentialMismatch credential does not point back to its organization
	IntegrityIssueCredentialMismatch string = "credential-mismatch"
	//IntegrityIssueMissingCollection organization without its tenant collection
	IntegrityIssueMissingCollection string = "missing-collection"
	//IntegrityIssueOrphanedCredential credential without an organization
	IntegrityIssueOrphanedCredential string = "orphaned-credential"
	//IntegrityIssueOrphanedCollection tenant collection without an organization
	IntegrityIssueOrphanedCollection string = "orphaned-collection"
)

// Health represents the service health
type Health struct {
	Status   string
	Database bool
	Error    string
}

// IntegrityIssue is a single cross-entity drift
type IntegrityIssue struct {
	Problem          string `json:"problem"`
	OrganizationName string `json:"organization_name,omitempty"`
	CredentialID     string `json:"credential_id,omitempty"`
	CollectionName   string `json:"collection_name,omitempty"`
}

// IntegrityReport lists the cross-entity drift found in the store
type IntegrityReport struct {
	Issues      []IntegrityIssue `json:"issues"`
	DateChecked time.Time        `json:"checked_at"`
}
