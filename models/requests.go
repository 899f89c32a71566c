// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawUpdateRequest is what the transport layer hands to the request guard:
// the two credential headers and the unparsed request body.
type RawUpdateRequest struct {
	// Authorization is the static shared credential.
	Authorization string

	// SessionToken is the caller's per-record session token.
	SessionToken string

	// Body is the request payload as received.
	Body []byte
}

// ValidatedUpdate is produced by the request guard once every check has
// passed. It is the only input the update service accepts.
type ValidatedUpdate struct {
	UserID       UserID
	SessionToken string
	Update       UserUpdate
}

// UpdateUserRequest is the JSON body of PUT /user as built by clients.
type UpdateUserRequest struct {
	UserID string `json:"user_id"`
	UserUpdate
}
