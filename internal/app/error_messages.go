// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// user profile service handlers and middleware.
//
// All Msg* constants are the stable reason strings written into the
// "reason" field of every response. Clients match on them, so they must
// not change.
package app

const (
	// MsgRecordUpdated is returned when the partial update was persisted.
	MsgRecordUpdated = "Record in database updated successfully !"

	// MsgUnauthorized is returned when the Authorization header does not
	// match the configured shared secret.
	MsgUnauthorized = "Unauthorized"

	// MsgSessionTokenMissing is returned when the session_token header is
	// absent or empty.
	MsgSessionTokenMissing = "Session token missing"

	// MsgInvalidJSON is returned when the body is not a non-empty JSON
	// object or one of the mergeable fields has the wrong type.
	MsgInvalidJSON = "Invalid JSON"

	// MsgMissingUserID is returned when the body carries no user_id.
	MsgMissingUserID = "Missing user_id"

	// MsgInvalidUserIDFormat is returned when user_id is not a 24-character
	// hexadecimal identifier.
	MsgInvalidUserIDFormat = "Invalid user ID format"

	// MsgUserNotFound is returned both for an unknown identifier and for a
	// stale session token. The two cases are deliberately indistinguishable.
	MsgUserNotFound = "User not found or session token invalid"

	// MsgInvalidTimestamp is returned when updated_datetime is not an
	// ISO-8601 timestamp.
	MsgInvalidTimestamp = "Invalid updated_datetime format"

	// MsgPasswordTooLong is returned when the configured password encoder
	// cannot accept the submitted password (over 72 bytes for bcrypt).
	MsgPasswordTooLong = "Password is too long"

	// MsgNoUpdatesMade is returned when the store reports zero modified
	// documents.
	MsgNoUpdatesMade = "No updates made to the user"

	// MsgDatabaseUnavailable is returned when the record store cannot be
	// reached or does not answer in time.
	MsgDatabaseUnavailable = "Database is not available"

	// MsgInternalServerError is returned for every unexpected failure.
	// Details are logged, never sent to the caller.
	MsgInternalServerError = "Internal server error"
)
