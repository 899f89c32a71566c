// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnknownField = errors.New("unknown field for validation")

	ErrUnauthorized            = errors.New("authorization token does not match")
	ErrSessionTokenMissing     = errors.New("session token missing")
	ErrInvalidPayload          = errors.New("invalid payload")
	ErrMissingIdentifier       = errors.New("user_id is missing")
	ErrInvalidIdentifierFormat = errors.New("user_id is not a valid object id")
)
