// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrUnknownPasswordEncoding = errors.New("unknown password encoding")
	ErrNoRepositoryProvided    = errors.New("no user repository provided")
	ErrEncodingPassword        = errors.New("error encoding password")

	ErrNotFoundOrUnauthorized = errors.New("user not found or session token invalid")
	ErrInvalidTimestamp       = errors.New("invalid updated_datetime format")
	ErrPasswordTooLong        = errors.New("password is too long")
	ErrNoChangeApplied        = errors.New("no updates made to the user")
	ErrDatabaseUnavailable    = errors.New("database is not available")
)
