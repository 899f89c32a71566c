// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-profile/models"
)

// UserRepository is the record store behind the update flow. Both the
// document store and the SQL stores implement it.
type UserRepository interface {
	// FindUserBySessionToken returns the record whose id and session token
	// both match. A mismatch on either is [ErrNoUserWasFound].
	FindUserBySessionToken(ctx context.Context, id models.UserID, sessionToken string) (models.UserRecord, error)

	// ReplaceUser writes the named fields of user to the record selected by
	// user.ID and returns how many records the store actually modified.
	// Fields that are not named keep their stored value, missing or null
	// included. Writing values identical to the stored ones, or naming no
	// field, yields 0.
	ReplaceUser(ctx context.Context, user models.UserRecord, fields []string) (int64, error)
}

// ErrorClassificator decides whether a driver error means the store
// cannot be reached.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
