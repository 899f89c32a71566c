// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators admits or rejects inbound update requests before any
// store access happens.
//
// Core concepts:
//   - RequestGuard: runs the ordered admission checks over a raw request and
//     yields a typed, trusted update.
//
// Checks run in a fixed order and the first failing one decides the
// outcome, so callers always see the same error for the same request.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-profile/models"
)

// RequestGuard decides whether a raw update request may proceed.
type RequestGuard interface {

	// Guard validates the request and returns the parsed update. On failure
	// it returns exactly one of the package sentinel errors (possibly
	// wrapped) and a zero ValidatedUpdate.
	Guard(context.Context, models.RawUpdateRequest) (models.ValidatedUpdate, error)
}
