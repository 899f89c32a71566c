// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the user profile HTTP API.
//
// [UserClient] hides the transport from callers. Non-2xx statuses are mapped
// to the sentinel errors in errors.go so callers can branch with
// [errors.Is] while still reading the server's reason string.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-profile/models"
)

// UserClient issues partial profile updates against the server.
type UserClient interface {
	// UpdateUser sends PUT /user with the shared authorization secret and
	// sessionToken as headers. The decoded response is returned together
	// with any mapped error, so the reason is available on failures too.
	UpdateUser(ctx context.Context, sessionToken string, req models.UpdateUserRequest) (models.BaseResponse, error)

	// Version fetches GET /version.
	Version(ctx context.Context) (string, error)
}
