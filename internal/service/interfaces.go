// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-profile/models"
)

// UserService applies admitted partial updates to stored user records.
type UserService interface {
	// UpdateUser looks the record up by id and session token, merges the
	// update into it and persists the result. A nil error means the store
	// reported the record as modified.
	UpdateUser(ctx context.Context, update models.ValidatedUpdate) error
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// PasswordEncoder turns a submitted password into its stored form.
type PasswordEncoder interface {
	Encode(password string) (string, error)
}
