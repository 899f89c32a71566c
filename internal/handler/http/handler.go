// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/service"
	"github.com/MKhiriev/go-user-profile/internal/validators"
)

// maxBodyBytes bounds the PUT /user payload.
const maxBodyBytes = 1 << 20

type Handler struct {
	services *service.Services
	guard    validators.RequestGuard

	logger *logger.Logger
}

func NewHandler(services *service.Services, guard validators.RequestGuard, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		guard:    guard,
		logger:   logger,
	}
}
