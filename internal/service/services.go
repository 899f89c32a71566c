// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/store"
	"github.com/MKhiriev/go-user-profile/models"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	encoder, err := NewPasswordEncoder(cfg.App.PasswordEncoding)
	if err != nil {
		return nil, fmt.Errorf("error creating password encoder: %w", err)
	}

	userService, err := NewUserService(storages.UserRepository, encoder, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating user service: %w", err)
	}

	if cfg.App.NoopAsSuccess {
		logger.Warn().Msg("updates that modify nothing are reported as success")
	}

	return &Services{
		UserService:    NewUserLoggingService(logger).Wrap(userService),
		AppInfoService: NewAppInfoService(cfg.App, buildInfo),
	}, nil
}
