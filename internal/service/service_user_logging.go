// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/models"
)

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// UserLoggingService logs the outcome of every update. Client-caused
// outcomes are logged at info, infrastructure failures at error.
type UserLoggingService struct {
	inner  UserService
	logger *logger.Logger
}

func NewUserLoggingService(logger *logger.Logger) UserServiceWrapper {
	return &UserLoggingService{logger: logger}
}

func (s *UserLoggingService) UpdateUser(ctx context.Context, update models.ValidatedUpdate) error {
	start := time.Now()
	err := s.inner.UpdateUser(ctx, update)

	log := logger.FromContextOr(ctx, s.logger)

	event := log.Info()
	if err != nil && !isClientOutcome(err) {
		event = log.Error()
	}

	event.
		Str("user_id", update.UserID.Hex()).
		Dur("duration", time.Since(start)).
		Err(err).
		Msg("user update finished")

	return err
}

func isClientOutcome(err error) bool {
	return errors.Is(err, ErrNotFoundOrUnauthorized) ||
		errors.Is(err, ErrInvalidTimestamp) ||
		errors.Is(err, ErrPasswordTooLong) ||
		errors.Is(err, ErrNoChangeApplied)
}

func (s *UserLoggingService) Wrap(inner UserService) UserService {
	s.inner = inner
	return s
}
