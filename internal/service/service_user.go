// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/store"
	"github.com/MKhiriev/go-user-profile/models"
)

type userService struct {
	userRepository store.UserRepository
	passwordEncoder PasswordEncoder

	storeTimeout  time.Duration
	noopAsSuccess bool

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, encoder PasswordEncoder, cfg config.StructuredConfig, logger *logger.Logger) (UserService, error) {
	if userRepository == nil {
		return nil, ErrNoRepositoryProvided
	}

	if encoder == nil {
		encoder = plainPasswordEncoder{}
	}

	return &userService{
		userRepository:  userRepository,
		passwordEncoder: encoder,
		storeTimeout:    cfg.Storage.Timeout,
		noopAsSuccess:   cfg.App.NoopAsSuccess,
		logger:          logger,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, update models.ValidatedUpdate) error {
	record, err := s.findUser(ctx, update.UserID, update.SessionToken)
	if err != nil {
		return err
	}

	merged, err := mergeUser(record, update.Update, s.passwordEncoder)
	if err != nil {
		return err
	}

	modified, err := s.replaceUser(ctx, merged, update.Update.Fields())
	if err != nil {
		return err
	}

	// A zero count is either an identical write or a concurrent writer
	// that changed the record between lookup and persist. Both look the same.
	if modified == 0 && !s.noopAsSuccess {
		return ErrNoChangeApplied
	}

	return nil
}

func (s *userService) findUser(ctx context.Context, id models.UserID, sessionToken string) (models.UserRecord, error) {
	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	record, err := s.userRepository.FindUserBySessionToken(ctx, id, sessionToken)
	if err != nil {
		return models.UserRecord{}, classifyStoreError(err)
	}

	return record, nil
}

func (s *userService) replaceUser(ctx context.Context, user models.UserRecord, fields []string) (int64, error) {
	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	modified, err := s.userRepository.ReplaceUser(ctx, user, fields)
	if err != nil {
		return 0, classifyStoreError(err)
	}

	return modified, nil
}

func (s *userService) withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.storeTimeout)
}

func classifyStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrNotFoundOrUnauthorized
	case errors.Is(err, store.ErrStoreUnavailable), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	default:
		return fmt.Errorf("error accessing user store: %w", err)
	}
}

// mergeUser copies whitelisted fields present in update onto a copy of
// record. The timestamp is parsed first so a bad value leaves nothing
// applied.
func mergeUser(record models.UserRecord, update models.UserUpdate, encoder PasswordEncoder) (models.UserRecord, error) {
	merged := record

	if value, ok := update.UpdatedDatetime.Get(); ok {
		ts, err := ParseTimestamp(value)
		if err != nil {
			return models.UserRecord{}, err
		}
		merged.UpdatedDatetime = &ts
	}

	if value, ok := update.Password.Get(); ok {
		encoded, err := encoder.Encode(value)
		if err != nil {
			return models.UserRecord{}, err
		}
		merged.Password = encoded
	}

	if value, ok := update.FirstName.Get(); ok {
		merged.FirstName = value
	}
	if value, ok := update.MiddleName.Get(); ok {
		merged.MiddleName = value
	}
	if value, ok := update.LastName.Get(); ok {
		merged.LastName = value
	}
	if value, ok := update.Phone.Get(); ok {
		merged.Phone = value
	}
	if value, ok := update.SessionToken.Get(); ok {
		merged.SessionToken = value
	}

	return merged, nil
}
