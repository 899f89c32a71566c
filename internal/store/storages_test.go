// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_UnknownDriver(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{Driver: "redis"}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

// TestNewStorages_SQLiteRoundTrip runs the SQL repository against a real
// SQLite file: migrate, seed, find, replace, and an identical replace.
func TestNewStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "users.db")

	s, err := NewStorages(ctx, config.Storage{Driver: config.DriverSQLite, DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(ctx) })

	repo := s.UserRepository.(*sqlUserRepository)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO users (id, first_name, session_token, created_datetime) VALUES (?, ?, ?, ?)`,
		testHexID, "John", "tok", created)
	require.NoError(t, err)

	_, err = repo.FindUserBySessionToken(ctx, testID(t), "wrong")
	require.ErrorIs(t, err, ErrNoUserWasFound)

	user, err := repo.FindUserBySessionToken(ctx, testID(t), "tok")
	require.NoError(t, err)
	assert.Equal(t, "John", user.FirstName)
	require.NotNil(t, user.CreatedDatetime)
	assert.True(t, created.Equal(*user.CreatedDatetime))

	updated := time.Date(2024, 8, 7, 22, 26, 12, 0, time.UTC)
	user.FirstName = "Miami"
	user.UpdatedDatetime = &updated

	fields := []string{models.FieldFirstName, models.FieldUpdatedDatetime}
	n, err := repo.ReplaceUser(ctx, user, fields)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.ReplaceUser(ctx, user, fields)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "identical write must modify nothing")

	got, err := repo.FindUserBySessionToken(ctx, testID(t), "tok")
	require.NoError(t, err)
	assert.Equal(t, "Miami", got.FirstName)
	require.NotNil(t, got.UpdatedDatetime)
	assert.True(t, updated.Equal(*got.UpdatedDatetime))
	require.NotNil(t, got.CreatedDatetime)
	assert.True(t, created.Equal(*got.CreatedDatetime))
}
