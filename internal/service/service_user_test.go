// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/mock"
	"github.com/MKhiriev/go-user-profile/internal/store"
	"github.com/MKhiriev/go-user-profile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSessionToken = "rbvkur79jksfu_shjhu"

func testUserID(t *testing.T) models.UserID {
	t.Helper()
	id, err := models.ParseUserID("66b3d17ce6d8e2f5b93324d3")
	require.NoError(t, err)
	return id
}

func storedUser(t *testing.T) models.UserRecord {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return models.UserRecord{
		ID:              testUserID(t),
		FirstName:       "John",
		MiddleName:      "Q",
		LastName:        "Public",
		Password:        "old-pass",
		Phone:           "+10000000000",
		SessionToken:    testSessionToken,
		CreatedDatetime: &created,
	}
}

// newTestUserSvc — helper building userService on top of a mocked repository
func newTestUserSvc(t *testing.T, ctrl *gomock.Controller, cfg config.StructuredConfig) (UserService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)

	svc, err := NewUserService(repo, nil, cfg, logger.Nop())
	require.NoError(t, err)

	return svc, repo
}

// ── NewUserService ───────────────────────────────────────────────────────────

func TestNewUserService_NilRepository(t *testing.T) {
	svc, err := NewUserService(nil, nil, config.StructuredConfig{}, logger.Nop())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrNoRepositoryProvided)
}

// ── UpdateUser ───────────────────────────────────────────────────────────────

func TestUserService_UpdateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestUserSvc(t, ctrl, config.StructuredConfig{})
	ctx := context.Background()

	record := storedUser(t)
	update := models.ValidatedUpdate{
		UserID:       record.ID,
		SessionToken: testSessionToken,
		Update: models.UserUpdate{
			FirstName:       models.Some("Miami"),
			Password:        models.Some("billmd124Pass$"),
			UpdatedDatetime: models.Some("2024-08-07T22:26:12.111Z"),
		},
	}

	wantUpdated := time.Date(2024, 8, 7, 22, 26, 12, 111000000, time.UTC)
	want := record
	want.FirstName = "Miami"
	want.Password = "billmd124Pass$"
	want.UpdatedDatetime = &wantUpdated

	repo.EXPECT().FindUserBySessionToken(gomock.Any(), record.ID, testSessionToken).Return(record, nil)
	repo.EXPECT().
		ReplaceUser(gomock.Any(), want, []string{models.FieldFirstName, models.FieldPassword, models.FieldUpdatedDatetime}).
		Return(int64(1), nil)

	require.NoError(t, svc.UpdateUser(ctx, update))
}

func TestUserService_UpdateUser_LookupFailures(t *testing.T) {
	tests := []struct {
		name      string
		storeErr  error
		wantErr   error
		notWanted []error
	}{
		{
			name:     "not found",
			storeErr: store.ErrNoUserWasFound,
			wantErr:  ErrNotFoundOrUnauthorized,
		},
		{
			name:     "store unavailable",
			storeErr: store.ErrStoreUnavailable,
			wantErr:  ErrDatabaseUnavailable,
		},
		{
			name:     "deadline exceeded",
			storeErr: context.DeadlineExceeded,
			wantErr:  ErrDatabaseUnavailable,
		},
		{
			name:      "unexpected error",
			storeErr:  errors.New("boom"),
			notWanted: []error{ErrNotFoundOrUnauthorized, ErrDatabaseUnavailable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestUserSvc(t, ctrl, config.StructuredConfig{})

			repo.EXPECT().
				FindUserBySessionToken(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(models.UserRecord{}, tt.storeErr)

			err := svc.UpdateUser(context.Background(), models.ValidatedUpdate{
				UserID:       testUserID(t),
				SessionToken: testSessionToken,
				Update:       models.UserUpdate{FirstName: models.Some("X")},
			})

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			for _, e := range tt.notWanted {
				assert.NotErrorIs(t, err, e)
			}
		})
	}
}

func TestUserService_UpdateUser_InvalidTimestamp_NothingPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestUserSvc(t, ctrl, config.StructuredConfig{})

	repo.EXPECT().FindUserBySessionToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedUser(t), nil)
	repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.UpdateUser(context.Background(), models.ValidatedUpdate{
		UserID:       testUserID(t),
		SessionToken: testSessionToken,
		Update: models.UserUpdate{
			FirstName:       models.Some("Miami"),
			UpdatedDatetime: models.Some("yesterday"),
		},
	})

	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestUserService_UpdateUser_NoChange(t *testing.T) {
	tests := []struct {
		name          string
		noopAsSuccess bool
		wantErr       error
	}{
		{name: "reported as failure", noopAsSuccess: false, wantErr: ErrNoChangeApplied},
		{name: "reported as success", noopAsSuccess: true, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cfg := config.StructuredConfig{App: config.App{NoopAsSuccess: tt.noopAsSuccess}}
			svc, repo := newTestUserSvc(t, ctrl, cfg)

			record := storedUser(t)
			repo.EXPECT().FindUserBySessionToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(record, nil)
			repo.EXPECT().ReplaceUser(gomock.Any(), record, []string{models.FieldFirstName}).Return(int64(0), nil)

			err := svc.UpdateUser(context.Background(), models.ValidatedUpdate{
				UserID:       record.ID,
				SessionToken: testSessionToken,
				Update:       models.UserUpdate{FirstName: models.Some(record.FirstName)},
			})

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_UpdateUser_PersistUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestUserSvc(t, ctrl, config.StructuredConfig{})

	repo.EXPECT().FindUserBySessionToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedUser(t), nil)
	repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), store.ErrStoreUnavailable)

	err := svc.UpdateUser(context.Background(), models.ValidatedUpdate{
		UserID:       testUserID(t),
		SessionToken: testSessionToken,
		Update:       models.UserUpdate{Phone: models.Some("+15550000000")},
	})

	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
	assert.NotErrorIs(t, err, ErrNoChangeApplied)
}

func TestUserService_UpdateUser_StoreTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := config.StructuredConfig{Storage: config.Storage{Timeout: 20 * time.Millisecond}}
	svc, repo := newTestUserSvc(t, ctrl, cfg)

	repo.EXPECT().
		FindUserBySessionToken(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.UserID, _ string) (models.UserRecord, error) {
			<-ctx.Done()
			return models.UserRecord{}, ctx.Err()
		})

	err := svc.UpdateUser(context.Background(), models.ValidatedUpdate{
		UserID:       testUserID(t),
		SessionToken: testSessionToken,
		Update:       models.UserUpdate{Phone: models.Some("1")},
	})

	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
}

func TestUserService_UpdateUser_EncoderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	encoder := mock.NewMockPasswordEncoder(ctrl)

	svc, err := NewUserService(repo, encoder, config.StructuredConfig{}, logger.Nop())
	require.NoError(t, err)

	repo.EXPECT().FindUserBySessionToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedUser(t), nil)
	encoder.EXPECT().Encode("secret").Return("", ErrEncodingPassword)
	repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err = svc.UpdateUser(context.Background(), models.ValidatedUpdate{
		UserID:       testUserID(t),
		SessionToken: testSessionToken,
		Update:       models.UserUpdate{Password: models.Some("secret")},
	})

	assert.ErrorIs(t, err, ErrEncodingPassword)
}

func TestUserService_UpdateUser_BcryptPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	encoder, err := NewPasswordEncoder(config.PasswordEncodingBcrypt)
	require.NoError(t, err)

	svc, err := NewUserService(repo, encoder, config.StructuredConfig{}, logger.Nop())
	require.NoError(t, err)

	var persisted models.UserRecord
	repo.EXPECT().FindUserBySessionToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedUser(t), nil)
	repo.EXPECT().
		ReplaceUser(gomock.Any(), gomock.Any(), []string{models.FieldPassword}).
		DoAndReturn(func(_ context.Context, user models.UserRecord, _ []string) (int64, error) {
			persisted = user
			return 1, nil
		})

	err = svc.UpdateUser(context.Background(), models.ValidatedUpdate{
		UserID:       testUserID(t),
		SessionToken: testSessionToken,
		Update:       models.UserUpdate{Password: models.Some("billmd124Pass$")},
	})
	require.NoError(t, err)

	assert.NotEqual(t, "billmd124Pass$", persisted.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.Password), []byte("billmd124Pass$")))
}

func TestUserService_UpdateUser_BcryptPasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	encoder, err := NewPasswordEncoder(config.PasswordEncodingBcrypt)
	require.NoError(t, err)

	svc, err := NewUserService(repo, encoder, config.StructuredConfig{}, logger.Nop())
	require.NoError(t, err)

	repo.EXPECT().FindUserBySessionToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedUser(t), nil)
	repo.EXPECT().ReplaceUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err = svc.UpdateUser(context.Background(), models.ValidatedUpdate{
		UserID:       testUserID(t),
		SessionToken: testSessionToken,
		Update:       models.UserUpdate{Password: models.Some(strings.Repeat("p", 73))},
	})

	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

// ── mergeUser ────────────────────────────────────────────────────────────────

func TestMergeUser(t *testing.T) {
	base := storedUser(t)

	tests := []struct {
		name   string
		update models.UserUpdate
		want   func(u models.UserRecord) models.UserRecord
	}{
		{
			name:   "empty update leaves record unchanged",
			update: models.UserUpdate{},
			want:   func(u models.UserRecord) models.UserRecord { return u },
		},
		{
			name: "all text fields",
			update: models.UserUpdate{
				FirstName:  models.Some("A"),
				MiddleName: models.Some("B"),
				LastName:   models.Some("C"),
				Phone:      models.Some("D"),
				Password:   models.Some("E"),
			},
			want: func(u models.UserRecord) models.UserRecord {
				u.FirstName, u.MiddleName, u.LastName, u.Phone, u.Password = "A", "B", "C", "D", "E"
				return u
			},
		},
		{
			name:   "null clears field",
			update: models.UserUpdate{MiddleName: models.Optional[string]{Set: true}},
			want: func(u models.UserRecord) models.UserRecord {
				u.MiddleName = ""
				return u
			},
		},
		{
			name:   "session token rotates",
			update: models.UserUpdate{SessionToken: models.Some("new-token")},
			want: func(u models.UserRecord) models.UserRecord {
				u.SessionToken = "new-token"
				return u
			},
		},
		{
			name:   "offset timestamp normalised to utc",
			update: models.UserUpdate{UpdatedDatetime: models.Some("2024-08-07T22:26:12+02:00")},
			want: func(u models.UserRecord) models.UserRecord {
				ts := time.Date(2024, 8, 7, 20, 26, 12, 0, time.UTC)
				u.UpdatedDatetime = &ts
				return u
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mergeUser(base, tt.update, plainPasswordEncoder{})
			require.NoError(t, err)
			assert.Equal(t, tt.want(base), got)
		})
	}
}

func TestMergeUser_DoesNotTouchIdentityFields(t *testing.T) {
	base := storedUser(t)

	got, err := mergeUser(base, models.UserUpdate{FirstName: models.Some("Z")}, plainPasswordEncoder{})
	require.NoError(t, err)

	assert.Equal(t, base.ID, got.ID)
	assert.Equal(t, base.CreatedDatetime, got.CreatedDatetime)
	assert.Equal(t, "John", base.FirstName, "input record must not be mutated")
}
