// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/models"
)

// userColumns lists the columns of the users table in scan order.
var userColumns = []string{
	"id",
	"first_name",
	"middle_name",
	"last_name",
	"password",
	"phone",
	"session_token",
	"created_datetime",
	"updated_datetime",
}

// sqlUserRepository is the SQL implementation of [UserRepository] shared by
// PostgreSQL and SQLite. Identifiers are stored as 24-char hex strings.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type sqlUserRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect.name).Msg("creating sql user repository")
	return &sqlUserRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserBySessionToken selects the row matching both id and session token.
//
// Error handling:
//   - no row → [ErrNoUserWasFound].
//   - unreachable database → [ErrStoreUnavailable].
//   - any other driver error → [ErrExecutingQuery] or [ErrScanningRow].
func (r *sqlUserRepository) FindUserBySessionToken(ctx context.Context, id models.UserID, sessionToken string) (models.UserRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := r.builder().
		Select(userColumns...).
		From(models.UserRecord{}.TableName()).
		Where(sq.Eq{"id": id.Hex()}).
		Where(sq.Eq{"session_token": sessionToken}).
		ToSql()
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return models.UserRecord{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*sqlUserRepository.FindUserBySessionToken").Msg("error finding user")
		return models.UserRecord{}, r.db.wrapError(err, ErrScanningRow)
	}

	return user, nil
}

// ReplaceUser writes the named columns of user. The WHERE clause only
// matches when at least one of them differs, so an identical write reports
// zero rows affected the same way the document store does.
func (r *sqlUserRepository) ReplaceUser(ctx context.Context, user models.UserRecord, fields []string) (int64, error) {
	log := logger.FromContextOr(ctx, r.logger)

	columns := mutableColumns(user)

	values := make(map[string]any, len(fields))
	changed := make(sq.Or, 0, len(fields))
	for _, col := range fields {
		value, ok := columns[col]
		if !ok {
			continue
		}
		values[col] = value
		changed = append(changed, sq.Expr(col+" "+r.db.dialect.distinctOp+" ?", value))
	}
	if len(values) == 0 {
		return 0, nil
	}

	query, args, err := r.builder().
		Update(user.TableName()).
		SetMap(values).
		Where(sq.Eq{"id": user.ID.Hex()}).
		Where(changed).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.ReplaceUser").Msg("error updating user")
		return 0, r.db.wrapError(err, ErrExecutingQuery)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, r.db.wrapError(err, ErrExecutingQuery)
	}

	return affected, nil
}

func (r *sqlUserRepository) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(r.db.dialect.placeholder)
}

func mutableColumns(user models.UserRecord) map[string]any {
	return map[string]any{
		models.FieldFirstName:       user.FirstName,
		models.FieldMiddleName:      user.MiddleName,
		models.FieldLastName:        user.LastName,
		models.FieldPassword:        user.Password,
		models.FieldPhone:           user.Phone,
		models.FieldSessionToken:    user.SessionToken,
		models.FieldUpdatedDatetime: nullTime(user.UpdatedDatetime),
	}
}

func scanUser(row *sql.Row) (models.UserRecord, error) {
	var (
		user             models.UserRecord
		hexID            string
		created, updated sql.NullTime
	)

	err := row.Scan(
		&hexID,
		&user.FirstName,
		&user.MiddleName,
		&user.LastName,
		&user.Password,
		&user.Phone,
		&user.SessionToken,
		&created,
		&updated,
	)
	if err != nil {
		return models.UserRecord{}, err
	}

	if user.ID, err = models.ParseUserID(hexID); err != nil {
		return models.UserRecord{}, fmt.Errorf("stored id %q: %w", hexID, err)
	}
	user.CreatedDatetime = timePtr(created)
	user.UpdatedDatetime = timePtr(updated)

	return user, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	ts := t.Time.UTC()
	return &ts
}
