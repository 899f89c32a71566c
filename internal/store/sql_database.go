// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/migrations"
)

// dialect carries the per-driver differences of the SQL user repository.
type dialect struct {
	// name is the goose dialect name.
	name string

	placeholder sq.PlaceholderFormat

	// distinctOp is the null-safe inequality operator.
	distinctOp string
}

var (
	postgresDialect = dialect{name: "postgres", placeholder: sq.Dollar, distinctOp: "IS DISTINCT FROM"}
	sqliteDialect   = dialect{name: "sqlite3", placeholder: sq.Question, distinctOp: "IS NOT"}
)

type DB struct {
	*sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.name)
}

// wrapError tags err with [ErrStoreUnavailable] when the classifier says
// the store is unreachable.
func (db *DB) wrapError(err error, sentinel error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Unreachable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%w: %w", sentinel, err)
}

// isNoRows reports whether a single-row query matched nothing.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
