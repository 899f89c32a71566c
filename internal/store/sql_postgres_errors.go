// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells whether a failed database operation means the store is unreachable.
type ErrorClassification int

const (
	// QueryFailure indicates the store answered but the operation failed.
	// This is the default classification for unrecognised errors.
	QueryFailure ErrorClassification = iota

	// Unreachable indicates the store could not be reached or did not
	// answer in time.
	Unreachable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver as well as
// transport-level errors.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return QueryFailure
	}

	if isTransportError(err) {
		return Unreachable
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return Unreachable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return QueryFailure
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Unreachable codes:
//   - Class 08 — connection exceptions
//   - Class 53 — too many connections
//   - Class 57 — admin shutdown, crash shutdown, cannot connect now
//
// Any other code is a [QueryFailure].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection:
		return Unreachable

	// Class 53 — insufficient resources
	case pgerrcode.TooManyConnections:
		return Unreachable

	// Class 57 — operator intervention
	case pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow:
		return Unreachable
	}

	return QueryFailure
}

// isTransportError reports driver-independent signs of an unreachable store.
func isTransportError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
