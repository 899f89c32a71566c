// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when no record matches both the id and
	// the session token.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStoreUnavailable is returned when the store cannot be reached:
	// connection refused or lost, server selection failed, or the
	// operation ran out of time.
	ErrStoreUnavailable = errors.New("store is unavailable")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrNilDatabase is returned when a repository or migration is given
	// no database handle.
	ErrNilDatabase = errors.New("database handle is nil")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or UPDATE
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrDecodingDocument is returned when a stored document cannot be
	// decoded into a user record.
	ErrDecodingDocument = errors.New("failed to decode user document")
)
