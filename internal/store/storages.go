// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
)

type Storages struct {
	UserRepository UserRepository

	closers []func(context.Context) error
}

// NewStorages connects the store selected by cfg.Driver. SQL stores are
// migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		db, err := NewConnectMongo(ctx, cfg.Mongo, cfg.Timeout, log)
		if err != nil {
			return nil, err
		}

		return &Storages{
			UserRepository: NewMongoUserRepository(db, log),
			closers:        []func(context.Context) error{db.Close},
		}, nil

	case config.DriverPostgres, config.DriverSQLite:
		connect := NewConnectPostgres
		if cfg.Driver == config.DriverSQLite {
			connect = NewConnectSQLite
		}

		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error migrating %s database: %w", cfg.Driver, err)
		}

		return &Storages{
			UserRepository: NewUserRepository(db, log),
			closers: []func(context.Context) error{
				func(context.Context) error { return db.Close() },
			},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close releases every connection opened by [NewStorages].
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn(ctx))
	}

	return errors.Join(errs...)
}
