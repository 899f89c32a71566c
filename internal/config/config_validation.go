// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AuthorizationToken == "" {
		return fmt.Errorf("%w: authorization token is empty", ErrInvalidAppConfigs)
	}

	switch cfg.App.PasswordEncoding {
	case PasswordEncodingPlain, PasswordEncodingBcrypt:
	default:
		return fmt.Errorf("%w: unknown password encoding %q", ErrInvalidAppConfigs, cfg.App.PasswordEncoding)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}

	return cfg.Storage.validate()
}

func (s Storage) validate() error {
	switch s.Driver {
	case DriverMongo:
		if s.Mongo.URI == "" || s.Mongo.Database == "" || s.Mongo.Collection == "" {
			return fmt.Errorf("%w: mongo uri, database and collection are required", ErrInvalidStorageConfigs)
		}
	case DriverPostgres, DriverSQLite:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: dsn is required for %s", ErrInvalidStorageConfigs, s.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.Driver)
	}

	return nil
}
