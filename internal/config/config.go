// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Supported values of [Storage.Driver].
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported values of [App.PasswordEncoding].
const (
	PasswordEncodingPlain  = "plain"
	PasswordEncodingBcrypt = "bcrypt"
)

// StructuredConfig is the top-level configuration container for the user
// profile service. It is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the shared authorization
	// secret, update policy switches, and the version string.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the record store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AuthorizationToken is the static shared secret every request must
	// present verbatim in its Authorization header. Must be kept confidential.
	// Env: APP_AUTHORIZATION_TOKEN
	AuthorizationToken string `env:"AUTHORIZATION_TOKEN"`

	// Version is exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// PasswordEncoding selects how the password field is stored:
	// "plain" stores it verbatim, "bcrypt" stores a bcrypt hash.
	// Env: APP_PASSWORD_ENCODING
	PasswordEncoding string `env:"PASSWORD_ENCODING"`

	// NoopAsSuccess reports a write that modified nothing as success
	// instead of "No updates made to the user".
	// Env: APP_NOOP_AS_SUCCESS
	NoopAsSuccess bool `env:"NOOP_AS_SUCCESS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Storage groups the configuration of every supported record store.
type Storage struct {
	// Driver is one of "mongo", "postgres" or "sqlite".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// Timeout bounds every single round trip to the store. A store call
	// that exceeds it is reported as "Database is not available".
	// Env: STORAGE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Mongo holds the document database settings.
	Mongo Mongo `envPrefix:"MONGO_"`

	// DB holds the relational database settings.
	DB DB `envPrefix:"DB_"`
}

// Mongo holds connection settings for the MongoDB record store.
type Mongo struct {
	// URI is the MongoDB connection string (e.g. "mongodb://localhost:27017").
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`

	// Database is the database holding the user collection.
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`

	// Collection is the collection holding user documents.
	// Env: STORAGE_MONGO_COLLECTION
	Collection string `env:"COLLECTION"`
}

// DB holds connection settings for the relational record stores.
type DB struct {
	// DSN is the Postgres connection string or the SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// defaults is the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:          "N/A",
			LogLevel:         "info",
			PasswordEncoding: PasswordEncodingPlain,
		},
		Storage: Storage{
			Driver:  DriverMongo,
			Timeout: 5 * time.Second,
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
