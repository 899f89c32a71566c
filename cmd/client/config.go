// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-user-profile/models"
)

var errNoFieldsToUpdate = errors.New("no fields to update: pass at least one of the field flags")

// clientConfig is read from the environment first; flags override it.
type clientConfig struct {
	Address            string        `env:"USER_SERVER_ADDRESS" envDefault:"localhost:8080"`
	AuthorizationToken string        `env:"APP_AUTHORIZATION_TOKEN"`
	SessionToken       string        `env:"USER_SESSION_TOKEN"`
	Timeout            time.Duration `env:"USER_CLIENT_TIMEOUT" envDefault:"10s"`
	LogLevel           string        `env:"USER_CLIENT_LOG_LEVEL" envDefault:"warn"`

	PrintVersion bool

	Request models.UpdateUserRequest
}

// parseClientConfig builds the request from flags. Only flags that were
// actually passed become present fields, so "-phone=''" clears the phone
// while omitting -phone leaves it untouched.
func parseClientConfig(args []string) (clientConfig, error) {
	var cfg clientConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("error parsing env: %w", err)
	}

	fs := flag.NewFlagSet("user-client", flag.ContinueOnError)

	fs.StringVar(&cfg.Address, "a", cfg.Address, "server address")
	fs.StringVar(&cfg.AuthorizationToken, "auth-token", cfg.AuthorizationToken, "shared authorization secret")
	fs.StringVar(&cfg.SessionToken, "session-token", cfg.SessionToken, "current session token of the user")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "request timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.PrintVersion, "version", false, "print build info and exit")
	fs.StringVar(&cfg.Request.UserID, "id", "", "user id (24 hex characters)")

	fields := map[string]*models.Optional[string]{
		"first-name":        &cfg.Request.FirstName,
		"middle-name":       &cfg.Request.MiddleName,
		"last-name":         &cfg.Request.LastName,
		"password":          &cfg.Request.Password,
		"phone":             &cfg.Request.Phone,
		"new-session-token": &cfg.Request.SessionToken,
		"updated-datetime":  &cfg.Request.UpdatedDatetime,
	}
	values := make(map[string]*string, len(fields))
	for name := range fields {
		values[name] = fs.String(name, "", "new value of "+name)
	}

	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("error parsing flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if field, ok := fields[f.Name]; ok {
			*field = models.Some(*values[f.Name])
		}
	})

	if !cfg.PrintVersion && cfg.Request.IsEmpty() {
		return cfg, errNoFieldsToUpdate
	}

	return cfg, nil
}
