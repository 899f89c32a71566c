// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-user-profile/internal/adapter"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/utils"
	"github.com/MKhiriev/go-user-profile/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseClientConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if cfg.PrintVersion {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return 0
	}

	log := logger.NewClientLogger("user-client", cfg.LogLevel)

	client, err := adapter.NewHTTPUserClient(cfg.Address, cfg.AuthorizationToken, cfg.Timeout, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating client")
		return 1
	}

	ctx := utils.WithTraceID(context.Background(), uuid.NewString())

	resp, err := client.UpdateUser(ctx, cfg.SessionToken, cfg.Request)
	if err != nil {
		log.Error().Err(err).Msg("update failed")
		if resp.Reason != "" {
			fmt.Println(resp.Reason)
		}
		return 1
	}

	fmt.Println(resp.Reason)
	return 0
}
