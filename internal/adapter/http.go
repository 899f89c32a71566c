// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/utils"
	"github.com/MKhiriev/go-user-profile/models"
)

const (
	authorizationHeader = "Authorization"
	sessionTokenHeader  = "session_token"
	traceIDHeader       = "X-Trace-ID"
)

type httpUserClient struct {
	client *utils.HTTPClient

	authorizationToken string

	logger *logger.Logger
}

// NewHTTPUserClient builds a [UserClient] for the server at address. A
// missing scheme defaults to http.
func NewHTTPUserClient(address, authorizationToken string, timeout time.Duration, logger *logger.Logger) (UserClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpUserClient{
		client:             utils.NewHTTPClient(baseURL, timeout),
		authorizationToken: authorizationToken,
		logger:             logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpUserClient) UpdateUser(ctx context.Context, sessionToken string, req models.UpdateUserRequest) (models.BaseResponse, error) {
	var result models.BaseResponse

	r := h.client.R().
		SetContext(ctx).
		SetHeader(authorizationHeader, h.authorizationToken).
		SetHeader(sessionTokenHeader, sessionToken).
		SetBody(req)

	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		r.SetHeader(traceIDHeader, traceID)
	}

	resp, err := r.Put("/user")
	if err != nil {
		return result, fmt.Errorf("update user request: %w", err)
	}

	h.logger.Debug().
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get(traceIDHeader)).
		Msg("update user response")

	if len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), &result); err != nil {
			result = models.BaseResponse{}
		}
	}

	if err = mapHTTPError(resp, result.Reason); err != nil {
		return result, err
	}

	return result, nil
}

func (h *httpUserClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp, ""); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
