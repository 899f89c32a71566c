// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-user-profile/models"
)

// Field name constants name the admission checks. They are passed to
// validateHeaders to restrict validation to a subset of checks.
const (
	// FieldAuthorization targets the shared secret in the Authorization header.
	FieldAuthorization = "authorization"

	// FieldSessionToken targets the session_token header.
	FieldSessionToken = "session_token"
)

// userIDKey is the payload key carrying the record identifier.
const userIDKey = "user_id"

// UpdateRequestGuard implements RequestGuard for PUT /user.
//
// Order of checks:
//  1. Authorization header equals the configured secret
//  2. session_token header is non-empty
//  3. body is a non-empty JSON object
//  4. user_id is present and non-empty
//  5. user_id is a 24-hex-digit object id
//  6. every known field has the expected JSON type
type UpdateRequestGuard struct {
	authorizationToken []byte
}

// NewUpdateRequestGuard builds a guard comparing the Authorization header
// with authorizationToken. An empty token rejects every request.
func NewUpdateRequestGuard(authorizationToken string) RequestGuard {
	return &UpdateRequestGuard{authorizationToken: []byte(authorizationToken)}
}

func (g *UpdateRequestGuard) Guard(ctx context.Context, req models.RawUpdateRequest) (models.ValidatedUpdate, error) {
	if err := g.validateHeaders(ctx, req); err != nil {
		return models.ValidatedUpdate{}, err
	}

	payload, err := decodePayload(req.Body)
	if err != nil {
		return models.ValidatedUpdate{}, err
	}

	userID, err := parseUserID(payload[userIDKey])
	if err != nil {
		return models.ValidatedUpdate{}, err
	}

	var update models.UserUpdate
	if err = json.Unmarshal(req.Body, &update); err != nil {
		return models.ValidatedUpdate{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return models.ValidatedUpdate{
		UserID:       userID,
		SessionToken: req.SessionToken,
		Update:       update,
	}, nil
}

// validateHeaders checks the named header fields in the given order.
// With no fields, both the authorization and session token are checked.
func (g *UpdateRequestGuard) validateHeaders(_ context.Context, req models.RawUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAuthorization, FieldSessionToken}
	}

	for _, f := range fields {
		switch f {
		case FieldAuthorization:
			if !g.authorized(req.Authorization) {
				return ErrUnauthorized
			}
		case FieldSessionToken:
			if req.SessionToken == "" {
				return ErrSessionTokenMissing
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (g *UpdateRequestGuard) authorized(header string) bool {
	if len(g.authorizationToken) == 0 {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(header), g.authorizationToken) == 1
}

// decodePayload returns the top-level members of a JSON object body.
// Anything else, including an empty object, is an invalid payload.
func decodePayload(body []byte) (map[string]json.RawMessage, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if len(payload) == 0 {
		return nil, ErrInvalidPayload
	}

	return payload, nil
}

func parseUserID(raw json.RawMessage) (models.UserID, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return models.UserID{}, ErrMissingIdentifier
	}

	var hex string
	if err := json.Unmarshal(raw, &hex); err != nil {
		return models.UserID{}, fmt.Errorf("%w: user_id must be a string", ErrInvalidIdentifierFormat)
	}

	if hex == "" {
		return models.UserID{}, ErrMissingIdentifier
	}

	id, err := models.ParseUserID(hex)
	if err != nil {
		return models.UserID{}, fmt.Errorf("%w: %v", ErrInvalidIdentifierFormat, err)
	}

	return id, nil
}
