// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-profile/internal/app"
	"github.com/MKhiriev/go-user-profile/internal/service"
	"github.com/MKhiriev/go-user-profile/internal/validators"
)

type errorResponse struct {
	target error
	status int
	reason string
}

// errorResponses is ordered: the first target matched with errors.Is wins.
var errorResponses = []errorResponse{
	{validators.ErrUnauthorized, http.StatusUnauthorized, app.MsgUnauthorized},
	{validators.ErrSessionTokenMissing, http.StatusBadRequest, app.MsgSessionTokenMissing},
	{validators.ErrInvalidPayload, http.StatusBadRequest, app.MsgInvalidJSON},
	{validators.ErrMissingIdentifier, http.StatusBadRequest, app.MsgMissingUserID},
	{validators.ErrInvalidIdentifierFormat, http.StatusBadRequest, app.MsgInvalidUserIDFormat},

	{service.ErrNotFoundOrUnauthorized, http.StatusNotFound, app.MsgUserNotFound},
	{service.ErrInvalidTimestamp, http.StatusBadRequest, app.MsgInvalidTimestamp},
	{service.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},
	{service.ErrNoChangeApplied, http.StatusBadRequest, app.MsgNoUpdatesMade},
	{service.ErrDatabaseUnavailable, http.StatusInternalServerError, app.MsgDatabaseUnavailable},
}

// responseFromError maps err to its HTTP status and reason. Anything
// unknown is an internal error.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.reason
		}
	}

	return http.StatusInternalServerError, app.MsgInternalServerError
}
