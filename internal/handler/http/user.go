// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-user-profile/internal/app"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/utils"
	"github.com/MKhiriev/go-user-profile/models"
)

const (
	authorizationHeader = "Authorization"
	sessionTokenHeader  = "session_token"
)

// sensitiveFields are masked before the request body is logged.
var sensitiveFields = []string{"password", "session_token"}

// updateUser handles PUT /user: admission checks first, then the update
// flow, then exactly one JSON response.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		// an unreadable body is judged as an empty payload after the header checks
		log.Warn().Err(err).Msg("error reading request body")
		body = nil
	}

	log.Debug().Str("body", utils.MaskJSONFields(body, sensitiveFields...)).Msg("update request")

	validated, err := h.guard.Guard(ctx, models.RawUpdateRequest{
		Authorization: r.Header.Get(authorizationHeader),
		SessionToken:  r.Header.Get(sessionTokenHeader),
		Body:          body,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.UserService.UpdateUser(ctx, validated); err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.Success(app.MsgRecordUpdated), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, reason := responseFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("update failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("update rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.Failure(reason), status); writeErr != nil {
		log.Err(writeErr).Msg("error writing response")
	}
}
