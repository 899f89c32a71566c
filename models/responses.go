// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Values of [BaseResponse.Status].
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// BaseResponse is the JSON envelope of every PUT /user response.
type BaseResponse struct {
	// Status is either "success" or "failure".
	Status string `json:"status"`

	// Reason is a stable, human-readable description of the outcome.
	Reason string `json:"reason"`
}

// Success builds a successful response with the given reason.
func Success(reason string) BaseResponse {
	return BaseResponse{Status: StatusSuccess, Reason: reason}
}

// Failure builds a failed response with the given reason.
func Failure(reason string) BaseResponse {
	return BaseResponse{Status: StatusFailure, Reason: reason}
}
