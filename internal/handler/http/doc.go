// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the user profile service.
//
// It exposes route wiring, the PUT /user and GET /version handlers, and the
// middleware chain: panic recovery, request tracing, access logging and
// gzip compression. Every outcome of an update is rendered as a
// {"status","reason"} JSON body with a stable reason string.
package http
