// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests and blocks until SIGTERM, SIGINT or
	// SIGQUIT triggers a graceful shutdown.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
