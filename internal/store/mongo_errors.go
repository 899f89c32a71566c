// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// isMongoUnreachable reports whether err means the deployment could not be
// reached or did not answer in time.
func isMongoUnreachable(err error) bool {
	if isTransportError(err) {
		return true
	}

	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return true
	}

	var selectionErr topology.ServerSelectionError
	return errors.As(err, &selectionErr)
}

func wrapMongoError(err error, sentinel error) error {
	if isMongoUnreachable(err) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%w: %w", sentinel, err)
}
