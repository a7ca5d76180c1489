// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no document matches a lookup. Callers
// must distinguish it from other store errors: anything else means the
// store itself failed and maps to an infrastructure error, not an
// empty result.
var ErrNotFound = errors.New("store: document not found")

// notFoundOr translates the driver's no-documents sentinel into
// ErrNotFound and passes every other error through unchanged.
func notFoundOr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
