// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"

	"github.com/bakhat123/socal/internal/model"
)

// InsertEvent appends one record to the event log.
func (s *Store) InsertEvent(ctx context.Context, event model.Event) error {
	if _, err := s.events().InsertOne(ctx, event); err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}
