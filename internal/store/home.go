// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bakhat123/socal/internal/model"
)

// FindHome returns the home page configuration for one locale, or
// ErrNotFound.
func (s *Store) FindHome(ctx context.Context, locale string) (*model.Home, error) {
	var home model.Home
	err := s.home().FindOne(ctx, bson.M{"locale": locale}).Decode(&home)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &home, nil
}

// UpsertHome writes the home page configuration for one locale,
// creating the document if it does not exist. Home documents are never
// deleted.
func (s *Store) UpsertHome(ctx context.Context, locale string, home *model.Home) error {
	home.Locale = locale
	home.UpdatedAt = time.Now().UTC()

	_, err := s.home().ReplaceOne(ctx, bson.M{"locale": locale}, home,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upserting home for %s: %w", locale, err)
	}
	return nil
}
