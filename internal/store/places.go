// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bakhat123/socal/internal/model"
)

// ListCities returns the city guides for one language.
func (s *Store) ListCities(ctx context.Context, language string) ([]model.City, error) {
	cur, err := s.cities().Find(ctx, bson.M{"language": language}, idSort)
	if err != nil {
		return nil, fmt.Errorf("finding cities: %w", err)
	}
	cities := make([]model.City, 0)
	if err := cur.All(ctx, &cities); err != nil {
		return nil, fmt.Errorf("decoding cities: %w", err)
	}
	return cities, nil
}

// ListAllCities returns every city guide across all languages.
func (s *Store) ListAllCities(ctx context.Context) ([]model.City, error) {
	cur, err := s.cities().Find(ctx, bson.M{}, idSort)
	if err != nil {
		return nil, fmt.Errorf("finding cities: %w", err)
	}
	cities := make([]model.City, 0)
	if err := cur.All(ctx, &cities); err != nil {
		return nil, fmt.Errorf("decoding cities: %w", err)
	}
	return cities, nil
}

// FindCity returns the city guide with the given slug and language, or
// ErrNotFound. Cities have no publish-status gate.
func (s *Store) FindCity(ctx context.Context, language, slug string) (*model.City, error) {
	var city model.City
	err := s.cities().FindOne(ctx, bson.M{"slug": slug, "language": language},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})).Decode(&city)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &city, nil
}

// ListCounties returns the county guides for one language.
func (s *Store) ListCounties(ctx context.Context, language string) ([]model.County, error) {
	cur, err := s.counties().Find(ctx, bson.M{"language": language}, idSort)
	if err != nil {
		return nil, fmt.Errorf("finding counties: %w", err)
	}
	counties := make([]model.County, 0)
	if err := cur.All(ctx, &counties); err != nil {
		return nil, fmt.Errorf("decoding counties: %w", err)
	}
	return counties, nil
}

// ListAllCounties returns every county guide across all languages.
func (s *Store) ListAllCounties(ctx context.Context) ([]model.County, error) {
	cur, err := s.counties().Find(ctx, bson.M{}, idSort)
	if err != nil {
		return nil, fmt.Errorf("finding counties: %w", err)
	}
	counties := make([]model.County, 0)
	if err := cur.All(ctx, &counties); err != nil {
		return nil, fmt.Errorf("decoding counties: %w", err)
	}
	return counties, nil
}

// FindCounty returns the county guide with the given slug and language,
// or ErrNotFound.
func (s *Store) FindCounty(ctx context.Context, language, slug string) (*model.County, error) {
	var county model.County
	err := s.counties().FindOne(ctx, bson.M{"slug": slug, "language": language},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})).Decode(&county)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &county, nil
}
