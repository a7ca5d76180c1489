// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store provides the MongoDB-backed document store: connection
// lifecycle and per-collection repositories for blogs, cities, counties,
// home content, users and the event log.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	CollectionBlogs    = "blogs"
	CollectionCities   = "cities"
	CollectionCounties = "counties"
	CollectionHome     = "home"
	CollectionUsers    = "users"
	CollectionEvents   = "events"
)

// connectTimeout bounds the initial connect + ping at startup.
const connectTimeout = 10 * time.Second

// Store holds the database handle shared by all repositories. It is
// created once at process start and closed at shutdown; nothing in the
// application reaches the database through package-level state.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to MongoDB, verifies the connection with a ping and
// returns a ready Store.
func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Close disconnects from the database.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) blogs() *mongo.Collection    { return s.db.Collection(CollectionBlogs) }
func (s *Store) cities() *mongo.Collection   { return s.db.Collection(CollectionCities) }
func (s *Store) counties() *mongo.Collection { return s.db.Collection(CollectionCounties) }
func (s *Store) home() *mongo.Collection     { return s.db.Collection(CollectionHome) }
func (s *Store) users() *mongo.Collection    { return s.db.Collection(CollectionUsers) }
func (s *Store) events() *mongo.Collection   { return s.db.Collection(CollectionEvents) }
