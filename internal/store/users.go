// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bakhat123/socal/internal/model"
)

// ListUsers returns all accounts.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	cur, err := s.users().Find(ctx, bson.M{}, idSort)
	if err != nil {
		return nil, fmt.Errorf("finding users: %w", err)
	}
	users := make([]model.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return users, nil
}

// FindUserByEmail returns the account with the given email, or
// ErrNotFound. Callers are expected to pass an already-normalized
// (lowercased, trimmed) address.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := s.users().FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, notFoundOr(err)
	}
	return &user, nil
}

// InsertUser inserts a new account and returns its identifier.
func (s *Store) InsertUser(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	res, err := s.users().InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("inserting user: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateUser applies a partial update to one account, always refreshing
// updatedAt. Returns ErrNotFound when no document matches the id.
func (s *Store) UpdateUser(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now().UTC()
	res, err := s.users().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes one account by id. Returns ErrNotFound when
// nothing was deleted.
func (s *Store) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.users().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
