// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bakhat123/socal/internal/model"
)

// idSort keeps list iteration order deterministic. When duplicate
// (slug, language) documents exist, sorting by _id makes the pick
// stable across requests.
var idSort = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

// ListBlogs returns the Published blogs for one language.
func (s *Store) ListBlogs(ctx context.Context, language string) ([]model.Blog, error) {
	return s.findBlogs(ctx, bson.M{"language": language, "status": model.BlogStatusPublished})
}

// ListPublishedBlogs returns every Published blog across all languages.
// Used by the sitemap generator; Drafts are filtered here so they can
// never leak into the URL manifest.
func (s *Store) ListPublishedBlogs(ctx context.Context) ([]model.Blog, error) {
	return s.findBlogs(ctx, bson.M{"status": model.BlogStatusPublished})
}

// ListAllBlogs returns every blog regardless of status, for the admin view.
func (s *Store) ListAllBlogs(ctx context.Context) ([]model.Blog, error) {
	return s.findBlogs(ctx, bson.M{})
}

func (s *Store) findBlogs(ctx context.Context, filter bson.M) ([]model.Blog, error) {
	cur, err := s.blogs().Find(ctx, filter, idSort)
	if err != nil {
		return nil, fmt.Errorf("finding blogs: %w", err)
	}
	blogs := make([]model.Blog, 0)
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decoding blogs: %w", err)
	}
	return blogs, nil
}

// FindBlog returns the Published blog with the given slug and language,
// or ErrNotFound.
func (s *Store) FindBlog(ctx context.Context, language, slug string) (*model.Blog, error) {
	var blog model.Blog
	err := s.blogs().FindOne(ctx, bson.M{
		"slug":     slug,
		"language": language,
		"status":   model.BlogStatusPublished,
	}, options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})).Decode(&blog)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &blog, nil
}

// BlogVariantExists reports whether a blog with the given group_id
// already exists in the given language, in any status.
func (s *Store) BlogVariantExists(ctx context.Context, groupID, language string) (bool, error) {
	n, err := s.blogs().CountDocuments(ctx, bson.M{"group_id": groupID, "language": language})
	if err != nil {
		return false, fmt.Errorf("counting blog variants: %w", err)
	}
	return n > 0, nil
}

// BlogSlugExists reports whether a blog with the given slug already
// exists in the given language, in any status.
func (s *Store) BlogSlugExists(ctx context.Context, slug, language string) (bool, error) {
	n, err := s.blogs().CountDocuments(ctx, bson.M{"slug": slug, "language": language})
	if err != nil {
		return false, fmt.Errorf("counting blog slugs: %w", err)
	}
	return n > 0, nil
}

// InsertBlog inserts a new blog document and returns its identifier.
func (s *Store) InsertBlog(ctx context.Context, blog *model.Blog) (primitive.ObjectID, error) {
	res, err := s.blogs().InsertOne(ctx, blog)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("inserting blog: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateBlog applies a partial update to one blog, always refreshing
// updatedAt. Returns ErrNotFound when no document matches the id.
func (s *Store) UpdateBlog(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now().UTC()
	res, err := s.blogs().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("updating blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBlog removes one blog by id. Returns ErrNotFound when nothing
// was deleted.
func (s *Store) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.blogs().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
