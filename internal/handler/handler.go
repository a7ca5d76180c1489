// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the JSON and XML HTTP handlers: public
// content reads with locale fallback, admin CRUD, login, and the
// sitemap/robots endpoints.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bakhat123/socal/internal/config"
	"github.com/bakhat123/socal/internal/content"
	"github.com/bakhat123/socal/internal/i18n"
	"github.com/bakhat123/socal/internal/middleware"
	"github.com/bakhat123/socal/internal/model"
	"github.com/bakhat123/socal/internal/store"
)

// Store is everything the handlers need from the document store.
// *store.Store satisfies it; tests substitute a fake.
type Store interface {
	content.BlogSource
	content.CitySource
	content.CountySource
	content.HomeSource

	ListAllBlogs(ctx context.Context) ([]model.Blog, error)
	ListPublishedBlogs(ctx context.Context) ([]model.Blog, error)
	BlogVariantExists(ctx context.Context, groupID, language string) (bool, error)
	BlogSlugExists(ctx context.Context, slug, language string) (bool, error)
	InsertBlog(ctx context.Context, blog *model.Blog) (primitive.ObjectID, error)
	UpdateBlog(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeleteBlog(ctx context.Context, id primitive.ObjectID) error

	ListAllCities(ctx context.Context) ([]model.City, error)
	ListAllCounties(ctx context.Context) ([]model.County, error)

	UpsertHome(ctx context.Context, locale string, home *model.Home) error

	ListUsers(ctx context.Context) ([]model.User, error)
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	InsertUser(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeleteUser(ctx context.Context, id primitive.ObjectID) error

	Ping(ctx context.Context) error
}

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	cfg      *config.Config
	store    Store
	resolver *content.Resolver
	sessions *scs.SessionManager
}

// New creates a Handler over the given store and session manager.
func New(cfg *config.Config, st Store, sessions *scs.SessionManager) *Handler {
	return &Handler{
		cfg:      cfg,
		store:    st,
		resolver: content.NewResolver(st, st, st, st),
		sessions: sessions,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes the request body into dst, answering 400 on
// malformed JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return err
	}
	return nil
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]any{"error": message})
}

// storeError logs the full store failure server-side and answers with a
// deliberately generic 500 so infrastructure detail never leaks to the
// caller and "backend down" is never mistaken for "content absent".
func storeError(w http.ResponseWriter, r *http.Request, logMsg string, err error) {
	slog.Error(logMsg, "error", err, "request_id", middleware.GetRequestID(r.Context()))
	writeError(w, http.StatusInternalServerError, "service unavailable")
}

// localeParam extracts and normalizes the {locale} path parameter.
// Responds 400 and returns false for locales the site does not serve.
func localeParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	code, ok := i18n.Normalize(chi.URLParam(r, name))
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported locale")
		return "", false
	}
	return code, true
}

// idFromBody extracts the document id carried in a mutation payload.
// Both "_id" and "id" are accepted for compatibility with the admin UI.
func idFromBody(body map[string]any) (primitive.ObjectID, error) {
	raw, ok := body["_id"].(string)
	if !ok || raw == "" {
		raw, _ = body["id"].(string)
	}
	if raw == "" {
		return primitive.NilObjectID, errors.New("missing id")
	}
	return primitive.ObjectIDFromHex(raw)
}

// patchFromBody turns a decoded mutation payload into a $set document,
// stripping identifier and create-time fields. Partial updates may
// carry any subset of fields; required-field validation is a create-time
// contract only.
func patchFromBody(body map[string]any) bson.M {
	set := bson.M{}
	for k, v := range body {
		switch k {
		case "_id", "id", "createdAt":
			continue
		}
		set[k] = v
	}
	return set
}

// notFoundOr500 maps a read-path error to 404 for a genuine miss and a
// generic 500 for a store failure, keeping the two distinguishable.
func notFoundOr500(w http.ResponseWriter, r *http.Request, err error, notFoundMsg, logMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, notFoundMsg)
		return
	}
	storeError(w, r, logMsg, err)
}
