// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bakhat123/socal/internal/content"
)

// AdminListBlogs handles GET /admin/api/blogs: every blog in every
// status, Drafts included.
func (h *Handler) AdminListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.store.ListAllBlogs(r.Context())
	if err != nil {
		storeError(w, r, "failed to list blogs for admin", err)
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}

// AdminCreateBlog handles POST /admin/api/blogs. The full required-field
// contract is validated before any write; the first violation is
// reported with the exact field name and nothing is inserted.
func (h *Handler) AdminCreateBlog(w http.ResponseWriter, r *http.Request) {
	var req content.CreateBlogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Uniqueness guards: one document per (slug, language) and per
	// (group_id, language).
	exists, err := h.store.BlogSlugExists(r.Context(), req.Slug, req.Language)
	if err != nil {
		storeError(w, r, "failed to check blog slug", err)
		return
	}
	if exists {
		writeError(w, http.StatusBadRequest, "a blog with this slug already exists for this language")
		return
	}
	exists, err = h.store.BlogVariantExists(r.Context(), req.GroupID, req.Language)
	if err != nil {
		storeError(w, r, "failed to check blog translation group", err)
		return
	}
	if exists {
		writeError(w, http.StatusBadRequest, "a translation for this group_id already exists for this language")
		return
	}

	id, err := h.store.InsertBlog(r.Context(), req.Blog(time.Now().UTC()))
	if err != nil {
		storeError(w, r, "failed to insert blog", err)
		return
	}

	slog.Info("blog created", "category", "content", "blog_id", id.Hex(), "slug", req.Slug, "language", req.Language)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Blog created successfully",
		"_id":     id.Hex(),
	})
}

// AdminUpdateBlog handles PUT /admin/api/blogs. The payload carries the
// document id plus any subset of fields; updatedAt is always refreshed
// and full validation is not re-run.
func (h *Handler) AdminUpdateBlog(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := decodeJSON(w, r, &body); err != nil {
		return
	}

	id, err := idFromBody(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "valid blog id is required")
		return
	}

	if err := h.store.UpdateBlog(r.Context(), id, patchFromBody(body)); err != nil {
		notFoundOr500(w, r, err, "Blog not found", "failed to update blog")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Blog updated successfully"})
}

// AdminDeleteBlog handles DELETE /admin/api/blogs. Deletes are
// destructive; there is no versioning or audit trail.
func (h *Handler) AdminDeleteBlog(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := decodeJSON(w, r, &body); err != nil {
		return
	}

	id, err := idFromBody(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "valid blog id is required")
		return
	}

	if err := h.store.DeleteBlog(r.Context(), id); err != nil {
		notFoundOr500(w, r, err, "Blog not found", "failed to delete blog")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Blog deleted successfully"})
}
