// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListBlogs handles GET /api/blogs/{locale}: the Published blogs for a
// locale, replaced wholesale by the English list when empty.
func (h *Handler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	locale, ok := localeParam(w, r, "locale")
	if !ok {
		return
	}

	blogs, err := h.resolver.Blogs(r.Context(), locale)
	if err != nil {
		storeError(w, r, "failed to list blogs", err)
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}

// GetBlog handles GET /api/blogs/{locale}/{slug}: one Published blog,
// falling back to the English variant of the same slug, else 404.
func (h *Handler) GetBlog(w http.ResponseWriter, r *http.Request) {
	locale, ok := localeParam(w, r, "locale")
	if !ok {
		return
	}
	slug := chi.URLParam(r, "slug")

	blog, err := h.resolver.BlogBySlug(r.Context(), locale, slug)
	if err != nil {
		notFoundOr500(w, r, err, "Blog not found", "failed to get blog")
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

// MapBlogSlug handles GET /api/blogs/map/{from}/{to}/{slug}: translates
// a blog slug between locales via the shared group_id, degrading to the
// original slug when no counterpart exists.
func (h *Handler) MapBlogSlug(w http.ResponseWriter, r *http.Request) {
	from, ok := localeParam(w, r, "from")
	if !ok {
		return
	}
	to, ok := localeParam(w, r, "to")
	if !ok {
		return
	}
	slug := chi.URLParam(r, "slug")

	mapped, err := h.resolver.MapSlug(r.Context(), from, to, slug)
	if err != nil {
		storeError(w, r, "failed to map blog slug", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"slug": mapped})
}
