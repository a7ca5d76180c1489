// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/bakhat123/socal/internal/i18n"
	"github.com/bakhat123/socal/internal/model"
)

// homeLocale reads the ?locale query parameter, defaulting to English.
func homeLocale(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := r.URL.Query().Get("locale")
	if raw == "" {
		return i18n.DefaultLocale, true
	}
	code, ok := i18n.Normalize(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported locale")
		return "", false
	}
	return code, true
}

// GetHome handles GET /api/home?locale=xx: the per-locale home page
// configuration with English fallback. A store failure surfaces as a
// 500 like every other content read; it is never masked by a default
// payload.
func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	locale, ok := homeLocale(w, r)
	if !ok {
		return
	}

	home, err := h.resolver.HomeByLocale(r.Context(), locale)
	if err != nil {
		notFoundOr500(w, r, err, "Home content not found", "failed to get home content")
		return
	}
	writeJSON(w, http.StatusOK, home)
}

// UpdateHome handles PUT /api/home?locale=xx: upserts the singleton
// home document for a locale. Home documents are never deleted.
func (h *Handler) UpdateHome(w http.ResponseWriter, r *http.Request) {
	locale, ok := homeLocale(w, r)
	if !ok {
		return
	}

	var home model.Home
	if err := decodeJSON(w, r, &home); err != nil {
		return
	}

	if err := h.store.UpsertHome(r.Context(), locale, &home); err != nil {
		storeError(w, r, "failed to upsert home content", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Home data updated successfully",
		"locale":  locale,
	})
}
