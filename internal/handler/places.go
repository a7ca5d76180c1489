// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListCities handles GET /api/cities/{locale}.
func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	locale, ok := localeParam(w, r, "locale")
	if !ok {
		return
	}

	cities, err := h.resolver.Cities(r.Context(), locale)
	if err != nil {
		storeError(w, r, "failed to list cities", err)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}

// GetCity handles GET /api/cities/{locale}/{slug}. Cities have no
// publish gate: present means visible.
func (h *Handler) GetCity(w http.ResponseWriter, r *http.Request) {
	locale, ok := localeParam(w, r, "locale")
	if !ok {
		return
	}
	slug := chi.URLParam(r, "slug")

	city, err := h.resolver.CityBySlug(r.Context(), locale, slug)
	if err != nil {
		notFoundOr500(w, r, err, "City not found", "failed to get city")
		return
	}
	writeJSON(w, http.StatusOK, city)
}

// ListCounties handles GET /api/counties/{locale}.
func (h *Handler) ListCounties(w http.ResponseWriter, r *http.Request) {
	locale, ok := localeParam(w, r, "locale")
	if !ok {
		return
	}

	counties, err := h.resolver.Counties(r.Context(), locale)
	if err != nil {
		storeError(w, r, "failed to list counties", err)
		return
	}
	writeJSON(w, http.StatusOK, counties)
}

// GetCounty handles GET /api/counties/{locale}/{slug}.
func (h *Handler) GetCounty(w http.ResponseWriter, r *http.Request) {
	locale, ok := localeParam(w, r, "locale")
	if !ok {
		return
	}
	slug := chi.URLParam(r, "slug")

	county, err := h.resolver.CountyBySlug(r.Context(), locale, slug)
	if err != nil {
		notFoundOr500(w, r, err, "County not found", "failed to get county")
		return
	}
	writeJSON(w, http.StatusOK, county)
}
