// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bakhat123/socal/internal/i18n"
	"github.com/bakhat123/socal/internal/middleware"
	"github.com/bakhat123/socal/internal/model"
	"github.com/bakhat123/socal/internal/seo"
)

// Sitemap handles GET /sitemap.xml: home, static, city, blog and county
// URLs cross-producted with every supported locale. Any store failure
// degrades to the minimal fallback sitemap rather than an error page,
// so crawlers always get a valid document.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	siteURL := strings.TrimSuffix(h.cfg.SiteURL, "/")

	cities, err := h.store.ListAllCities(r.Context())
	if err != nil {
		h.fallbackSitemap(w, r, siteURL, now, "failed to list cities for sitemap", err)
		return
	}
	blogs, err := h.store.ListPublishedBlogs(r.Context())
	if err != nil {
		h.fallbackSitemap(w, r, siteURL, now, "failed to list blogs for sitemap", err)
		return
	}
	counties, err := h.store.ListAllCounties(r.Context())
	if err != nil {
		h.fallbackSitemap(w, r, siteURL, now, "failed to list counties for sitemap", err)
		return
	}

	b := seo.NewBuilder(siteURL, i18n.Locales(), now)
	b.AddHomePages()
	b.AddStaticPages()
	b.AddCities(cityEntries(cities))
	b.AddBlogs(blogEntries(blogs))
	b.AddCounties(countyEntries(counties))

	out, err := b.Build()
	if err != nil {
		h.fallbackSitemap(w, r, siteURL, now, "failed to build sitemap", err)
		return
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	_, _ = w.Write(out)
}

// fallbackSitemap logs the failure and serves the single-URL sitemap
// with a 200 so crawlers never see the outage.
func (h *Handler) fallbackSitemap(w http.ResponseWriter, r *http.Request, siteURL string, now time.Time, logMsg string, err error) {
	slog.Error(logMsg, "error", err, "request_id", middleware.GetRequestID(r.Context()))

	out, buildErr := seo.FallbackSitemap(siteURL, i18n.DefaultLocale, now)
	if buildErr != nil {
		http.Error(w, "service unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	_, _ = w.Write(out)
}

func cityEntries(cities []model.City) []seo.Entry {
	entries := make([]seo.Entry, 0, len(cities))
	for _, c := range cities {
		entries = append(entries, seo.Entry{Slug: c.Slug, UpdatedAt: c.UpdatedAt, CreatedAt: c.CreatedAt})
	}
	return entries
}

func blogEntries(blogs []model.Blog) []seo.Entry {
	entries := make([]seo.Entry, 0, len(blogs))
	for _, b := range blogs {
		entries = append(entries, seo.Entry{Slug: b.Slug, UpdatedAt: b.UpdatedAt, CreatedAt: b.CreatedAt})
	}
	return entries
}

func countyEntries(counties []model.County) []seo.Entry {
	entries := make([]seo.Entry, 0, len(counties))
	for _, c := range counties {
		entries = append(entries, seo.Entry{Slug: c.Slug, UpdatedAt: c.UpdatedAt, CreatedAt: c.CreatedAt})
	}
	return entries
}

// Robots handles GET /robots.txt.
func (h *Handler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.GenerateRobots(seo.RobotsConfig{
		SiteURL:     h.cfg.SiteURL,
		DisallowAll: false,
	})))
}
