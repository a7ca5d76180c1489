// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bakhat123/socal/internal/middleware"
)

// Routes builds the application router: public content API, SEO
// endpoints and the session-protected admin API.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(h.sessions.LoadAndSave)

	r.Get("/healthz", h.Healthz)
	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/robots.txt", h.Robots)

	r.Route("/api", func(r chi.Router) {
		r.Get("/blogs/map/{from}/{to}/{slug}", h.MapBlogSlug)
		r.Get("/blogs/{locale}", h.ListBlogs)
		r.Get("/blogs/{locale}/{slug}", h.GetBlog)

		r.Get("/cities/{locale}", h.ListCities)
		r.Get("/cities/{locale}/{slug}", h.GetCity)

		r.Get("/counties/{locale}", h.ListCounties)
		r.Get("/counties/{locale}/{slug}", h.GetCounty)

		r.Get("/home", h.GetHome)
		r.With(middleware.RequireAuth(h.sessions)).Put("/home", h.UpdateHome)
	})

	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(h.cfg.SessionSecret), h.cfg.IsDevelopment())))

		r.With(middleware.LoginRateLimit(h.cfg.LoginRPS, h.cfg.LoginBurst)).
			Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(h.sessions))

			r.Post("/logout", h.Logout)

			r.Get("/blogs", h.AdminListBlogs)
			r.Post("/blogs", h.AdminCreateBlog)
			r.Put("/blogs", h.AdminUpdateBlog)
			r.Delete("/blogs", h.AdminDeleteBlog)

			r.Get("/users", h.AdminListUsers)
			r.Post("/users", h.AdminCreateUser)
			r.Put("/users", h.AdminUpdateUser)
			r.Delete("/users", h.AdminDeleteUser)
		})
	})

	return r
}
