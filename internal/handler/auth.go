// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bakhat123/socal/internal/auth"
	"github.com/bakhat123/socal/internal/middleware"
	"github.com/bakhat123/socal/internal/store"
	"github.com/bakhat123/socal/internal/util"
)

// loginRequest is the POST /admin/api/login payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /admin/api/login. Unknown email is a 404, a wrong
// password (or a passwordless account) a 401, and a store failure a
// 500; the three conditions stay distinguishable to the admin UI.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	email := util.NormalizeEmail(req.Email)
	user, err := h.store.FindUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		storeError(w, r, "login lookup failed", err)
		return
	}

	if user.PasswordHash == "" {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	match, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil {
		storeError(w, r, "password verification failed", err)
		return
	}
	if !match {
		slog.Warn("login failed", "category", "auth", "email", email)
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	// Rotate the session token on privilege change.
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		storeError(w, r, "session renewal failed", err)
		return
	}
	h.sessions.Put(r.Context(), middleware.SessionKeyUserEmail, user.Email)
	h.sessions.Put(r.Context(), middleware.SessionKeyUserRole, user.Role)

	slog.Info("login succeeded", "category", "auth", "email", email)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"email":   user.Email,
		"role":    user.Role,
	})
}

// Logout handles POST /admin/api/logout, destroying the session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		storeError(w, r, "session destroy failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
