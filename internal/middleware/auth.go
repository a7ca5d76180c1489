// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// rate limiting, CSRF protection and request context handling.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs/v2"
)

// Session keys for storing the authenticated account.
const (
	SessionKeyUserEmail = "user_email"
	SessionKeyUserRole  = "user_role"
)

// RequireAuth creates middleware that requires an authenticated session
// on JSON admin routes. Unauthenticated requests get a 401 body rather
// than a login redirect.
func RequireAuth(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := sm.GetString(r.Context(), SessionKeyUserEmail)
			if email == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{"error": "authentication required"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
