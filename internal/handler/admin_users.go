// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bakhat123/socal/internal/auth"
	"github.com/bakhat123/socal/internal/content"
	"github.com/bakhat123/socal/internal/store"
	"github.com/bakhat123/socal/internal/util"
)

// AdminListUsers handles GET /admin/api/users. Password hashes never
// appear in the response; the model excludes them from JSON.
func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		storeError(w, r, "failed to list users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// AdminCreateUser handles POST /admin/api/users. The password is
// hashed before persisting; the store never holds plaintext. Accounts
// without a password (externally authenticated) are allowed.
func (h *Handler) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	var req content.CreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	email := util.NormalizeEmail(req.Email)
	if _, err := h.store.FindUserByEmail(r.Context(), email); err == nil {
		writeError(w, http.StatusBadRequest, "a user with this email already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		storeError(w, r, "failed to check user email", err)
		return
	}

	var passwordHash string
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			storeError(w, r, "failed to hash password", err)
			return
		}
		passwordHash = hash
	}

	id, err := h.store.InsertUser(r.Context(), req.User(passwordHash, time.Now().UTC()))
	if err != nil {
		storeError(w, r, "failed to insert user", err)
		return
	}

	slog.Info("user created", "category", "user", "user_id", id.Hex(), "email", email)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User created successfully",
		"_id":     id.Hex(),
	})
}

// AdminUpdateUser handles PUT /admin/api/users. A plaintext password in
// the patch is re-hashed before it reaches the store.
func (h *Handler) AdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := decodeJSON(w, r, &body); err != nil {
		return
	}

	id, err := idFromBody(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "valid user id is required")
		return
	}

	set := patchFromBody(body)
	if email, ok := set["email"].(string); ok {
		set["email"] = util.NormalizeEmail(email)
	}
	if password, ok := set["password"].(string); ok && password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			storeError(w, r, "failed to hash password", err)
			return
		}
		set["password"] = hash
	}

	if err := h.store.UpdateUser(r.Context(), id, set); err != nil {
		notFoundOr500(w, r, err, "User not found", "failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "User updated successfully"})
}

// AdminDeleteUser handles DELETE /admin/api/users.
func (h *Handler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := decodeJSON(w, r, &body); err != nil {
		return
	}

	id, err := idFromBody(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "valid user id is required")
		return
	}

	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		notFoundOr500(w, r, err, "User not found", "failed to delete user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "User deleted successfully"})
}
