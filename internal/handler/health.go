// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
)

// Healthz handles GET /healthz, pinging the document store.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		storeError(w, r, "health check failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
