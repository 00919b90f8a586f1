// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-docs-keeper/internal/app"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/utils"
	"github.com/MKhiriev/go-docs-keeper/models"
)

// getConfig serves the current preferences as a bare JSON object.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.PreferencesService.Get(), http.StatusOK)
}

// getConfigView serves the preferences together with the derived theme and
// toolbar visibility.
func (h *Handler) getConfigView(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.PreferencesService.View(), http.StatusOK)
}

// updateConfig applies a shallow patch. A toolbar map in the body replaces the
// stored map as a whole. Unknown keys are rejected with 400 Bad Request and
// leave the preferences untouched.
func (h *Handler) updateConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var patch models.ConfigPatch
	if err := decodeBody(r, &patch); err != nil {
		log.Err(err).Str("func", "*Handler.updateConfig").Msg("invalid config patch")
		http.Error(w, fmt.Sprintf("%s: %v", app.MsgInvalidDataProvided, err), http.StatusBadRequest)
		return
	}

	cfg, err := h.services.PreferencesService.Update(r.Context(), patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateConfig").Msg("error updating config")
		status := statusFromError(err)
		http.Error(w, publicError(err, status).Error(), status)
		return
	}

	_, _ = utils.WriteJSON(w, cfg, http.StatusOK)
}
