package http

import (
	"net/http"

	"github.com/MKhiriev/go-docs-keeper/models"
)

// getWorkspaceConfig returns the workspace file of the folder, creating an
// empty one on first access.
func (h *Handler) getWorkspaceConfig(w http.ResponseWriter, r *http.Request) {
	folder, err := queryPath(r)
	if err != nil {
		respond(w, r, models.WorkspaceConfig{}, err)
		return
	}

	cfg, err := h.services.WorkspaceConfigService.Get(r.Context(), folder)
	respond(w, r, cfg, err)
}

func (h *Handler) setWorkspaceConfig(w http.ResponseWriter, r *http.Request) {
	folder, err := queryPath(r)
	if err != nil {
		respond(w, r, models.WorkspaceConfig{}, err)
		return
	}

	var cfg models.WorkspaceConfig
	if err = decodeBody(r, &cfg); err != nil {
		respond(w, r, models.WorkspaceConfig{}, err)
		return
	}

	err = h.services.WorkspaceConfigService.Set(r.Context(), folder, cfg)
	respond(w, r, cfg, err)
}
