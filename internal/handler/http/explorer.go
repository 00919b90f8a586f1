package http

import (
	"net/http"

	"github.com/MKhiriev/go-docs-keeper/models"
)

func (h *Handler) openFolder(w http.ResponseWriter, r *http.Request) {
	path, err := queryPath(r)
	if err != nil {
		respond[[]models.FileTree](w, r, nil, err)
		return
	}

	tree, err := h.services.ExplorerService.Open(r.Context(), path)
	respond(w, r, tree, err)
}

func (h *Handler) readFile(w http.ResponseWriter, r *http.Request) {
	path, err := queryPath(r)
	if err != nil {
		respond(w, r, models.DocFile{}, err)
		return
	}

	file, err := h.services.ExplorerService.Read(r.Context(), path)
	respond(w, r, file, err)
}

// readFiles returns the files that exist among the requested paths.
func (h *Handler) readFiles(w http.ResponseWriter, r *http.Request) {
	var req models.ReadFilesRequest
	if err := decodeBody(r, &req); err != nil {
		respond[[]models.DocFile](w, r, nil, err)
		return
	}

	files, err := h.services.ExplorerService.ReadMany(r.Context(), req.Paths)
	respond(w, r, files, err)
}

func (h *Handler) writeFile(w http.ResponseWriter, r *http.Request) {
	var req models.WriteFileRequest
	if err := decodeBody(r, &req); err != nil {
		respond(w, r, models.DocFile{}, err)
		return
	}
	if req.Path == "" {
		respond(w, r, models.DocFile{}, ErrMissingPath)
		return
	}

	file, err := h.services.ExplorerService.Write(r.Context(), req.Path, req.Content)
	respond(w, r, file, err)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEntryRequest
	if err := decodeBody(r, &req); err != nil {
		respond(w, r, models.DocFile{}, err)
		return
	}
	if req.Path == "" {
		respond(w, r, models.DocFile{}, ErrMissingPath)
		return
	}
	if req.Name == "" {
		respond(w, r, models.DocFile{}, ErrMissingName)
		return
	}

	file, err := h.services.ExplorerService.Create(r.Context(), req.Path, req.Name, req.IsDir)
	respond(w, r, file, err)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteEntryRequest
	if err := decodeBody(r, &req); err != nil {
		respond(w, r, false, err)
		return
	}
	if req.Path == "" {
		respond(w, r, false, ErrMissingPath)
		return
	}

	err := h.services.ExplorerService.Delete(r.Context(), req.Path, req.IsDir)
	respond(w, r, err == nil, err)
}

// renameEntry answers with the new path of the entry.
func (h *Handler) renameEntry(w http.ResponseWriter, r *http.Request) {
	var req models.RenameRequest
	if err := decodeBody(r, &req); err != nil {
		respond(w, r, "", err)
		return
	}
	if req.Path == "" {
		respond(w, r, "", ErrMissingPath)
		return
	}
	if req.Name == "" {
		respond(w, r, "", ErrMissingName)
		return
	}

	newPath, err := h.services.ExplorerService.Rename(r.Context(), req.Path, req.Name)
	respond(w, r, newPath, err)
}

func (h *Handler) watchFolder(w http.ResponseWriter, r *http.Request) {
	var req models.WatchRequest
	if err := decodeBody(r, &req); err != nil {
		respond(w, r, models.WatchStatus{}, err)
		return
	}
	if req.Path == "" {
		respond(w, r, models.WatchStatus{}, ErrMissingPath)
		return
	}

	if err := h.watcher.Watch(req.Path); err != nil {
		respond(w, r, models.WatchStatus{}, err)
		return
	}
	respond(w, r, h.watchStatus(), nil)
}

func (h *Handler) unwatchFolder(w http.ResponseWriter, r *http.Request) {
	h.watcher.Unwatch()
	respond(w, r, h.watchStatus(), nil)
}

func (h *Handler) watchStatus() models.WatchStatus {
	return models.WatchStatus{
		Folder: h.watcher.Folder(),
		Active: h.watcher.Active(),
	}
}
