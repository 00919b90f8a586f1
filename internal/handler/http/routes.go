package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// the event stream hijacks the connection and cannot be compressed
	router.Get("/api/events", h.streamEvents)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version", h.getServerVersion)

		r.Get("/api/config", h.getConfig)
		r.Patch("/api/config", h.updateConfig)
		r.Get("/api/config/view", h.getConfigView)

		r.Get("/api/explorer/tree", h.openFolder)
		r.Get("/api/explorer/file", h.readFile)
		r.Put("/api/explorer/file", h.writeFile)
		r.Post("/api/explorer/files", h.readFiles)
		r.Post("/api/explorer/entries", h.createEntry)
		r.Delete("/api/explorer/entries", h.deleteEntry)
		r.Post("/api/explorer/rename", h.renameEntry)
		r.Post("/api/explorer/watch", h.watchFolder)
		r.Delete("/api/explorer/watch", h.unwatchFolder)

		r.Get("/api/workspace/config", h.getWorkspaceConfig)
		r.Put("/api/workspace/config", h.setWorkspaceConfig)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
