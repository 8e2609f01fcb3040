package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/items", func(r chi.Router) {
			r.Get("/", h.listItems)
			r.Post("/", h.createItem)
			r.Get("/{id}", h.getItem)
			r.Patch("/{id}", h.updateItem)
			r.Delete("/{id}", h.deleteItem)
			r.Get("/{id}/image", h.itemImage)
		})

		r.Route("/api/documents", func(r chi.Router) {
			r.Get("/", h.listDocuments)
			r.Post("/", h.createDocument)
			r.Get("/{id}", h.getDocument)
			r.Patch("/{id}", h.updateDocument)
			r.Delete("/{id}", h.deleteDocument)
			r.Get("/{id}/image", h.documentImage)
		})

		r.Route("/api/search", func(r chi.Router) {
			r.Get("/items", h.searchItems)
			r.Get("/items/suggest", h.suggestItems)
			r.Get("/documents", h.searchDocuments)
			r.Get("/documents/suggest", h.suggestDocuments)
		})
	})

	return router
}
