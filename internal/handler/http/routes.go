package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, middleware.RealIP)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// public API
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/defaults", h.getDefaults)
		r.Get("/api/invites/{id}", h.getInvitation)
		r.With(h.withShareRateLimit).Post("/api/invites", h.share)
	})

	// admin API, identity comes from the upstream auth header
	router.Group(func(r chi.Router) {
		r.Use(h.withAuthenticatedUser)
		r.Get("/api/admin/check", h.adminCheck)
		r.With(h.adminOnly).Post("/api/admin/update", h.adminUpdate)
	})

	// pages for browsers and link-preview crawlers
	router.Group(func(r chi.Router) {
		r.Get("/api/og", h.ogPreview)
		r.Get("/api/og-image", h.ogImage)
		r.Get("/invite/{id}", h.invitePage)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
