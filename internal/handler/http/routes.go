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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Post("/predict-crop", h.predictCrop)
		r.Post("/predict-fertilizer", h.predictFertilizer)
		r.Post("/predict-disease", h.predictDisease)

		r.Get("/test", h.test)
		r.Get("/version", h.getAppVersion)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/logout", h.logout)
	})

	return router
}
