package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)
		r.Get("/api/users/verify/{verificationToken}", h.verify)
		r.Post("/api/users/verify", h.resendVerification)

		r.Get("/api/version", h.getServerVersion)
		r.Handle("/avatars/*", h.avatarFiles())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/users/logout", h.logout)
		r.Get("/api/users/current", h.current)
		r.Patch("/api/users", h.updateSubscription)
		r.Patch("/api/users/avatars", h.updateAvatar)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// avatarFiles serves uploaded avatars without directory listings.
func (h *Handler) avatarFiles() http.Handler {
	files := http.StripPrefix("/avatars/", http.FileServer(http.Dir(h.avatarDir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
