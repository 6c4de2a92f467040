// Package server is the thin HTTP shell exposing per-subject achievement
// JSON and static icon assets. It serves a loaded export; no core logic.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"cfachievements/internal/report"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(users []report.User, iconsDir string) http.Handler {
	byHandle := make(map[string]report.User, len(users))
	for _, user := range users {
		byHandle[user.Handle] = user
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Get("/ach/{handle}", func(w http.ResponseWriter, req *http.Request) {
		handle := chi.URLParam(req, "handle")
		user, ok := byHandle[handle]
		if !ok {
			http.Error(w, "handle not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(iconsDir))))

	return r
}
