package handler

import (
	"net/http"

	"github.com/msomdec/supportlog/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. webDir is the
// directory served at the root for static assets; pass "" to disable
// static serving.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, logs *service.LogService, cookieSecure bool, webDir string) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	logHandler := NewLogHandler(logs)

	mux.HandleFunc("GET /api/health", HandleHealth)
	mux.HandleFunc("POST /api/signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /api/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))
	mux.Handle("GET /api/logs", RequireAuth(auth, http.HandlerFunc(logHandler.HandleList)))

	// Unknown API routes get a JSON 404 instead of falling through to the
	// file server.
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})

	if webDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(webDir)))
	}
}
