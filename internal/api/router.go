package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/astralfront/supremacy/internal/api/handler"
	"github.com/astralfront/supremacy/internal/api/middleware"
	"github.com/astralfront/supremacy/internal/model"
	"github.com/astralfront/supremacy/internal/services/credential"
	"github.com/astralfront/supremacy/internal/services/galaxy"
	"github.com/astralfront/supremacy/internal/services/identity"
	"github.com/astralfront/supremacy/internal/services/matchmaker"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	CredentialService *credential.Service
	IdentityService   *identity.Service
	GalaxyService     *galaxy.Service
	MatchmakerService *matchmaker.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.CredentialService)
	gameHandler := handler.NewGameHandler(cfg.MatchmakerService, cfg.GalaxyService, cfg.IdentityService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Each route declares the scope it requires; the auth middleware
	// resolves the caller's identity and checks the scope at the door
	scoped := func(scope model.Scope, h http.HandlerFunc) http.Handler {
		return middleware.Auth(cfg.CredentialService, scope)(h)
	}

	// Auth routes (anonymous, but a client id is still required so
	// token grants can be bound to the device)
	api.Handle("/auth/signup", scoped(model.ScopeNone, authHandler.Signup)).Methods(http.MethodPost)
	api.Handle("/auth/login", scoped(model.ScopeNone, authHandler.Login)).Methods(http.MethodPost)
	api.Handle("/auth/refresh", scoped(model.ScopeNone, authHandler.Refresh)).Methods(http.MethodPost)

	// Game routes
	api.Handle("/games", scoped(model.ScopeGameCreate, gameHandler.Create)).Methods(http.MethodPost)
	api.Handle("/games", scoped(model.ScopeGameList, gameHandler.List)).Methods(http.MethodGet)
	api.Handle("/games/{gameId}", scoped(model.ScopeGameView, gameHandler.Get)).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
