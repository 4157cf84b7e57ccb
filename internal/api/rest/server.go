package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/ironforge/footylab/internal/cache"
	"github.com/ironforge/footylab/internal/genjob"
	"github.com/ironforge/footylab/internal/store"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, db *store.Database, rc *cache.RedisCache, genSvc *genjob.Service) *Server {
	handler := NewHandler(db, rc)
	genHandler := NewGenerateHandler(genSvc)
	router := newRouter(handler, genHandler)

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: corsWrapper.Handler(router),
		},
	}
}

func newRouter(handler *Handler, genHandler *GenerateHandler) *mux.Router {
	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// League metadata
	api.HandleFunc("/league", handler.GetLeague).Methods("GET")
	api.HandleFunc("/seasons", handler.GetSeasons).Methods("GET")

	// Clubs
	api.HandleFunc("/clubs", handler.GetClubs).Methods("GET")
	api.HandleFunc("/clubs/{clubID}", handler.GetClub).Methods("GET")
	api.HandleFunc("/clubs/{clubID}/squad", handler.GetClubSquad).Methods("GET")
	api.HandleFunc("/clubs/{clubID}/staff", handler.GetClubStaff).Methods("GET")
	api.HandleFunc("/clubs/{clubID}/youth", handler.GetClubYouth).Methods("GET")

	// Players
	api.HandleFunc("/players/search", handler.SearchPlayers).Methods("GET")
	api.HandleFunc("/players/{playerID}", handler.GetPlayer).Methods("GET")

	// Season data
	api.HandleFunc("/seasons/{season}/matches", handler.GetMatches).Methods("GET")
	api.HandleFunc("/seasons/{season}/matchdays", handler.GetMatchdays).Methods("GET")
	api.HandleFunc("/seasons/{season}/table", handler.GetTable).Methods("GET")
	api.HandleFunc("/seasons/{season}/transfers", handler.GetTransfers).Methods("GET")

	// Matches
	api.HandleFunc("/matches/{matchID}", handler.GetMatch).Methods("GET")

	// Regeneration
	api.HandleFunc("/regenerate", genHandler.HandleGenerateRequest).Methods("POST")
	api.HandleFunc("/regenerate/status", genHandler.HandleGenerateStatus).Methods("GET")

	return router
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
