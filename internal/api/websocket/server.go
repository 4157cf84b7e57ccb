// Package websocket streams season replays to dashboard clients, one
// matchday at a time.
package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/ironforge/footylab/internal/store"
	"github.com/ironforge/footylab/internal/store/repository"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

// Server represents the WebSocket server
type Server struct {
	port      string
	server    *http.Server
	hub       *Hub
	db        *store.Database
	matches   *repository.MatchRepository
	standings *repository.StandingsRepository
}

// NewServer creates a new WebSocket server
func NewServer(db *store.Database) *Server {
	return &Server{
		hub:       NewHub(),
		db:        db,
		matches:   repository.NewMatchRepository(db),
		standings: repository.NewStandingsRepository(db),
	}
}

// Start starts the WebSocket server
func (s *Server) Start(port string) error {
	s.port = port

	// Start the hub in a goroutine
	go s.hub.Run()

	// Set up HTTP routes
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/replay", s.handleReplay)
	mux.HandleFunc("/ws/health", s.handleHealth)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: mux,
	}

	log.Printf("WebSocket server listening on :%s", port)
	return s.server.ListenAndServe()
}

// handleReplay handles WebSocket connections that replay a season.
func (s *Server) handleReplay(w http.ResponseWriter, r *http.Request) {
	season := strings.ReplaceAll(r.URL.Query().Get("season"), "-", "/")
	if season == "" {
		http.Error(w, "missing season query parameter", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	client := newClient(s.hub, conn)
	client.hub.register <- client

	// Start client goroutines
	go client.writePump()
	go client.readPump()

	// The request context dies when this handler returns, so the stream
	// runs against the client's own lifetime.
	go s.streamReplay(client, season)
}

// handleHealth returns WebSocket server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status": "healthy", "clients": %d}`, s.hub.ClientCount())
}

// DatasetGenerated notifies every connected client that the dataset was
// rebuilt and any replay in progress is stale.
func (s *Server) DatasetGenerated(jobID, runID, season string, seed int64, numClubs, numPlayers int) {
	data, err := json.Marshal(map[string]interface{}{
		"type":   "dataset_generated",
		"job_id": jobID,
		"run_id": runID,
		"season": season,
	})
	if err != nil {
		return
	}
	s.hub.Broadcast(data)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
