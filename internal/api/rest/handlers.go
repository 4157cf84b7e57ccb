package rest

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/ironforge/footylab/internal/cache"
	"github.com/ironforge/footylab/internal/store"
	"github.com/ironforge/footylab/internal/store/repository"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db        *store.Database
	cache     *cache.RedisCache
	leagues   *repository.LeagueRepository
	clubs     *repository.ClubRepository
	players   *repository.PlayerRepository
	matches   *repository.MatchRepository
	standings *repository.StandingsRepository
	transfers *repository.TransferRepository
}

// NewHandler creates a new handler
func NewHandler(db *store.Database, rc *cache.RedisCache) *Handler {
	return &Handler{
		db:        db,
		cache:     rc,
		leagues:   repository.NewLeagueRepository(db),
		clubs:     repository.NewClubRepository(db),
		players:   repository.NewPlayerRepository(db),
		matches:   repository.NewMatchRepository(db),
		standings: repository.NewStandingsRepository(db),
		transfers: repository.NewTransferRepository(db),
	}
}

// seasonParam converts the URL form of a season tag ("2024-25") back to the
// canonical "2024/25".
func seasonParam(r *http.Request) string {
	season := mux.Vars(r)["season"]
	return strings.ReplaceAll(season, "-", "/")
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK

	database := "ok"
	if err := h.db.HealthCheck(); err != nil {
		database = err.Error()
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "ok"
		if err := h.cache.HealthCheck(r.Context()); err != nil {
			cacheStatus = err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	respondJSON(w, code, map[string]string{
		"status":   status,
		"service":  "footylab",
		"version":  "1.0.0",
		"database": database,
		"cache":    cacheStatus,
	})
}

// GetLeague returns the league description.
func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	league, err := h.leagues.Get(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch league", err)
		return
	}

	respondJSON(w, http.StatusOK, league)
}

// GetSeasons returns the season catalogue.
func (h *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.leagues.GetSeasons(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch seasons", err)
		return
	}

	respondJSON(w, http.StatusOK, seasons)
}

// GetClubs returns all clubs
func (h *Handler) GetClubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubs.GetAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch clubs", err)
		return
	}

	respondJSON(w, http.StatusOK, clubs)
}

// GetClub returns a single club
func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	clubID := mux.Vars(r)["clubID"]

	club, err := h.clubs.GetByID(r.Context(), clubID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Club not found", err)
		return
	}

	respondJSON(w, http.StatusOK, club)
}

// GetClubSquad returns a club's first-team players
func (h *Handler) GetClubSquad(w http.ResponseWriter, r *http.Request) {
	clubID := mux.Vars(r)["clubID"]

	squad, err := h.players.GetSquad(r.Context(), clubID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch squad", err)
		return
	}

	respondJSON(w, http.StatusOK, squad)
}

// GetClubStaff returns a club's manager and coaches
func (h *Handler) GetClubStaff(w http.ResponseWriter, r *http.Request) {
	clubID := mux.Vars(r)["clubID"]

	staff, err := h.clubs.GetStaff(r.Context(), clubID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch staff", err)
		return
	}

	respondJSON(w, http.StatusOK, staff)
}

// GetClubYouth returns a club's youth academy players
func (h *Handler) GetClubYouth(w http.ResponseWriter, r *http.Request) {
	clubID := mux.Vars(r)["clubID"]

	youth, err := h.players.GetYouth(r.Context(), clubID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch youth players", err)
		return
	}

	respondJSON(w, http.StatusOK, youth)
}

// SearchPlayers finds players by name with an optional position filter
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respondError(w, http.StatusBadRequest, "Missing required query parameter: name", nil)
		return
	}

	position := r.URL.Query().Get("position")

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	players, err := h.players.Search(r.Context(), name, position, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to search players", err)
		return
	}

	respondJSON(w, http.StatusOK, players)
}

// GetPlayer returns a single player
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]

	player, err := h.players.GetByID(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Player not found", err)
		return
	}

	respondJSON(w, http.StatusOK, player)
}

// GetMatches returns a season's matches, optionally filtered by matchday
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	season := seasonParam(r)

	matchday := 0
	if mdStr := r.URL.Query().Get("matchday"); mdStr != "" {
		md, err := strconv.Atoi(mdStr)
		if err != nil || md < 1 {
			respondError(w, http.StatusBadRequest, "Invalid matchday", err)
			return
		}
		matchday = md
	}

	matches, err := h.matches.GetBySeason(r.Context(), season, matchday)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch matches", err)
		return
	}

	respondJSON(w, http.StatusOK, matches)
}

// GetMatchdays returns how many matchdays a season has.
func (h *Handler) GetMatchdays(w http.ResponseWriter, r *http.Request) {
	season := seasonParam(r)

	matchdays, err := h.matches.Matchdays(r.Context(), season)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch matchdays", err)
		return
	}
	if matchdays == 0 {
		respondError(w, http.StatusNotFound, "No matches for season", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"season":    season,
		"matchdays": matchdays,
	})
}

// GetMatch returns a single match
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchID"]

	match, err := h.matches.GetByID(r.Context(), matchID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Match not found", err)
		return
	}

	respondJSON(w, http.StatusOK, match)
}

// GetTable returns a season's league table. Results are cached in Redis
// because the table is the dashboard's hottest query.
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	season := seasonParam(r)

	if h.cache != nil {
		if table, err := h.cache.GetTable(r.Context(), season); err == nil && table != nil {
			respondJSON(w, http.StatusOK, table)
			return
		} else if err != nil {
			log.Printf("table cache read failed: %v", err)
		}
	}

	table, err := h.standings.GetTable(r.Context(), season)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch league table", err)
		return
	}
	if len(table) == 0 {
		respondError(w, http.StatusNotFound, "No table for season", nil)
		return
	}

	if h.cache != nil {
		if err := h.cache.SetTable(r.Context(), season, table); err != nil {
			log.Printf("table cache write failed: %v", err)
		}
	}

	respondJSON(w, http.StatusOK, table)
}

// GetTransfers returns a season's transfer history
func (h *Handler) GetTransfers(w http.ResponseWriter, r *http.Request) {
	season := seasonParam(r)

	transfers, err := h.transfers.GetBySeason(r.Context(), season)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch transfers", err)
		return
	}

	respondJSON(w, http.StatusOK, transfers)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
