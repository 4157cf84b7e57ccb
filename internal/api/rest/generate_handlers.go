package rest

import (
	"encoding/json"
	"net/http"

	"github.com/ironforge/footylab/internal/genjob"
)

// GenerateHandler proxies API calls to the regeneration service.
type GenerateHandler struct {
	service *genjob.Service
}

// NewGenerateHandler wires the REST layer to the regeneration service.
func NewGenerateHandler(service *genjob.Service) *GenerateHandler {
	return &GenerateHandler{service: service}
}

type apiGenerateRequest struct {
	Seed     int64  `json:"seed"`
	NumClubs int    `json:"num_clubs"`
	Season   string `json:"season"`
}

// HandleGenerateRequest handles POST /api/v1/regenerate
func (h *GenerateHandler) HandleGenerateRequest(w http.ResponseWriter, r *http.Request) {
	var req apiGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	job, err := h.service.Enqueue(genjob.Request{
		Seed:     req.Seed,
		NumClubs: req.NumClubs,
		Season:   req.Season,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to enqueue regeneration", err)
		return
	}

	respondJSON(w, http.StatusAccepted, job)
}

// HandleGenerateStatus handles GET /api/v1/regenerate/status
func (h *GenerateHandler) HandleGenerateStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.GetStatus())
}
