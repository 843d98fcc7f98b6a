package backend

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ziadkadry99/tripplan/internal/api"
)

// RegisterRoutes mounts the plan and search endpoints on the given router.
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Post(api.GeneratePlanPath, s.handleGeneratePlan)
	r.Post(api.SearchPath, s.handleSearch)
}

// planPayload accepts days as either a JSON string or a number.
type planPayload struct {
	Days        flexString `json:"days"`
	Destination string     `json:"destination"`
	Budget      string     `json:"budget"`
	Preferences string     `json:"preferences"`
}

type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (s *Service) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.With().Str("request_id", uuid.New().String()).Logger()

	var payload planPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Debug().Err(err).Msg("invalid plan request body")
		writeJSON(w, http.StatusBadRequest, api.PlanResponse{Error: "invalid request body"})
		return
	}
	req := api.PlanRequest{
		Days:        string(payload.Days),
		Destination: payload.Destination,
		Budget:      payload.Budget,
		Preferences: payload.Preferences,
	}
	logger.Info().Str("days", req.Days).Str("destination", req.Destination).Msg("plan requested")

	plan, err := s.GeneratePlan(r.Context(), req)
	if errors.Is(err, ErrMissingFields) {
		writeJSON(w, http.StatusBadRequest, api.PlanResponse{Error: err.Error()})
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("plan generation failed")
		resp := api.PlanResponse{Error: "Error generating plan: " + err.Error()}
		if s.cfg.Debug {
			resp.Detail = errorChain(err)
		}
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	logger.Info().Int("plan_len", len(plan)).Msg("plan generated")
	writeJSON(w, http.StatusOK, api.PlanResponse{Success: true, Plan: plan})
}

func (s *Service) handleSearch(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.With().Str("request_id", uuid.New().String()).Logger()

	var req api.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.SearchResponse{Error: "invalid request body"})
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeJSON(w, http.StatusBadRequest, api.SearchResponse{Error: "query must not be empty"})
		return
	}
	logger.Info().Str("query", query).Msg("search requested")

	resp, err := s.Search(r.Context(), query)
	if err != nil {
		logger.Error().Err(err).Msg("search failed")
		writeJSON(w, http.StatusOK, api.SearchResponse{Error: err.Error()})
		return
	}

	logger.Info().Int("references", len(resp.References)).Bool("summary_error", resp.SummaryError).Msg("search done")
	writeJSON(w, http.StatusOK, resp)
}

// errorChain lists every wrapped error, outermost first.
func errorChain(err error) string {
	var lines []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		lines = append(lines, e.Error())
	}
	return strings.Join(lines, "\n")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
