package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Karel2025colab/BTP-room-estimator/internal/catalog"
	"github.com/Karel2025colab/BTP-room-estimator/internal/estimate"
	"github.com/Karel2025colab/BTP-room-estimator/internal/quote"
)

const maxBodyBytes = 1 << 20

type areaRequest struct {
	Project    string        `json:"project"`
	Area       *float64      `json:"area"`
	Complexity float64       `json:"complexity"`
	Extras     []quote.Extra `json:"extras"`
}

type roomsRequest struct {
	Project  string          `json:"project"`
	Rooms    []estimate.Room `json:"rooms"`
	Extras   []quote.Extra   `json:"extras"`
	Rounding string          `json:"rounding"`
}

type materialsResponse struct {
	Materials []catalog.Material `json:"materials"`
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/materials", s.handleMaterials)
		r.Post("/estimates/area", s.handleEstimateArea)
		r.Post("/estimates/rooms", s.handleEstimateRooms)
	})
	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "materials": s.catalog.Len()})
}

func (s *server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, materialsResponse{Materials: s.catalog.Materials()})
}

func (s *server) handleEstimateArea(w http.ResponseWriter, r *http.Request) {
	var req areaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := parseAreaRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	b, total := estimate.EstimateByArea(s.catalog, *req.Area, req.Complexity)
	q := quote.FromArea(req.Project, b, total, req.Extras, s.now())

	s.log.Debug("area estimate", "quote_id", q.ID, "area", *req.Area, "complexity", req.Complexity, "total", q.GrandTotal)
	s.writeQuote(w, r, q)
}

func (s *server) handleEstimateRooms(w http.ResponseWriter, r *http.Request) {
	var req roomsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	mode, err := parseRoomsRequest(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rb, total := estimate.EstimateByRoomsRounding(s.catalog, req.Rooms, mode)
	q := quote.FromRooms(req.Project, rb, total, req.Extras, s.now())

	s.log.Debug("rooms estimate", "quote_id", q.ID, "rooms", len(req.Rooms), "rounding", rb.Rounding, "total", q.GrandTotal)
	s.writeQuote(w, r, q)
}

func parseAreaRequest(req areaRequest) error {
	if req.Area == nil {
		return fmt.Errorf("%w: area is required", estimate.ErrInvalidInput)
	}
	if err := estimate.ValidateArea(*req.Area); err != nil {
		return err
	}
	if err := estimate.ValidateComplexity(req.Complexity); err != nil {
		return err
	}
	return quote.ValidateExtras(req.Extras)
}

func parseRoomsRequest(req *roomsRequest) (estimate.Rounding, error) {
	for i := range req.Rooms {
		if strings.TrimSpace(req.Rooms[i].Name) == "" {
			req.Rooms[i].Name = fmt.Sprintf("Room %d", i+1)
		}
	}
	if err := estimate.ValidateRooms(req.Rooms); err != nil {
		return 0, err
	}
	if err := quote.ValidateExtras(req.Extras); err != nil {
		return 0, err
	}
	return parseRounding(req.Rounding)
}

func parseRounding(raw string) (estimate.Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "per-room":
		return estimate.RoundPerRoom, nil
	case "once":
		return estimate.RoundOnce, nil
	default:
		return 0, fmt.Errorf("%w: rounding must be \"per-room\" or \"once\", got %q", estimate.ErrInvalidInput, raw)
	}
}

func (s *server) writeQuote(w http.ResponseWriter, r *http.Request, q quote.Quote) {
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(q.Text()))
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}
