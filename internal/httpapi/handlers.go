package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jpl-au/juris/internal/log"
	"github.com/jpl-au/juris/internal/search"
	"github.com/jpl-au/juris/internal/store"
)

// searchResponse is the body of GET /api/search.
type searchResponse struct {
	Query     string             `json:"query"`
	Count     int                `json:"count"`
	Truncated bool               `json:"truncated"`
	Results   []store.RulingJSON `json:"results"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := search.Request{
		Query:    q.Get("q"),
		Chambers: q["chamber"],
	}
	years, err := parseInts(q["year"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	req.Years = years
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, fmt.Errorf("limit must be a positive integer, got %q", raw))
			return
		}
		req.Limit = n
	}
	full, _ := strconv.ParseBool(q.Get("full"))

	resp, err := s.svc.Search(r.Context(), req)

	log.Event("http:search", "search").Detail("query", req.Query).Detail("count", len(resp.Results)).Write(err)

	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}

	out := searchResponse{
		Query:     resp.Query,
		Count:     len(resp.Results),
		Truncated: resp.Truncated,
		Results:   make([]store.RulingJSON, len(resp.Results)),
	}
	for i := range resp.Results {
		out.Results[i] = resp.Results[i].ToJSON(full)
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleRuling(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")

	ruling, err := s.svc.Ruling(r.Context(), file)

	log.Event("http:ruling", "read").Path(file).Write(err)

	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, ruling.ToJSON(true))
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	opts, err := s.svc.FilterOptions(r.Context())

	log.Event("http:filters", "list").Write(err)

	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, opts)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.svc.Stats(r.Context())

	log.Event("http:stats", "read").Write(err)

	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}

// handleHealth reports whether the index can be opened. It does not run a
// search.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if _, err := s.svc.Stats(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps the search error taxonomy to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		return http.StatusBadRequest
	case errors.Is(err, search.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, search.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// parseInts parses repeated or comma-separated integer query values.
func parseInts(values []string) ([]int, error) {
	var out []int
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("year must be an integer, got %q", part)
			}
			out = append(out, n)
		}
	}
	return out, nil
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}

// respondError writes {"error": ..., "status": ...}.
func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, struct {
		Error  string `json:"error"`
		Status int    `json:"status"`
	}{
		Error:  err.Error(),
		Status: status,
	})
}
