package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/inletpara/inletpara/internal/compute"
	"github.com/inletpara/inletpara/internal/render"
	"github.com/inletpara/inletpara/internal/session"
)

// Handler is the HTTP handler for all /api/v1/* endpoints. It reads and
// mutates the session's measurement collection and computes results on demand.
type Handler struct {
	session *session.Store
	mux     *http.ServeMux
}

// New creates a Handler wired to the given session store and registers all routes.
func New(st *session.Store) *Handler {
	h := &Handler{session: st, mux: http.NewServeMux()}

	h.mux.HandleFunc("/api/v1/health", h.health)
	h.mux.HandleFunc("/api/v1/inlets", h.inlets)
	h.mux.HandleFunc("/api/v1/inlets/", h.inlet) // subtree — {index} or "count"
	h.mux.HandleFunc("/api/v1/results", h.results)
	h.mux.HandleFunc("/api/v1/report", h.report)
	h.mux.HandleFunc("/api/v1/report.csv", h.reportCSV)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// BuildResults computes the metrics for the current collection, in order.
// The WebSocket hub reuses this to build its broadcast payload.
func (h *Handler) BuildResults() ResultsResponse {
	results := compute.ComputeBatch(h.session.List())
	out := make([]ResultBody, 0, len(results))
	for _, r := range results {
		out = append(out, toResultBody(r))
	}
	return ResultsResponse{
		Results:     out,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// --- route handlers ---------------------------------------------------------

// health returns GET /api/v1/health.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, HealthResponse{
		Status:     "ok",
		InletCount: h.session.Len(),
		MaxInlets:  h.session.Max(),
	})
}

// inlets serves GET (list) and PUT (replace) on /api/v1/inlets.
func (h *Handler) inlets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ms := h.session.List()
		out := make([]InletBody, 0, len(ms))
		for _, m := range ms {
			out = append(out, toInletBody(m))
		}
		jsonResp(w, http.StatusOK, out)

	case http.MethodPut:
		var bodies []InletBody
		if err := json.NewDecoder(r.Body).Decode(&bodies); err != nil {
			jsonErr(w, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		ms := make([]compute.Measurement, len(bodies))
		for i, b := range bodies {
			ms[i] = toMeasurement(b)
		}
		if err := h.session.Replace(ms); err != nil {
			jsonErr(w, http.StatusBadRequest, err.Error())
			return
		}
		stored := h.session.List()
		out := make([]InletBody, 0, len(stored))
		for _, m := range stored {
			out = append(out, toInletBody(m))
		}
		jsonResp(w, http.StatusOK, out)

	default:
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// inlet serves the /api/v1/inlets/ subtree: "{index}" and "count".
func (h *Handler) inlet(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/inlets/")
	if rest == "" {
		// Redirect bare /api/v1/inlets/ to the collection handler.
		h.inlets(w, r)
		return
	}
	if rest == "count" {
		h.resize(w, r)
		return
	}

	idx, err := strconv.Atoi(rest)
	if err != nil {
		jsonErr(w, http.StatusNotFound, "no such inlet")
		return
	}

	switch r.Method {
	case http.MethodGet:
		m, err := h.session.Get(idx)
		if err != nil {
			jsonErr(w, http.StatusNotFound, "no such inlet")
			return
		}
		jsonResp(w, http.StatusOK, toInletBody(m))

	case http.MethodPut:
		var body InletBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			jsonErr(w, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		if err := h.session.Set(idx, toMeasurement(body)); err != nil {
			jsonErr(w, http.StatusNotFound, "no such inlet")
			return
		}
		jsonResp(w, http.StatusOK, body)

	default:
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// resize serves POST /api/v1/inlets/count — the count control of the form.
func (h *Handler) resize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req CountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonErr(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	h.session.Resize(req.Count)
	jsonResp(w, http.StatusOK, HealthResponse{
		Status:     "ok",
		InletCount: h.session.Len(),
		MaxInlets:  h.session.Max(),
	})
}

// results returns GET /api/v1/results — computed metrics for every inlet.
func (h *Handler) results(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, h.BuildResults())
}

// report returns GET /api/v1/report — the comparison table and bar charts
// as plain text.
func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	results := compute.ComputeBatch(h.session.List())

	var buf bytes.Buffer
	if err := render.Table(&buf, results); err != nil {
		jsonErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	buf.WriteByte('\n')
	render.Charts(&buf, results)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(buf.Bytes()) //nolint:errcheck
}

// reportCSV returns GET /api/v1/report.csv — the results as CSV.
func (h *Handler) reportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	results := compute.ComputeBatch(h.session.List())

	var buf bytes.Buffer
	if err := render.CSV(&buf, results); err != nil {
		jsonErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inlet-results.csv"`)
	w.Write(buf.Bytes()) //nolint:errcheck
}

// --- helpers ----------------------------------------------------------------

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
