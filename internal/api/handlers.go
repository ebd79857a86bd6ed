// Package api serves a loaded dataset over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/KaramelBytes/propmap-cli/internal/dataset"
	"github.com/KaramelBytes/propmap-cli/internal/filter"
	"github.com/KaramelBytes/propmap-cli/internal/report"
)

// Options configure a Handler.
type Options struct {
	// Center used for banding when a request gives none; 0 means the dataset median.
	Center int64
	// MaxListRows caps property listings; 0 means unlimited.
	MaxListRows int
}

// Handler answers queries over one dataset. The dataset is never modified,
// so requests need no locking.
type Handler struct {
	ds      *dataset.Dataset
	opt     Options
	logger  *logrus.Logger
	metrics *Collector
}

// NewHandler creates a new dataset handler
func NewHandler(ds *dataset.Dataset, opt Options, logger *logrus.Logger, metricsCollector *Collector) *Handler {
	metricsCollector.DatasetRecords.Set(float64(ds.Count()))
	return &Handler{ds: ds, opt: opt, logger: logger, metrics: metricsCollector}
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(router *mux.Router) {
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/summary", h.GetSummary).Methods(http.MethodGet)
	v1.HandleFunc("/properties", h.ListProperties).Methods(http.MethodGet)
	v1.HandleFunc("/properties/{id}", h.GetProperty).Methods(http.MethodGet)
	v1.HandleFunc("/bands", h.GetBands).Methods(http.MethodGet)
	v1.HandleFunc("/distinct/{field}", h.GetDistinct).Methods(http.MethodGet)
	router.HandleFunc("/healthz", h.HealthCheck).Methods(http.MethodGet)
}

// GetSummary handles GET /api/v1/summary
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sub, c, ok := h.filtered(w, r)
	if !ok {
		return
	}
	h.sendJSON(w, report.NewSummary(sub, h.ds.Source(), describe(c)), http.StatusOK)
}

// ListProperties handles GET /api/v1/properties
func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	sub, c, ok := h.filtered(w, r)
	if !ok {
		return
	}
	limit := h.opt.MaxListRows
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			h.sendError(w, r, "invalid limit, expected non-negative integer", http.StatusBadRequest)
			return
		}
		if n > 0 && (limit == 0 || n < limit) {
			limit = n
		}
	}
	listing := report.NewListing(sub.Records(), h.ds.Source(), describe(c), limit)

	if r.URL.Query().Has("center") {
		center, ok := h.center(w, r, sub)
		if !ok {
			return
		}
		for i, v := range listing.Properties {
			listing.Properties[i] = v.WithBand(center)
			if b := listing.Properties[i].Band; b != nil {
				h.metrics.BandedTotal.WithLabelValues(b.String()).Inc()
			}
		}
	}
	h.sendJSON(w, listing, http.StatusOK)
}

// GetProperty handles GET /api/v1/properties/{id}
func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	rec, err := h.ds.FindByAccountID(mux.Vars(r)["id"])
	if err != nil {
		h.sendErr(w, r, err)
		return
	}
	view := report.NewPropertyView(rec)
	if r.URL.Query().Has("center") {
		center, ok := h.center(w, r, h.ds)
		if !ok {
			return
		}
		view = view.WithBand(center)
	}
	h.sendJSON(w, &report.Detail{Property: view}, http.StatusOK)
}

// GetBands handles GET /api/v1/bands
func (h *Handler) GetBands(w http.ResponseWriter, r *http.Request) {
	center, ok := h.center(w, r, h.ds)
	if !ok {
		return
	}
	out := report.NewBands(center, h.ds.BandCounts(center))
	out.Source = h.ds.Source()
	h.sendJSON(w, out, http.StatusOK)
}

// GetDistinct handles GET /api/v1/distinct/{field}
func (h *Handler) GetDistinct(w http.ResponseWriter, r *http.Request) {
	field := mux.Vars(r)["field"]
	values, err := h.ds.Distinct(field)
	if err != nil {
		h.sendError(w, r, err.Error(), http.StatusNotFound)
		return
	}
	h.sendJSON(w, &report.Distinct{Field: field, Values: values}, http.StatusOK)
}

// HealthCheck handles GET /healthz
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, map[string]any{
		"status":  "ok",
		"source":  h.ds.Source(),
		"records": h.ds.Count(),
	}, http.StatusOK)
}

// CriteriaFromQuery reads filter criteria from URL query parameters.
func CriteriaFromQuery(q map[string][]string) (filter.Criteria, error) {
	get := func(k string) string {
		if v := q[k]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}
	c := filter.Criteria{
		Neighborhood:    get("neighborhood"),
		Ward:            get("ward"),
		AssessmentClass: get("class"),
		Garage:          get("garage"),
		ValueOp:         get("value_op"),
	}
	nums := []struct {
		key string
		dst *float64
	}{{"near_lat", &c.NearLat}, {"near_lng", &c.NearLng}, {"radius_km", &c.RadiusKm}}
	for _, n := range nums {
		if s := get(n.key); s != "" {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return c, errors.New("invalid " + n.key + ", expected number")
			}
			*n.dst = f
		}
	}
	if s := get("value"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return c, errors.New("invalid value, expected integer")
		}
		c.Value = v
	}
	return c, nil
}

func (h *Handler) filtered(w http.ResponseWriter, r *http.Request) (*dataset.Dataset, filter.Criteria, bool) {
	c, err := CriteriaFromQuery(r.URL.Query())
	if err != nil {
		h.sendError(w, r, err.Error(), http.StatusBadRequest)
		return nil, c, false
	}
	if c.IsZero() {
		return h.ds, c, true
	}
	keep, err := c.Build()
	if err != nil {
		h.sendError(w, r, err.Error(), http.StatusBadRequest)
		return nil, c, false
	}
	return h.ds.Filter(keep), c, true
}

// center resolves the banding center: query, then configured, then median of ds.
func (h *Handler) center(w http.ResponseWriter, r *http.Request, ds *dataset.Dataset) (int64, bool) {
	if s := r.URL.Query().Get("center"); s != "" {
		c, err := strconv.ParseInt(s, 10, 64)
		if err != nil || c < 0 {
			h.sendError(w, r, "invalid center, expected non-negative integer", http.StatusBadRequest)
			return 0, false
		}
		if c > 0 {
			return c, true
		}
	}
	if h.opt.Center > 0 {
		return h.opt.Center, true
	}
	m, err := ds.Median()
	if err != nil {
		h.sendErr(w, r, err)
		return 0, false
	}
	return m, true
}

func describe(c filter.Criteria) string {
	if c.IsZero() {
		return ""
	}
	return c.Describe()
}

// sendJSON sends a JSON response
func (h *Handler) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.WithError(err).Warn("encode response")
	}
}

// sendErr maps a dataset error to its status code.
func (h *Handler) sendErr(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, dataset.ErrInvalidKey):
		status = http.StatusBadRequest
	case errors.Is(err, dataset.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, dataset.ErrEmptyDataset):
		status = http.StatusUnprocessableEntity
	}
	h.sendError(w, r, err.Error(), status)
}

// sendError sends an error response
func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	h.metrics.RecordAPIError(http.StatusText(statusCode), endpoint(r))
	if statusCode >= http.StatusInternalServerError {
		h.logger.WithFields(logrus.Fields{"status": statusCode, "path": r.URL.Path}).Error(message)
	} else {
		h.logger.WithFields(logrus.Fields{"status": statusCode, "path": r.URL.Path}).Debug(message)
	}
	h.sendJSON(w, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}, statusCode)
}
