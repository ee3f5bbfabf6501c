package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"clientpulse/internal/analytics"
	apierrors "clientpulse/internal/errors"
)

// ReportHandler serves a precomputed analytics report over HTTP.
type ReportHandler struct {
	report *analytics.Report
	logger *slog.Logger
}

// NewReportHandler creates a new report handler. The report may be nil
// when the pipeline failed at startup; every report route then renders
// a 503 so the caller can distinguish "not computed" from "empty".
func NewReportHandler(report *analytics.Report, logger *slog.Logger) *ReportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportHandler{
		report: report,
		logger: logger.With(slog.String("handler", "report")),
	}
}

// Routes mounts the report endpoints on a chi router.
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.FullReport)
	r.Get("/activity", h.Activity)
	r.Get("/renewals", h.Renewals)
	r.Get("/market-share", h.MarketShare)
	r.Get("/first-share", h.FirstShare)
	r.Get("/churn", h.Churn)
	r.Get("/finance", h.Finance)
	r.Get("/top-clients", h.TopClients)
	return r
}

// FullReport handles GET /api/report
func (h *ReportHandler) FullReport(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w, r) {
		return
	}
	render.JSON(w, r, h.report)
}

// Activity handles GET /api/report/activity
func (h *ReportHandler) Activity(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w, r) {
		return
	}
	render.JSON(w, r, h.report.Activity)
}

// Renewals handles GET /api/report/renewals
func (h *ReportHandler) Renewals(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w, r) {
		return
	}
	render.JSON(w, r, h.report.Renewals)
}

// MarketShare handles GET /api/report/market-share
func (h *ReportHandler) MarketShare(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w, r) {
		return
	}
	render.JSON(w, r, h.report.MarketShare)
}

// FirstShare handles GET /api/report/first-share
func (h *ReportHandler) FirstShare(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w, r) {
		return
	}
	render.JSON(w, r, h.report.FirstShare)
}

// Churn handles GET /api/report/churn
func (h *ReportHandler) Churn(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w, r) {
		return
	}
	render.JSON(w, r, h.report.Churn)
}

// Finance handles GET /api/report/finance
func (h *ReportHandler) Finance(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w, r) {
		return
	}
	render.JSON(w, r, h.report.Finance)
}

// TopClients handles GET /api/report/top-clients
func (h *ReportHandler) TopClients(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w, r) {
		return
	}
	render.JSON(w, r, h.report.TopClients)
}

func (h *ReportHandler) ready(w http.ResponseWriter, r *http.Request) bool {
	if h.report == nil {
		h.logger.WarnContext(r.Context(), "report requested before pipeline succeeded",
			slog.String("path", r.URL.Path))
		render.Render(w, r, apierrors.ErrReportUnavailable)
		return false
	}
	return true
}

// HealthHandler answers liveness probes for the report service.
type HealthHandler struct {
	started time.Time
	version string
}

// NewHealthHandler creates a health handler stamped with the build version.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{started: time.Now(), version: version}
}

// Health handles GET /healthz
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}
