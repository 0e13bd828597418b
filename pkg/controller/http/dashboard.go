package http

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/usecase"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/utils/apperr"
)

// DashboardHandler serves the dashboard page, its statistics and its PDF export
type DashboardHandler struct {
	dashboard usecase.DashboardUseCase
	export    usecase.ExportUseCase
	tmpl      *template.Template
}

// NewDashboardHandler creates a dashboard handler. export may be nil.
func NewDashboardHandler(dashboard usecase.DashboardUseCase, export usecase.ExportUseCase) (*DashboardHandler, error) {
	tmpl, err := parseTemplates(dashboard.Config())
	if err != nil {
		return nil, err
	}
	return &DashboardHandler{
		dashboard: dashboard,
		export:    export,
		tmpl:      tmpl,
	}, nil
}

// HandlePage renders the dashboard page
func (h *DashboardHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		if !goerr.HasTag(err, model.ErrTagRemoteRead) {
			writeError(w, r, err)
			return
		}
		// the page still renders, with a placeholder instead of the figures
		apperr.Handle(r.Context(), err)
		status = http.StatusBadGateway
		stats = nil
	}

	page := dashboardPage{
		Title:     h.dashboard.Config().Report.Title,
		RegionID:  DashboardRegionID,
		Exporting: h.export != nil && h.export.IsExporting(),
		Stats:     stats,
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "dashboard", page); err != nil {
		writeError(w, r, goerr.Wrap(err, "failed to render dashboard"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write dashboard page", "error", err)
	}
}

// HandleStats returns the dashboard statistics as JSON
func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}

// HandleExport exports the requested page region as a PDF attachment
func (h *DashboardHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if h.export == nil {
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"error": "export is not configured",
		})
		return
	}

	region := r.URL.Query().Get("region")
	if region == "" {
		region = DashboardRegionID
	}

	report, err := h.export.ExportRegion(r.Context(), region)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(report.Content)))
	w.Header().Set("X-Report-Pages", strconv.Itoa(report.Pages))
	if report.URL != "" {
		w.Header().Set("X-Report-URL", report.URL)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(report.Content); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write report", "error", err)
	}
}

// HandleExportStatus reports whether an export is in flight
func (h *DashboardHandler) HandleExportStatus(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{"is_exporting": false}
	if h.export != nil {
		resp["is_exporting"] = h.export.IsExporting()
		resp["state"] = h.export.State().String()
	}
	writeJSON(w, r, http.StatusOK, resp)
}
