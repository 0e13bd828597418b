package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/frontend"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/usecase"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/utils/apperr"
)

// UseCases groups the use cases served over HTTP. Export and Records are optional.
type UseCases struct {
	Dashboard usecase.DashboardUseCase
	Export    usecase.ExportUseCase
	Records   usecase.RecordsUseCase
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router    chi.Router
	dashboard *DashboardHandler
	records   *RecordsHandler
	files     http.FileSystem
}

// Option configures the server
type Option func(*Server)

// WithFiles serves locally stored blobs (reports, document files) under /files/
func WithFiles(fs http.FileSystem) Option {
	return func(s *Server) {
		s.files = fs
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, uc UseCases, opts ...Option) (*Server, error) {
	if uc.Dashboard == nil {
		return nil, goerr.New("dashboard use case is required")
	}

	dashboardHandler, err := NewDashboardHandler(uc.Dashboard, uc.Export)
	if err != nil {
		return nil, err
	}

	server := &Server{
		router:    chi.NewRouter(),
		dashboard: dashboardHandler,
	}
	if uc.Records != nil {
		server.records = NewRecordsHandler(uc.Records)
	}
	for _, opt := range opts {
		opt(server)
	}

	router := server.router
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})
	router.Get("/dashboard", dashboardHandler.HandlePage)

	static, err := frontend.GetHTTPFS()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load embedded assets")
	}
	router.Handle("/static/*", http.StripPrefix("/static", NewStaticHandler(static)))

	if server.files != nil {
		router.Handle("/files/*", http.StripPrefix("/files", NewStaticHandler(server.files)))
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(NoStore)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", dashboardHandler.HandleStats)
			r.Post("/export", dashboardHandler.HandleExport)
			r.Get("/export/status", dashboardHandler.HandleExportStatus)
		})

		if server.records != nil {
			server.records.Routes(r)
		}
	})

	server.Server = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
	}

	ctxlog.From(ctx).Debug("HTTP routes configured",
		"export", uc.Export != nil,
		"records", uc.Records != nil,
		"files", server.files != nil,
	)

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "smartquali",
	})
}

// statusOf maps an error to its HTTP status by tag
func statusOf(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagExportTargetMissing):
		return http.StatusNotFound
	case goerr.HasTag(err, model.ErrTagRemoteRead):
		return http.StatusBadGateway
	case goerr.HasTag(err, model.ErrTagValidation):
		return http.StatusBadRequest
	case goerr.HasTag(err, model.ErrTagNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response with the status derived from the error tags
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		apperr.Handle(r.Context(), err)
	} else {
		ctxlog.From(r.Context()).Debug("Request rejected", "status", status, "error", err)
	}

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(w, r, status, map[string]string{
		"error": message,
	})
}

// decodeJSON decodes the request body into v
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return goerr.Wrap(err, "invalid request body", goerr.T(model.ErrTagValidation))
	}
	return nil
}
