package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	controller "github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/controller/http"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces/mocks"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/repository"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/usecase"
)

var testNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func testConfig() *model.DashboardConfig {
	cfg := model.DefaultDashboardConfig()
	cfg.Report.Timezone = "UTC"
	return cfg
}

type testEnv struct {
	repo    *repository.Memory
	raster  *mocks.RasterizerMock
	storage *mocks.BlobStorageMock
	server  *controller.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	clock := usecase.WithClock(func() time.Time { return testNow })

	env := &testEnv{
		repo: repository.NewMemory(),
		raster: &mocks.RasterizerMock{
			RasterizeFunc: func(ctx context.Context, regionID string) (image.Image, error) {
				if regionID != controller.DashboardRegionID {
					return nil, goerr.New("export target not found", goerr.T(model.ErrTagExportTargetMissing))
				}
				return image.NewRGBA(image.Rect(0, 0, 200, 100)), nil
			},
		},
		storage: &mocks.BlobStorageMock{
			UploadFunc: func(ctx context.Context, path string, r io.Reader, contentType string) error {
				_, err := io.Copy(io.Discard, r)
				return err
			},
			PublicURLFunc: func(path string) string {
				return "http://localhost/files/" + path
			},
		},
	}

	dashboard, err := usecase.NewDashboard(env.repo, testConfig(), clock)
	gt.NoError(t, err).Required()
	export, err := usecase.NewExport(env.raster, testConfig().Report, clock)
	gt.NoError(t, err).Required()
	records := usecase.NewRecords(env.repo, clock, usecase.WithBlobStorage(env.storage))

	env.server, err = controller.NewServer(ctx, ":0", controller.UseCases{
		Dashboard: dashboard,
		Export:    export,
		Records:   records,
	})
	gt.NoError(t, err).Required()
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.server.Handler.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doJSON(t *testing.T, method, path string, v any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if v != nil {
		data, err := json.Marshal(v)
		gt.NoError(t, err).Required()
		body = bytes.NewReader(data)
	}
	return e.do(t, method, path, body, "application/json")
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/health", nil, "")
	gt.Equal(t, http.StatusOK, w.Code)
	gt.S(t, w.Body.String()).Contains("healthy")
}

func TestDashboardPage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	gt.NoError(t, env.repo.PutNonConformity(ctx, &model.NonConformity{
		ID: "nc-1", Number: "NC-2025-001", Title: "Défaut <soudure>",
		Status: types.NCStatusOpen, Priority: types.NCPriorityHigh,
		CreatedBy: "u1", CreatedAt: testNow,
	})).Required()
	gt.NoError(t, env.repo.PutNonConformity(ctx, &model.NonConformity{
		ID: "nc-2", Number: "NC-2025-002", Title: "Étiquette",
		Status: types.NCStatusClosed, Priority: types.NCPriorityLow,
		CreatedBy: "u1", CreatedAt: testNow.Add(-time.Hour),
	})).Required()

	w := env.do(t, http.MethodGet, "/dashboard", nil, "")
	gt.Equal(t, http.StatusOK, w.Code)
	gt.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	gt.S(t, body).Contains(`id="dashboard-content"`)
	gt.S(t, body).Contains("50.0%")
	gt.S(t, body).Contains("NC-2025-001")
	gt.S(t, body).Contains("Défaut &lt;soudure&gt;")
	gt.S(t, body).Contains("conic-gradient(")
	gt.S(t, body).Contains("Ouverte")
	gt.S(t, body).Contains("15/03/2025")
	gt.False(t, strings.Contains(body, "ZgotmplZ"))
}

func TestRootRedirectsToDashboard(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/", nil, "")
	gt.Equal(t, http.StatusFound, w.Code)
	gt.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestStaticAssets(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/static/dashboard.css", nil, "")
	gt.Equal(t, http.StatusOK, w.Code)
	gt.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	gt.S(t, w.Body.String()).Contains("--chart-1")

	w = env.do(t, http.MethodGet, "/static/missing.js", nil, "")
	gt.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardStatsAPI(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/dashboard/stats", nil, "")
	gt.Equal(t, http.StatusOK, w.Code)
	gt.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var stats model.DashboardStats
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats)).Required()
	gt.Equal(t, 100.0, stats.NCStats.ComplianceRate)
	gt.Equal(t, 4, len(stats.NCStats.PriorityData))
	gt.Equal(t, "Basse", stats.NCStats.PriorityData[0].Label)
}

func TestDashboardStatsRemoteReadFailure(t *testing.T) {
	repo := &mocks.RepositoryMock{
		ListNonConformitiesFunc: func(ctx context.Context, query model.NonConformityQuery) ([]*model.NonConformity, error) {
			return nil, errors.New("connection refused")
		},
		ListAuditsFunc: func(ctx context.Context, query model.AuditQuery) ([]*model.Audit, error) {
			return nil, nil
		},
		ListActionsFunc: func(ctx context.Context, query model.ActionQuery) ([]*model.Action, error) {
			return nil, nil
		},
		ListDocumentsFunc: func(ctx context.Context, query model.DocumentQuery) ([]*model.Document, error) {
			return nil, nil
		},
		ListProfilesFunc: func(ctx context.Context) ([]*model.UserProfile, error) {
			return nil, nil
		},
	}
	dashboard, err := usecase.NewDashboard(repo, testConfig())
	gt.NoError(t, err).Required()
	server, err := controller.NewServer(context.Background(), ":0", controller.UseCases{Dashboard: dashboard})
	gt.NoError(t, err).Required()

	t.Run("stats API answers JSON error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, req)
		gt.Equal(t, http.StatusBadGateway, w.Code)
		gt.S(t, w.Body.String()).Contains(`"error"`)
	})

	t.Run("page renders placeholder", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, req)
		gt.Equal(t, http.StatusBadGateway, w.Code)
		gt.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

		body := w.Body.String()
		gt.S(t, body).Contains(`id="dashboard-content"`)
		gt.S(t, body).Contains("Données indisponibles")
		gt.False(t, strings.Contains(body, "Taux de conformité"))
		gt.False(t, strings.Contains(body, `"error"`))
	})

	// export is not configured
	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/export", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)
	gt.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestExportAPI(t *testing.T) {
	env := newTestEnv(t)

	t.Run("downloads PDF", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/dashboard/export?region=dashboard-content", nil, "")
		gt.Equal(t, http.StatusOK, w.Code)
		gt.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		gt.Equal(t, `attachment; filename="SmartQuali_Dashboard_2025-03-15_10-30.pdf"`, w.Header().Get("Content-Disposition"))
		gt.Equal(t, "1", w.Header().Get("X-Report-Pages"))
		gt.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
	})

	t.Run("default region", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/dashboard/export", nil, "")
		gt.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing region", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/dashboard/export?region=nowhere", nil, "")
		gt.Equal(t, http.StatusNotFound, w.Code)
		gt.S(t, w.Body.String()).Contains("export target not found")
	})

	t.Run("status", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/dashboard/export/status", nil, "")
		gt.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			IsExporting bool   `json:"is_exporting"`
			State       string `json:"state"`
		}
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		gt.False(t, resp.IsExporting)
		gt.Equal(t, "idle", resp.State)
	})
}

func TestNonConformityAPI(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/non-conformities", map[string]string{
		"title":      "Défaut de soudure",
		"priority":   "haute",
		"created_by": "u1",
	})
	gt.Equal(t, http.StatusCreated, w.Code)

	var nc model.NonConformity
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &nc)).Required()
	gt.Equal(t, "NC-2025-001", nc.Number)
	gt.Equal(t, types.NCPriorityHigh, nc.Priority)

	t.Run("get", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/non-conformities/"+nc.ID.String(), nil, "")
		gt.Equal(t, http.StatusOK, w.Code)
		gt.S(t, w.Body.String()).Contains("Défaut de soudure")
	})

	t.Run("list by status", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/non-conformities?status=ouverte&limit=5", nil, "")
		gt.Equal(t, http.StatusOK, w.Code)
		var list []model.NonConformity
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &list)).Required()
		gt.Equal(t, 1, len(list))

		w = env.do(t, http.MethodGet, "/api/non-conformities?status=open", nil, "")
		gt.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update status", func(t *testing.T) {
		w := env.doJSON(t, http.MethodPatch, "/api/non-conformities/"+nc.ID.String()+"/status", map[string]string{
			"status": "cloturee",
		})
		gt.Equal(t, http.StatusOK, w.Code)
		var updated model.NonConformity
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated)).Required()
		gt.Equal(t, types.NCStatusClosed, updated.Status)
		gt.True(t, updated.ClosedAt != nil)
	})

	t.Run("partial update", func(t *testing.T) {
		w := env.doJSON(t, http.MethodPatch, "/api/non-conformities/"+nc.ID.String(), map[string]any{
			"priority":          "critique",
			"corrective_action": "Requalifier le soudeur",
			"due_date":          "2025-04-10",
		})
		gt.Equal(t, http.StatusOK, w.Code)
		var updated model.NonConformity
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated)).Required()
		gt.Equal(t, types.NCPriorityCritical, updated.Priority)
		gt.Equal(t, "Requalifier le soudeur", updated.CorrectiveAction)
		gt.Equal(t, "Défaut de soudure", updated.Title)

		w = env.doJSON(t, http.MethodPatch, "/api/non-conformities/"+nc.ID.String(), map[string]any{"priority": "urgent"})
		gt.Equal(t, http.StatusBadRequest, w.Code)
		w = env.doJSON(t, http.MethodPatch, "/api/non-conformities/"+nc.ID.String(), map[string]any{"nc_number": "X"})
		gt.Equal(t, http.StatusBadRequest, w.Code)
		w = env.doJSON(t, http.MethodPatch, "/api/non-conformities/missing", map[string]any{"title": "x"})
		gt.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("attachment upload", func(t *testing.T) {
		body, contentType := multipartFile(t, "photo.jpg", []byte("jpg"))
		w := env.do(t, http.MethodPost, "/api/non-conformities/"+nc.ID.String()+"/attachment", body, contentType)
		gt.Equal(t, http.StatusOK, w.Code)
		var updated model.NonConformity
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated)).Required()
		gt.Equal(t, "http://localhost/files/non-conformities/"+nc.ID.String()+"/1742034600.jpg", updated.AttachmentURL)
	})

	t.Run("validation error", func(t *testing.T) {
		w := env.doJSON(t, http.MethodPost, "/api/non-conformities", map[string]string{"created_by": "u1"})
		gt.Equal(t, http.StatusBadRequest, w.Code)

		w = env.do(t, http.MethodPost, "/api/non-conformities", strings.NewReader("{"), "application/json")
		gt.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete then not found", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, "/api/non-conformities/"+nc.ID.String(), nil, "")
		gt.Equal(t, http.StatusNoContent, w.Code)

		w = env.do(t, http.MethodGet, "/api/non-conformities/"+nc.ID.String(), nil, "")
		gt.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuditActionAPI(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/audits", map[string]string{
		"title":      "Audit fournisseur",
		"type":       "fournisseur",
		"audit_date": "2025-03-20",
		"auditor_id": "u2",
		"created_by": "u1",
	})
	gt.Equal(t, http.StatusCreated, w.Code)
	var audit model.Audit
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &audit)).Required()

	w = env.do(t, http.MethodGet, "/api/audits?from=2025-03-01&to=2025-03-31", nil, "")
	gt.Equal(t, http.StatusOK, w.Code)
	var audits []model.Audit
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &audits)).Required()
	gt.Equal(t, 1, len(audits))

	w = env.do(t, http.MethodGet, "/api/audits?from=03/01/2025", nil, "")
	gt.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodPatch, "/api/audits/"+audit.ID.String(), map[string]any{
		"status":       "termine",
		"score":        92,
		"observations": "Conforme",
	})
	gt.Equal(t, http.StatusOK, w.Code)
	var updated model.Audit
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated)).Required()
	gt.Equal(t, types.AuditStatusDone, updated.Status)
	gt.Equal(t, 92.0, *updated.Score)

	w = env.doJSON(t, http.MethodPatch, "/api/audits/"+audit.ID.String(), map[string]any{"score": -1})
	gt.Equal(t, http.StatusBadRequest, w.Code)

	body, contentType := multipartFile(t, "rapport.pdf", []byte("%PDF-1.4"))
	w = env.do(t, http.MethodPost, "/api/audits/"+audit.ID.String()+"/report", body, contentType)
	gt.Equal(t, http.StatusOK, w.Code)
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated)).Required()
	gt.Equal(t, "http://localhost/files/audits/"+audit.ID.String()+"/1742034600.pdf", updated.ReportURL)
	calls := env.storage.UploadCalls()
	gt.Equal(t, "audits/"+audit.ID.String()+"/1742034600.pdf", calls[len(calls)-1].Path)

	w = env.do(t, http.MethodPost, "/api/audits/"+audit.ID.String()+"/report", strings.NewReader("x"), "text/plain")
	gt.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/actions", map[string]string{
		"type":        "preventive",
		"description": "Qualifier un second fournisseur",
		"assigned_to": "u3",
		"due_date":    "2025-04-30",
		"audit_id":    audit.ID.String(),
		"created_by":  "u1",
	})
	gt.Equal(t, http.StatusCreated, w.Code)
	var action model.Action
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &action)).Required()
	gt.Equal(t, "ACT-2025-001", action.Number)

	w = env.do(t, http.MethodGet, "/api/actions?status=planifiee", nil, "")
	gt.Equal(t, http.StatusOK, w.Code)
	gt.S(t, w.Body.String()).Contains(action.ID.String())

	w = env.do(t, http.MethodDelete, "/api/actions/"+action.ID.String(), nil, "")
	gt.Equal(t, http.StatusNoContent, w.Code)
	w = env.do(t, http.MethodGet, "/api/actions/"+action.ID.String(), nil, "")
	gt.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentAPI(t *testing.T) {
	env := newTestEnv(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "procedure.pdf")
	gt.NoError(t, err).Required()
	_, err = part.Write([]byte("%PDF-1.4"))
	gt.NoError(t, err).Required()
	gt.NoError(t, mw.Close()).Required()

	w := env.do(t, http.MethodPost, "/api/documents/files", &body, mw.FormDataContentType())
	gt.Equal(t, http.StatusCreated, w.Code)
	var uploaded struct {
		URL string `json:"url"`
	}
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded)).Required()
	gt.True(t, strings.HasPrefix(uploaded.URL, "http://localhost/files/documents/"))
	gt.True(t, strings.HasSuffix(uploaded.URL, ".pdf"))

	w = env.doJSON(t, http.MethodPost, "/api/documents", map[string]string{
		"title":      "Procédure achats",
		"category":   "procedure",
		"version":    "2.1",
		"file_url":   uploaded.URL,
		"created_by": "u1",
	})
	gt.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/documents?active=true", nil, "")
	gt.Equal(t, http.StatusOK, w.Code)
	var docs []model.Document
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs)).Required()
	gt.Equal(t, 1, len(docs))
	gt.Equal(t, "DOC-2025-001", docs[0].Number)

	w = env.doJSON(t, http.MethodPatch, "/api/documents/"+docs[0].ID.String(), map[string]any{"is_active": false})
	gt.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/documents?active=true", nil, "")
	gt.Equal(t, http.StatusOK, w.Code)
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs)).Required()
	gt.Equal(t, 0, len(docs))

	w = env.do(t, http.MethodGet, "/api/dashboard/stats", nil, "")
	gt.Equal(t, http.StatusOK, w.Code)
	var stats model.DashboardStats
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats)).Required()
	gt.Equal(t, 0, stats.DocumentStats.ActiveCount)

	w = env.do(t, http.MethodPost, "/api/documents/files", strings.NewReader("not multipart"), "text/plain")
	gt.Equal(t, http.StatusBadRequest, w.Code)
}

func multipartFile(t *testing.T, filename string, data []byte) (io.Reader, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	gt.NoError(t, err).Required()
	_, err = part.Write(data)
	gt.NoError(t, err).Required()
	gt.NoError(t, mw.Close()).Required()
	return &body, mw.FormDataContentType()
}

func TestProfileAPI(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/profiles", map[string]string{
		"email":      "qualite@example.com",
		"first_name": "Claire",
	})
	gt.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/profiles", map[string]string{"email": "nope"})
	gt.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/profiles", nil, "")
	gt.Equal(t, http.StatusOK, w.Code)
	var profiles []model.UserProfile
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &profiles)).Required()
	gt.Equal(t, 1, len(profiles))
}
