package http

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/usecase"
)

const maxUploadSize = 32 << 20

// RecordsHandler exposes the quality records as a JSON API
type RecordsHandler struct {
	records usecase.RecordsUseCase
}

// NewRecordsHandler creates a records handler
func NewRecordsHandler(records usecase.RecordsUseCase) *RecordsHandler {
	return &RecordsHandler{records: records}
}

// Routes mounts the record endpoints on r
func (h *RecordsHandler) Routes(r chi.Router) {
	r.Route("/non-conformities", func(r chi.Router) {
		r.Get("/", h.listNonConformities)
		r.Post("/", h.createNonConformity)
		r.Get("/{id}", h.getNonConformity)
		r.Delete("/{id}", h.deleteNonConformity)
		r.Patch("/{id}", h.updateNonConformity)
		r.Patch("/{id}/status", h.updateNonConformityStatus)
		r.Post("/{id}/attachment", h.uploadNonConformityAttachment)
	})
	r.Route("/audits", func(r chi.Router) {
		r.Get("/", h.listAudits)
		r.Post("/", h.createAudit)
		r.Get("/{id}", h.getAudit)
		r.Patch("/{id}", h.updateAudit)
		r.Delete("/{id}", h.deleteAudit)
		r.Post("/{id}/report", h.uploadAuditReport)
	})
	r.Route("/actions", func(r chi.Router) {
		r.Get("/", h.listActions)
		r.Post("/", h.createAction)
		r.Get("/{id}", h.getAction)
		r.Delete("/{id}", h.deleteAction)
	})
	r.Route("/documents", func(r chi.Router) {
		r.Get("/", h.listDocuments)
		r.Post("/", h.createDocument)
		r.Post("/files", h.uploadDocumentFile)
		r.Get("/{id}", h.getDocument)
		r.Patch("/{id}", h.updateDocument)
		r.Delete("/{id}", h.deleteDocument)
	})
	r.Route("/profiles", func(r chi.Router) {
		r.Get("/", h.listProfiles)
		r.Post("/", h.createProfile)
	})
}

func queryLimit(r *http.Request) (int, error) {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, goerr.New("invalid limit", goerr.V("limit", s), goerr.T(model.ErrTagValidation))
	}
	return n, nil
}

func queryDate(r *http.Request, key string) (time.Time, error) {
	d, err := model.ParseDate(r.URL.Query().Get(key))
	if err != nil || d == nil {
		return time.Time{}, err
	}
	return *d, nil
}

func (h *RecordsHandler) listNonConformities(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	query := model.NonConformityQuery{Limit: limit}
	for _, s := range r.URL.Query()["status"] {
		status := types.NCStatus(s)
		if !status.IsValid() {
			writeError(w, r, goerr.New("invalid status", goerr.V("status", s), goerr.T(model.ErrTagValidation)))
			return
		}
		query.Statuses = append(query.Statuses, status)
	}

	ncs, err := h.records.ListNonConformities(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, ncs)
}

func (h *RecordsHandler) createNonConformity(w http.ResponseWriter, r *http.Request) {
	var req model.CreateNonConformityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	nc, err := h.records.CreateNonConformity(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, nc)
}

func (h *RecordsHandler) getNonConformity(w http.ResponseWriter, r *http.Request) {
	nc, err := h.records.GetNonConformity(r.Context(), types.NonConformityID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, nc)
}

func (h *RecordsHandler) deleteNonConformity(w http.ResponseWriter, r *http.Request) {
	if err := h.records.DeleteNonConformity(r.Context(), types.NonConformityID(chi.URLParam(r, "id"))); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RecordsHandler) updateNonConformity(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateNonConformityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	nc, err := h.records.UpdateNonConformity(r.Context(), types.NonConformityID(chi.URLParam(r, "id")), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, nc)
}

func (h *RecordsHandler) uploadNonConformityAttachment(w http.ResponseWriter, r *http.Request) {
	upload, err := readUpload(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer upload.file.Close()

	nc, err := h.records.UploadNonConformityAttachment(r.Context(),
		types.NonConformityID(chi.URLParam(r, "id")), upload.filename, upload.file, upload.contentType)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, nc)
}

func (h *RecordsHandler) updateNonConformityStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status types.NCStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	nc, err := h.records.UpdateNonConformityStatus(r.Context(), types.NonConformityID(chi.URLParam(r, "id")), req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, nc)
}

func (h *RecordsHandler) listAudits(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	from, err := queryDate(r, "from")
	if err != nil {
		writeError(w, r, err)
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		writeError(w, r, err)
		return
	}

	audits, err := h.records.ListAudits(r.Context(), model.AuditQuery{From: from, To: to, Limit: limit})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, audits)
}

func (h *RecordsHandler) createAudit(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAuditRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	audit, err := h.records.CreateAudit(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, audit)
}

func (h *RecordsHandler) getAudit(w http.ResponseWriter, r *http.Request) {
	audit, err := h.records.GetAudit(r.Context(), types.AuditID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, audit)
}

func (h *RecordsHandler) updateAudit(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateAuditRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	audit, err := h.records.UpdateAudit(r.Context(), types.AuditID(chi.URLParam(r, "id")), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, audit)
}

func (h *RecordsHandler) uploadAuditReport(w http.ResponseWriter, r *http.Request) {
	upload, err := readUpload(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer upload.file.Close()

	audit, err := h.records.UploadAuditReport(r.Context(),
		types.AuditID(chi.URLParam(r, "id")), upload.filename, upload.file, upload.contentType)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, audit)
}

func (h *RecordsHandler) deleteAudit(w http.ResponseWriter, r *http.Request) {
	if err := h.records.DeleteAudit(r.Context(), types.AuditID(chi.URLParam(r, "id"))); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RecordsHandler) listActions(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	query := model.ActionQuery{Limit: limit}
	for _, s := range r.URL.Query()["status"] {
		status := types.ActionStatus(s)
		if !status.IsValid() {
			writeError(w, r, goerr.New("invalid status", goerr.V("status", s), goerr.T(model.ErrTagValidation)))
			return
		}
		query.Statuses = append(query.Statuses, status)
	}

	actions, err := h.records.ListActions(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, actions)
}

func (h *RecordsHandler) createAction(w http.ResponseWriter, r *http.Request) {
	var req model.CreateActionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	action, err := h.records.CreateAction(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, action)
}

func (h *RecordsHandler) getAction(w http.ResponseWriter, r *http.Request) {
	action, err := h.records.GetAction(r.Context(), types.ActionID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, action)
}

func (h *RecordsHandler) deleteAction(w http.ResponseWriter, r *http.Request) {
	if err := h.records.DeleteAction(r.Context(), types.ActionID(chi.URLParam(r, "id"))); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RecordsHandler) listDocuments(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	activeOnly := false
	if s := r.URL.Query().Get("active"); s != "" {
		if activeOnly, err = strconv.ParseBool(s); err != nil {
			writeError(w, r, goerr.Wrap(err, "invalid active flag", goerr.T(model.ErrTagValidation)))
			return
		}
	}

	docs, err := h.records.ListDocuments(r.Context(), model.DocumentQuery{ActiveOnly: activeOnly, Limit: limit})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, docs)
}

func (h *RecordsHandler) createDocument(w http.ResponseWriter, r *http.Request) {
	var req model.CreateDocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	doc, err := h.records.CreateDocument(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, doc)
}

type upload struct {
	file        multipart.File
	filename    string
	contentType string
}

// readUpload extracts the "file" field of a multipart request. The caller closes the file.
func readUpload(w http.ResponseWriter, r *http.Request) (*upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, goerr.Wrap(err, "invalid upload", goerr.T(model.ErrTagValidation))
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, goerr.Wrap(err, "file field is required", goerr.T(model.ErrTagValidation))
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &upload{file: file, filename: header.Filename, contentType: contentType}, nil
}

func (h *RecordsHandler) uploadDocumentFile(w http.ResponseWriter, r *http.Request) {
	upload, err := readUpload(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer upload.file.Close()

	url, err := h.records.UploadDocumentFile(r.Context(), upload.filename, upload.file, upload.contentType)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, map[string]string{"url": url})
}

func (h *RecordsHandler) updateDocument(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateDocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	doc, err := h.records.UpdateDocument(r.Context(), types.DocumentID(chi.URLParam(r, "id")), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, doc)
}

func (h *RecordsHandler) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.records.GetDocument(r.Context(), types.DocumentID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, doc)
}

func (h *RecordsHandler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.records.DeleteDocument(r.Context(), types.DocumentID(chi.URLParam(r, "id"))); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RecordsHandler) listProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.records.ListProfiles(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, profiles)
}

func (h *RecordsHandler) createProfile(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	profile, err := h.records.CreateProfile(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, profile)
}
