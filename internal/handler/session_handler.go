// Package handler provides the console's HTTP handlers.
package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"pdf-analyzer-client/internal/domain"
	"pdf-analyzer-client/internal/service"
	apperrors "pdf-analyzer-client/pkg/errors"
)

// SessionHandler exposes the document workflow session over HTTP
type SessionHandler struct {
	workflow    domain.Workflow
	analyzer    domain.AnalyzerAPI
	inspector   domain.PDFInspector
	logger      domain.Logger
	maxFileSize int64

	// Steps run on baseCtx so they outlive the request that started them.
	baseCtx context.Context
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(
	baseCtx context.Context,
	workflow domain.Workflow,
	analyzer domain.AnalyzerAPI,
	inspector domain.PDFInspector,
	logger domain.Logger,
	maxFileSize int64,
) *SessionHandler {
	return &SessionHandler{
		workflow:    workflow,
		analyzer:    analyzer,
		inspector:   inspector,
		logger:      logger,
		maxFileSize: maxFileSize,
		baseCtx:     baseCtx,
	}
}

// GetSession returns the current session snapshot
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.workflow.Snapshot())
}

// SelectFile reads the multipart "file" field and makes it the selected file
func (h *SessionHandler) SelectFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	name := strings.TrimSpace(filepath.Base(header.Filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "document.pdf"
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read selected file", err, "filename", name)
		writeError(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	h.workflow.SelectFile(service.Describe(h.inspector, h.logger, name, data))
	writeJSON(w, http.StatusOK, h.workflow.Snapshot())
}

// Upload starts the upload step
func (h *SessionHandler) Upload(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.workflow.Upload(h.baseCtx))
}

// Analyze starts the analyze step, which chains into fetching results
func (h *SessionHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.workflow.Analyze(h.baseCtx))
}

// FetchResults starts the fetch-results step
func (h *SessionHandler) FetchResults(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.workflow.FetchResults(h.baseCtx))
}

// Export downloads the current document's results from the analyzer
func (h *SessionHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := domain.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unsupported export format. Allowed: json, csv.")
		return
	}

	snap := h.workflow.Snapshot()
	if snap.DocumentID == nil {
		writeError(w, http.StatusConflict, domain.ErrNoDocument.Error())
		return
	}

	file, err := h.analyzer.ExportResults(r.Context(), *snap.DocumentID, format)
	if err != nil {
		h.logger.Error("Export failed", err, "pdf_id", *snap.DocumentID, "format", format)
		writeError(w, upstreamStatus(err), err.Error())
		return
	}

	if file.ContentType != "" {
		w.Header().Set("Content-Type", file.ContentType)
	}
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename})
	if disposition == "" {
		disposition = "attachment"
	}
	w.Header().Set("Content-Disposition", disposition)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}

// respond replies with the snapshot, after the step completes when ?wait is set.
func (h *SessionHandler) respond(w http.ResponseWriter, r *http.Request, step <-chan struct{}) {
	if !wantsWait(r) {
		writeJSON(w, http.StatusAccepted, h.workflow.Snapshot())
		return
	}

	select {
	case <-step:
		writeJSON(w, http.StatusOK, h.workflow.Snapshot())
	case <-r.Context().Done():
		writeJSON(w, http.StatusAccepted, h.workflow.Snapshot())
	}
}

// upstreamStatus maps an analyzer failure onto the console's response code.
func upstreamStatus(err error) int {
	switch {
	case apperrors.IsType(err, apperrors.ErrorTypeValidation):
		return http.StatusBadRequest
	case apperrors.IsType(err, apperrors.ErrorTypeServer):
		if code := apperrors.GetStatusCode(err); code == http.StatusNotFound {
			return code
		}
	}
	return http.StatusBadGateway
}
