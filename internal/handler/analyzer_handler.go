package handler

import (
	"net/http"

	"pdf-analyzer-client/internal/domain"
)

// AnalyzerHandler reports on the remote analyzer service
type AnalyzerHandler struct {
	analyzer domain.AnalyzerAPI
	logger   domain.Logger
}

// NewAnalyzerHandler creates a new analyzer handler
func NewAnalyzerHandler(analyzer domain.AnalyzerAPI, logger domain.Logger) *AnalyzerHandler {
	return &AnalyzerHandler{
		analyzer: analyzer,
		logger:   logger,
	}
}

// CheckConnectivity proxies the analyzer's connection check
func (h *AnalyzerHandler) CheckConnectivity(w http.ResponseWriter, r *http.Request) {
	resp, err := h.analyzer.CheckConnectivity(r.Context())
	if err != nil {
		h.logger.Warn("Analyzer connectivity check failed", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health proxies the analyzer's database health probe
func (h *AnalyzerHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp, err := h.analyzer.Health(r.Context())
	if err != nil {
		h.logger.Warn("Analyzer health check failed", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
