package domain

import "strings"

// ConnectivityResponse is returned by the analyzer's connection check.
type ConnectivityResponse struct {
	Message string `json:"message"`
}

// UploadResponse is returned after a PDF has been stored by the analyzer.
type UploadResponse struct {
	Message    string `json:"message"`
	DocumentID int64  `json:"pdf_id"`
}

// AnalyzeResponse is returned once the analyzer has run component extraction.
type AnalyzeResponse struct {
	Message         string `json:"message"`
	AnalysisID      int64  `json:"analysis_id,omitempty"`
	ComponentsFound int    `json:"components_found,omitempty"`
}

// AnalysisResults holds the extracted components for a document.
// Components is nil when the payload carried no component list.
type AnalysisResults struct {
	DocumentID   int64    `json:"pdf_id"`
	Filename     string   `json:"pdf_filename,omitempty"`
	AnalysisType string   `json:"analysis_type,omitempty"`
	Components   []string `json:"components"`
}

// HasComponents reports whether the payload contained a component list,
// which may be empty.
func (r *AnalysisResults) HasComponents() bool {
	return r != nil && r.Components != nil
}

// HealthResponse is the analyzer's database health probe.
type HealthResponse struct {
	Status          string      `json:"status"`
	DatabaseVersion interface{} `json:"database_version,omitempty"`
	Error           string      `json:"error,omitempty"`
}

// ExportFormat selects the export representation of analysis results.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatCSV  ExportFormat = "csv"
)

// ParseExportFormat normalizes a user-supplied format, defaulting to JSON.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", ExportFormatJSON:
		return ExportFormatJSON, nil
	case ExportFormatCSV:
		return ExportFormatCSV, nil
	default:
		return "", ErrUnsupportedExportFormat
	}
}

// ExportFile is a downloaded export of analysis results.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
