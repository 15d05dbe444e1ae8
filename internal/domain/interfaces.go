package domain

import "context"

// AnalyzerAPI defines the remote operations exposed by the analyzer service.
// Every failure is a single human-readable message (see pkg/errors).
type AnalyzerAPI interface {
	CheckConnectivity(ctx context.Context) (*ConnectivityResponse, error)
	Upload(ctx context.Context, filename string, data []byte) (*UploadResponse, error)
	Analyze(ctx context.Context, documentID int64) (*AnalyzeResponse, error)
	FetchResults(ctx context.Context, documentID int64) (*AnalysisResults, error)
	Health(ctx context.Context) (*HealthResponse, error)
	ExportResults(ctx context.Context, documentID int64, format ExportFormat) (*ExportFile, error)
}

// Workflow is the document workflow surface used by the console and CLI.
type Workflow interface {
	SelectFile(file *SelectedFile)
	Upload(ctx context.Context) <-chan struct{}
	Analyze(ctx context.Context) <-chan struct{}
	FetchResults(ctx context.Context) <-chan struct{}
	Snapshot() Snapshot
}

// PDFInspector reads informational metadata from a locally selected file.
type PDFInspector interface {
	PageCount(data []byte) (int, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetAnalyzerBaseURL() string
	GetRequestTimeoutSeconds() int
	GetMaxFileSize() int64
	GetLogLevel() string
	GetAllowedOrigins() []string
}
