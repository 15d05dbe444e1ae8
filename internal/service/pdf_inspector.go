package service

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"pdf-analyzer-client/internal/domain"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var errNotPDF = errors.New("file is not a PDF")

// PDFInspector reads page counts from selected files with pdfcpu
type PDFInspector struct {
	logger domain.Logger
}

// NewPDFInspector creates a new PDF inspector
func NewPDFInspector(logger domain.Logger) *PDFInspector {
	return &PDFInspector{logger: logger}
}

// PageCount returns the number of pages in a PDF blob
func (p *PDFInspector) PageCount(data []byte) (count int, err error) {
	if len(data) == 0 || http.DetectContentType(data) != "application/pdf" {
		return 0, errNotPDF
	}

	// pdfcpu can panic on malformed input.
	defer func() {
		if r := recover(); r != nil {
			p.logger.Debug("pdfcpu panicked while counting pages", "panic", r)
			count, err = 0, fmt.Errorf("failed to read PDF: %v", r)
		}
	}()

	count, err = api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to read PDF: %w", err)
	}
	return count, nil
}

// Describe builds a SelectedFile for name and data. The page count is
// informational: files that fail to parse are still returned so the
// analyzer can decide whether to accept them.
func Describe(inspector domain.PDFInspector, logger domain.Logger, name string, data []byte) *domain.SelectedFile {
	file := &domain.SelectedFile{Name: name, Data: data}

	count, err := inspector.PageCount(data)
	if err != nil {
		logger.Warn("Could not inspect selected file", "filename", name, "error", err)
		return file
	}
	file.PageCount = &count
	return file
}
