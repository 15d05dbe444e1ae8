package domain

import "errors"

// Domain errors
var (
	ErrNoDocument              = errors.New("no PDF has been uploaded successfully yet")
	ErrMissingDocumentID       = errors.New("analyzer response did not include a pdf_id")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrInvalidDocumentID       = errors.New("invalid document id")
)
