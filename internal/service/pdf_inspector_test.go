package service

import (
	"errors"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, fields ...interface{})             {}
func (nopLogger) Error(msg string, err error, fields ...interface{}) {}
func (nopLogger) Debug(msg string, fields ...interface{})            {}
func (nopLogger) Warn(msg string, fields ...interface{})             {}

type stubInspector struct {
	count int
	err   error
}

func (s stubInspector) PageCount(data []byte) (int, error) {
	return s.count, s.err
}

func TestPDFInspector_RejectsNonPDF(t *testing.T) {
	inspector := NewPDFInspector(nopLogger{})

	if _, err := inspector.PageCount([]byte("hello world")); !errors.Is(err, errNotPDF) {
		t.Fatalf("expected errNotPDF, got %v", err)
	}
	if _, err := inspector.PageCount(nil); !errors.Is(err, errNotPDF) {
		t.Fatalf("expected errNotPDF for empty data, got %v", err)
	}
}

func TestDescribe_WithPageCount(t *testing.T) {
	file := Describe(stubInspector{count: 4}, nopLogger{}, "board.pdf", []byte("%PDF"))

	if file.Name != "board.pdf" || string(file.Data) != "%PDF" {
		t.Fatalf("unexpected file: %+v", file)
	}
	if file.PageCount == nil || *file.PageCount != 4 {
		t.Fatalf("expected page count 4, got %v", file.PageCount)
	}
}

func TestDescribe_UnreadableFileStillSelected(t *testing.T) {
	file := Describe(stubInspector{err: errNotPDF}, nopLogger{}, "notes.txt", []byte("text"))

	if file == nil {
		t.Fatalf("expected file to be returned")
	}
	if file.PageCount != nil {
		t.Fatalf("expected no page count, got %d", *file.PageCount)
	}
}
