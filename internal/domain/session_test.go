package domain

import (
	"encoding/json"
	"testing"
)

func TestSessionSnapshot_CopiesMutableFields(t *testing.T) {
	id := int64(42)
	pages := 3
	s := &Session{
		SelectedFile:   &SelectedFile{Name: "a.pdf", Data: []byte("%PDF"), PageCount: &pages},
		DocumentID:     &id,
		UploadStatus:   "PDF uploaded successfully",
		AnalysisStatus: "Found 2 component(s).",
		Components:     []string{"R1", "C2"},
		IsBusy:         true,
	}

	snap := s.Snapshot(StateReady)
	s.Components[0] = "changed"
	*s.DocumentID = 7
	s.SelectedFile.Name = "b.pdf"

	if snap.State != StateReady {
		t.Fatalf("expected state %s, got %s", StateReady, snap.State)
	}
	if snap.Components[0] != "R1" {
		t.Fatalf("expected snapshot components to be copied, got %v", snap.Components)
	}
	if *snap.DocumentID != 42 {
		t.Fatalf("expected snapshot id 42, got %d", *snap.DocumentID)
	}
	if snap.SelectedFile.Name != "a.pdf" {
		t.Fatalf("expected snapshot file a.pdf, got %s", snap.SelectedFile.Name)
	}
	if !snap.IsBusy {
		t.Fatalf("expected snapshot to be busy")
	}
}

func TestSessionSnapshot_EmptySession(t *testing.T) {
	snap := (&Session{}).Snapshot(StateIdle)

	if snap.DocumentID != nil || snap.SelectedFile != nil {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
	body, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	if string(body) != `{"state":"idle","upload_status":"","analysis_status":"","components":[],"is_busy":false}` {
		t.Fatalf("unexpected snapshot JSON: %s", body)
	}
}

func TestAnalysisResults_HasComponents(t *testing.T) {
	var missing AnalysisResults
	if err := json.Unmarshal([]byte(`{"pdf_id":1}`), &missing); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if missing.HasComponents() {
		t.Fatalf("expected missing component list to be reported")
	}

	var empty AnalysisResults
	if err := json.Unmarshal([]byte(`{"pdf_id":1,"components":[]}`), &empty); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !empty.HasComponents() || len(empty.Components) != 0 {
		t.Fatalf("expected empty component list, got %v", empty.Components)
	}

	var null AnalysisResults
	if err := json.Unmarshal([]byte(`{"pdf_id":1,"components":null}`), &null); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if null.HasComponents() {
		t.Fatalf("expected null component list to be reported as missing")
	}
}

func TestParseExportFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    ExportFormat
		wantErr bool
	}{
		{"", ExportFormatJSON, false},
		{"JSON", ExportFormatJSON, false},
		{" csv ", ExportFormatCSV, false},
		{"xlsx", "", true},
	}
	for _, tc := range cases {
		got, err := ParseExportFormat(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseExportFormat(%q) error = %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseExportFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
