package domain

// State is the workflow controller's position in the upload, analyze and
// fetch-results sequence.
type State string

const (
	StateIdle            State = "idle"
	StateUploading       State = "uploading"
	StateAnalyzing       State = "analyzing"
	StateFetchingResults State = "fetching_results"
	StateReady           State = "ready"
	StateFailed          State = "failed"
)

// Session is the single document workflow record owned by the controller.
type Session struct {
	SelectedFile   *SelectedFile
	DocumentID     *int64
	UploadStatus   string
	AnalysisStatus string
	Components     []string
	IsBusy         bool
}

// Snapshot is a point-in-time copy of a Session and its State.
type Snapshot struct {
	State          State         `json:"state"`
	SelectedFile   *SelectedFile `json:"selected_file,omitempty"`
	DocumentID     *int64        `json:"pdf_id,omitempty"`
	UploadStatus   string        `json:"upload_status"`
	AnalysisStatus string        `json:"analysis_status"`
	Components     []string      `json:"components"`
	IsBusy         bool          `json:"is_busy"`
}

// Snapshot copies the session so observers never share its slices.
func (s *Session) Snapshot(state State) Snapshot {
	snap := Snapshot{
		State:          state,
		UploadStatus:   s.UploadStatus,
		AnalysisStatus: s.AnalysisStatus,
		Components:     append([]string{}, s.Components...),
		IsBusy:         s.IsBusy,
	}
	if s.SelectedFile != nil {
		f := *s.SelectedFile
		snap.SelectedFile = &f
	}
	if s.DocumentID != nil {
		id := *s.DocumentID
		snap.DocumentID = &id
	}
	return snap
}
