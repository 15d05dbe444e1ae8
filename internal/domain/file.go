package domain

// SelectedFile is the binary blob chosen locally by the user.
type SelectedFile struct {
	Name string `json:"name"`
	Data []byte `json:"-"`

	// PageCount is nil when the blob could not be read as a PDF.
	PageCount *int `json:"page_count,omitempty"`
}

// Size returns the blob length in bytes
func (f *SelectedFile) Size() int {
	if f == nil {
		return 0
	}
	return len(f.Data)
}
