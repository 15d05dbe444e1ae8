// Package workflow drives the single-document upload, analyze and
// fetch-results sequence against the analyzer service.
package workflow

import (
	"context"
	"sync"

	"pdf-analyzer-client/internal/domain"
)

// Controller owns one document session and sequences its remote steps.
//
// Operations never block on the network: each dispatches its step and
// returns a channel that is closed once the step's outcome (including a
// chained fetch) has been applied to the session. State mutations are
// serialized by mu. In-flight steps are not cancelled when a new file is
// selected, so a slow response may still overwrite the newer session.
type Controller struct {
	api    domain.AnalyzerAPI
	logger domain.Logger

	mu      sync.Mutex
	session domain.Session
	state   domain.State

	inflight sync.WaitGroup
}

// NewController creates a controller with an empty session
func NewController(api domain.AnalyzerAPI, logger domain.Logger) *Controller {
	return &Controller{
		api:    api,
		logger: logger,
		state:  domain.StateIdle,
	}
}

// Snapshot returns a copy of the current session
func (c *Controller) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Snapshot(c.state)
}

// Wait blocks until every dispatched step has completed
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// SelectFile replaces the selected file and starts a fresh session.
// A nil file clears the selection.
func (c *Controller) SelectFile(file *domain.SelectedFile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = domain.Session{
		SelectedFile: file,
		IsBusy:       c.session.IsBusy,
	}
	c.state = domain.StateIdle

	if file != nil {
		c.logger.Info("File selected", "filename", file.Name, "size", file.Size())
	}
}

// UseDocument starts a fresh session for a document the analyzer already
// holds, so Analyze and FetchResults can run without an upload.
func (c *Controller) UseDocument(id int64) error {
	if id <= 0 {
		return domain.ErrInvalidDocumentID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = domain.Session{
		DocumentID: &id,
		IsBusy:     c.session.IsBusy,
	}
	c.state = domain.StateIdle
	c.logger.Info("Using uploaded document", "pdf_id", id)
	return nil
}

// Upload sends the selected file to the analyzer
func (c *Controller) Upload(ctx context.Context) <-chan struct{} {
	c.mu.Lock()
	file := c.session.SelectedFile
	if file == nil {
		c.session.UploadStatus = msgSelectFileFirst
		c.mu.Unlock()
		return done()
	}
	c.session.IsBusy = true
	c.session.UploadStatus = ""
	c.session.AnalysisStatus = ""
	c.session.Components = nil
	c.session.DocumentID = nil
	c.state = domain.StateUploading
	c.mu.Unlock()

	return c.dispatch(func() { c.runUpload(ctx, file) })
}

// Analyze triggers analysis of the uploaded document and, once the server
// acknowledges it, fetches the results for the same document.
func (c *Controller) Analyze(ctx context.Context) <-chan struct{} {
	c.mu.Lock()
	if c.session.DocumentID == nil {
		c.session.AnalysisStatus = msgUploadFirst
		c.mu.Unlock()
		return done()
	}
	id := *c.session.DocumentID
	c.session.IsBusy = true
	c.session.AnalysisStatus = msgAnalysisStarting
	c.session.Components = nil
	c.state = domain.StateAnalyzing
	c.mu.Unlock()

	return c.dispatch(func() { c.runAnalysis(ctx, id) })
}

// FetchResults retrieves the components of the uploaded document
func (c *Controller) FetchResults(ctx context.Context) <-chan struct{} {
	c.mu.Lock()
	if c.session.DocumentID == nil {
		c.session.AnalysisStatus = msgCannotFetch
		c.session.IsBusy = false
		c.mu.Unlock()
		return done()
	}
	id := *c.session.DocumentID
	c.beginFetch()
	c.mu.Unlock()

	return c.dispatch(func() { c.runFetch(ctx, id) })
}

func (c *Controller) runUpload(ctx context.Context, file *domain.SelectedFile) {
	resp, err := c.api.Upload(ctx, file.Name, file.Data)
	if err == nil && resp.DocumentID <= 0 {
		err = domain.ErrMissingDocumentID
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.IsBusy = false

	if err != nil {
		c.logger.Error("Upload failed", err, "filename", file.Name)
		c.session.UploadStatus = uploadFailed(err)
		c.state = domain.StateFailed
		return
	}

	id := resp.DocumentID
	c.session.DocumentID = &id
	c.session.UploadStatus = orDefault(resp.Message, msgUploadSucceeded)
	c.state = domain.StateIdle
	c.logger.Info("Upload successful", "filename", file.Name, "pdf_id", id)
}

// runAnalysis awaits the analyze step and then the fetch step in order.
// IsBusy stays set between the two.
func (c *Controller) runAnalysis(ctx context.Context, id int64) {
	resp, err := c.api.Analyze(ctx, id)

	c.mu.Lock()
	if err != nil {
		c.logger.Error("Analysis request failed", err, "pdf_id", id)
		c.session.AnalysisStatus = analysisFailed(err)
		c.session.IsBusy = false
		c.state = domain.StateFailed
		c.mu.Unlock()
		return
	}
	c.session.AnalysisStatus = orDefault(resp.Message, msgAnalysisRequested)
	c.logger.Info("Analysis triggered", "pdf_id", id, "components_found", resp.ComponentsFound)
	c.beginFetch()
	c.mu.Unlock()

	c.runFetch(ctx, id)
}

// beginFetch marks the session as fetching. Callers hold mu.
func (c *Controller) beginFetch() {
	c.session.IsBusy = true
	c.session.AnalysisStatus = msgFetchingResults
	c.session.Components = nil
	c.state = domain.StateFetchingResults
}

func (c *Controller) runFetch(ctx context.Context, id int64) {
	resp, err := c.api.FetchResults(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.IsBusy = false

	switch {
	case err != nil:
		c.logger.Error("Failed to fetch results", err, "pdf_id", id)
		c.session.AnalysisStatus = fetchFailed(err)
		c.state = domain.StateFailed
	case !resp.HasComponents():
		c.logger.Warn("Analysis results missing component data", "pdf_id", id)
		c.session.Components = []string{}
		c.session.AnalysisStatus = msgResultsMissing
		c.state = domain.StateFailed
	default:
		c.session.Components = append([]string{}, resp.Components...)
		c.session.AnalysisStatus = componentsFound(len(resp.Components))
		c.state = domain.StateReady
		c.logger.Info("Analysis results received", "pdf_id", id, "components", len(resp.Components))
	}
}

func (c *Controller) dispatch(step func()) <-chan struct{} {
	ch := make(chan struct{})
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		defer close(ch)
		step()
	}()
	return ch
}

func done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
