package workflow

import "fmt"

// Status messages recorded on the session.
const (
	msgSelectFileFirst   = "Please select a PDF file first."
	msgUploadSucceeded   = "Upload successful!"
	msgUploadFirst       = "Please upload a PDF successfully first."
	msgAnalysisStarting  = "Starting analysis..."
	msgAnalysisRequested = "Analysis request sent successfully. Fetching results..."
	msgCannotFetch       = "Cannot fetch results. No PDF has been uploaded and analyzed successfully yet."
	msgFetchingResults   = "Fetching analysis results..."
	msgResultsMissing    = "Received results, but component data is missing."
	msgNoComponentsNote  = " (No components extracted or analysis did not yield results)."
)

func uploadFailed(err error) string {
	return "Upload failed: " + err.Error()
}

func analysisFailed(err error) string {
	return "Analysis request failed: " + err.Error()
}

func fetchFailed(err error) string {
	return "Failed to fetch results: " + err.Error()
}

// componentsFound formats the count message for a fetched result list.
func componentsFound(n int) string {
	msg := fmt.Sprintf("Found %d component(s).", n)
	if n == 0 {
		msg += msgNoComponentsNote
	}
	return msg
}

func orDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
