package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "pdf-analyzer-client/pkg/errors"
)

func TestNewRouter_Health(t *testing.T) {
	console := newTestConsole(t, 1<<20)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := console.do(t, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
	if rr.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected request id header to be set")
	}
}

func TestNewRouter_KeepsIncomingRequestID(t *testing.T) {
	console := newTestConsole(t, 1<<20)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rr := console.do(t, req)

	if got := rr.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected request id abc-123, got %s", got)
	}
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	console := newTestConsole(t, 1<<20)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/session/upload", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := console.do(t, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:4200" {
		t.Fatalf("expected allowed origin, got %q", got)
	}
}

func TestNewRouter_CORSRejectsUnknownOrigin(t *testing.T) {
	console := newTestConsole(t, 1<<20)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr := console.do(t, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allowed origin, got %q", got)
	}
}

func TestNewRouter_MethodNotAllowed(t *testing.T) {
	console := newTestConsole(t, 1<<20)

	rr := console.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/session/upload", nil))

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}

func TestAnalyzerHandler_Connectivity(t *testing.T) {
	console := newTestConsole(t, 1<<20)

	rr := console.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/connectivity", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "Backend connection successful!") {
		t.Fatalf("unexpected response %d: %s", rr.Code, rr.Body.String())
	}

	console.analyzer.connectivityErr = apperrors.NewTransportError(errors.New("connection refused"))
	rr = console.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/connectivity", nil))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"connection refused"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestAnalyzerHandler_Health(t *testing.T) {
	console := newTestConsole(t, 1<<20)

	rr := console.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/analyzer/health", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response %d: %s", rr.Code, rr.Body.String())
	}

	console.analyzer.healthErr = apperrors.NewServerError(http.StatusServiceUnavailable, "Service unavailable or database connection failed")
	rr = console.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/analyzer/health", nil))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "503") {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}
