package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRespondWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)

	RespondWithJSON(recorder, req, http.StatusOK, map[string]string{"status": "ok"})

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}

	if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json content type, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok in body, got %q", body["status"])
	}
}

func TestRespondWithJSONNilData(t *testing.T) {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/test", nil)

	RespondWithJSON(recorder, req, http.StatusNoContent, nil)

	if recorder.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", recorder.Code)
	}

	if recorder.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", recorder.Body.String())
	}
}

func TestRespondWithError(t *testing.T) {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	RespondWithError(recorder, req, http.StatusNotFound, "User not found")

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", recorder.Code)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}

	if resp.Error != "User not found" {
		t.Errorf("Expected error message 'User not found', got %q", resp.Error)
	}

	if resp.TraceID == "" {
		t.Error("Expected trace ID in error response")
	}
}

func TestRespondWithErrorAndLogSanitizesBody(t *testing.T) {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)

	internalErr := errors.New("pq: duplicate key joao.silva@email.com")
	RespondWithErrorAndLog(recorder, req, http.StatusConflict, "Email already registered", internalErr)

	if recorder.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", recorder.Code)
	}

	body := recorder.Body.String()
	var resp ErrorResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}

	if resp.Error != "Email already registered" {
		t.Errorf("Expected sanitized message, got %q", resp.Error)
	}

	// The raw error must never reach the client
	if strings.Contains(body, "joao.silva@email.com") {
		t.Errorf("Internal error leaked into response body: %q", body)
	}
}
