package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ieee-kiit/events-api/internal/api/handler"
	"github.com/ieee-kiit/events-api/internal/core/domain"
)

func renderError(t *testing.T, err error, production bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHTTPErrorHandler(zerolog.Nop(), production)
	h(err, c)

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec, out
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"event not found", domain.ErrEventNotFound, http.StatusNotFound, "Event not found"},
		{"society not found", domain.ErrSocietyNotFound, http.StatusNotFound, "Society not found"},
		{"end before start", domain.ErrEndBeforeStart, http.StatusBadRequest, "end_time must be after start_time"},
		{"empty patch", domain.ErrNoFields, http.StatusBadRequest, "no fields to update"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, out := renderError(t, tt.err, false)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if out["success"] != false {
				t.Fatalf("expected success=false")
			}
			if out["error"] != tt.wantMsg {
				t.Fatalf("expected error %q, got %v", tt.wantMsg, out["error"])
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("query failed"), domain.ErrEventNotFound)
	rec, _ := renderError(t, wrapped, false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("wrapped domain error not unwrapped, got %d", rec.Code)
	}
}

func TestErrorHandler_ValidationFields(t *testing.T) {
	ve := &handler.ValidationError{Fields: []handler.FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "email", Message: "email must be a valid email"},
	}}

	rec, out := renderError(t, ve, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	fields, ok := out["errors"].([]any)
	if !ok || len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %v", out["errors"])
	}
	first, _ := fields[0].(map[string]any)
	if first["field"] != "title" || first["message"] != "title is required" {
		t.Fatalf("unexpected first field error: %v", first)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, out := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "Invalid event ID"), false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if out["error"] != "Invalid event ID" {
		t.Fatalf("unexpected error: %v", out["error"])
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	rec, out := renderError(t, cause, false)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if out["error"] != "Internal server error" {
		t.Fatalf("unexpected error: %v", out["error"])
	}
	if out["message"] != cause.Error() {
		t.Fatalf("development mode must expose the cause, got %v", out["message"])
	}

	_, out = renderError(t, cause, true)
	if _, present := out["message"]; present {
		t.Fatalf("production mode must hide the cause, got %v", out["message"])
	}
}
