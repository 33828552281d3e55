package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func serve(t *testing.T, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(zerolog.Nop())
	e.GET("/things/abc", handler)

	req := httptest.NewRequest(http.MethodGet, "/things/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandlerHTTPError(t *testing.T) {
	rec := serve(t, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "already booked")
	})

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}

	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != http.StatusConflict {
		t.Errorf("body.status = %d, want 409", body.Status)
	}
	if body.Error != "Conflict" {
		t.Errorf("body.error = %q, want Conflict", body.Error)
	}
	if body.Message != "already booked" {
		t.Errorf("body.message = %q", body.Message)
	}
	if body.Path != "/things/abc" {
		t.Errorf("body.path = %q", body.Path)
	}
	if body.Timestamp.IsZero() {
		t.Error("body.timestamp is zero")
	}
}

func TestErrorHandlerPlainError(t *testing.T) {
	rec := serve(t, func(c echo.Context) error {
		return errors.New("database exploded")
	})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Internal details stay out of the response body.
	if body.Message != "internal server error" {
		t.Errorf("body.message = %q, want generic message", body.Message)
	}
}

func TestErrorHandlerSkipsCommittedResponse(t *testing.T) {
	rec := serve(t, func(c echo.Context) error {
		if err := c.String(http.StatusOK, "done"); err != nil {
			return err
		}
		return errors.New("too late")
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "done" {
		t.Errorf("body = %q, want done", rec.Body.String())
	}
}
