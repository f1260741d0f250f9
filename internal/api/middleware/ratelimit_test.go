package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	ok  bool
	err error
	ips []string
}

func (s *stubLimiter) Allow(_ context.Context, ip string) (bool, error) {
	s.ips = append(s.ips, ip)
	return s.ok, s.err
}

func runLoginLimit(t *testing.T, limiter AttemptLimiter) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := LoginRateLimit(limiter, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestLoginRateLimit_Allows(t *testing.T) {
	limiter := &stubLimiter{ok: true}
	rec, called := runLoginLimit(t, limiter)

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(limiter.ips) != 1 {
		t.Fatalf("expected one limiter call, got %d", len(limiter.ips))
	}
}

func TestLoginRateLimit_Blocks(t *testing.T) {
	rec, called := runLoginLimit(t, &stubLimiter{ok: false})

	if called {
		t.Fatalf("next should not be called when blocked")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestLoginRateLimit_FailsOpen(t *testing.T) {
	rec, called := runLoginLimit(t, &stubLimiter{err: errors.New("redis down")})

	if !called {
		t.Fatalf("next should be called when limiter errors")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
