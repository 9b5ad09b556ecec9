package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type stubMongo struct{ err error }

func (s stubMongo) Ping(ctx context.Context, rp *readpref.ReadPref) error { return s.err }

type stubRedis struct{ err error }

func (s stubRedis) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
	} else {
		cmd.SetVal("PONG")
	}
	return cmd
}

func TestHealthHandler_Root(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := NewHealthHandler().Root(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != banner {
		t.Fatalf("unexpected banner %q", rec.Body.String())
	}
}

func TestReadiness(t *testing.T) {
	down := errors.New("connection refused")
	cases := []struct {
		name   string
		mongo  error
		redis  error
		code   int
		status string
	}{
		{"all up", nil, nil, http.StatusOK, "ok"},
		{"redis down", nil, down, http.StatusOK, "degraded"},
		{"mongo down", down, nil, http.StatusServiceUnavailable, "unavailable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEcho()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

			h := NewHealthDependenciesHandler(stubMongo{err: tc.mongo}, stubRedis{err: tc.redis})
			if err := h.Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if got := decode[readinessResponse](t, rec); got.Status != tc.status {
				t.Fatalf("expected status %q, got %q", tc.status, got.Status)
			}
		})
	}
}
