package upkeep_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/wodl/internal/adapters/upkeep"
	"go.trai.ch/wodl/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*upkeep.Client, *tracetest.SpanRecorder, domain.Session) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	client := upkeep.NewClient(
		upkeep.WithHTTPClient(srv.Client()),
		upkeep.WithTracer(tp.Tracer("test")),
	)
	return client, sr, domain.Session{BaseURL: srv.URL, Token: "tok-123"}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestClient_Login(t *testing.T) {
	client, _, session := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "ana@example.com", r.PostForm.Get("email"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))

		writeJSON(w, http.StatusOK,
			`{"success":true,"result":{"sessionToken":"tok-123","expiresAt":"2026-10-20T10:00:00.000Z"}}`)
	})

	got, err := client.Login(context.Background(), session.BaseURL+"/",
		domain.Credentials{Email: "ana@example.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, session.BaseURL, got.BaseURL)
	assert.Equal(t, "tok-123", got.Token)
	assert.True(t, time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC).Equal(got.ExpiresAt))
}

func TestClient_LoginRejected(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"unsuccessful envelope", http.StatusOK, `{"success":false,"message":"Invalid credentials"}`},
		{"bad request", http.StatusBadRequest, `{"success":false}`},
		{"missing token", http.StatusOK, `{"success":true,"result":{}}`},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, session := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := client.Login(context.Background(), session.BaseURL, domain.Credentials{Email: "a", Password: "b"})
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrAuthFailed.Error())
		})
	}
}

func TestClient_Logout(t *testing.T) {
	called := false
	client, _, session := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/auth/", r.URL.Path)
		assert.Equal(t, "tok-123", r.Header.Get("Session-Token"))
		writeJSON(w, http.StatusOK, `{"success":true}`)
	})

	require.NoError(t, client.Logout(context.Background(), session))
	assert.True(t, called)
}

func TestClient_ListWorkOrders(t *testing.T) {
	client, _, session := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/work-orders", r.URL.Path)
		assert.Equal(t, "5000", r.URL.Query().Get("limit"))
		assert.Equal(t, "tok-123", r.Header.Get("Session-Token"))

		writeJSON(w, http.StatusOK,
			`{"success":true,"results":[{"id":"W1","asset":"A1"},{"id":"W2","location":12345678901234567890}]}`)
	})

	got, err := client.ListWorkOrders(context.Background(), session, 5000)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, domain.Record{"id": "W1", "asset": "A1"}, got[0])
	assert.Equal(t, json.Number("12345678901234567890"), got[1]["location"])
}

func TestClient_ListWorkOrdersFailure(t *testing.T) {
	client, _, session := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":false,"message":"Session expired"}`)
	})

	_, err := client.ListWorkOrders(context.Background(), session, 10)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWorkOrdersFailed.Error())
}

func TestClient_ListWorkOrdersEmpty(t *testing.T) {
	client, _, session := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true}`)
	})

	got, err := client.ListWorkOrders(context.Background(), session, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestClient_FetchEntity(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus domain.FetchStatus
		wantEntity domain.Entity
		wantErr    string
	}{
		{
			name:       "found",
			status:     http.StatusOK,
			body:       `{"success":true,"result":{"id":"A1","name":"Pump","cost":12.5}}`,
			wantStatus: domain.FetchFound,
			wantEntity: domain.Entity{"id": "A1", "name": "Pump", "cost": json.Number("12.5")},
		},
		{
			name:       "http 404",
			status:     http.StatusNotFound,
			body:       `Not Found`,
			wantStatus: domain.FetchNotFound,
			wantErr:    domain.ErrEntityNotFound.Error(),
		},
		{
			name:       "not found message",
			status:     http.StatusBadRequest,
			body:       `{"success":false,"message":"Asset Not Found"}`,
			wantStatus: domain.FetchNotFound,
			wantErr:    domain.ErrEntityNotFound.Error(),
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			body:       `{"success":false,"message":"internal error"}`,
			wantStatus: domain.FetchFailed,
			wantErr:    domain.ErrEntityFetchFailed.Error(),
		},
		{
			name:       "malformed body",
			status:     http.StatusOK,
			body:       `{"success":true,"result":`,
			wantStatus: domain.FetchFailed,
			wantErr:    domain.ErrEntityFetchFailed.Error(),
		},
		{
			name:       "empty result",
			status:     http.StatusOK,
			body:       `{"success":true,"result":null}`,
			wantStatus: domain.FetchFailed,
			wantErr:    domain.ErrEntityFetchFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, session := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/assets/A1", r.URL.Path)
				assert.Equal(t, "tok-123", r.Header.Get("Session-Token"))
				writeJSON(w, tt.status, tt.body)
			})

			res := client.FetchEntity(context.Background(), session, domain.EntityAssets, "A1")
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantEntity, res.Entity)
			if tt.wantErr == "" {
				assert.NoError(t, res.Err)
			} else {
				assert.ErrorContains(t, res.Err, tt.wantErr)
			}
		})
	}
}

func TestClient_FetchEntityTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	client := upkeep.NewClient()
	res := client.FetchEntity(context.Background(), domain.Session{BaseURL: base}, domain.EntityUsers, "U1")

	assert.Equal(t, domain.FetchFailed, res.Status)
	assert.ErrorContains(t, res.Err, domain.ErrEntityFetchFailed.Error())
}

func TestClient_FetchEntitySpans(t *testing.T) {
	client, sr, session := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/U1" {
			writeJSON(w, http.StatusOK, `{"success":true,"result":{"id":"U1"}}`)
			return
		}
		writeJSON(w, http.StatusInternalServerError, `{"success":false}`)
	})

	client.FetchEntity(context.Background(), session, domain.EntityUsers, "U1")
	client.FetchEntity(context.Background(), session, domain.EntityLocations, "L7")

	spans := sr.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, upkeep.SpanFetch, spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("entity.type", "users"))
	assert.Contains(t, spans[0].Attributes(), attribute.String("entity.id", "U1"))
	assert.Equal(t, codes.Ok, spans[0].Status().Code)

	assert.Contains(t, spans[1].Attributes(), attribute.String("entity.id", "L7"))
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
