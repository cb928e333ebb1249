package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/ads-ingestion-api/pkg/log"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantStatus int
		wantOrigin string
	}{
		{name: "origem liberada", allowed: []string{"http://localhost:3000"}, origin: "http://localhost:3000", method: http.MethodGet, wantStatus: http.StatusTeapot, wantOrigin: "http://localhost:3000"},
		{name: "origem bloqueada", allowed: []string{"http://localhost:3000"}, origin: "https://evil.example", method: http.MethodGet, wantStatus: http.StatusTeapot},
		{name: "curinga", allowed: []string{"*"}, origin: "https://app.example", method: http.MethodGet, wantStatus: http.StatusTeapot, wantOrigin: "https://app.example"},
		{name: "preflight", allowed: []string{"*"}, origin: "https://app.example", method: http.MethodOptions, wantStatus: http.StatusOK, wantOrigin: "https://app.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/comments", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLoggingMiddleware_StatusCode(t *testing.T) {
	handler := LogPanicMiddleware()(LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/panic" {
			panic("boom")
		}
		w.WriteHeader(http.StatusAccepted)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sync/comments", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"SRV_001"`)
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/comments", nil)
	req.Header.Set(log.CorrelationIDHeader, "painel-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "painel-42", seen)
	assert.Equal(t, "painel-42", rec.Header().Get(log.CorrelationIDHeader))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/comments", nil))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "painel-42", seen)
	assert.Equal(t, seen, rec.Header().Get(log.CorrelationIDHeader))
}

func TestLoggingMiddleware_SkipPaths(t *testing.T) {
	called := false
	handler := LoggingMiddleware("/healthcheck")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.NotEmpty(t, log.GetCorrelationID(r.Context()))
		_, isWrapped := w.(*loggingResponseWriter)
		assert.False(t, isWrapped)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.True(t, called)
	assert.NotEmpty(t, rec.Header().Get(log.CorrelationIDHeader))
}

func TestLoggingResponseWriter_PrimeiroStatusVale(t *testing.T) {
	lrw := newLoggingResponseWriter(httptest.NewRecorder())

	_, _ = lrw.Write([]byte("ok"))
	lrw.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, lrw.statusCode)
}
