package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Run("generates id", func(t *testing.T) {
		var seen uuid.UUID
		handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			id, ok := GetRequestID(r)
			require.True(t, ok)
			seen = id
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEqual(t, uuid.Nil, seen)
		assert.Equal(t, seen.String(), rec.Header().Get(RequestIDHeader))
	})

	t.Run("reuses valid incoming id", func(t *testing.T) {
		incoming := uuid.New()
		var seen uuid.UUID
		handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen, _ = GetRequestID(r)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, incoming.String())
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, incoming, seen)
		assert.Equal(t, incoming.String(), rec.Header().Get(RequestIDHeader))
	})

	t.Run("replaces malformed incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")
		rec := httptest.NewRecorder()
		RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

		_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
		assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
	})
}

func TestGetRequestID_Missing(t *testing.T) {
	_, ok := GetRequestID(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}
