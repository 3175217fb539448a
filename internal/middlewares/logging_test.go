package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		handlerStatus int
		handlerBody   string
		location      string
		expectedLevel zapcore.Level
	}{
		{
			name:          "OK response",
			handlerStatus: http.StatusOK,
			handlerBody:   "hello",
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "Redirect",
			handlerStatus: http.StatusFound,
			location:      "/login",
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "Not found",
			handlerStatus: http.StatusNotFound,
			handlerBody:   "Course not found\n",
			expectedLevel: zapcore.WarnLevel,
		},
		{
			name:          "Internal server error",
			handlerStatus: http.StatusInternalServerError,
			handlerBody:   "internal server error\n",
			expectedLevel: zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			log := zap.New(core).Sugar()

			var ctxID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID = RequestIDFromContext(r.Context())
				if tt.location != "" {
					w.Header().Set("Location", tt.location)
				}
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			req := httptest.NewRequest(http.MethodGet, "/course/1", nil)
			rr := httptest.NewRecorder()
			LoggingMiddleware(log)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			assert.Equal(t, tt.handlerBody, rr.Body.String())

			reqID := rr.Header().Get(RequestIDHeader)
			assert.NotEmpty(t, reqID)
			assert.Equal(t, reqID, ctxID)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, "http request", entries[0].Message)
			assert.Equal(t, tt.expectedLevel, entries[0].Level)

			fields := entries[0].ContextMap()
			assert.Equal(t, reqID, fields["request_id"])
			assert.Equal(t, "/course/1", fields["path"])
			assert.EqualValues(t, tt.handlerStatus, fields["status"])
			assert.EqualValues(t, len(tt.handlerBody), fields["bytes"])
			if tt.location != "" {
				assert.Equal(t, tt.location, fields["location"])
			} else {
				assert.NotContains(t, fields, "location")
			}
		})
	}
}

func TestLoggingMiddleware_RequestIDHeader(t *testing.T) {
	log := zap.NewNop().Sugar()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	t.Run("valid incoming id is kept", func(t *testing.T) {
		const id = "6f1c2d8e-0b5a-4a43-9a51-3f4b2c1d0e9f"
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, id)
		rr := httptest.NewRecorder()

		LoggingMiddleware(log)(next).ServeHTTP(rr, req)

		assert.Equal(t, id, rr.Header().Get(RequestIDHeader))
	})

	t.Run("garbage incoming id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "<script>")
		rr := httptest.NewRecorder()

		LoggingMiddleware(log)(next).ServeHTTP(rr, req)

		got := rr.Header().Get(RequestIDHeader)
		assert.NotEqual(t, "<script>", got)
		assert.Len(t, got, 36)
	})
}

func TestLoggingMiddleware_StatusDefaultsToOK(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("body"))
	})

	rr := httptest.NewRecorder()
	LoggingMiddleware(zap.New(core).Sugar())(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, logs.All(), 1)
	assert.EqualValues(t, http.StatusOK, logs.All()[0].ContextMap()["status"])
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
