package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/seimei-api/internal/api/shared"
	"github.com/phrazzld/seimei-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		headerID    string
		wantReused  bool
		handlerCode int
	}{
		{name: "fresh id", handlerCode: http.StatusOK},
		{name: "caller id reused", headerID: uuid.NewString(), wantReused: true, handlerCode: http.StatusCreated},
		{name: "malformed caller id replaced", headerID: "abc", handlerCode: http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log, buf := logger.GetTestLogger(t)

			var seenID string
			handler := TraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = shared.GetTraceID(r.Context())
				logger.FromContext(r.Context()).Info("inside handler")
				w.WriteHeader(tt.handlerCode)
			}))

			req := httptest.NewRequest(http.MethodPost, "/seimei/analyze", nil)
			if tt.headerID != "" {
				req.Header.Set(shared.TraceIDHeader, tt.headerID)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.NotEmpty(t, seenID)
			_, err := uuid.Parse(seenID)
			assert.NoError(t, err)
			assert.Equal(t, seenID, rec.Header().Get(shared.TraceIDHeader))
			if tt.wantReused {
				assert.Equal(t, tt.headerID, seenID)
			} else {
				assert.NotEqual(t, tt.headerID, seenID)
			}

			logger.AssertLogField(t, buf, "trace_id", seenID)
			logger.AssertLogContains(t, buf, "inside handler")
			logger.AssertLogContains(t, buf, "request completed")
			logger.AssertLogField(t, buf, "status", float64(tt.handlerCode))
		})
	}
}
