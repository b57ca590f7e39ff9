package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/seimei-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	t.Parallel()

	id := uuid.NewString()
	assert.Equal(t, id, GetTraceID(WithTraceID(context.Background(), id)))

	for _, bad := range []string{"", "not-a-uuid"} {
		got := GetTraceID(WithTraceID(context.Background(), bad))
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "input %q", bad)
	}

	assert.Empty(t, GetTraceID(context.Background()))
	assert.NotEmpty(t, GetTraceID(SetTraceID(context.Background())))
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Sei string `json:"sei"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"sei":"田中"}`},
		{name: "malformed", body: `{"sei":`, wantErr: true},
		{name: "unknown field", body: `{"sei":"田中","mei":"太郎"}`, wantErr: true},
		{name: "trailing object", body: `{"sei":"田中"}{"sei":"佐藤"}`, wantErr: true},
		{name: "too large", body: `{"sei":"` + strings.Repeat("a", MaxBodyBytes) + `"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeJSON(req, &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "田中", p.Sei)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	type req struct {
		Sei string `validate:"required,max=3"`
	}

	assert.NoError(t, ValidateRequest(&req{Sei: "田中"}))
	assert.Error(t, ValidateRequest(&req{}))
	assert.Error(t, ValidateRequest(&req{Sei: "長谷川家"}))
}

func TestRespondWithError(t *testing.T) {
	prev := Now
	Now = func() time.Time { return time.Date(2025, 4, 1, 9, 30, 0, 0, time.FixedZone("JST", 9*3600)) }
	t.Cleanup(func() { Now = prev })

	traceID := uuid.NewString()
	req := httptest.NewRequest(http.MethodPost, "/seimei/analyze", nil)
	req = req.WithContext(WithTraceID(req.Context(), traceID))
	rec := httptest.NewRecorder()

	RespondWithError(rec, req, http.StatusBadRequest, "validation_error", "Invalid sei: required field")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{
		Error:     "validation_error",
		Message:   "Invalid sei: required field",
		Timestamp: "2025-04-01T00:30:00Z",
		TraceID:   traceID,
	}, body)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		opts      []ResponseOption
		wantLevel string
	}{
		{name: "client error", status: http.StatusBadRequest, wantLevel: "DEBUG"},
		{name: "elevated client error", status: http.StatusUnprocessableEntity, opts: []ResponseOption{WithElevatedLogLevel()}, wantLevel: "WARN"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log, buf := logger.GetTestLogger(t)
			req := httptest.NewRequest(http.MethodPost, "/seimei/kakusu", nil)
			req = req.WithContext(logger.WithLogger(req.Context(), log))
			rec := httptest.NewRecorder()

			err := errors.New("open file:/var/lib/seimei/dict.db: permission denied")
			RespondWithErrorAndLog(rec, req, tt.status, "internal_error", "Something went wrong", err, tt.opts...)

			assert.Equal(t, tt.status, rec.Code)
			assert.NotContains(t, rec.Body.String(), "dict.db")

			logger.AssertLogField(t, buf, "level", tt.wantLevel)
			logger.AssertLogField(t, buf, "status_code", float64(tt.status))
			logger.AssertLogContains(t, buf, "[REDACTED_PATH]")
			assert.NotContains(t, buf.String(), "/var/lib/seimei")
		})
	}
}
