package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{
			name:     "with request ID",
			ctx:      WithRequestID(context.Background(), "test-id-123"),
			expected: "test-id-123",
		},
		{
			name:     "without request ID",
			ctx:      context.Background(),
			expected: "",
		},
		{
			name:     "with invalid type in context",
			ctx:      context.WithValue(context.Background(), RequestIDKey, 12345),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromContext(tt.ctx))
		})
	}
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		incoming    string
		wantReuse   bool
		wantNewUUID bool
	}{
		{name: "no header generates uuid", incoming: "", wantNewUUID: true},
		{name: "valid header is reused", incoming: "abc-123_x.y", wantReuse: true},
		{name: "uuid header is reused", incoming: "550e8400-e29b-41d4-a716-446655440000", wantReuse: true},
		{name: "header with spaces is replaced", incoming: "abc 123", wantNewUUID: true},
		{name: "header with newline is replaced", incoming: "abc\n123", wantNewUUID: true},
		{name: "oversized header is replaced", incoming: strings.Repeat("a", 65), wantNewUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/og", nil)
			if tt.incoming != "" {
				req.Header[RequestIDHeader] = []string{tt.incoming}
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
			if tt.wantReuse {
				assert.Equal(t, tt.incoming, seen)
			}
			if tt.wantNewUUID {
				_, err := uuid.Parse(seen)
				require.NoError(t, err)
			}
		})
	}
}
