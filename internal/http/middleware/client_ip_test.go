package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{"forwarded single", "1.2.3.4", "10.0.0.1:9999", "1.2.3.4"},
		{"forwarded chain takes first", "1.2.3.4, 5.6.7.8, 9.9.9.9", "10.0.0.1:9999", "1.2.3.4"},
		{"forwarded with spaces", "  1.2.3.4 , 5.6.7.8", "10.0.0.1:9999", "1.2.3.4"},
		{"no header uses remote host", "", "10.0.0.1:9999", "10.0.0.1"},
		{"remote without port", "", "10.0.0.1", "10.0.0.1"},
		{"nothing known", "", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/lead", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
