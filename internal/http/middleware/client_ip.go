package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP derives the throttle key for a request: the first entry of
// X-Forwarded-For when a proxy set one, otherwise the socket's remote host,
// otherwise "unknown".
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
