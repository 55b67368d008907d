// Package metadata records where a request came from so that event-log
// entries can carry the client address and User-Agent.
package metadata

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"welfare/pkg/requestcontext"
)

// MaxForwardedHeaderLength bounds X-Forwarded-For / X-Real-IP values.
const MaxForwardedHeaderLength = 500

// MaxUserAgentLength bounds the stored User-Agent.
const MaxUserAgentLength = 512

// Config holds configuration for the metadata middleware.
type Config struct {
	// TrustedProxies may set forwarding headers. Empty means headers are ignored.
	TrustedProxies []netip.Prefix
}

// ParseTrustedProxies parses a comma-separated list of CIDR prefixes.
func ParseTrustedProxies(csv string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := netip.ParsePrefix(part)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", part, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Middleware handles client metadata extraction.
type Middleware struct {
	trusted []netip.Prefix
}

// NewMiddleware creates a new metadata middleware. A nil config trusts no proxy.
func NewMiddleware(cfg *Config) *Middleware {
	m := &Middleware{}
	if cfg != nil {
		m.trusted = cfg.TrustedProxies
	}
	return m
}

// Handler stores the client IP and User-Agent in the request context.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := r.Header.Get("User-Agent")
		if len(ua) > MaxUserAgentLength {
			ua = ua[:MaxUserAgentLength]
		}
		ctx := requestcontext.WithClientMetadata(r.Context(), m.clientIP(r), ua)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientIP prefers forwarding headers only when the direct peer is a trusted proxy.
func (m *Middleware) clientIP(r *http.Request) string {
	remote := remoteIP(r.RemoteAddr)
	if !remote.IsValid() {
		return "unknown"
	}
	if !m.isTrusted(remote) {
		return remote.String()
	}

	header := r.Header.Get("X-Forwarded-For")
	if header == "" {
		header = r.Header.Get("X-Real-IP")
	}
	if header == "" || len(header) > MaxForwardedHeaderLength {
		return remote.String()
	}

	first, _, _ := strings.Cut(header, ",")
	client, err := netip.ParseAddr(strings.TrimSpace(first))
	if err != nil {
		return remote.String()
	}
	return client.String()
}

func (m *Middleware) isTrusted(addr netip.Addr) bool {
	for _, prefix := range m.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteIP(remoteAddr string) netip.Addr {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = strings.Trim(remoteAddr, "[]")
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}
	}
	return addr.Unmap()
}
