// Package metadata resolves who is calling: the client IP (honouring
// forwarding headers only from trusted proxies) and a readable client label
// derived from the User-Agent.
package metadata

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/mssola/useragent"

	"accounts/pkg/requestcontext"
)

// MaxXFFHeaderLength is the maximum accepted length of X-Forwarded-For and
// X-Real-IP values.
const MaxXFFHeaderLength = 500

// Config holds configuration for the metadata middleware.
type Config struct {
	// TrustedProxies lists prefixes allowed to set forwarding headers. If
	// empty, forwarding headers are never trusted.
	TrustedProxies []netip.Prefix
}

// DefaultConfig returns a Config with no trusted proxies.
func DefaultConfig() *Config {
	return &Config{}
}

// Middleware handles client metadata extraction.
type Middleware struct {
	config *Config
}

func NewMiddleware(cfg *Config) *Middleware {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Middleware{config: cfg}
}

// Handler stores the client IP and client label in the request context.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientIP(r.Context(), m.clientIP(r))
		ctx = requestcontext.WithClient(ctx, ClientLabel(r.Header.Get("User-Agent")))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) clientIP(r *http.Request) string {
	remote, err := netip.ParseAddrPort(r.RemoteAddr)
	var remoteIP netip.Addr
	if err == nil {
		remoteIP = remote.Addr()
	} else if addr, perr := netip.ParseAddr(r.RemoteAddr); perr == nil {
		remoteIP = addr
	} else {
		return "unknown"
	}
	remoteIP = remoteIP.Unmap()

	if !m.isTrustedProxy(remoteIP) {
		return remoteIP.String()
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if len(xff) > MaxXFFHeaderLength {
			return remoteIP.String()
		}
		first, _, _ := strings.Cut(xff, ",")
		if addr, err := netip.ParseAddr(strings.TrimSpace(first)); err == nil {
			return addr.String()
		}
		return remoteIP.String()
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" && len(xri) <= MaxXFFHeaderLength {
		if addr, err := netip.ParseAddr(xri); err == nil {
			return addr.String()
		}
	}
	return remoteIP.String()
}

func (m *Middleware) isTrustedProxy(ip netip.Addr) bool {
	for _, prefix := range m.config.TrustedProxies {
		if prefix.Contains(ip) {
			return true
		}
	}
	return false
}

// ClientLabel turns a User-Agent into "Browser on OS" (e.g. "Firefox on
// Linux"). Mobile clients are labelled by platform.
func ClientLabel(userAgent string) string {
	if userAgent == "" {
		return "Unknown Client"
	}

	ua := useragent.New(userAgent)
	if ua.Bot() {
		name, _ := ua.Browser()
		if name == "" {
			name = "Bot"
		}
		return name
	}

	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}
	if ua.Mobile() {
		if platform := ua.Platform(); platform != "" {
			return browser + " on " + platform
		}
	}
	os := ua.OSInfo().Name
	if os == "" {
		os = "Unknown OS"
	}
	return browser + " on " + os
}
