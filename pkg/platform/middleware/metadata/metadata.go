// Package metadata resolves the caller's address and user agent once per
// request. The address is what audit records store as origin_address.
package metadata

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"

	platformstrings "oirla/pkg/platform/strings"
	"oirla/pkg/requestcontext"
)

// MaxXFFHeaderLength caps the forwarding header we are willing to parse.
const MaxXFFHeaderLength = 500

const unknownAddr = "unknown"

// Config lists the proxies allowed to speak for the client. Forwarding headers
// from any other peer are ignored.
type Config struct {
	TrustedProxies []netip.Prefix
}

// ParseTrustedProxies parses a comma-separated list of CIDR prefixes or bare
// addresses, e.g. "10.0.0.0/8, 127.0.0.1".
func ParseTrustedProxies(csv string) ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, raw := range platformstrings.SplitList(csv) {
		if strings.Contains(raw, "/") {
			p, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

type Middleware struct {
	trusted []netip.Prefix
}

// NewMiddleware accepts a nil config, which trusts no proxy.
func NewMiddleware(cfg *Config) *Middleware {
	m := &Middleware{}
	if cfg != nil {
		m.trusted = cfg.TrustedProxies
	}
	return m
}

func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientMetadata(r.Context(), m.extractClientIP(r), r.Header.Get("User-Agent"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) extractClientIP(r *http.Request) string {
	peer, ok := peerAddr(r.RemoteAddr)
	if !ok {
		return unknownAddr
	}
	if !m.trusts(peer) {
		return peer.String()
	}
	if forwarded, ok := firstForwarded(r.Header); ok {
		return forwarded.String()
	}
	return peer.String()
}

// firstForwarded returns the left-most X-Forwarded-For hop, or X-Real-IP when
// no forwarding chain is present. Oversized or unparsable values are ignored.
func firstForwarded(h http.Header) (netip.Addr, bool) {
	raw := h.Get("X-Forwarded-For")
	if raw != "" {
		first, _, _ := strings.Cut(raw, ",")
		return parseHeaderAddr(raw, first)
	}
	if raw = h.Get("X-Real-IP"); raw != "" {
		return parseHeaderAddr(raw, raw)
	}
	return netip.Addr{}, false
}

func parseHeaderAddr(header, value string) (netip.Addr, bool) {
	if len(header) > MaxXFFHeaderLength {
		return netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(strings.TrimSpace(value))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func (m *Middleware) trusts(addr netip.Addr) bool {
	for _, p := range m.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// peerAddr accepts "host:port" as well as a bare address, which some test
// transports and unix-socket proxies leave in RemoteAddr.
func peerAddr(remote string) (netip.Addr, bool) {
	if remote == "" {
		return netip.Addr{}, false
	}
	host := remote
	if h, _, err := net.SplitHostPort(remote); err == nil {
		host = h
	}
	addr, err := netip.ParseAddr(strings.Trim(host, "[]"))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
