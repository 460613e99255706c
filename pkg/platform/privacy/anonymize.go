// Package privacy masks client addresses before they reach logs.
package privacy

import (
	"fmt"
	"net"
)

// AnonymizeIP zeroes the host part of an address: the last octet for IPv4
// ("192.168.1.47" -> "192.168.1.0") and everything after the /48 prefix for IPv6.
// Audit records keep the full origin address; only request logs are masked.
//
// Returns "invalid" for unparseable input and "unknown" for empty input.
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "invalid"
	}

	// Check for IPv4 (including IPv4-mapped IPv6)
	if v4 := parsed.To4(); v4 != nil {
		// Zero the last octet for /24 anonymization
		return fmt.Sprintf("%d.%d.%d.0", v4[0], v4[1], v4[2])
	}

	// IPv6: Zero the last 80 bits, keeping only the /48 prefix
	// IPv6 is 16 bytes, /48 prefix = first 6 bytes
	return fmt.Sprintf("%02x%02x:%02x%02x:%02x%02x::",
		parsed[0], parsed[1],
		parsed[2], parsed[3],
		parsed[4], parsed[5])
}
