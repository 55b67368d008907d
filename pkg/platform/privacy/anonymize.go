// Package privacy masks personal data before it reaches logs.
package privacy

import (
	"net/netip"
)

// AnonymizeIP truncates an IP address to its network prefix: /24 for IPv4
// (and IPv4-mapped IPv6) and /48 for IPv6. Returns "unknown" for empty input
// and "invalid" when the value does not parse.
//
//	AnonymizeIP("192.168.1.47")            // "192.168.1.0"
//	AnonymizeIP("2001:db8:85a3::8a2e:1")   // "2001:db8:85a3::"
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return "invalid"
	}
	addr = addr.Unmap().WithZone("")

	bits := 48
	if addr.Is4() {
		bits = 24
	}
	prefix, err := addr.Prefix(bits)
	if err != nil {
		return "invalid"
	}
	return prefix.Addr().String()
}

// MaskIdentifier hides all but the last two digits of a citizen identifier
// for log lines, keeping the display grouping.
func MaskIdentifier(identifier string) string {
	if len(identifier) < 2 {
		return "***"
	}
	return "***-***-*** " + identifier[len(identifier)-2:]
}
