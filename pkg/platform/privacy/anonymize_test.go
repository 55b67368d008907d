package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymizeIP(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ipv4 standard address", "192.168.1.47", "192.168.1.0"},
		{"ipv4 localhost", "127.0.0.1", "127.0.0.0"},
		{"ipv4-mapped ipv6", "::ffff:10.1.2.3", "10.1.2.0"},
		{"ipv6 compressed address", "2001:db8:85a3::8a2e:370:7334", "2001:db8:85a3::"},
		{"ipv6 loopback", "::1", "::"},
		{"empty string", "", "unknown"},
		{"unknown value", "unknown", "unknown"},
		{"invalid ip", "not-an-ip", "invalid"},
		{"ip with port", "192.168.1.1:8080", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AnonymizeIP(tt.input))
		})
	}
}

func TestMaskIdentifier(t *testing.T) {
	assert.Equal(t, "***-***-*** 95", MaskIdentifier("11223344595"))
	assert.Equal(t, "***", MaskIdentifier("1"))
}
