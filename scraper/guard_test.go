package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURLRejectsUnsafeTargets(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"relative", "/just/a/path"},
		{"bad scheme", "ftp://example.com/file"},
		{"javascript scheme", "javascript:alert(1)"},
		{"ipv4 literal", "http://8.8.8.8/"},
		{"private 10/8", "http://10.1.2.3/admin"},
		{"private 172.16/12", "http://172.16.0.5/"},
		{"private 192.168/16", "http://192.168.1.1/router"},
		{"link local", "http://169.254.1.1/"},
		{"loopback ip", "http://127.0.0.1:8080/"},
		{"localhost", "http://localhost/secrets"},
		{"all zeroes", "http://0.0.0.0/"},
		{"metadata ip", "http://169.254.169.254/latest/meta-data/"},
		{"metadata hostname", "http://metadata.google.internal/computeMetadata/v1/"},
		{"ipv6 loopback", "http://[::1]/"},
		{"ipv6 literal", "http://[2001:db8::1]/"},
		{"bare hostname", "http://intranet/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidateURL(tc.url))
		})
	}
}

func TestValidateURLAcceptsPublicURLs(t *testing.T) {
	for _, u := range []string{
		"https://example.com",
		"https://example-coffee.test/menu",
		"http://www.some-business.co.uk/about?ref=1",
		"https://sub.domain.example.org:8443/path",
	} {
		require.NoError(t, ValidateURL(u), u)
	}
}
