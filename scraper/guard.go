package scraper

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
)

// The extractor fetches user-supplied URLs server-side, so every target goes
// through this guard before any network call. Keep the denylist and private
// ranges in one place so they stay testable.

var dottedQuad = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)

var deniedHosts = map[string]bool{
	"localhost":                true,
	"127.0.0.1":                true,
	"0.0.0.0":                  true,
	"169.254.169.254":          true,
	"metadata.google.internal": true,
}

var privateRanges = mustCIDRs(
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"169.254.0.0/16",
)

func mustCIDRs(blocks ...string) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(blocks))
	for _, b := range blocks {
		_, n, err := net.ParseCIDR(b)
		if err != nil {
			panic(err)
		}
		nets = append(nets, n)
	}
	return nets
}

// ValidateURL rejects URLs that must never be fetched: non-http(s) schemes,
// raw IP literals, loopback/metadata hosts, private ranges, and bare
// hostnames. Returns a descriptive error on the first failing rule.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("malformed URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https")
	}
	host := strings.ToLower(u.Hostname())
	if dottedQuad.MatchString(host) {
		return fmt.Errorf("IP address URLs are not allowed")
	}
	if strings.Contains(host, ":") {
		return fmt.Errorf("IPv6 address URLs are not allowed")
	}
	if deniedHosts[host] {
		return fmt.Errorf("host %q is not allowed", host)
	}
	if ip := net.ParseIP(host); ip != nil {
		for _, n := range privateRanges {
			if n.Contains(ip) {
				return fmt.Errorf("private network URLs are not allowed")
			}
		}
	}
	if !strings.Contains(host, ".") {
		return fmt.Errorf("hostname must be fully qualified")
	}
	return nil
}
