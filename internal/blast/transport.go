// internal/blast/transport.go
package blast

import (
	"net/url"
	"strings"
)

// Transport routes a request to the alignment service, optionally through a
// CORS-style relay that wraps the target URL. An empty Prefix is a direct
// connection.
type Transport struct {
	Name   string
	Prefix string
}

// Direct is the no-relay transport.
var Direct = Transport{Name: "direct"}

// Wrap rewrites target for this transport. Prefixes ending in '=' or '?'
// take the target as a query value and get it escaped; other prefixes are
// plain concatenation.
func (t Transport) Wrap(target string) string {
	if t.Prefix == "" {
		return target
	}
	if strings.HasSuffix(t.Prefix, "=") || strings.HasSuffix(t.Prefix, "?") {
		return t.Prefix + url.QueryEscape(target)
	}
	return t.Prefix + target
}

// ParseTransports builds a transport list from name=prefix specs; a bare
// name (or "direct") maps to a direct connection.
func ParseTransports(specs []string) []Transport {
	out := make([]Transport, 0, len(specs))
	for _, s := range specs {
		name, prefix, found := strings.Cut(s, "=")
		if !found || name == "direct" {
			out = append(out, Transport{Name: name})
			continue
		}
		out = append(out, Transport{Name: name, Prefix: prefix})
	}
	return out
}
