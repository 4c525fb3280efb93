// internal/blast/parse.go
package blast

import "strings"

// Hit is one candidate source organism parsed from an alignment report.
type Hit struct {
	Accession   string
	Name        string // display name derived from the description
	Description string // raw first line of the hit, minus the accession
	ImageURL    string // optional enrichment, empty when unavailable
}

// boilerplate markers that end the informative part of a hit description.
// Matched case-insensitively against the lower-cased description.
var nameCutMarkers = []string{
	" strain ",
	" isolate ",
	" substr.",
	" subsp.",
	" str.",
	", complete",
	" complete genome",
	" complete sequence",
	" partial",
	" chromosome",
	" plasmid",
	" genome assembly",
	" whole genome",
}

// DisplayName derives a short organism name from a hit description: cut at
// the first genomic-boilerplate marker, keep the first two words, and trim
// trailing punctuation.
func DisplayName(desc string) string {
	lower := strings.ToLower(desc)
	cut := len(desc)
	for _, m := range nameCutMarkers {
		if i := strings.Index(lower, m); i >= 0 && i < cut {
			cut = i
		}
	}
	fields := strings.Fields(desc[:cut])
	if len(fields) > 2 {
		fields = fields[:2]
	}
	return strings.TrimRight(strings.Join(fields, " "), ",.;:")
}

// ParseReport splits a flat-text alignment report into hits. Hits are
// delimited by a '>' at line start; the first line of each chunk is
// "<accession> <description...>". Chunks with a blank first line are
// skipped.
func ParseReport(text string) []Hit {
	var hits []Hit
	chunks := strings.Split("\n"+text, "\n>")
	for _, chunk := range chunks[1:] {
		line := chunk
		if i := strings.IndexByte(chunk, '\n'); i >= 0 {
			line = chunk[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		acc, desc, _ := strings.Cut(line, " ")
		desc = strings.TrimSpace(desc)
		hits = append(hits, Hit{
			Accession:   acc,
			Name:        DisplayName(desc),
			Description: desc,
		})
	}
	return hits
}

// Dedupe keeps the first hit per display name, in encounter order, up to
// max entries (max <= 0 means unlimited).
func Dedupe(hits []Hit, max int) []Hit {
	seen := make(map[string]bool, len(hits))
	var out []Hit
	for _, h := range hits {
		if seen[h.Name] {
			continue
		}
		seen[h.Name] = true
		out = append(out, h)
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out
}
