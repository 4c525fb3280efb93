// core/seq/normalize.go
package seq

import (
	"strings"
	"unicode"
)

// Normalize cleans raw user input into an upper-case nucleotide string.
// A leading FASTA header line is dropped, whitespace and digits are removed
// (so numbered GenBank-style dumps paste cleanly), and the remainder is
// upper-cased. Characters outside {A,T,G,C} survive cleaning; they are
// returned in encounter order (duplicates retained) so callers can warn
// without discarding the analysis. Empty input yields two empty strings.
func Normalize(raw string) (cleaned string, invalid string) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, ">") {
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			s = ""
		}
	}

	var out, bad strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsDigit(r) {
			continue
		}
		r = unicode.ToUpper(r)
		out.WriteRune(r)
		switch r {
		case 'A', 'T', 'G', 'C':
		default:
			bad.WriteRune(r)
		}
	}
	return out.String(), bad.String()
}
