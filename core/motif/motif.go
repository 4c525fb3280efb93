// core/motif/motif.go
package motif

import (
	"errors"
	"strings"
)

// ErrEmptyMotif is returned when the query contains no A/T/G/C characters.
var ErrEmptyMotif = errors.New("motif has no A/T/G/C characters")

// Clean upper-cases the query and strips everything outside {A,T,G,C}.
func Clean(query string) string {
	q := strings.ToUpper(query)
	var b strings.Builder
	for i := 0; i < len(q); i++ {
		switch q[i] {
		case 'A', 'T', 'G', 'C':
			b.WriteByte(q[i])
		}
	}
	return b.String()
}

// Find returns the 1-based start positions of every exact occurrence of the
// cleaned motif, overlapping matches included: the search restarts one
// position past each match, not past its end.
func Find(s, query string) ([]int, error) {
	m := Clean(query)
	if m == "" {
		return nil, ErrEmptyMotif
	}

	var positions []int
	for i := 0; ; {
		j := strings.Index(s[i:], m)
		if j < 0 {
			break
		}
		pos := i + j
		positions = append(positions, pos+1)
		i = pos + 1
	}
	return positions, nil
}
