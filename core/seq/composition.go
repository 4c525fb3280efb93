// core/seq/composition.go
package seq

import "math"

// Stats summarizes base composition of a normalized sequence.
type Stats struct {
	Length    int
	CountA    int
	CountT    int
	CountG    int
	CountC    int
	GCPercent float64 // 100*(G+C)/length, rounded to 2 decimals
}

// Composition counts each canonical base and derives the GC fraction.
// Non-ATGC characters count toward Length but toward no base tally, so
// CountA+CountT+CountG+CountC == Length only for fully valid sequences.
func Composition(s string) Stats {
	st := Stats{Length: len(s)}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A':
			st.CountA++
		case 'T':
			st.CountT++
		case 'G':
			st.CountG++
		case 'C':
			st.CountC++
		}
	}
	if st.Length > 0 {
		gc := 100 * float64(st.CountG+st.CountC) / float64(st.Length)
		st.GCPercent = math.Round(gc*100) / 100
	}
	return st
}
