// core/translate/translate.go
package translate

import (
	"errors"
	"strings"
)

// ErrNoStart is returned when the sequence has no ATG start codon.
var ErrNoStart = errors.New("no start codon (ATG) found")

// Result describes one translated open reading frame.
type Result struct {
	Protein     string
	ORFStart    int  // 1-based position of the first ATG
	CodingBases int  // bases consumed, including the stop codon when found
	FoundStop   bool // false when translation ran off the end of the input
}

// Translate locates the first ATG and reads non-overlapping triplets from
// there, stopping at the first stop codon or when fewer than three bases
// remain. The start codon is consumed (it counts toward CodingBases) but
// its residue is not emitted into the protein. A trailing partial triplet
// is discarded untranslated. Triplets containing non-ATGC residues
// translate to 'X'.
func Translate(s string) (Result, error) {
	start := strings.Index(s, "ATG")
	if start < 0 {
		return Result{}, ErrNoStart
	}

	res := Result{ORFStart: start + 1, CodingBases: 3}
	var b strings.Builder
	for i := start + 3; i+3 <= len(s); i += 3 {
		aa, ok := CodonTable[s[i:i+3]]
		if !ok {
			aa = 'X'
		}
		res.CodingBases += 3
		if aa == Stop {
			res.FoundStop = true
			break
		}
		b.WriteByte(aa)
	}
	res.Protein = b.String()
	return res, nil
}
