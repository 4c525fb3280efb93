// core/hydropathy/hydropathy.go
package hydropathy

import "fmt"

// Window is the fixed sliding-window size in residues.
const Window = 9

// ErrTooShort is returned for proteins shorter than one window.
var ErrTooShort = fmt.Errorf("protein shorter than %d residues", Window)

// kyteDoolittle is the Kyte-Doolittle hydropathy scale.
var kyteDoolittle = map[byte]float64{
	'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5, 'C': 2.5,
	'Q': -3.5, 'E': -3.5, 'G': -0.4, 'H': -3.2, 'I': 4.5,
	'L': 3.8, 'K': -3.9, 'M': 1.9, 'F': 2.8, 'P': -1.6,
	'S': -0.8, 'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
}

// Score reports the scale value of one residue; residues outside the scale
// score 0.
func Score(aa byte) float64 { return kyteDoolittle[aa] }

// Scores computes the mean hydropathy over every length-9 window of the
// protein. The result has len(protein)-8 entries; proteins shorter than one
// window yield ErrTooShort.
func Scores(protein string) ([]float64, error) {
	n := len(protein)
	if n < Window {
		return nil, ErrTooShort
	}

	out := make([]float64, 0, n-Window+1)
	sum := 0.0
	for i := 0; i < Window; i++ {
		sum += kyteDoolittle[protein[i]]
	}
	out = append(out, sum/Window)
	for i := Window; i < n; i++ {
		sum += kyteDoolittle[protein[i]] - kyteDoolittle[protein[i-Window]]
		out = append(out, sum/Window)
	}
	return out, nil
}
