// core/seq/revcomp.go
package seq

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['G'] = 'C'
	complement['C'] = 'G'
	complement['R'] = 'Y'
	complement['Y'] = 'R'
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['K'] = 'M'
	complement['M'] = 'K'
	complement['B'] = 'V'
	complement['V'] = 'B'
	complement['D'] = 'H'
	complement['H'] = 'D'
	complement['N'] = 'N'
}

// ReverseComplement maps each base to its Watson-Crick partner and reverses
// the order. Bases without a defined complement become 'N'.
func ReverseComplement(s []byte) []byte {
	n := len(s)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[s[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}
