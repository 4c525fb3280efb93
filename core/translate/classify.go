// core/translate/classify.go
package translate

// Category groups amino acids by side-chain chemistry.
type Category string

const (
	Nonpolar Category = "nonpolar"
	Polar    Category = "polar"
	Basic    Category = "basic"
	Acidic   Category = "acidic"
	Unknown  Category = "unknown"
)

var sideChain = map[byte]Category{
	'G': Nonpolar, 'A': Nonpolar, 'V': Nonpolar, 'L': Nonpolar, 'I': Nonpolar,
	'P': Nonpolar, 'F': Nonpolar, 'M': Nonpolar, 'W': Nonpolar,
	'S': Polar, 'T': Polar, 'C': Polar, 'Y': Polar, 'N': Polar, 'Q': Polar,
	'K': Basic, 'R': Basic, 'H': Basic,
	'D': Acidic, 'E': Acidic,
}

// CategoryOf reports the side-chain category of one residue letter.
func CategoryOf(aa byte) Category {
	if c, ok := sideChain[aa]; ok {
		return c
	}
	return Unknown
}

// Classify tallies a protein's residues per side-chain category.
func Classify(protein string) map[Category]int {
	counts := make(map[Category]int)
	for i := 0; i < len(protein); i++ {
		counts[CategoryOf(protein[i])]++
	}
	return counts
}
