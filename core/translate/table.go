// core/translate/table.go
package translate

// Stop is the marker returned by the codon table for stop codons. It is
// never emitted into a protein string.
const Stop = '*'

// CodonTable is the standard genetic code: all 64 triplets over {A,T,G,C}.
var CodonTable = map[string]byte{
	"TTT": 'F', // Phenylalanine
	"TTC": 'F',

	"TTA": 'L', // Leucine
	"TTG": 'L',
	"CTT": 'L',
	"CTC": 'L',
	"CTA": 'L',
	"CTG": 'L',

	"ATT": 'I', // Isoleucine
	"ATC": 'I',
	"ATA": 'I',

	"ATG": 'M', // Methionine

	"GTT": 'V', // Valine
	"GTC": 'V',
	"GTA": 'V',
	"GTG": 'V',

	"TCT": 'S', // Serine
	"TCC": 'S',
	"TCA": 'S',
	"TCG": 'S',
	"AGT": 'S',
	"AGC": 'S',

	"CCT": 'P', // Proline
	"CCC": 'P',
	"CCA": 'P',
	"CCG": 'P',

	"ACT": 'T', // Threonine
	"ACC": 'T',
	"ACA": 'T',
	"ACG": 'T',

	"GCT": 'A', // Alanine
	"GCC": 'A',
	"GCA": 'A',
	"GCG": 'A',

	"TAT": 'Y', // Tyrosine
	"TAC": 'Y',

	"TAA": Stop,
	"TAG": Stop,
	"TGA": Stop,

	"CAT": 'H', // Histidine
	"CAC": 'H',

	"CAA": 'Q', // Glutamine
	"CAG": 'Q',

	"AAT": 'N', // Asparagine
	"AAC": 'N',

	"AAA": 'K', // Lysine
	"AAG": 'K',

	"GAT": 'D', // Aspartic acid
	"GAC": 'D',

	"GAA": 'E', // Glutamic acid
	"GAG": 'E',

	"TGT": 'C', // Cysteine
	"TGC": 'C',

	"TGG": 'W', // Tryptophan

	"CGT": 'R', // Arginine
	"CGC": 'R',
	"CGA": 'R',
	"CGG": 'R',
	"AGA": 'R',
	"AGG": 'R',

	"GGT": 'G', // Glycine
	"GGC": 'G',
	"GGA": 'G',
	"GGG": 'G',
}
