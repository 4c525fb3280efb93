// core/guide/guide.go
package guide

// ProtospacerLen is the SpCas9 guide length in bases.
const ProtospacerLen = 20

// Candidate is one guide-RNA target site: a 20-base protospacer followed
// immediately by an NGG PAM.
type Candidate struct {
	Pos         int    // 1-based start of the protospacer
	Protospacer string // 20 bases
	PAM         string // 3 bases, N-G-G
}

// Scan finds every forward-strand position where a 20-base window is
// followed by an NGG protospacer-adjacent motif. The reverse strand is not
// scanned.
func Scan(s string) []Candidate {
	var out []Candidate
	for i := ProtospacerLen; i+3 <= len(s); i++ {
		if s[i+1] == 'G' && s[i+2] == 'G' {
			out = append(out, Candidate{
				Pos:         i - ProtospacerLen + 1,
				Protospacer: s[i-ProtospacerLen : i],
				PAM:         s[i : i+3],
			})
		}
	}
	return out
}
