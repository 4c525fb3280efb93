// internal/report/report.go
package report

import (
	"errors"
	"fmt"

	"seqlens-core/guide"
	"seqlens-core/hydropathy"
	"seqlens-core/motif"
	"seqlens-core/seq"
	"seqlens-core/translate"

	"seqlens/pkg/api"
)

// Input errors abort the whole analysis with no partial output.
var (
	ErrEmptySequence = errors.New("no sequence after cleaning")
	ErrInvalidMotif  = motif.ErrEmptyMotif
)

// Request selects the analyses to run on one raw input.
type Request struct {
	Raw       string
	MinLength int

	Stats      bool
	RevComp    bool
	Translate  bool
	Hydropathy bool
	Guides     bool
	Motif      string
	MotifSet   bool
}

// Build normalizes the raw input and runs every requested pure analysis.
// Invalid residues are a warning carried in the report, not an error;
// algorithmic non-results (no start codon, protein too short, no matches)
// become per-section notes. Only input errors fail the build.
func Build(req Request) (api.ReportV1, error) {
	cleaned, invalid := seq.Normalize(req.Raw)

	var r api.ReportV1
	r.Sequence = api.SequenceV1{Length: len(cleaned), InvalidResidues: invalid}

	if cleaned == "" {
		return r, ErrEmptySequence
	}
	if req.MinLength > 0 && len(cleaned) < req.MinLength {
		return r, fmt.Errorf("sequence length %d below minimum %d", len(cleaned), req.MinLength)
	}
	// Motif runs before any section is populated so an empty motif is a
	// real input error with no partial output.
	var motifPositions []int
	if req.MotifSet {
		positions, err := motif.Find(cleaned, req.Motif)
		if err != nil {
			return r, err
		}
		motifPositions = positions
	}

	if req.Stats {
		st := seq.Composition(cleaned)
		r.Stats = &api.StatsV1{
			CountA:    st.CountA,
			CountT:    st.CountT,
			CountG:    st.CountG,
			CountC:    st.CountC,
			GCPercent: st.GCPercent,
		}
	}

	if req.RevComp {
		r.RevComp = string(seq.ReverseComplement([]byte(cleaned)))
	}

	var protein string
	if req.Translate || req.Hydropathy {
		res, err := translate.Translate(cleaned)
		switch {
		case err != nil:
			if req.Translate {
				r.Translation = &api.TranslationV1{Note: err.Error()}
			}
		default:
			protein = res.Protein
			if req.Translate {
				counts := make(map[string]int)
				for cat, n := range translate.Classify(protein) {
					counts[string(cat)] = n
				}
				r.Translation = &api.TranslationV1{
					Protein:     res.Protein,
					ORFStart:    res.ORFStart,
					CodingBases: res.CodingBases,
					FoundStop:   res.FoundStop,
					SideChains:  counts,
				}
			}
		}
	}

	if req.Hydropathy {
		switch scores, err := hydropathy.Scores(protein); {
		case protein == "":
			r.Hydropathy = &api.HydropathyV1{Note: "no translated protein"}
		case err != nil:
			r.Hydropathy = &api.HydropathyV1{Note: err.Error()}
		default:
			r.Hydropathy = &api.HydropathyV1{Window: hydropathy.Window, Scores: scores}
		}
	}

	if req.MotifSet {
		m := &api.MotifV1{Query: motif.Clean(req.Motif), Positions: motifPositions}
		if len(m.Positions) == 0 {
			m.Note = "no matches"
		}
		r.Motif = m
	}

	if req.Guides {
		g := &api.GuidesV1{}
		for _, c := range guide.Scan(cleaned) {
			g.Candidates = append(g.Candidates, api.GuideV1{
				Position:    c.Pos,
				Protospacer: c.Protospacer,
				PAM:         c.PAM,
			})
		}
		if len(g.Candidates) == 0 {
			g.Note = "no NGG sites with a full 20-base protospacer"
		}
		r.Guides = g
	}

	return r, nil
}

// Cleaned re-runs normalization for callers that need the sequence itself
// (the identification step submits it remotely).
func Cleaned(raw string) string {
	c, _ := seq.Normalize(raw)
	return c
}
