// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"seqlens/pkg/api"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	dim     = color.New(color.Faint)
)

// WriteText renders the report section by section. Sections the request
// never asked for are absent from the report and are skipped here.
func WriteText(w io.Writer, r api.ReportV1, header bool) error {
	if header {
		if _, err := heading.Fprintf(w, "sequence\t%d bp\n", r.Sequence.Length); err != nil {
			return err
		}
		if r.Sequence.InvalidResidues != "" {
			if _, err := dim.Fprintf(w, "invalid residues: %s\n", r.Sequence.InvalidResidues); err != nil {
				return err
			}
		}
	}

	if r.Stats != nil {
		if err := section(w, "composition"); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "A=%d\tT=%d\tG=%d\tC=%d\tGC=%.2f%%\n",
			r.Stats.CountA, r.Stats.CountT, r.Stats.CountG, r.Stats.CountC, r.Stats.GCPercent)
		if err != nil {
			return err
		}
	}

	if r.RevComp != "" {
		if err := section(w, "reverse complement"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, r.RevComp); err != nil {
			return err
		}
	}

	if r.Translation != nil {
		if err := section(w, "translation"); err != nil {
			return err
		}
		if r.Translation.Note != "" {
			if _, err := fmt.Fprintln(w, r.Translation.Note); err != nil {
				return err
			}
		} else {
			stop := "stop codon"
			if !r.Translation.FoundStop {
				stop = "end of input (no stop codon)"
			}
			_, err := fmt.Fprintf(w, "%s\nORF at %d, %d coding bases, ended by %s\n",
				r.Translation.Protein, r.Translation.ORFStart, r.Translation.CodingBases, stop)
			if err != nil {
				return err
			}
			for _, cat := range []string{"nonpolar", "polar", "basic", "acidic", "unknown"} {
				if n := r.Translation.SideChains[cat]; n > 0 {
					if _, err := fmt.Fprintf(w, "%s\t%d\n", cat, n); err != nil {
						return err
					}
				}
			}
		}
	}

	if r.Hydropathy != nil {
		if err := section(w, "hydropathy"); err != nil {
			return err
		}
		if r.Hydropathy.Note != "" {
			if _, err := fmt.Fprintln(w, r.Hydropathy.Note); err != nil {
				return err
			}
		} else {
			vals := make([]string, len(r.Hydropathy.Scores))
			for i, s := range r.Hydropathy.Scores {
				vals[i] = fmt.Sprintf("%.2f", s)
			}
			_, err := fmt.Fprintf(w, "window=%d\n%s\n", r.Hydropathy.Window, strings.Join(vals, " "))
			if err != nil {
				return err
			}
		}
	}

	if r.Motif != nil {
		if err := section(w, "motif "+r.Motif.Query); err != nil {
			return err
		}
		if r.Motif.Note != "" {
			if _, err := fmt.Fprintln(w, r.Motif.Note); err != nil {
				return err
			}
		} else {
			vals := make([]string, len(r.Motif.Positions))
			for i, p := range r.Motif.Positions {
				vals[i] = fmt.Sprint(p)
			}
			if _, err := fmt.Fprintf(w, "%d match(es) at %s\n", len(vals), strings.Join(vals, ",")); err != nil {
				return err
			}
		}
	}

	if r.Guides != nil {
		if err := section(w, "guide RNA sites"); err != nil {
			return err
		}
		if r.Guides.Note != "" {
			if _, err := fmt.Fprintln(w, r.Guides.Note); err != nil {
				return err
			}
		}
		for _, g := range r.Guides.Candidates {
			if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", g.Position, g.Protospacer, g.PAM); err != nil {
				return err
			}
		}
	}

	if r.Identification != nil {
		if err := section(w, "identification"); err != nil {
			return err
		}
		if r.Identification.Note != "" {
			if _, err := fmt.Fprintln(w, r.Identification.Note); err != nil {
				return err
			}
		}
		for _, h := range r.Identification.Hits {
			line := fmt.Sprintf("%s\t%s", h.Name, h.Accession)
			if h.ImageURL != "" {
				line += "\t" + h.ImageURL
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}

	return nil
}

func section(w io.Writer, name string) error {
	_, err := heading.Fprintf(w, "== %s\n", name)
	return err
}
