// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON schema for one analysis run. Keep fields,
// names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Sequence SequenceV1 `json:"sequence"`

	Stats          *StatsV1          `json:"stats,omitempty"`
	RevComp        string            `json:"reverse_complement,omitempty"`
	Translation    *TranslationV1    `json:"translation,omitempty"`
	Hydropathy     *HydropathyV1     `json:"hydropathy,omitempty"`
	Motif          *MotifV1          `json:"motif,omitempty"`
	Guides         *GuidesV1         `json:"guides,omitempty"`
	Identification *IdentificationV1 `json:"identification,omitempty"`
}

// SequenceV1 describes the normalized input.
type SequenceV1 struct {
	Length          int    `json:"length"`
	InvalidResidues string `json:"invalid_residues,omitempty"`
}

type StatsV1 struct {
	CountA    int     `json:"count_a"`
	CountT    int     `json:"count_t"`
	CountG    int     `json:"count_g"`
	CountC    int     `json:"count_c"`
	GCPercent float64 `json:"gc_percent"`
}

type TranslationV1 struct {
	Protein     string         `json:"protein,omitempty"`
	ORFStart    int            `json:"orf_start,omitempty"`
	CodingBases int            `json:"coding_bases,omitempty"`
	FoundStop   bool           `json:"found_stop,omitempty"`
	SideChains  map[string]int `json:"side_chains,omitempty"`
	Note        string         `json:"note,omitempty"` // e.g. no start codon
}

type HydropathyV1 struct {
	Window int       `json:"window,omitempty"`
	Scores []float64 `json:"scores,omitempty"`
	Note   string    `json:"note,omitempty"` // e.g. protein too short
}

type MotifV1 struct {
	Query     string `json:"query"`
	Positions []int  `json:"positions,omitempty"`
	Note      string `json:"note,omitempty"` // e.g. no matches
}

type GuidesV1 struct {
	Candidates []GuideV1 `json:"candidates,omitempty"`
	Note       string    `json:"note,omitempty"`
}

type GuideV1 struct {
	Position    int    `json:"position"`
	Protospacer string `json:"protospacer"`
	PAM         string `json:"pam"`
}

type IdentificationV1 struct {
	Hits []HitV1 `json:"hits,omitempty"`
	Note string  `json:"note,omitempty"` // e.g. service unavailable
}

type HitV1 struct {
	Accession   string `json:"accession"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
