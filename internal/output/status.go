// internal/output/status.go
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"seqlens/internal/blast"
)

var stageColors = map[blast.Stage]*color.Color{
	blast.StageSubmitting: color.New(color.FgYellow),
	blast.StageWaiting:    color.New(color.FgYellow),
	blast.StageReady:      color.New(color.FgGreen),
	blast.StageTimedOut:   color.New(color.FgRed),
	blast.StageFailed:     color.New(color.FgRed),
}

// StatusPrinter writes identification progress lines, one per update, and
// drops updates from superseded invocations.
type StatusPrinter struct {
	W      io.Writer
	Quiet  bool
	latest uint64
}

// Print implements blast.StatusFunc.
func (p *StatusPrinter) Print(s blast.Status) {
	if p.Quiet || s.Invocation < p.latest {
		return
	}
	p.latest = s.Invocation

	c := stageColors[s.Stage]
	if c == nil {
		c = color.New()
	}
	where := ""
	if s.Database != "" {
		where = fmt.Sprintf(" %s via %s", s.Database, s.Transport)
	}
	msg := ""
	if s.Message != "" {
		msg = ": " + s.Message
	}
	_, _ = c.Fprintf(p.W, "[%s]%s%s\n", s.Stage, where, msg)
}
