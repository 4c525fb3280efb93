// internal/blast/status.go
package blast

// Stage names one phase of an identification attempt.
type Stage string

const (
	StageSubmitting Stage = "submitting"
	StageWaiting    Stage = "waiting"
	StageReady      Stage = "ready"
	StageTimedOut   Stage = "timed-out"
	StageFailed     Stage = "failed"
)

// Status is one progress update from an identification call. Invocation is
// a sequence number that increases with every Identify call on the same
// Orchestrator, so a caller multiplexing invocations can drop updates from
// superseded ones instead of letting a stale attempt overwrite newer state.
type Status struct {
	Invocation uint64
	Stage      Stage
	Database   string
	Transport  string
	Message    string
}

// StatusFunc observes progress updates. It is called synchronously from the
// goroutine running Identify.
type StatusFunc func(Status)
