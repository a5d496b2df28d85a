package pipeline

// State is where the orchestrator is in its run.
type State int

const (
	StateIdle State = iota
	StateExtracting
	StateExtracted
	StateRendering
	StateRendered
	StateSummarizing
	StateDone
)

var stateNames = [...]string{
	StateIdle:        "idle",
	StateExtracting:  "extracting",
	StateExtracted:   "extracted",
	StateRendering:   "rendering",
	StateRendered:    "rendered",
	StateSummarizing: "summarizing",
	StateDone:        "done",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
