package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput marks an input image that does not exist.
	ErrMissingInput = errors.New("input image not found")
	// ErrEmptyDetection marks a detected span with no text.
	ErrEmptyDetection = errors.New("detected span has no text")
	// ErrEmptyTranslation marks a span whose translation came back empty.
	ErrEmptyTranslation = errors.New("translation is empty")
)

// Stage names the step a Failure happened in.
type Stage string

const (
	StageProcess   Stage = "process"
	StageRender    Stage = "render"
	StageSummarize Stage = "summarize"
)

// Failure is one skipped or failed item.
type Failure struct {
	File  string
	Stage Stage
	Err   error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Stage, f.File, f.Err)
}

// Report counts what a run did. Skipped items are non-fatal notices;
// Failures aborted one image's step.
type Report struct {
	Processed  int
	Regions    int
	Rendered   int
	Summarized int
	Skipped    []Failure
	Failures   []Failure
}

// SkippedCount counts notices wrapping target.
func (r Report) SkippedCount(target error) int {
	n := 0
	for _, s := range r.Skipped {
		if errors.Is(s.Err, target) {
			n++
		}
	}
	return n
}

func (r Report) String() string {
	return fmt.Sprintf("processed %d images (%d regions), rendered %d, summarized %d, %d skipped, %d failed",
		r.Processed, r.Regions, r.Rendered, r.Summarized, len(r.Skipped), len(r.Failures))
}

func (r Report) clone() Report {
	cp := r
	cp.Skipped = append([]Failure(nil), r.Skipped...)
	cp.Failures = append([]Failure(nil), r.Failures...)
	return cp
}
