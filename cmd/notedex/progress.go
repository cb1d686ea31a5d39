package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/poiesic/notedex/ingestion"
	"github.com/schollz/progressbar/v3"
)

// progressReporter turns the pipeline's remaining task counts into a
// progress bar, or plain progress lines when plain is set. The task total
// is taken from the first report.
type progressReporter struct {
	mu      sync.Mutex
	out     io.Writer
	plain   bool
	active  bool
	total   int
	bar     *progressbar.ProgressBar
	tracker *ingestion.ProgressTracker
}

func newProgressReporter(out io.Writer, plain bool) *progressReporter {
	return &progressReporter{out: out, plain: plain}
}

// start enables reporting. Reports before start are ignored.
func (r *progressReporter) start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = true
}

func (r *progressReporter) update(remaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return
	}

	if r.total == 0 {
		r.total = remaining + 1
		if r.plain {
			r.tracker = ingestion.NewProgressTracker(r.out, r.total, 1)
			r.tracker.Start()
		} else {
			r.bar = progressbar.NewOptions(r.total,
				progressbar.OptionSetWriter(r.out),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Indexing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(r.out)
				}),
			)
		}
	}

	if r.tracker != nil {
		r.tracker.Remaining(remaining)
	}
	if r.bar != nil {
		_ = r.bar.Set(r.total - remaining)
	}
}

func (r *progressReporter) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = false
	if r.tracker != nil {
		r.tracker.Finish()
	}
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}
