package ingestion

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker writes indexing progress to a writer, one carriage-return
// terminated line at a time. Pass its Remaining method to WithProgress.
type ProgressTracker struct {
	mu       sync.Mutex
	writer   io.Writer
	total    int
	done     int
	interval int
	reported int
	start    time.Time
	started  bool
}

// NewProgressTracker creates a tracker for total tasks reporting every interval tasks.
func NewProgressTracker(writer io.Writer, total, interval int) *ProgressTracker {
	return &ProgressTracker{
		writer:   writer,
		total:    total,
		interval: max(interval, 1),
	}
}

// Start begins tracking progress.
func (p *ProgressTracker) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.start = time.Now()
	p.started = true
	p.done = 0
	p.reported = 0
}

// Remaining records that only remaining tasks are left.
func (p *ProgressTracker) Remaining(remaining int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	p.advanceLocked(p.total - remaining)
}

// Increment records delta more completed tasks.
func (p *ProgressTracker) Increment(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	p.advanceLocked(p.done + delta)
}

func (p *ProgressTracker) advanceLocked(done int) {
	p.done = min(max(done, 0), p.total)
	if p.done-p.reported >= p.interval {
		p.reportLocked()
		p.reported = p.done
	}
}

// Finish marks every task done and ends the progress line.
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	p.done = p.total
	p.reportLocked()
	fmt.Fprintln(p.writer)
}

// Elapsed returns the time elapsed since Start was called.
func (p *ProgressTracker) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return 0
	}
	return time.Since(p.start)
}

func (p *ProgressTracker) reportLocked() {
	percent := 0.0
	if p.total > 0 {
		percent = float64(p.done) / float64(p.total) * 100
	}
	rate := 0.0
	if secs := time.Since(p.start).Seconds(); secs > 0 {
		rate = float64(p.done) / secs
	}
	fmt.Fprintf(p.writer, "\rIndexed %d/%d tasks (%.1f%%) - %.1f tasks/s", p.done, p.total, percent, rate)
}
