package search

import (
	"github.com/poiesic/notedex/core"
	"github.com/poiesic/notedex/query"
)

// SearchMonitor provides hooks to observe the search process.
// Sub-queries are scored concurrently, so implementations must be safe for concurrent use.
type SearchMonitor interface {
	Start(text string)
	AfterQueryProcessing(result query.Result)
	NoteScored(subQuery string, documentID string, score float64)
	AnswerFound(subQuery string, answer core.Answer)
	SubQueryDone(result *core.SearchResult)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                           {}
func (n *noopMonitor) AfterQueryProcessing(_ query.Result)      {}
func (n *noopMonitor) NoteScored(_ string, _ string, _ float64) {}
func (n *noopMonitor) AnswerFound(_ string, _ core.Answer)      {}
func (n *noopMonitor) SubQueryDone(_ *core.SearchResult)        {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)            {}
