package ingestion

import (
	"time"

	"github.com/poiesic/notedex/core"
	"github.com/poiesic/notedex/index"
)

type taskKind int

const (
	taskReset taskKind = iota
	taskPrune
	taskRestore
	taskIndex
	taskRemove
	taskCorpus
)

func (k taskKind) String() string {
	switch k {
	case taskReset:
		return "reset"
	case taskPrune:
		return "prune"
	case taskRestore:
		return "restore"
	case taskIndex:
		return "index"
	case taskRemove:
		return "remove"
	case taskCorpus:
		return "corpus"
	default:
		return "unknown"
	}
}

type task struct {
	kind taskKind
	doc  *core.Document      // taskIndex
	id   string              // taskRemove
	keep map[string]struct{} // taskPrune: documents that stay indexed
}

func (p *Pipeline) run(t task) {
	switch t.kind {
	case taskReset:
		p.saveCheckpoint(false)
		p.reset()
	case taskPrune:
		p.saveCheckpoint(false)
		for _, id := range p.terms.Documents() {
			if _, ok := t.keep[id]; !ok {
				p.remove(id)
			}
		}
	case taskRestore:
		p.restore()
	case taskIndex:
		p.index(t.doc)
	case taskRemove:
		p.remove(t.id)
	case taskCorpus:
		p.corpus()
	}
}

func (p *Pipeline) reset() {
	for _, idx := range p.indices {
		idx.Reset()
	}
	clear(p.fingerprints)
	if p.entries != nil {
		if err := p.entries.Clear(p.ctx); err != nil {
			p.logger.Error("error clearing persisted entries", "err", err)
		}
	}
	p.logger.Info("indices reset")
}

func (p *Pipeline) index(doc *core.Document) {
	fingerprint := core.Fingerprint(doc)
	if p.current(doc.ID, fingerprint) {
		p.logger.Debug("document unchanged", "document", doc.ID)
		return
	}

	for _, idx := range p.indices {
		if err := idx.IndexDocument(p.ctx, doc); err != nil {
			p.logger.Error("error indexing document", "document", doc.ID, "err", err)
			return
		}
	}
	p.fingerprints[doc.ID] = fingerprint

	if p.entries == nil {
		return
	}
	matrix, _ := p.embeddings.Matrix(doc.ID)
	entry := &core.IndexEntry{
		DocumentID:  doc.ID,
		Fingerprint: fingerprint,
		Terms:       p.terms.TermFrequencies(doc.ID),
		Matrix:      matrix,
		IndexedAt:   time.Now().UTC(),
	}
	if err := p.entries.SaveEntries(p.ctx, entry); err != nil {
		p.logger.Error("error persisting index entry", "document", doc.ID, "err", err)
	}
}

// current reports whether id is indexed at fingerprint. A document whose
// embedding matrix is empty while it has terms is stale: its vectors were
// unavailable when it was last indexed.
func (p *Pipeline) current(id string, fingerprint uint64) bool {
	if prev, ok := p.fingerprints[id]; !ok || prev != fingerprint || !p.terms.Contains(id) {
		return false
	}
	if m, ok := p.embeddings.Matrix(id); !ok || len(m) == 0 {
		return len(p.terms.TermFrequencies(id)) == 0
	}
	return true
}

func (p *Pipeline) remove(id string) {
	for _, idx := range p.indices {
		idx.RemoveDocument(id)
	}
	delete(p.fingerprints, id)

	if p.entries == nil {
		return
	}
	if err := p.entries.DeleteEntries(p.ctx, id); err != nil {
		p.logger.Error("error deleting index entry", "document", id, "err", err)
	}
}

func (p *Pipeline) restore() {
	restored := 0
	err := p.entries.Entries(p.ctx, func(entry *core.IndexEntry) error {
		p.terms.Add(entry.DocumentID, entry.Terms)
		p.embeddings.Add(entry.DocumentID, index.Matrix(entry.Matrix))
		p.fingerprints[entry.DocumentID] = entry.Fingerprint
		restored++
		return nil
	})
	if err != nil {
		p.logger.Error("error restoring index entries", "restored", restored, "err", err)
		return
	}
	p.logger.Info("index entries restored", "documents", restored)
}

func (p *Pipeline) corpus() {
	p.terms.RecomputeCorpus()
	p.saveCheckpoint(true)
}

// saveCheckpoint records whether the persisted entries form a complete corpus.
func (p *Pipeline) saveCheckpoint(ready bool) {
	if p.checkpoints == nil {
		return
	}
	checkpoint := &core.Checkpoint{
		Documents: p.terms.Len(),
		Ready:     ready,
		UpdatedAt: time.Now().UTC(),
	}
	if err := p.checkpoints.SaveCheckpoint(p.ctx, checkpoint); err != nil {
		p.logger.Error("error saving checkpoint", "err", err)
	}
}
