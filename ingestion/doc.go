// Package ingestion maintains the search indices.
//
// The Pipeline type owns every mutation of the term and embedding indices.
// Tasks are queued and executed one at a time, in submission order, by a
// single worker:
//   - reset: drops every indexed document
//   - index: (re)indexes one document in both indices
//   - remove: drops one document from both indices
//   - corpus: recomputes corpus statistics and marks the indices ready
//
// The corpus task is always the last pending task. Submitting more work moves
// it behind the new tasks, so statistics reflect the whole batch.
//
// When an index repository is configured, every indexed document is also
// persisted so a later process can restore the indices without re-embedding.
package ingestion
