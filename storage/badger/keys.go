package badger

// Key prefixes for different data types
const (
	indexEntryPrefix = "idxent:"
	checkpointKey    = "corpus:chkpt"
)

// makeIndexEntryKey generates a key for the index entry of a document.
// Keys sort by document ID.
func makeIndexEntryKey(id string) []byte {
	return []byte(indexEntryPrefix + id)
}
