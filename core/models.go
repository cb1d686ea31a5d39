package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// RecordKind identifies the kind of record attached to a document.
type RecordKind int

const (
	// RecordKindLink is a web link with an optional page summary.
	RecordKindLink RecordKind = iota + 1
	// RecordKindWiki is an encyclopedia article attached to a note.
	RecordKindWiki
	// RecordKindFile is a file attachment.
	RecordKindFile
	// RecordKindReference is a citation or bibliographic reference.
	RecordKindReference
)

// String returns the lowercase name of the kind.
func (k RecordKind) String() string {
	switch k {
	case RecordKindLink:
		return "link"
	case RecordKindWiki:
		return "wiki"
	case RecordKindFile:
		return "file"
	case RecordKindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Record is metadata attached to a document. The engine only reads Title and
// Description; Fields carries kind-specific values it never interprets.
type Record struct {
	ID          string
	Kind        RecordKind
	Title       string
	Description string
	Fields      map[string]string
}

// Text returns the searchable text of the record: title followed by description.
func (r *Record) Text() string {
	if r.Description == "" {
		return r.Title
	}
	return r.Title + " " + r.Description
}

// Document is a note as supplied by the note store.
// The engine keeps derived data keyed by ID and never mutates a Document.
type Document struct {
	ID         string
	Title      string
	Body       string
	Labels     []string // Recognized drawing labels
	Records    []Record // Attached records
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Fingerprint returns a content hash of everything the indices derive from the document.
// Two documents with the same fingerprint produce identical index entries.
func Fingerprint(doc *Document) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(doc.Title))
	h.Write([]byte{0})
	h.Write([]byte(doc.Body))
	h.Write([]byte{0})
	for _, label := range doc.Labels {
		h.Write([]byte(label))
		h.Write([]byte{1})
	}
	for _, record := range doc.Records {
		h.Write([]byte(record.ID))
		h.Write([]byte{2})
		h.Write([]byte(record.Text()))
		h.Write([]byte{3})
	}
	return binary.LittleEndian.Uint64(h.Sum(nil))
}

// IndexEntry is the derived data the engine keeps for one document.
type IndexEntry struct {
	DocumentID  string
	Fingerprint uint64
	Terms       map[string]int // Term frequencies
	Matrix      [][]float32    // One embedding row per retained unique term
	IndexedAt   time.Time
}

// Checkpoint records the state of the last completed corpus pass.
type Checkpoint struct {
	Documents int
	Ready     bool
	UpdatedAt time.Time
}

// Field names a scored part of a document.
type Field string

const (
	FieldTitle     Field = "title"
	FieldParagraph Field = "paragraph"
	FieldDrawings  Field = "drawings"
	FieldRecord    Field = "record"
)

// Match describes one field of a document that matched a sub-query.
type Match struct {
	Field   Field
	Text    string // The matched field text (the paragraph, the title, ...)
	Term    string // Closest target word in the field
	Score   float64
	Lexical bool // True when the lexical threshold was reached
}

// NoteHit is a scored document in a search result.
type NoteHit struct {
	DocumentID string
	Title      string
	Score      float64
	Matches    []Match
}

// RecordHit is a scored attached record in a search result.
type RecordHit struct {
	DocumentID string
	Record     Record
	Score      float64
}

// Answer is an extracted answer to a question query.
type Answer struct {
	Context    string
	Text       string
	Confidence float64
}

// SearchResult holds the ranked results of one sub-query.
// Scores are normalized into [0,1] relative to this result only.
type SearchResult struct {
	Query      string
	IsQuestion bool
	Notes      []NoteHit
	Records    []RecordHit
	Answers    []Answer
}

// Empty reports whether the result carries no notes, records or answers.
func (r *SearchResult) Empty() bool {
	return len(r.Notes) == 0 && len(r.Records) == 0 && len(r.Answers) == 0
}

// TermWeight is the TF-IDF weight of a term in one document.
type TermWeight struct {
	DocumentID string
	Score      float64
}

// Neighbor is a document with its embedding similarity to a source document.
type Neighbor struct {
	DocumentID string
	Similarity float64
}

// Keyword is a term of a document with its TF-IDF weight.
type Keyword struct {
	Term  string
	Score float64
}
