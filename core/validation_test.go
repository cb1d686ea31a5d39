package core

import (
	"errors"
	"testing"
)

func TestValidateDocument(t *testing.T) {
	link := Record{ID: "r1", Kind: RecordKindLink, Title: "Home"}

	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name:    "valid document",
			doc:     &Document{ID: "doc1", Title: "Volcano eruption", Body: "Lava."},
			wantErr: nil,
		},
		{
			name:    "empty note is valid",
			doc:     &Document{ID: "doc1"},
			wantErr: nil,
		},
		{
			name:    "valid document with records",
			doc:     &Document{ID: "doc1", Records: []Record{link, {ID: "r2", Kind: RecordKindWiki}}},
			wantErr: nil,
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name:    "empty ID",
			doc:     &Document{Title: "Untitled"},
			wantErr: ErrEmptyID,
		},
		{
			name:    "invalid record",
			doc:     &Document{ID: "doc1", Records: []Record{{ID: "r1"}}},
			wantErr: ErrInvalidRecordKind,
		},
		{
			name:    "duplicate record IDs",
			doc:     &Document{ID: "doc1", Records: []Record{link, link}},
			wantErr: ErrDuplicateRecordID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("ValidateDocument() error = %v, want wrapped %v", err, ErrInvalidDocument)
			}
		})
	}
}

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *Record
		wantErr error
	}{
		{"valid record", &Record{ID: "r1", Kind: RecordKindReference}, nil},
		{"nil record", nil, ErrInvalidRecord},
		{"empty ID", &Record{Kind: RecordKindFile}, ErrEmptyID},
		{"zero kind", &Record{ID: "r1"}, ErrInvalidRecordKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecord(tt.record)
			if tt.wantErr == nil && err != nil {
				t.Errorf("ValidateRecord() unexpected error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRecordKind(t *testing.T) {
	for _, kind := range []RecordKind{RecordKindLink, RecordKindWiki, RecordKindFile, RecordKindReference} {
		if err := ValidateRecordKind(kind); err != nil {
			t.Errorf("ValidateRecordKind(%v) unexpected error = %v", kind, err)
		}
	}
	for _, kind := range []RecordKind{0, -1, RecordKindReference + 1} {
		if err := ValidateRecordKind(kind); !errors.Is(err, ErrInvalidRecordKind) {
			t.Errorf("ValidateRecordKind(%d) error = %v, want %v", kind, err, ErrInvalidRecordKind)
		}
	}
}

func TestValidateIndexEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   *IndexEntry
		wantErr error
	}{
		{
			name:  "valid entry",
			entry: &IndexEntry{DocumentID: "doc1", Terms: map[string]int{"lava": 2}, Matrix: [][]float32{{1, 0}, {0, 1}}},
		},
		{
			name:  "empty entry",
			entry: &IndexEntry{DocumentID: "doc1"},
		},
		{
			name:    "nil entry",
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "empty ID",
			entry:   &IndexEntry{},
			wantErr: ErrEmptyID,
		},
		{
			name:    "zero term frequency",
			entry:   &IndexEntry{DocumentID: "doc1", Terms: map[string]int{"lava": 0}},
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "ragged matrix",
			entry:   &IndexEntry{DocumentID: "doc1", Matrix: [][]float32{{1, 0}, {1}}},
			wantErr: ErrRaggedMatrix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIndexEntry(tt.entry)
			if tt.wantErr == nil && err != nil {
				t.Errorf("ValidateIndexEntry() unexpected error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateIndexEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
