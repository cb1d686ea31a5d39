// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
)

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - every attached record must be valid
//   - record IDs must be unique within the document
//
// NOT validated:
//   - Title and Body (an empty note is still indexable)
//   - CreatedAt / ModifiedAt (zero means unknown)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyID)
	}

	seen := make(map[string]struct{}, len(doc.Records))
	for i := range doc.Records {
		if err := ValidateRecord(&doc.Records[i]); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		if _, dup := seen[doc.Records[i].ID]; dup {
			return fmt.Errorf("%w: %w: %s", ErrInvalidDocument, ErrDuplicateRecordID, doc.Records[i].ID)
		}
		seen[doc.Records[i].ID] = struct{}{}
	}

	return nil
}

// ValidateRecord validates an attached Record.
//
// Validation rules:
//   - ID must not be empty
//   - Kind must be a known RecordKind
func ValidateRecord(record *Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyID)
	}

	if err := ValidateRecordKind(record.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return nil
}

// ValidateRecordKind validates that a RecordKind has a valid value.
func ValidateRecordKind(kind RecordKind) error {
	if kind < RecordKindLink || kind > RecordKindReference {
		return fmt.Errorf("%w: value %d", ErrInvalidRecordKind, kind)
	}
	return nil
}

// ValidateIndexEntry validates an IndexEntry before it is stored or restored.
//
// Validation rules:
//   - DocumentID must not be empty
//   - term frequencies must be positive
//   - all matrix rows must have the same length
func ValidateIndexEntry(entry *IndexEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if entry.DocumentID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyID)
	}

	for term, count := range entry.Terms {
		if count <= 0 {
			return fmt.Errorf("%w: term %q has count %d", ErrInvalidEntry, term, count)
		}
	}

	if len(entry.Matrix) > 0 {
		width := len(entry.Matrix[0])
		for _, row := range entry.Matrix[1:] {
			if len(row) != width {
				return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrRaggedMatrix)
			}
		}
	}

	return nil
}
