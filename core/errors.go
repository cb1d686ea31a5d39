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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidRecord indicates an attached Record failed validation.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrEmptyID indicates an identifier is empty.
	ErrEmptyID = errors.New("identifier cannot be empty")

	// ErrInvalidRecordKind indicates an invalid RecordKind value.
	ErrInvalidRecordKind = errors.New("invalid record kind")

	// ErrDuplicateRecordID indicates two records of a document share an ID.
	ErrDuplicateRecordID = errors.New("duplicate record id")

	// ErrInvalidEntry indicates an IndexEntry failed validation.
	ErrInvalidEntry = errors.New("invalid index entry")

	// ErrRaggedMatrix indicates matrix rows of differing lengths.
	ErrRaggedMatrix = errors.New("matrix rows differ in length")
)
