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

// Package storage provides the storage abstractions around the search engine.
//
// The engine owns no documents. It reads them from a DocumentSource supplied
// by the note store, and it may persist its own derived data (term
// frequencies, embedding matrices, content fingerprints) through an
// IndexRepository so a restart does not re-embed the whole corpus.
//
// # Implementations
//
//   - storage/badger: IndexRepository and CheckpointRepository on BadgerDB
//   - storage/memory: in-memory DocumentSource for tests and embedding
//   - storage/files: DocumentSource reading one note per file from a directory
//
// Public constructors return interface types; internal constructors
// (newBackend, newIndexRepository, ...) return concrete types.
//
// # Usage
//
//	indexRepo, checkpointRepo, err := badger.NewRepositories("/path/to/index")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer indexRepo.Close()
//
// # Thread Safety
//
// All implementations must be safe for concurrent use.
package storage
