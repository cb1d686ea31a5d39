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

package badger

import (
	"log/slog"

	"github.com/poiesic/notedex/storage"
)

// NewRepositories opens the index store in dir and returns its repositories.
// An empty dir opens an in-memory store. Caller must close the backend when done.
func NewRepositories(dir string, logger *slog.Logger) (storage.IndexRepository, storage.CheckpointRepository, *Backend, error) {
	backend, err := OpenBackend(dir, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return NewIndexRepository(backend), NewCheckpointRepository(backend), backend, nil
}

// NewMemoryRepositories creates in-memory index and checkpoint repositories for testing.
// Caller must close the backend when done.
func NewMemoryRepositories() (storage.IndexRepository, storage.CheckpointRepository, *Backend, error) {
	return NewRepositories("", nil)
}
