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

package ingestion

import (
	"context"

	"github.com/poiesic/notedex/core"
)

// documentIndex is a per-document index maintained by the pipeline.
// Both index.TermIndex and index.EmbeddingIndex satisfy it.
type documentIndex interface {
	// IndexDocument replaces the derived data of doc.
	IndexDocument(ctx context.Context, doc *core.Document) error

	// RemoveDocument drops the derived data of id.
	RemoveDocument(id string)

	// Reset drops every document.
	Reset()
}
