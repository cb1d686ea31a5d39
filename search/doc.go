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

// Package search answers free-text queries over indexed notes.
//
// A query is first decomposed by the query processor into one or more
// sub-queries. Every sub-query is then scored against each indexed note:
//   - the title, the joined drawing labels and each body paragraph are compared
//     with the sub-query using lexical (Damerau-Levenshtein) and semantic
//     (word embedding) similarity
//   - attached records are scored the same way and reported separately
//   - scores are normalized per sub-query so the best note scores exactly 1
//
// Question queries additionally run extractive question answering over the
// best matching paragraphs, record descriptions and a few generated
// statements about the notes themselves.
//
// Results are streamed to Handlers as each sub-query completes.
package search
