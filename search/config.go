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


package search

import "fmt"

// Thresholds are the cut-offs used by one search mode.
type Thresholds struct {
	// Lexical is the minimum lexical similarity of a field hit.
	Lexical float64 `yaml:"lexical"`
	// Semantic is the minimum semantic similarity of a field hit.
	Semantic float64 `yaml:"semantic"`
	// Result is the minimum normalized score of a returned note or record.
	Result float64 `yaml:"result"`
	// Answer is the minimum confidence of a returned answer.
	Answer float64 `yaml:"answer"`
}

// Config holds search tuning parameters.
type Config struct {
	Normal   Thresholds `yaml:"normal"`
	Expanded Thresholds `yaml:"expanded"`

	// AnswerFieldScore is the combined lexical and semantic score a paragraph
	// or record description needs to be handed to question answering.
	AnswerFieldScore float64 `yaml:"answer_field_score"`

	// AnswerContextWords bounds the question plus context sent to question answering.
	AnswerContextWords int `yaml:"answer_context_words"`

	// RecentNotes is the number of notes listed in the recent notes statement.
	RecentNotes int `yaml:"recent_notes"`

	// Concurrency bounds the number of sub-queries scored at once.
	Concurrency int `yaml:"concurrency"`
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() Config {
	return Config{
		Normal: Thresholds{
			Lexical:  0.9,
			Semantic: 0.5,
			Result:   0.5,
			Answer:   0.7,
		},
		Expanded: Thresholds{
			Lexical:  0.8,
			Semantic: 0.45,
			Result:   0.1,
			Answer:   0.5,
		},
		AnswerFieldScore:   1.0,
		AnswerContextWords: 384,
		RecentNotes:        3,
		Concurrency:        4,
	}
}

// Thresholds returns the thresholds of the requested mode.
func (c Config) Thresholds(expanded bool) Thresholds {
	if expanded {
		return c.Expanded
	}
	return c.Normal
}

// Validate checks that every threshold lies in [0,1] and that limits are positive.
func (c Config) Validate() error {
	for name, t := range map[string]Thresholds{"normal": c.Normal, "expanded": c.Expanded} {
		for field, v := range map[string]float64{
			"lexical":  t.Lexical,
			"semantic": t.Semantic,
			"result":   t.Result,
			"answer":   t.Answer,
		} {
			if v < 0 || v > 1 {
				return fmt.Errorf("%w: %s %s threshold %v out of range", ErrInvalidConfig, name, field, v)
			}
		}
	}
	if c.AnswerFieldScore < 0 || c.AnswerFieldScore > 2 {
		return fmt.Errorf("%w: answer field score %v out of range", ErrInvalidConfig, c.AnswerFieldScore)
	}
	if c.AnswerContextWords <= 0 {
		return fmt.Errorf("%w: answer context words must be positive", ErrInvalidConfig)
	}
	if c.RecentNotes < 0 {
		return fmt.Errorf("%w: recent notes cannot be negative", ErrInvalidConfig)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("%w: concurrency must be positive", ErrInvalidConfig)
	}
	return nil
}
