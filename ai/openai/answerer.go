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

package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/notedex/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Answerer implements ai.AnswerExtractor with an OpenAI-compatible chat model
// instructed to copy an answer span out of the context.
type Answerer struct {
	client     llms.Model
	maxRetries int
	logger     *slog.Logger
}

// span is the JSON structure the model is asked to produce.
type span struct {
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
}

// newAnswerer is an internal constructor that returns the concrete type.
func newAnswerer(config *ai.Config) (*Answerer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.AnswerHost),
		openai.WithToken("none"),
		openai.WithModel(config.AnswerModel),
	)
	if err != nil {
		return nil, err
	}

	return newAnswererWith(client, config.MaxRetries), nil
}

func newAnswererWith(client llms.Model, maxRetries int) *Answerer {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Answerer{
		client:     client,
		maxRetries: maxRetries,
		logger:     slog.Default().With("component", "openai-answerer"),
	}
}

// NewAnswerer creates a new answer extractor using the provided configuration.
//
// Returns ai.AnswerExtractor interface to enforce abstraction.
func NewAnswerer(config *ai.Config) (ai.AnswerExtractor, error) {
	return newAnswerer(config)
}

// Predict asks the model for an answer span. Spans that do not occur in the
// context are discarded, so the result is always extractive.
func (a *Answerer) Predict(ctx context.Context, question, context string) (*ai.Answer, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(answerSystemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(buildAnswerPrompt(question, context))},
		},
	}

	// Retry in case of malformed JSON
	var (
		result  span
		lastErr error
	)
	for attempt := 0; attempt < a.maxRetries; attempt++ {
		response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}
		if len(response.Choices) < 1 {
			a.logger.Debug("no choices returned from model")
			return nil, nil
		}

		text := repairJSON(stripCodeFence(response.Choices[0].Content))
		if err := json.Unmarshal([]byte(text), &result); err != nil {
			lastErr = err
			a.logger.Warn("error parsing answer response", "attempt", attempt+1, "response", text, "err", err)
			continue
		}
		lastErr = nil
		break
	}
	if lastErr != nil {
		return nil, lastErr
	}

	answer := collapseSpace(result.Answer)
	if answer == "" || !strings.Contains(strings.ToLower(collapseSpace(context)), strings.ToLower(answer)) {
		a.logger.Debug("discarding non-extractive answer", "answer", answer)
		return nil, nil
	}

	return &ai.Answer{
		Text:       answer,
		Confidence: min(1, max(0, result.Confidence)),
	}, nil
}
