// Package mock provides deterministic test doubles for the ai capabilities.
//
// The word embedder carries a small built-in vocabulary whose vectors group
// terms by topic (geology, animals, sea, weather), so tests can reason about
// which words are close without a real model. The tokenizer tags and
// lemmatizes with fixed rule tables instead of a trained model. Every mock accepts function
// fields that replace its default behavior and counts its calls.
//
//	provider := mock.NewMockProvider()
//	provider.GetMockAnswerer().PredictFunc = func(ctx context.Context, q, c string) (*ai.Answer, error) {
//	    return &ai.Answer{Text: "a mountain", Confidence: 0.9}, nil
//	}
package mock
