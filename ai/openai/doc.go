// Package openai provides capability implementations using OpenAI-compatible APIs.
//
// Embeddings and answer extraction go through the langchaingo library, so any
// OpenAI-compatible server works (OpenAI, Ollama, LocalAI, vLLM). Term vectors
// are cached in a ristretto cache sized by ai.Config.CacheSize; remote calls
// are retried with exponential backoff.
//
// # Usage
//
//	config := ai.NewConfig(ai.WithHost("http://localhost:11434")) // /v1 added automatically
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	d := provider.SentenceEmbedder().Distance(ctx, "lava flow", "volcanic eruption")
//	answer, err := provider.AnswerExtractor().Predict(ctx, "When did it erupt?", paragraph)
package openai
