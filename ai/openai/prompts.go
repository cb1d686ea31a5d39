package openai

import (
	"fmt"
	"strings"
)

const answerResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "answer": {"type": "string"},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1}
  },
  "required": ["answer", "confidence"],
  "additionalProperties": false
}`

var answerSystemPrompt = buildSystemPrompt()

func buildSystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are an extractive question answering system.\n")
	b.WriteString("You receive a QUESTION and a CONTEXT taken from a user's notes.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("1. The answer MUST be copied verbatim from the CONTEXT. Never paraphrase.\n")
	b.WriteString("2. Prefer the shortest span that fully answers the question.\n")
	b.WriteString("3. If the CONTEXT does not answer the question, return an empty answer with confidence 0.\n")
	b.WriteString("4. confidence is your probability, between 0 and 1, that the span answers the question.\n\n")
	b.WriteString("Respond with JSON only, matching this schema:\n")
	b.WriteString(answerResponseSchema)
	return b.String()
}

func buildAnswerPrompt(question, context string) string {
	return fmt.Sprintf("QUESTION: %s\n\nCONTEXT: %s", strings.TrimSpace(question), strings.TrimSpace(context))
}
