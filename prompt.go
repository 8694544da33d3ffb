package legalserver

import (
	"strings"
)

// Prompt is an ephemeral two-part message for a single completion call.
type Prompt struct {
	System string
	User   string
}

// BuildPrompt interpolates the retrieved documents and the question into the
// user content: documents joined by a blank line, then the question verbatim.
// With no documents the context section is omitted and the system instruction
// switches to the no-context variant.
func BuildPrompt(question Question, documents []Document) Prompt {
	if len(documents) == 0 {
		return Prompt{
			System: systemInstructionNoContext,
			User:   question.Content,
		}
	}

	contexts := make([]string, 0, len(documents))
	for _, aDocument := range documents {
		contexts = append(contexts, aDocument.Sanitize().Content)
	}

	return Prompt{
		System: systemInstruction,
		User:   strings.Join(contexts, "\n\n") + "\n\n" + question.Content,
	}
}
