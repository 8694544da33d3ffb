package legalserver

import (
	"strings"
	"unicode/utf8"
)

// MaxQuestionLength is the maximum accepted question length in characters.
const MaxQuestionLength = 500

// Question is a caller-provided legal question. It only lives for the
// duration of a single request.
type Question struct {
	Content string
}

// Validation reasons, surfaced verbatim to the caller.
const (
	ReasonInvalid    = "Pregunta inválida"
	ReasonEmpty      = "Pregunta vacía"
	ReasonTooLong    = "Pregunta demasiado larga"
	ReasonDisallowed = "Instrucción no permitida"
)

// ValidationError describes why a question was rejected. The reason is safe
// to return to the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Fixed phrases rejected by the prompt-injection filter. This is pattern
// matching only and trivially bypassed, a weak control rather than a
// security boundary.
var disallowedPhrases = []string{
	"ignora las instrucciones",
	"ignore previous instructions",
	"ignore all previous instructions",
	"olvida tus instrucciones",
	"disregard the instructions",
	"you are now",
	"ahora eres",
}

// Validate checks the question in order: empty after trim, length over the
// limit, disallowed instruction phrases. Trimming is applied to the checks
// only, the content itself is forwarded untouched.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Content) == "" {
		return &ValidationError{Reason: ReasonEmpty}
	}

	if utf8.RuneCountInString(q.Content) > MaxQuestionLength {
		return &ValidationError{Reason: ReasonTooLong}
	}

	lower := strings.ToLower(q.Content)
	for _, phrase := range disallowedPhrases {
		if strings.Contains(lower, phrase) {
			return &ValidationError{Reason: ReasonDisallowed}
		}
	}

	return nil
}
