// Package generator wraps the optional external text-generation capability.
// Absence of a configured generator is a normal condition, not an error; the
// chat service simply skips its fallback stage.
package generator

import "context"

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderError reports a failure of the external provider. The chat service
// recovers it into a user-visible apology that includes the message.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
