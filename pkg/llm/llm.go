// Package llm describes text-generation providers used by the domain.
// Concrete providers live in sub-packages so domain code only depends on this contract.
package llm

import (
	"context"
	"errors"
)

// Request is one prompt sent to a provider. All providers receive the same
// payload; how System/JSON map onto the wire is up to the provider.
type Request struct {
	System      string
	Prompt      string
	JSON        bool
	Temperature float32
}

// Provider — единый контракт для всех моделей.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
}

// ErrEmptyResponse is returned when a provider answered without content.
var ErrEmptyResponse = errors.New("llm: empty response")

// ModelOf returns the model name of providers that expose one.
func ModelOf(p Provider) string {
	if m, ok := p.(interface{ Model() string }); ok {
		return m.Model()
	}
	return ""
}
