package llm

import (
	"context"
	"fmt"
	"strings"
)

// Client is the completion capability both backends implement: one prompt in,
// raw text out. The query service never cares which provider is behind it.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Registry holds the configured backends keyed by provider name. The query
// endpoint lets the caller pick one per request; empty or unknown names fall
// back to the default.
type Registry struct {
	clients         map[string]Client
	defaultProvider string
}

func NewRegistry(defaultProvider string) *Registry {
	return &Registry{
		clients:         make(map[string]Client),
		defaultProvider: defaultProvider,
	}
}

func (r *Registry) Register(name string, c Client) {
	r.clients[strings.ToLower(name)] = c
}

func (r *Registry) For(provider string) (Client, error) {
	name := strings.ToLower(strings.TrimSpace(provider))
	if name == "" {
		name = r.defaultProvider
	}
	if c, ok := r.clients[name]; ok {
		return c, nil
	}
	if c, ok := r.clients[r.defaultProvider]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("no completion backend configured for %q", name)
}
