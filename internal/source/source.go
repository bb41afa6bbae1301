// Package source defines where patient documents come from. The production
// deployment fetches records from the upstream clinical API; that client
// lives outside this module, so sources are pluggable behind a registry the
// same way output sinks are.
package source

import (
	"context"
	"fmt"

	"github.com/valyala/fastjson"
)

// Source fetches one parsed patient document by its composite key of case
// identifier and encounter number. A nil document with a nil error means the
// patient was not found; callers treat absence as nothing to process, not an
// error.
type Source interface {
	Fetch(ctx context.Context, cpmrn string, encounter int) (*fastjson.Value, error)
}

// Config holds provider-specific source settings.
type Config struct {
	Provider string
	Path     string
}

// Constructor is a function that creates a new Source instance.
type Constructor func(cfg Config) Source

var registry = map[string]Constructor{}

// Register adds a source constructor under the given provider name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the source constructor for the given provider name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown source provider: %s", name)
	}
	return ctor, nil
}

// Providers returns the names of all registered source providers.
func Providers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
