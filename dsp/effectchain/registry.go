package effectchain

import (
	"errors"
	"fmt"
	"sort"
)

// Factory builds one Stage from the chain context and positional parameters.
type Factory func(ctx Context, params []float32) (Stage, error)

// Registry maps stage type names to their factories.
type Registry struct {
	factories map[string]Factory
}

var (
	// ErrUnknownStage is returned when a spec references an unregistered stage type.
	ErrUnknownStage = errors.New("unknown stage type")

	errDuplicateStage = errors.New("duplicate stage type")
)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given stage type.
func (r *Registry) Register(stageType string, factory Factory) error {
	if stageType == "" {
		return errors.New("empty stage type")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[stageType]; exists {
		return fmt.Errorf("%w: %s", errDuplicateStage, stageType)
	}

	r.factories[stageType] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(stageType string, factory Factory) {
	err := r.Register(stageType, factory)
	if err != nil {
		panic("effectchain registry: " + err.Error())
	}
}

// Lookup returns the factory for the given stage type, or nil.
func (r *Registry) Lookup(stageType string) Factory {
	return r.factories[stageType]
}

// Names returns the registered stage types in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates a stage of the given type.
func (r *Registry) Build(ctx Context, stageType string, params []float32) (Stage, error) {
	factory := r.Lookup(stageType)
	if factory == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStage, stageType)
	}
	return factory(ctx, params)
}
