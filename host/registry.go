// SPDX-License-Identifier: EPL-2.0

package host

import (
	"fmt"
	"slices"
	"sync"
)

// Processor is invoked once per tick with the tick's input buses, each a list
// of per-channel sample slices. The slices are only valid for the duration of
// the call. Returning false asks the host to stop invoking the processor.
type Processor interface {
	Process(inputs [][][]float32) bool
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(inputs [][][]float32) bool

func (f ProcessorFunc) Process(inputs [][][]float32) bool { return f(inputs) }

// Factory builds a new processor instance.
type Factory func() (Processor, error)

// Registry maps processor names to factories. Names are exact and can be
// registered only once.
type Registry struct {
	mtx       sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return ErrEmptyName
	}
	if f == nil {
		return fmt.Errorf("%w: %q", ErrNilFactory, name)
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}
	r.factories[name] = f

	return nil
}

// New instantiates the processor registered as name.
func (r *Registry) New(name string) (Processor, error) {
	r.mtx.RLock()
	f, ok := r.factories[name]
	r.mtx.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProcessor, name)
	}

	p, err := f()
	if err != nil {
		return nil, fmt.Errorf("creating processor %q: %w", name, err)
	}

	return p, nil
}

// Names lists registered processor names in sorted order.
func (r *Registry) Names() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	slices.Sort(names)

	return names
}
