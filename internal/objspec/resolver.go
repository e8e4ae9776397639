package objspec

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrCapabilityNotFound indicates a class name that no constructor was
	// registered under.
	ErrCapabilityNotFound = errors.New("capability not found")

	// ErrArgumentCollision indicates caller-supplied arguments that overlap
	// with the arguments already declared by a spec.
	ErrArgumentCollision = errors.New("argument name collision")
)

// Constructor builds a capability instance from named arguments. Whatever it
// does on construction is opaque to this package.
type Constructor func(args map[string]any) (any, error)

// Resolver maps fully qualified class names to their constructors. It is the
// single point of contact with "dynamic" loading: the table is populated
// explicitly at startup rather than by reflecting over the host environment,
// so resolution is a plain deterministic name lookup.
type Resolver struct {
	constructors map[string]Constructor
}

// NewResolver returns an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{constructors: make(map[string]Constructor)}
}

// Register adds a constructor under name, replacing any previous entry.
func (r *Resolver) Register(name string, fn Constructor) {
	r.constructors[name] = fn
}

// Resolve returns the constructor registered under name.
func (r *Resolver) Resolve(name string) (Constructor, error) {
	fn, ok := r.constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCapabilityNotFound, name)
	}
	return fn, nil
}

// Construct builds the object described by spec. extra arguments are merged
// into the spec's own; a key present in both sets is a collision and aborts
// construction before the constructor runs. Errors returned by the
// constructor itself propagate unwrapped.
func (r *Resolver) Construct(spec Spec, extra map[string]any) (any, error) {
	args := make(map[string]any, len(spec.Args)+len(extra))
	for k, v := range spec.Args {
		args[k] = v
	}

	if len(extra) > 0 {
		var collisions []string
		for k := range extra {
			if _, exists := args[k]; exists {
				collisions = append(collisions, k)
			}
		}
		if len(collisions) > 0 {
			sort.Strings(collisions)
			return nil, fmt.Errorf("%w: %s when constructing %s",
				ErrArgumentCollision, strings.Join(collisions, ", "), spec.ClassName)
		}
		for k, v := range extra {
			args[k] = v
		}
	}

	fn, err := r.Resolve(spec.ClassName)
	if err != nil {
		return nil, err
	}
	return fn(args)
}
