package objspec

import (
	"errors"
	"strings"
	"testing"
)

// capture registers a constructor that records the arguments it was called
// with and returns the sentinel instance "built".
func capture(r *Resolver, name string) *map[string]any {
	var got map[string]any
	r.Register(name, func(args map[string]any) (any, error) {
		got = args
		return "built", nil
	})
	return &got
}

func TestConstruct_MergesDisjointExtra(t *testing.T) {
	r := NewResolver()
	got := capture(r, "a.b.C")

	spec := Spec{ClassName: "a.b.C", Args: map[string]any{"x": 1}}
	out, err := r.Construct(spec, map[string]any{"api_key": "secret"})
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if out != "built" {
		t.Fatalf("unexpected instance: %v", out)
	}
	if len(*got) != 2 || (*got)["x"] != 1 || (*got)["api_key"] != "secret" {
		t.Fatalf("constructor got %v, want union of spec args and extra", *got)
	}
	if _, leaked := spec.Args["api_key"]; leaked {
		t.Fatalf("Construct must not mutate the spec's own arguments")
	}
}

func TestConstruct_NilExtra(t *testing.T) {
	r := NewResolver()
	got := capture(r, "a.b.C")

	_, err := r.Construct(Spec{ClassName: "a.b.C", Args: map[string]any{"x": 1}}, nil)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if len(*got) != 1 || (*got)["x"] != 1 {
		t.Fatalf("constructor got %v, want just the spec args", *got)
	}
}

func TestConstruct_CollisionListsEveryKey(t *testing.T) {
	r := NewResolver()
	invoked := false
	r.Register("a.b.C", func(args map[string]any) (any, error) {
		invoked = true
		return nil, nil
	})

	spec := Spec{ClassName: "a.b.C", Args: map[string]any{"x": 1, "y": 2, "z": 3}}
	_, err := r.Construct(spec, map[string]any{"x": 9, "z": 9, "w": 9})
	if !errors.Is(err, ErrArgumentCollision) {
		t.Fatalf("expected ErrArgumentCollision, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "x") || !strings.Contains(msg, "z") {
		t.Fatalf("collision error should name every shared key: %v", err)
	}
	if !strings.Contains(msg, "a.b.C") {
		t.Fatalf("collision error should name the class: %v", err)
	}
	if invoked {
		t.Fatalf("constructor must not run on collision")
	}
}

func TestConstruct_UnknownCapability(t *testing.T) {
	r := NewResolver()
	_, err := r.Construct(Spec{ClassName: "no.such.Thing"}, nil)
	if !errors.Is(err, ErrCapabilityNotFound) {
		t.Fatalf("expected ErrCapabilityNotFound, got %v", err)
	}
}

func TestConstruct_ConstructorErrorPropagatesUnwrapped(t *testing.T) {
	boom := errors.New("boom")
	r := NewResolver()
	r.Register("a.b.C", func(args map[string]any) (any, error) {
		return nil, boom
	})

	_, err := r.Construct(Spec{ClassName: "a.b.C"}, nil)
	if err != boom {
		t.Fatalf("constructor error should pass through unmodified, got %v", err)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r := NewResolver()
	r.Register("a.b.C", func(args map[string]any) (any, error) { return nil, nil })

	first, err := r.Resolve("a.b.C")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	second, err := r.Resolve("a.b.C")
	if err != nil {
		t.Fatalf("Resolve again: %v", err)
	}
	if first == nil || second == nil {
		t.Fatalf("Resolve returned nil constructor")
	}
}
