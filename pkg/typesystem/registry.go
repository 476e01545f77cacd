package typesystem

import (
	"fmt"
	"strings"
	"sync"

	"fortio.org/safecast"
	"golang.org/x/sync/singleflight"
)

// Instance is the canonical runtime handle for a generic origin applied to
// concrete type arguments. For a given registry, Instantiate returns the same
// *Instance pointer for every equal (origin, args) request, so downstream
// identity-based dispatch can rely on O(1) pointer comparison.
type Instance struct {
	Origin *Class
	Args   []Type
	id     uint32
}

// ID returns the registry-local numeric identity of the instantiation.
func (ins *Instance) ID() uint32 { return ins.id }

// Type returns the instantiation as a type expression.
func (ins *Instance) Type() TApp {
	return TApp{Origin: ins.Origin, Args: ins.Args}
}

func (ins *Instance) String() string { return ins.Type().String() }

// Registry interns generic instantiations. It is the only shared mutable
// state in the engine; all other operations are pure functions over immutable
// inputs. Concurrent Instantiate calls for the same key are linearized
// through a singleflight group so at most one instance is ever created and
// every caller observes the same identity.
type Registry struct {
	mu    sync.RWMutex
	index map[string]*Instance
	group singleflight.Group
}

// NewRegistry constructs an empty instantiation registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]*Instance, 16)}
}

// Instantiate returns the canonical instance for (origin, args), creating it
// on first request. The argument count is validated against the origin's
// declared arity before any registry state is touched.
func (r *Registry) Instantiate(origin *Class, args []Type) (*Instance, error) {
	if origin == nil {
		return nil, fmt.Errorf("cannot instantiate nil origin")
	}
	if len(args) != origin.Arity {
		return nil, &ArityMismatchError{Class: origin, Got: len(args)}
	}

	key := instanceKey(origin, args)

	r.mu.RLock()
	ins, ok := r.index[key]
	r.mu.RUnlock()
	if ok {
		return ins, nil
	}

	v, _, _ := r.group.Do(key, func() (any, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if ins, ok := r.index[key]; ok {
			return ins, nil
		}
		id, err := safecast.Conv[uint32](len(r.index) + 1)
		if err != nil {
			panic(fmt.Errorf("instance id overflow: %w", err))
		}
		ins := &Instance{
			Origin: origin,
			Args:   append([]Type(nil), args...),
			id:     id,
		}
		r.index[key] = ins
		return ins, nil
	})
	return v.(*Instance), nil
}

// Len returns the number of live instantiations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.index)
}

// Reset drops every interned instantiation. Intended for owner teardown;
// instances created afterwards are observably equivalent but not identical
// to pre-reset ones.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = make(map[string]*Instance, 16)
}

func instanceKey(origin *Class, args []Type) string {
	var b strings.Builder
	b.WriteString(origin.Name)
	for _, arg := range args {
		b.WriteByte('<')
		b.WriteString(arg.String())
	}
	return b.String()
}

// DefaultRegistry serves container constructors that do not own a registry of
// their own. Its lifecycle is the process lifecycle.
var DefaultRegistry = NewRegistry()

// Instantiate interns (origin, args) in the default registry.
func Instantiate(origin *Class, args []Type) (*Instance, error) {
	return DefaultRegistry.Instantiate(origin, args)
}
