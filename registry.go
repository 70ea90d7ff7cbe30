package yafwi

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	"fortio.org/safecast"
	"golang.org/x/sync/singleflight"

	"github.com/buhanec/yafwi/internal/trace"
	"github.com/buhanec/yafwi/internal/types"
)

// Registry hands out one *Type per descriptor. It is safe for concurrent
// use. All registries share the predefined types.
type Registry struct {
	interner *types.Interner
	group    singleflight.Group

	mu      sync.RWMutex
	byID    []*Type // indexed by TypeID; nil where not yet built
	aliases map[string]*Type
	tracer  trace.Tracer
}

// Option configures a Registry.
type Option func(*Registry)

// WithTracer attaches a tracer that records type generation and lookups.
func WithTracer(t trace.Tracer) Option {
	return func(r *Registry) {
		if t != nil {
			r.tracer = t
		}
	}
}

// NewRegistry returns a registry seeded with the predefined types and aliases.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		interner: types.NewInterner(),
		aliases:  make(map[string]*Type, len(builtinAliases)),
		tracer:   trace.Nop,
	}
	for _, t := range Predefined() {
		id, _ := r.interner.Find(t.desc)
		r.store(id, t)
	}
	for name, t := range builtinAliases {
		r.aliases[name] = t
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// store places t at id. Callers hold the write lock or own r exclusively.
func (r *Registry) store(id types.TypeID, t *Type) {
	if int(id) >= len(r.byID) {
		r.byID = slices.Grow(r.byID, int(id)+1-len(r.byID))
		r.byID = r.byID[:int(id)+1]
	}
	r.byID[id] = t
}

// SetTracer replaces the registry's tracer; nil restores the no-op tracer.
func (r *Registry) SetTracer(t trace.Tracer) {
	if t == nil {
		t = trace.Nop
	}
	r.mu.Lock()
	r.tracer = t
	r.mu.Unlock()
}

func (r *Registry) currentTracer() trace.Tracer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tracer
}

func (r *Registry) cached(d types.Descriptor) (*Type, bool) {
	id, ok := r.interner.Find(d)
	if !ok {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(id) < len(r.byID) && r.byID[id] != nil {
		return r.byID[id], true
	}
	return nil, false
}

// Generate returns the type of the given width and signedness, building it
// on first request. Repeated calls return the same *Type.
func (r *Registry) Generate(width uint, unsigned bool) (*Type, error) {
	w, err := safecast.Conv[uint32](width)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %w", ErrInvalidWidth, width, err)
	}
	d := types.Make(types.Width(w), unsigned)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return r.generate(d)
}

func (r *Registry) generate(d types.Descriptor) (*Type, error) {
	if t, ok := r.cached(d); ok {
		return t, nil
	}

	v, err, shared := r.group.Do(d.String(), func() (any, error) {
		if t, ok := r.cached(d); ok {
			return t, nil
		}
		span := trace.Begin(r.currentTracer(), trace.ScopeRegistry, "generate", 0)
		id, _ := r.interner.Intern(d)
		if id == types.NoTypeID {
			span.End("invalid")
			return nil, fmt.Errorf("%w: %s", ErrInvalidWidth, d)
		}
		t := newType(d, id)

		r.mu.Lock()
		if prev := r.lookupLocked(id); prev != nil {
			t = prev
		} else {
			r.store(id, t)
		}
		r.mu.Unlock()

		span.WithExtra("width", strconv.FormatUint(uint64(d.Width), 10)).
			WithExtra("unsigned", strconv.FormatBool(d.Unsigned())).
			End(d.String())
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		trace.Point(r.currentTracer(), trace.ScopeRegistry, "generate.shared", d.String())
	}
	return v.(*Type), nil
}

func (r *Registry) lookupLocked(id types.TypeID) *Type {
	if int(id) < len(r.byID) {
		return r.byID[id]
	}
	return nil
}

// MustGenerate is like Generate but panics on an invalid width.
func (r *Registry) MustGenerate(width uint, unsigned bool) *Type {
	t, err := r.Generate(width, unsigned)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup resolves an alias ("byte", "int_") or a canonical name ("int24"),
// generating canonical types on demand.
func (r *Registry) Lookup(name string) (*Type, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	r.mu.RLock()
	t, ok := r.aliases[key]
	r.mu.RUnlock()
	if ok {
		return t, true
	}
	d, ok := types.ParseName(key)
	if !ok {
		trace.Point(r.currentTracer(), trace.ScopeRegistry, "lookup.miss", name)
		return nil, false
	}
	t, err := r.generate(d)
	if err != nil {
		return nil, false
	}
	return t, true
}

// Alias binds name to t. Canonical names cannot be rebound, and an existing
// alias may only be re-registered for the same type.
func (r *Registry) Alias(name string, t *Type) error {
	t = t.concrete()
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return fmt.Errorf("%w: empty alias", ErrAliasConflict)
	}
	if d, ok := types.ParseName(key); ok {
		if d == t.desc {
			return nil
		}
		return fmt.Errorf("%w: %q is the canonical name of %s", ErrAliasConflict, name, d)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.aliases[key]; ok && prev != t {
		return fmt.Errorf("%w: %q is %s", ErrAliasConflict, name, prev)
	}
	r.aliases[key] = t
	return nil
}

// Aliases returns a copy of the alias table.
func (r *Registry) Aliases() map[string]*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.aliases)
}

// Types returns every type built so far, in generation order.
func (r *Registry) Types() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Type, 0, len(r.byID))
	for _, t := range r.byID {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by Generate and Lookup.
func Default() *Registry {
	return defaultRegistry
}

// Generate returns the type of the given width and signedness from the
// default registry. Predefined widths resolve to the predefined types.
func Generate(width uint, unsigned bool) (*Type, error) {
	return defaultRegistry.Generate(width, unsigned)
}

// MustGenerate is like Generate but panics on an invalid width.
func MustGenerate(width uint, unsigned bool) *Type {
	return defaultRegistry.MustGenerate(width, unsigned)
}

// Lookup resolves a type name in the default registry.
func Lookup(name string) (*Type, bool) {
	return defaultRegistry.Lookup(name)
}
