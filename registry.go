package sift

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/zoobzio/sift/keyset"
)

// DefaultName is the built-in identity view present in every registry.
const DefaultName = "_default"

// Registry maps view names to serializer specs and tracks the current
// default view. One registry is owned per data-model definition; pass it
// by reference to wherever projection is invoked.
//
// Mutation (Add, SetDefault, Remove) takes a write lock. Projection only
// reads and is safe to run concurrently against a stable mapping.
type Registry struct {
	mu          sync.RWMutex
	serializers map[string]Spec
	defaultName string
}

// New creates a registry holding only the built-in "_default" identity
// view, which is also the current default.
func New() *Registry {
	return &Registry{
		serializers: map[string]Spec{
			DefaultName: &FieldSpec{},
		},
		defaultName: DefaultName,
	}
}

// Add registers spec under name, overwriting any existing entry. The
// current default is not affected. Returns ErrInvalidParameter when name
// is empty or spec is nil.
func (r *Registry) Add(name string, spec Spec) error {
	if name == "" {
		return newParameterError("name", "is required and must be a non-empty string")
	}
	if isNilSpec(spec) {
		return newParameterError("spec", "is required and must be a FieldSpec or PickList")
	}

	r.mu.Lock()
	r.serializers[name] = spec
	r.mu.Unlock()

	emitViewAdded(context.Background(), name)
	return nil
}

// SetDefault makes name the current default view. When name is not
// registered the call is a silent no-op; callers that care can compare
// Default() afterwards. Returns ErrInvalidParameter when name is empty.
func (r *Registry) SetDefault(name string) error {
	if name == "" {
		return newParameterError("name", "is required and must be a non-empty string")
	}

	r.mu.Lock()
	changed := r.setDefaultLocked(name)
	r.mu.Unlock()

	if changed {
		emitDefaultChanged(context.Background(), name)
	}
	return nil
}

// setDefaultLocked repoints the default when name resolves to a
// registered view. Callers hold r.mu.
func (r *Registry) setDefaultLocked(name string) bool {
	if _, ok := r.serializers[name]; !ok {
		return false
	}
	r.defaultName = name
	return true
}

// Remove deletes the named view if present; removing an unregistered
// name is a no-op. When the removed name was the current default, the
// default is reset through the SetDefault path with "_default".
//
// Removing "_default" itself is permitted and leaves the registry
// without a usable default: the reset silently no-ops and subsequent
// default projections fail with ErrInvalidParameter at spec resolution.
// Returns ErrInvalidParameter when name is empty.
func (r *Registry) Remove(name string) error {
	if name == "" {
		return newParameterError("name", "is required and must be a non-empty string")
	}

	r.mu.Lock()
	_, existed := r.serializers[name]
	delete(r.serializers, name)
	if name == r.defaultName {
		r.setDefaultLocked(DefaultName)
	}
	r.mu.Unlock()

	if existed {
		emitViewRemoved(context.Background(), name)
	}
	return nil
}

// Default returns the current default view name.
func (r *Registry) Default() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultName
}

// Names returns the registered view names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.serializers))
	for name := range r.serializers {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// SerializeOne projects a single record through the selected view. A nil
// selector means the current default view. The input record is never
// mutated; all copies are shallow.
//
// A stale name (selector naming a view that is not registered) is
// rejected with ErrInvalidParameter when the resolved spec turns out
// missing, not before.
func (r *Registry) SerializeOne(record Record, sel Selector) (Record, error) {
	start := time.Now()

	spec, view, err := r.resolve(sel)
	if err != nil {
		emitSerializeComplete(context.Background(), view, 0, time.Since(start), err)
		return nil, err
	}

	out := project(record, spec)
	emitSerializeComplete(context.Background(), view, len(out), time.Since(start), nil)
	return out, nil
}

// SerializeMany projects a batch of entities through the selected view.
// Entities that do not implement Serializable are silently dropped; the
// survivors' own Serialize is invoked in order, and relative order is
// preserved in the result. Returns ErrInvalidParameter for a nil slice.
func (r *Registry) SerializeMany(records []any, sel Selector) ([]Record, error) {
	if records == nil {
		return nil, newParameterError("records", "is required and must be a slice")
	}

	out := make([]Record, 0, len(records))
	for _, entity := range records {
		s, ok := entity.(Serializable)
		if !ok {
			continue
		}
		rec, err := s.Serialize(sel)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	emitSerializeMany(context.Background(), len(records), len(out))
	return out, nil
}

// resolve turns a selector into a concrete spec. Name lookups may miss
// (stale or never-registered names, including a dangling default); the
// miss surfaces as an invalid resolved spec rather than a distinct
// lookup error.
func (r *Registry) resolve(sel Selector) (Spec, string, error) {
	r.mu.RLock()
	if sel == nil {
		sel = byName(r.defaultName)
	}

	var (
		spec Spec
		view string
	)
	switch s := sel.(type) {
	case byName:
		view = string(s)
		spec = r.serializers[view]
	case inline:
		view = "(inline)"
		spec = s.spec
	}
	r.mu.RUnlock()

	if isNilSpec(spec) {
		return nil, view, newParameterError("spec", "is required and must be a FieldSpec or PickList")
	}
	return spec, view, nil
}

// isNilSpec reports whether spec is absent: a nil interface or a typed
// nil *FieldSpec. A nil PickList is a valid (empty) pick list.
func isNilSpec(spec Spec) bool {
	if spec == nil {
		return true
	}
	fs, ok := spec.(*FieldSpec)
	return ok && fs == nil
}

// project applies spec to record. The result always has a distinct
// container identity from record.
func project(record Record, spec Spec) Record {
	switch s := spec.(type) {
	case PickList:
		return keyset.Pick(record, s)
	case *FieldSpec:
		out := keyset.Clone(record)
		if s.Include != nil {
			out = keyset.Pick(record, s.Include)
		}
		if s.Exclude != nil {
			out = keyset.Omit(out, s.Exclude)
		}
		if s.Modify != nil {
			out = s.Modify(out, record)
		}
		return out
	}
	return nil
}
