package opref

import (
	"cmp"
	"iter"
	"slices"
)

// Registry is an immutable set of verified operator keys.
//
// A Registry is never mutated after [New] returns, so it is safe for
// concurrent use without locking.
type Registry struct {
	set    map[string]Key
	keys   []Key // sorted by name, then version
	report Report
}

// New builds a registry from raw entries.
//
// Entries are normalized with [Normalize]; the repairs applied are available
// through [Registry.Report]. A malformed entry fails construction.
func New(entries []string) (*Registry, error) {
	keys, report, err := Normalize(entries)
	if err != nil {
		return nil, err
	}
	return fromKeys(keys, report), nil
}

// MustNew is like New but panics on error. It is meant for static tables.
func MustNew(entries []string) *Registry {
	r, err := New(entries)
	if err != nil {
		panic("opref: " + err.Error())
	}
	return r
}

func fromKeys(keys []Key, report Report) *Registry {
	r := &Registry{
		set:    make(map[string]Key, len(keys)),
		keys:   slices.Clone(keys),
		report: report,
	}
	for _, k := range keys {
		r.set[k.String()] = k
	}
	slices.SortFunc(r.keys, func(a, b Key) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Version, b.Version))
	})
	return r
}

// Contains reports whether key is exactly present. No normalization or
// case-folding is applied; unknown keys simply return false.
func (r *Registry) Contains(key string) bool {
	_, ok := r.set[key]
	return ok
}

// ContainsKey reports whether k is present.
func (r *Registry) ContainsKey(k Key) bool {
	return r.Contains(k.String())
}

// All yields every registered identifier exactly once.
//
// The order is unspecified. The sequence can be ranged over any number of times.
func (r *Registry) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range r.keys {
			if !yield(k.String()) {
				return
			}
		}
	}
}

// Keys yields every registered key exactly once.
func (r *Registry) Keys() iter.Seq[Key] {
	return slices.Values(r.keys)
}

// Len returns the number of distinct keys.
func (r *Registry) Len() int {
	return len(r.keys)
}

// Report returns the repairs applied while building the registry.
func (r *Registry) Report() Report {
	return Report{Repairs: slices.Clone(r.report.Repairs)}
}
