// Package keyset provides shallow key-set operations on map-shaped
// records: restrict to a key set, drop a key set, shallow copy. All
// functions return a fresh map and never mutate their input.
package keyset

// Pick returns a new map holding exactly the entries of m whose keys
// appear in keys. Keys absent from m are ignored.
func Pick[M ~map[K]V, K comparable, V any](m M, keys []K) M {
	out := make(M, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a new map holding the entries of m whose keys do not
// appear in keys.
func Omit[M ~map[K]V, K comparable, V any](m M, keys []K) M {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(M, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// Clone returns a shallow copy of m. Values are copied by assignment;
// reference values are shared with the original.
func Clone[M ~map[K]V, K comparable, V any](m M) M {
	out := make(M, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
