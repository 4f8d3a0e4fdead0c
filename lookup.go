package assoc

// The functions in this file work on any pair slice and allow the query to
// be of a different type than the stored keys. Querying a list keyed by
// owned strings with a byte slice, for example, only needs an equality
// relation between the two forms:
//
//	i := assoc.IndexFunc(l, queryBytes, func(q []byte, k string) bool {
//		return string(q) == k
//	})

// IndexFunc returns the position of the first pair satisfying
// eq(query, pair.Key), or -1 if there is none.
func IndexFunc[S ~[]Pair[K, V], K, V, Q any](s S, query Q, eq func(query Q, key K) bool) int {
	for i := range s {
		if eq(query, s[i].Key) {
			return i
		}
	}
	return -1
}

// GetFunc returns the value of the first pair satisfying eq(query, pair.Key).
func GetFunc[S ~[]Pair[K, V], K, V, Q any](s S, query Q, eq func(query Q, key K) bool) (V, bool) {
	if i := IndexFunc(s, query, eq); i >= 0 {
		return s[i].Value, true
	}
	var zero V
	return zero, false
}

// FindFunc returns a pointer to the first pair satisfying eq(query,
// pair.Key), or nil if there is none.
func FindFunc[S ~[]Pair[K, V], K, V, Q any](s S, query Q, eq func(query Q, key K) bool) *Pair[K, V] {
	if i := IndexFunc(s, query, eq); i >= 0 {
		return &s[i]
	}
	return nil
}

// ContainsFunc reports whether any pair satisfies eq(query, pair.Key).
func ContainsFunc[S ~[]Pair[K, V], K, V, Q any](s S, query Q, eq func(query Q, key K) bool) bool {
	return IndexFunc(s, query, eq) >= 0
}

// RemoveFunc swap-removes the first pair satisfying eq(query, pair.Key) and
// returns its value.
func RemoveFunc[S ~[]Pair[K, V], K, V, Q any](s *S, query Q, eq func(query Q, key K) bool) (V, bool) {
	if i := IndexFunc(*s, query, eq); i >= 0 {
		return swapRemove(s, i).Value, true
	}
	var zero V
	return zero, false
}

// swapRemove moves the last pair into slot i and shrinks the slice by one.
// The vacated slot is zeroed so the backing array drops its references.
func swapRemove[S ~[]Pair[K, V], K, V any](s *S, i int) Pair[K, V] {
	sl := *s
	p := sl[i]
	last := len(sl) - 1
	sl[i] = sl[last]
	var zero Pair[K, V]
	sl[last] = zero
	*s = sl[:last]
	return p
}
