// Package assoc treats a slice of key-value pairs as a map.
//
// The only requirement on the keys is an equality relation. There is no
// hashing and no ordering, so every lookup is a linear scan that stops at the
// first pair whose key is equal to the queried key. For maps that grow to
// more than a few tens of entries the scans start to dominate and one of the
// hash based maps is the better choice. Below that size the flat pair slice
// is compact, cheap to create and keeps the insertion order.
//
// The slice belongs to the caller. It can be created with a literal, filled
// with Append and inspected with plain slice operations. Duplicate keys are
// tolerated: all operations only ever see the first occurrence, later ones
// are shadowed until the first one is removed. Removal swaps the last pair
// into the vacated slot, so it does not preserve the order of the remaining
// pairs.
//
// List places no constraint on the key type and takes the equality relation
// as an argument. Map is the same thing for comparable keys using ==. Note
// that == is not reflexive for floating point NaN values, keys containing
// NaN can therefore never be updated, only accumulated.
//
// None of the types in this package are safe for concurrent use.
package assoc

import (
	"bytes"
	"fmt"
)

// Pair is a single key-value pair of an association list.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Equal is the equality relation used to compare keys. It is called with the
// queried key first and the stored key second.
type Equal[K any] func(a, b K) bool

// Eq compares two keys with == and is the Equal relation used by Map.
func Eq[K comparable](a, b K) bool {
	return a == b
}

// List is an association list: a pair slice used as a map. The zero value is
// an empty list ready for use. All methods take the key equality relation as
// their last argument; see Map for the == based variant.
type List[K, V any] []Pair[K, V]

// New creates an empty List with the given capacity.
func New[K, V any](capacity int) List[K, V] {
	return make(List[K, V], 0, capacity)
}

// Index returns the position of the first pair whose key equals the given
// key, or -1 if there is none.
func (l List[K, V]) Index(key K, eq Equal[K]) int {
	for i := range l {
		if eq(key, l[i].Key) {
			return i
		}
	}
	return -1
}

// Get returns the value stored under the given key.
func (l List[K, V]) Get(key K, eq Equal[K]) (V, bool) {
	if i := l.Index(key, eq); i >= 0 {
		return l[i].Value, true
	}
	var zero V
	return zero, false
}

// Find returns a pointer to the first pair whose key equals the given key,
// or nil if there is none. The pointer allows updating the value in place.
// It remains valid until the list grows or shrinks.
func (l List[K, V]) Find(key K, eq Equal[K]) *Pair[K, V] {
	if i := l.Index(key, eq); i >= 0 {
		return &l[i]
	}
	return nil
}

// Contains reports whether the list contains the given key.
func (l List[K, V]) Contains(key K, eq Equal[K]) bool {
	return l.Index(key, eq) >= 0
}

// Put stores the value under the given key. If the key is already present
// the value of its first occurrence is replaced and the old value is
// returned, otherwise the pair is appended at the end.
func (l *List[K, V]) Put(key K, value V, eq Equal[K]) (previous V, replaced bool) {
	e := l.Entry(key, eq)
	if oc, ok := e.Occupied(); ok {
		return oc.Swap(value), true
	}
	e.OrInsert(value)
	var zero V
	return zero, false
}

// Remove removes the first pair stored under the given key and returns its
// value. The last pair is swapped into the vacated slot, so the order of the
// remaining pairs changes.
func (l *List[K, V]) Remove(key K, eq Equal[K]) (V, bool) {
	if oc, ok := l.Entry(key, eq).Occupied(); ok {
		return oc.Remove(), true
	}
	var zero V
	return zero, false
}

// Entry looks up the given key with a single scan and returns an Entry for
// it. The list must not be used in any other way while the Entry is in use.
func (l *List[K, V]) Entry(key K, eq Equal[K]) Entry[K, V] {
	if i := l.Index(key, eq); i >= 0 {
		return Entry[K, V]{occupied: &OccupiedEntry[K, V]{store: l, key: key, index: i}}
	}
	return Entry[K, V]{vacant: &VacantEntry[K, V]{store: l, key: key}}
}

// Size returns the number of stored pairs, counting shadowed duplicates.
func (l List[K, V]) Size() int {
	return len(l)
}

// Append adds the pair at the end without checking for an existing key. A
// pair appended behind an equal key is shadowed; use Put to replace instead.
func (l *List[K, V]) Append(p Pair[K, V]) {
	*l = append(*l, p)
}

// At returns a pointer to the pair at position i.
func (l List[K, V]) At(i int) *Pair[K, V] {
	return &l[i]
}

// Last returns a pointer to the most recently appended pair.
func (l List[K, V]) Last() *Pair[K, V] {
	return &l[len(l)-1]
}

// SwapRemove removes the pair at position i by moving the last pair into its
// slot and returns it. The vacated slot is cleared so the shrunken list does
// not keep references alive.
func (l *List[K, V]) SwapRemove(i int) Pair[K, V] {
	return swapRemove(l, i)
}

// Iter iterates over the pairs in list order. It can be used in a range
// statement; every range starts a fresh pass.
func (l List[K, V]) Iter(yield func(key K, value V) bool) {
	for _, p := range l {
		if !yield(p.Key, p.Value) {
			return
		}
	}
}

// IterMut iterates over the keys and pointers to the values, allowing the
// values to be updated during iteration. The list itself must not grow or
// shrink while iterating.
func (l List[K, V]) IterMut(yield func(key K, value *V) bool) {
	for i := range l {
		if !yield(l[i].Key, &l[i].Value) {
			return
		}
	}
}

// Keys iterates over the keys in list order.
func (l List[K, V]) Keys(yield func(key K) bool) {
	for _, p := range l {
		if !yield(p.Key) {
			return
		}
	}
}

// Values iterates over the values in list order.
func (l List[K, V]) Values(yield func(value V) bool) {
	for _, p := range l {
		if !yield(p.Value) {
			return
		}
	}
}

// ValuesMut iterates over pointers to the values, allowing them to be
// updated during iteration. The list itself must not grow or shrink while
// iterating.
func (l List[K, V]) ValuesMut(yield func(value *V) bool) {
	for i := range l {
		if !yield(&l[i].Value) {
			return
		}
	}
}

func (l List[K, V]) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, p := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v:%v", p.Key, p.Value)
	}
	b.WriteString("}")
	return b.String()
}
