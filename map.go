package assoc

// Map is a List whose keys are comparable and are always compared with ==.
// It offers the same operations without the equality argument. Note that ==
// on floating-point keys is not reflexive for NaN, so a NaN key behaves like
// a key equal to nothing, exactly as in List.
type Map[K comparable, V any] []Pair[K, V]

// NewMap creates an empty Map with room for the given number of pairs.
func NewMap[K comparable, V any](capacity int) Map[K, V] {
	return make(Map[K, V], 0, capacity)
}

// FromMap copies the pairs of a builtin map into a Map. The order of the
// pairs is the iteration order of m and therefore unspecified. The reverse
// direction is maps.Collect(m.Iter).
func FromMap[K comparable, V any](m map[K]V) Map[K, V] {
	r := NewMap[K, V](len(m))
	for k, v := range m {
		r = append(r, Pair[K, V]{Key: k, Value: v})
	}
	return r
}

func (m Map[K, V]) list() List[K, V] {
	return List[K, V](m)
}

// Get returns the value of the first pair stored under the given key.
func (m Map[K, V]) Get(key K) (V, bool) {
	return m.list().Get(key, Eq[K])
}

// Find returns a pointer to the first pair stored under the given key, or
// nil if there is none.
func (m Map[K, V]) Find(key K) *Pair[K, V] {
	return m.list().Find(key, Eq[K])
}

// Contains reports whether a pair is stored under the given key.
func (m Map[K, V]) Contains(key K) bool {
	return m.list().Contains(key, Eq[K])
}

// Index returns the position of the first pair stored under the given key,
// or -1 if there is none.
func (m Map[K, V]) Index(key K) int {
	return m.list().Index(key, Eq[K])
}

// Put stores the value under the given key. If the key is already present
// the first pair keeps its position and the previous value is returned,
// otherwise the pair is appended at the end.
func (m *Map[K, V]) Put(key K, value V) (previous V, replaced bool) {
	return (*List[K, V])(m).Put(key, value, Eq[K])
}

// Remove removes the first pair stored under the given key and returns its
// value. The last pair is swapped into the vacated slot, so the order of the
// remaining pairs changes.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	return (*List[K, V])(m).Remove(key, Eq[K])
}

// Entry looks up the given key with a single scan and returns an Entry for
// it. The map must not be used in any other way while the Entry is in use.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	return (*List[K, V])(m).Entry(key, Eq[K])
}

// Size returns the number of stored pairs, counting shadowed duplicates.
func (m Map[K, V]) Size() int {
	return len(m)
}

// SwapRemove removes the pair at position i by moving the last pair into its
// slot and returns it.
func (m *Map[K, V]) SwapRemove(i int) Pair[K, V] {
	return (*List[K, V])(m).SwapRemove(i)
}

// Iter iterates over the pairs in map order. It can be used in a range
// statement; every range starts a fresh pass.
func (m Map[K, V]) Iter(yield func(key K, value V) bool) {
	m.list().Iter(yield)
}

// IterMut iterates over the keys and pointers to the values, allowing the
// values to be updated in place.
func (m Map[K, V]) IterMut(yield func(key K, value *V) bool) {
	m.list().IterMut(yield)
}

// Keys iterates over the keys in map order.
func (m Map[K, V]) Keys(yield func(key K) bool) {
	m.list().Keys(yield)
}

// Values iterates over the values in map order.
func (m Map[K, V]) Values(yield func(value V) bool) {
	m.list().Values(yield)
}

// ValuesMut iterates over pointers to the values, allowing them to be
// updated during iteration.
func (m Map[K, V]) ValuesMut(yield func(value *V) bool) {
	m.list().ValuesMut(yield)
}

func (m Map[K, V]) String() string {
	return m.list().String()
}
