package assoc

// Storage is the positional pair store the entry protocol operates on. It is
// satisfied by *List and by any other sequence that can append at the end and
// swap-remove in the middle, such as a ring buffer of pairs.
//
// Pointers returned by At and Last stay valid until the store grows or
// shrinks.
type Storage[K, V any] interface {
	// Size returns the number of stored pairs.
	Size() int
	// At returns a pointer to the pair at position i.
	At(i int) *Pair[K, V]
	// Append adds the pair at the end.
	Append(p Pair[K, V])
	// Last returns a pointer to the most recently appended pair.
	Last() *Pair[K, V]
	// SwapRemove removes the pair at position i by moving the last pair
	// into its slot and returns it.
	SwapRemove(i int) Pair[K, V]
}

var _ Storage[string, int] = &List[string, int]{}

// IndexIn returns the position of the first pair stored under the given key,
// or -1 if there is none.
func IndexIn[K, V any](store Storage[K, V], key K, eq Equal[K]) int {
	for i, n := 0, store.Size(); i < n; i++ {
		if eq(key, store.At(i).Key) {
			return i
		}
	}
	return -1
}

// GetIn returns the value of the first pair stored under the given key.
func GetIn[K, V any](store Storage[K, V], key K, eq Equal[K]) (V, bool) {
	if i := IndexIn(store, key, eq); i >= 0 {
		return store.At(i).Value, true
	}
	var zero V
	return zero, false
}

// EntryIn looks up the given key with a single scan and returns an Entry
// operating on the store. It generalizes the Entry method of List to any
// Storage; the same usage rules apply.
func EntryIn[K, V any](store Storage[K, V], key K, eq Equal[K]) Entry[K, V] {
	if i := IndexIn(store, key, eq); i >= 0 {
		return Entry[K, V]{occupied: &OccupiedEntry[K, V]{store: store, key: key, index: i}}
	}
	return Entry[K, V]{vacant: &VacantEntry[K, V]{store: store, key: key}}
}
