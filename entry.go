package assoc

// Entry is a view into the slot of a single key, either occupied or vacant.
// It is created by a single scan and all further operations act directly on
// the found position or append at the end, without scanning again. A typical
// use is counting:
//
//	l.Entry(word, assoc.Eq).AndModify(func(n *int) { *n++ }).OrInsert(1)
//
// An Entry holds on to the backing store, which therefore must not be used
// in any other way before the Entry is dropped. An Entry is short-lived; it
// must not be kept across other operations on the same store.
type Entry[K, V any] struct {
	occupied *OccupiedEntry[K, V]
	vacant   *VacantEntry[K, V]
}

// Occupied returns the occupied view of the entry if the key was found.
func (e Entry[K, V]) Occupied() (*OccupiedEntry[K, V], bool) {
	return e.occupied, e.occupied != nil
}

// Vacant returns the vacant view of the entry if the key was not found.
func (e Entry[K, V]) Vacant() (*VacantEntry[K, V], bool) {
	return e.vacant, e.vacant != nil
}

// Key returns the queried key.
func (e Entry[K, V]) Key() K {
	if e.occupied != nil {
		return e.occupied.Key()
	}
	return e.mustVacant().Key()
}

// OrInsert appends the pair (key, value) if the entry is vacant. It returns
// a pointer to the stored value, the already present one if the entry is
// occupied. The pointer remains valid until the store grows or shrinks.
func (e Entry[K, V]) OrInsert(value V) *V {
	if e.occupied != nil {
		return &e.occupied.pair().Value
	}
	return e.mustVacant().Insert(value)
}

// OrInsertWith is like OrInsert but creates the value to insert only if the
// entry is vacant.
func (e Entry[K, V]) OrInsertWith(create func() V) *V {
	if e.occupied != nil {
		return &e.occupied.pair().Value
	}
	return e.mustVacant().Insert(create())
}

// OrInsertWithKey is like OrInsertWith but passes the queried key to the
// create function.
func (e Entry[K, V]) OrInsertWithKey(create func(key K) V) *V {
	if e.occupied != nil {
		return &e.occupied.pair().Value
	}
	vc := e.mustVacant()
	return vc.Insert(create(vc.key))
}

// OrZero appends the pair (key, zero value) if the entry is vacant and
// returns a pointer to the stored value.
func (e Entry[K, V]) OrZero() *V {
	if e.occupied != nil {
		return &e.occupied.pair().Value
	}
	var zero V
	return e.mustVacant().Insert(zero)
}

// AndModify calls modify with a pointer to the stored value if the entry is
// occupied and returns the entry again. A vacant entry is returned unchanged
// and modify is not called, so AndModify never inserts.
func (e Entry[K, V]) AndModify(modify func(value *V)) Entry[K, V] {
	if e.occupied != nil {
		modify(&e.occupied.pair().Value)
		return e
	}
	e.mustVacant()
	return e
}

func (e Entry[K, V]) mustVacant() *VacantEntry[K, V] {
	if e.vacant == nil {
		panic("assoc: use of zero Entry")
	}
	return e.vacant
}

// OccupiedEntry is the view of an Entry whose key was found. It gives access
// to the stored pair without scanning again.
type OccupiedEntry[K, V any] struct {
	store Storage[K, V]
	key   K
	index int
}

// Key returns the queried key. The equal key stored in the pair may differ
// from it if the equality relation considers non-identical keys equal.
func (e *OccupiedEntry[K, V]) Key() K {
	return e.key
}

// Value returns a copy of the stored value.
func (e *OccupiedEntry[K, V]) Value() V {
	return e.pair().Value
}

// Pair returns a pointer to the stored pair, allowing the value to be
// updated in place. Updating the key changes what later lookups see.
func (e *OccupiedEntry[K, V]) Pair() *Pair[K, V] {
	return e.pair()
}

// Swap stores the given value in the pair and returns the previous value.
func (e *OccupiedEntry[K, V]) Swap(value V) V {
	p := e.pair()
	previous := p.Value
	p.Value = value
	return previous
}

// Remove swap-removes the pair from the store and returns its value. The
// entry is consumed; any further use panics.
func (e *OccupiedEntry[K, V]) Remove() V {
	return e.RemovePair().Value
}

// RemovePair swap-removes the pair from the store and returns it. The entry
// is consumed; any further use panics.
func (e *OccupiedEntry[K, V]) RemovePair() Pair[K, V] {
	e.pair() // re-validate before removing
	p := e.store.SwapRemove(e.index)
	e.index = -1
	return p
}

// pair re-validates the stored position on every access. The position can
// only become invalid if the store was touched while the entry was alive,
// or if the entry is used after Remove.
func (e *OccupiedEntry[K, V]) pair() *Pair[K, V] {
	if e.index < 0 || e.index >= e.store.Size() {
		panic("assoc: entry is no longer valid")
	}
	return e.store.At(e.index)
}

// VacantEntry is the view of an Entry whose key was not found. The key is
// kept so that inserting does not need it again.
type VacantEntry[K, V any] struct {
	store Storage[K, V]
	key   K
	done  bool
}

// Key returns the queried key.
func (e *VacantEntry[K, V]) Key() K {
	return e.key
}

// Insert appends the pair (key, value) at the end of the store and returns
// a pointer to the stored value. The entry is consumed; inserting twice
// panics.
func (e *VacantEntry[K, V]) Insert(value V) *V {
	if e.done {
		panic("assoc: insert on a consumed entry")
	}
	e.done = true
	e.store.Append(Pair[K, V]{Key: e.key, Value: value})
	return &e.store.Last().Value
}
