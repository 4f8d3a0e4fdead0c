// Package deque implements a double-ended queue backed by a ring buffer.
// Items are addressable by position, so a deque of pairs can serve as the
// backing store of the assoc entry protocol.
package deque

// Deque is a double-ended queue. The zero value is an empty deque ready for
// use. A Deque must not be copied after first use.
type Deque[T any] struct {
	buf  []T
	head int
	size int
}

// New creates an empty deque with room for the given number of items.
func New[T any](capacity int) *Deque[T] {
	var buf []T
	if capacity > 0 {
		buf = make([]T, capacity)
	}
	return &Deque[T]{buf: buf}
}

// Size returns the number of stored items.
func (d *Deque[T]) Size() int {
	return d.size
}

func (d *Deque[T]) pos(i int) int {
	return (d.head + i) % len(d.buf)
}

// At returns a pointer to the item at position i, counted from the front.
// The pointer stays valid until the deque grows or shrinks.
func (d *Deque[T]) At(i int) *T {
	if i < 0 || i >= d.size {
		panic("deque: index out of range")
	}
	return &d.buf[d.pos(i)]
}

// Last returns a pointer to the item at the back.
func (d *Deque[T]) Last() *T {
	return d.At(d.size - 1)
}

// Append adds the item at the back.
func (d *Deque[T]) Append(v T) {
	d.grow()
	d.buf[d.pos(d.size)] = v
	d.size++
}

// PushFront adds the item at the front.
func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head--
	if d.head < 0 {
		d.head = len(d.buf) - 1
	}
	d.buf[d.head] = v
	d.size++
}

// PopFront removes and returns the item at the front.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = d.pos(1)
	d.size--
	return v, true
}

// PopBack removes and returns the item at the back.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	i := d.pos(d.size - 1)
	v := d.buf[i]
	d.buf[i] = zero
	d.size--
	return v, true
}

// SwapRemove removes the item at position i by moving the item at the back
// into its slot and returns it. The order of the remaining items changes.
func (d *Deque[T]) SwapRemove(i int) T {
	v := *d.At(i)
	last := d.pos(d.size - 1)
	d.buf[d.pos(i)] = d.buf[last]
	var zero T
	d.buf[last] = zero
	d.size--
	return v
}

// Iter iterates over the items from front to back. It can be used in a range
// statement; every range starts a fresh pass.
func (d *Deque[T]) Iter(yield func(v T) bool) {
	for i := 0; i < d.size; i++ {
		if !yield(d.buf[d.pos(i)]) {
			return
		}
	}
}

// ToSlice copies the items into a new slice, front first.
func (d *Deque[T]) ToSlice() []T {
	s := make([]T, 0, d.size)
	for i := 0; i < d.size; i++ {
		s = append(s, d.buf[d.pos(i)])
	}
	return s
}

// Clear removes all items but keeps the buffer.
func (d *Deque[T]) Clear() {
	var zero T
	for i := 0; i < d.size; i++ {
		d.buf[d.pos(i)] = zero
	}
	d.head = 0
	d.size = 0
}

// grow doubles the buffer if it is full and moves the items to the start, so
// the ring stays contiguous.
func (d *Deque[T]) grow() {
	if d.size < len(d.buf) {
		return
	}
	buf := make([]T, max(2*len(d.buf), 4))
	for i := 0; i < d.size; i++ {
		buf[i] = d.buf[d.pos(i)]
	}
	d.buf = buf
	d.head = 0
}
