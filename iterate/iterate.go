// Package iterate connects assoc lists to the lazy, error-carrying producers
// of the iterator package. Producers compose into pipelines (Filter, Map,
// Reduce) before being collected; plain loops over a list are better served
// by the Iter method of the list itself.
package iterate

import (
	"github.com/hneemann/assoc"
	"github.com/hneemann/iterator"
)

// Pairs returns a producer of the pairs of the list in list order.
func Pairs[K, V any](l assoc.List[K, V]) iterator.Producer[assoc.Pair[K, V]] {
	return iterator.Slice[assoc.Pair[K, V]](l)
}

// Keys returns a producer of the keys of the list in list order.
func Keys[K, V any](l assoc.List[K, V]) iterator.Producer[K] {
	return iterator.Map(Pairs(l), func(i int, p assoc.Pair[K, V]) (K, error) {
		return p.Key, nil
	})
}

// Values returns a producer of the values of the list in list order.
func Values[K, V any](l assoc.List[K, V]) iterator.Producer[V] {
	return iterator.Map(Pairs(l), func(i int, p assoc.Pair[K, V]) (V, error) {
		return p.Value, nil
	})
}

// Collect drains the producer into a list. Pairs with equal keys are merged
// the way repeated Put calls merge them: the first occurrence keeps its
// position and the last occurrence keeps its value. The first error reported
// by the producer stops the drain and is returned.
func Collect[K, V any](p iterator.Producer[assoc.Pair[K, V]], eq assoc.Equal[K]) (assoc.List[K, V], error) {
	var l assoc.List[K, V]
	for pair, err := range p {
		if err != nil {
			return nil, err
		}
		l.Put(pair.Key, pair.Value, eq)
	}
	return l, nil
}

// CollectMap drains the producer into a Map, merging pairs with equal keys
// like Collect does.
func CollectMap[K comparable, V any](p iterator.Producer[assoc.Pair[K, V]]) (assoc.Map[K, V], error) {
	l, err := Collect(p, assoc.Eq[K])
	return assoc.Map[K, V](l), err
}
