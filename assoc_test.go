package assoc

import (
	"github.com/stretchr/testify/assert"
	"math"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	l := New[string, int](4)
	l.Append(Pair[string, int]{"a", 1})
	l.Append(Pair[string, int]{"b", 2})

	v, ok := l.Get("a", Eq)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = l.Get("b", Eq)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestGetFails(t *testing.T) {
	l := List[string, int]{{"a", 1}}

	v, ok := l.Get("b", Eq)
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestNilList(t *testing.T) {
	var l List[string, int]

	_, ok := l.Get("a", Eq)
	assert.False(t, ok)
	assert.Equal(t, -1, l.Index("a", Eq))

	prev, replaced := l.Put("a", 1, Eq)
	assert.False(t, replaced)
	assert.Equal(t, 0, prev)
	assert.Equal(t, 1, l.Size())
}

func TestIndex(t *testing.T) {
	l := List[string, int]{{"a", 1}, {"b", 2}, {"c", 3}, {"b", 4}}

	tests := []struct {
		key  string
		want int
	}{
		{key: "a", want: 0},
		{key: "b", want: 1},
		{key: "c", want: 2},
		{key: "d", want: -1},
	}

	for _, test := range tests {
		test := test
		t.Run(test.key, func(t *testing.T) {
			assert.Equal(t, test.want, l.Index(test.key, Eq))
		})
	}
}

func TestFind(t *testing.T) {
	l := List[string, int]{{"a", 1}, {"b", 2}}

	p := l.Find("b", Eq)
	assert.NotNil(t, p)
	p.Value = 20

	v, _ := l.Get("b", Eq)
	assert.Equal(t, 20, v)

	assert.Nil(t, l.Find("c", Eq))
}

func TestContains(t *testing.T) {
	l := List[string, int]{{"a", 1}}

	assert.True(t, l.Contains("a", Eq))
	assert.False(t, l.Contains("b", Eq))
}

func TestPut(t *testing.T) {
	l := New[string, int](2)

	prev, replaced := l.Put("a", 1, Eq)
	assert.False(t, replaced)
	assert.Equal(t, 0, prev)

	prev, replaced = l.Put("a", 4, Eq)
	assert.True(t, replaced)
	assert.Equal(t, 1, prev)
	assert.Equal(t, 1, l.Size())

	v, _ := l.Get("a", Eq)
	assert.Equal(t, 4, v)
}

func TestPutKeepsPosition(t *testing.T) {
	l := List[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}

	l.Put("b", 20, Eq)

	assert.Equal(t, List[string, int]{{"a", 1}, {"b", 20}, {"c", 3}}, l)
}

func TestRemove(t *testing.T) {
	l := List[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}

	v, ok := l.Remove("a", Eq)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	// the last pair fills the vacated slot
	assert.Equal(t, List[string, int]{{"c", 3}, {"b", 2}}, l)

	_, ok = l.Remove("a", Eq)
	assert.False(t, ok)
	assert.Equal(t, 2, l.Size())
}

func TestSwapRemove(t *testing.T) {
	l := List[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}

	p := l.SwapRemove(1)
	assert.Equal(t, Pair[string, int]{"b", 2}, p)
	assert.Equal(t, List[string, int]{{"a", 1}, {"c", 3}}, l)

	// removing the last pair swaps it with itself
	p = l.SwapRemove(1)
	assert.Equal(t, Pair[string, int]{"c", 3}, p)
	assert.Equal(t, List[string, int]{{"a", 1}}, l)
}

func TestSwapRemoveClearsSlot(t *testing.T) {
	l := List[string, *int]{{"a", new(int)}, {"b", new(int)}}

	l.SwapRemove(1)

	// the shrunken slice must not keep the removed pointer alive
	assert.Nil(t, l[:2][1].Value)
}

func TestDuplicateKeys(t *testing.T) {
	l := List[string, int]{{"a", 1}, {"a", 2}}

	// the first pair shadows the second
	v, _ := l.Get("a", Eq)
	assert.Equal(t, 1, v)

	// only the first pair is updated
	prev, replaced := l.Put("a", 9, Eq)
	assert.True(t, replaced)
	assert.Equal(t, 1, prev)
	assert.Equal(t, List[string, int]{{"a", 9}, {"a", 2}}, l)

	// removing the first occurrence uncovers the second
	v, _ = l.Remove("a", Eq)
	assert.Equal(t, 9, v)
	v, _ = l.Get("a", Eq)
	assert.Equal(t, 2, v)
}

func TestCustomEqual(t *testing.T) {
	l := List[string, int]{{"HOME", 1}, {"Path", 2}}

	v, ok := l.Get("home", strings.EqualFold)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	prev, replaced := l.Put("PATH", 20, strings.EqualFold)
	assert.True(t, replaced)
	assert.Equal(t, 2, prev)

	// the stored key is kept, only the value is replaced
	assert.Equal(t, "Path", l[1].Key)
	assert.Equal(t, 2, l.Size())
}

func TestNaNKeysAccumulate(t *testing.T) {
	nan := math.NaN()
	l := New[float64, int](2)

	l.Put(nan, 1, Eq)
	l.Put(nan, 2, Eq)

	// NaN is equal to nothing, so every Put appends a new pair
	// and no lookup ever finds one
	assert.Equal(t, 2, l.Size())
	_, ok := l.Get(nan, Eq)
	assert.False(t, ok)
}

func TestIter(t *testing.T) {
	l := List[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}

	var keys string
	var sum int
	for k, v := range l.Iter {
		keys += k
		sum += v
	}
	assert.Equal(t, "abc", keys)
	assert.Equal(t, 6, sum)
}

func TestIterBreak(t *testing.T) {
	l := List[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}

	var sum int
	for _, v := range l.Iter {
		sum += v
		break
	}
	assert.Equal(t, 1, sum)
}

func TestIterMut(t *testing.T) {
	l := List[string, int]{{"a", 1}, {"b", 2}}

	for _, v := range l.IterMut {
		*v *= 10
	}

	assert.Equal(t, List[string, int]{{"a", 10}, {"b", 20}}, l)
}

func TestKeysValues(t *testing.T) {
	l := List[string, int]{{"a", 1}, {"b", 2}}

	var keys []string
	for k := range l.Keys {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b"}, keys)

	var values []int
	for v := range l.Values {
		values = append(values, v)
	}
	assert.Equal(t, []int{1, 2}, values)
}

func TestValuesMut(t *testing.T) {
	l := List[string, int]{{"a", 1}, {"b", 2}}

	for v := range l.ValuesMut {
		*v += 5
	}

	assert.Equal(t, List[string, int]{{"a", 6}, {"b", 7}}, l)
}

func TestString(t *testing.T) {
	l := List[string, int]{{"a", 1}, {"b", 2}}
	assert.Equal(t, "{a:1, b:2}", l.String())

	var empty List[string, int]
	assert.Equal(t, "{}", empty.String())
}
