package ytree

import (
	"encoding/binary"
	"hash/fnv"
)

// Pair is a single key/value entry of a Mapping.
type Pair struct {
	Key   Node
	Value Node
}

// Mapping is an ordered collection of key/value pairs. Pairs keep their
// insertion order; keys are compared by node equality, not identity.
type Mapping struct {
	pairs   []Pair
	comment Comment
}

// NewMapping returns a mapping holding the given pairs in order.
func NewMapping(pairs ...Pair) *Mapping {
	return &Mapping{pairs: append([]Pair(nil), pairs...)}
}

// WithComment returns a copy of the mapping with the given comment attached.
func (m *Mapping) WithComment(text string) *Mapping {
	return &Mapping{pairs: m.pairs, comment: NewComment(text)}
}

// Put returns a copy of the mapping with the pair appended.
func (m *Mapping) Put(key, value Node) *Mapping {
	pairs := make([]Pair, 0, len(m.pairs)+1)
	pairs = append(pairs, m.pairs...)
	pairs = append(pairs, Pair{Key: key, Value: value})
	return &Mapping{pairs: pairs, comment: m.comment}
}

func (m *Mapping) node() {}

// Kind returns KindMapping.
func (m *Mapping) Kind() Kind { return KindMapping }

// Comment returns the comment attached to the mapping.
func (m *Mapping) Comment() Comment { return m.comment }

// Len returns the number of pairs in the mapping.
func (m *Mapping) Len() int { return len(m.pairs) }

// Pairs returns a copy of the mapping's pairs.
func (m *Mapping) Pairs() []Pair {
	return append([]Pair(nil), m.pairs...)
}

// Keys returns the mapping's keys in insertion order.
func (m *Mapping) Keys() []Node {
	keys := make([]Node, len(m.pairs))
	for i, p := range m.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Get returns the value stored under the first key equal to key, or nil
// when the mapping has no such key.
func (m *Mapping) Get(key Node) Node {
	for _, p := range m.pairs {
		if p.Key != nil && p.Key.Equal(key) {
			return p.Value
		}
	}
	return nil
}

// IsEmpty reports whether the mapping has no pairs.
func (m *Mapping) IsEmpty() bool { return len(m.pairs) == 0 }

// Equal reports whether other is a Mapping with pairwise-equal keys and
// values in the same order.
func (m *Mapping) Equal(other Node) bool {
	if other == nil {
		return false
	}
	if other == Node(m) {
		return true
	}
	if other.Kind() != KindMapping {
		return false
	}
	return m.Compare(other) == 0
}

// Compare orders the mapping against any node. A mapping sorts after every
// scalar and sequence. Two mappings compare by length first, then by the
// first differing key, then by the first differing value.
func (m *Mapping) Compare(other Node) int {
	if other == Node(m) {
		return 0
	}
	if d, done := compareKinds(KindMapping, other); done {
		return d
	}
	o := other.(*Mapping)
	if len(m.pairs) != len(o.pairs) {
		if len(m.pairs) < len(o.pairs) {
			return -1
		}
		return 1
	}
	for i := range m.pairs {
		if d := compareChild(m.pairs[i].Key, o.pairs[i].Key); d != 0 {
			return d
		}
	}
	for i := range m.pairs {
		if d := compareChild(m.pairs[i].Value, o.pairs[i].Value); d != 0 {
			return d
		}
	}
	return 0
}

// Hash combines the hashes of the mapping's keys and values, consistent
// with Equal.
func (m *Mapping) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(KindMapping)})
	var buf [8]byte
	for _, p := range m.pairs {
		binary.BigEndian.PutUint64(buf[:], hashChild(p.Key))
		h.Write(buf[:])
		binary.BigEndian.PutUint64(buf[:], hashChild(p.Value))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// String renders the mapping as a standalone document.
func (m *Mapping) String() string {
	return mustPrint(m)
}

func hashChild(n Node) uint64 {
	if n == nil {
		return 0
	}
	return n.Hash()
}
