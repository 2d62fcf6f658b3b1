package ytree

import (
	"encoding/binary"
	"hash/fnv"
	"slices"
)

// Sequence is an ordered collection of nodes.
type Sequence struct {
	nodes   []Node
	comment Comment
}

// NewSequence returns a sequence holding the given nodes in order.
func NewSequence(nodes ...Node) *Sequence {
	return &Sequence{nodes: append([]Node(nil), nodes...)}
}

// WithComment returns a copy of the sequence with the given comment attached.
func (s *Sequence) WithComment(text string) *Sequence {
	return &Sequence{nodes: s.nodes, comment: NewComment(text)}
}

func (s *Sequence) node() {}

// Kind returns KindSequence.
func (s *Sequence) Kind() Kind { return KindSequence }

// Comment returns the comment attached to the sequence.
func (s *Sequence) Comment() Comment { return s.comment }

// Len returns the number of nodes in the sequence.
func (s *Sequence) Len() int { return len(s.nodes) }

// Values returns a copy of the sequence's nodes.
func (s *Sequence) Values() []Node {
	return append([]Node(nil), s.nodes...)
}

// IsEmpty reports whether the sequence has no nodes.
func (s *Sequence) IsEmpty() bool { return len(s.nodes) == 0 }

// Equal reports whether other is a Sequence with pairwise-equal nodes.
func (s *Sequence) Equal(other Node) bool {
	if other == nil {
		return false
	}
	if other == Node(s) {
		return true
	}
	if other.Kind() != KindSequence {
		return false
	}
	return s.Compare(other) == 0
}

// Compare orders the sequence against any node. A sequence sorts after
// every scalar and before every mapping. Two sequences compare by length
// first, then by the first differing node.
func (s *Sequence) Compare(other Node) int {
	if other == Node(s) {
		return 0
	}
	if d, done := compareKinds(KindSequence, other); done {
		return d
	}
	o := other.(*Sequence)
	if len(s.nodes) != len(o.nodes) {
		if len(s.nodes) < len(o.nodes) {
			return -1
		}
		return 1
	}
	for i := range s.nodes {
		if d := compareChild(s.nodes[i], o.nodes[i]); d != 0 {
			return d
		}
	}
	return 0
}

// Hash combines the hashes of the sequence's nodes, consistent with Equal.
func (s *Sequence) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(KindSequence)})
	var buf [8]byte
	for _, n := range s.nodes {
		binary.BigEndian.PutUint64(buf[:], hashChild(n))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Sort returns a copy of the sequence with its nodes sorted by Compare.
// The order is total, so mixed-kind sequences sort deterministically with
// scalars first. The sort is stable.
func (s *Sequence) Sort() *Sequence {
	nodes := append([]Node(nil), s.nodes...)
	slices.SortStableFunc(nodes, compareChild)
	return &Sequence{nodes: nodes, comment: s.comment}
}

// String renders the sequence as a standalone document.
func (s *Sequence) String() string {
	return mustPrint(s)
}

// compareChild orders two possibly-nil child nodes, with nil sorting first.
func compareChild(a, b Node) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(b)
}
