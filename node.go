package ytree

// Kind identifies the variant of a Node. The declaration order of the
// constants is significant: it is the cross-variant sort rank used by
// Compare, with scalars ranking lowest.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}
	return "unknown"
}

// Node is an element of a document tree: a Scalar, a Sequence or a Mapping.
// The set of variants is closed; all implementations live in this package.
//
// Nodes are immutable after construction and safe for concurrent reads.
type Node interface {
	// Kind returns the variant of the node.
	Kind() Kind

	// Comment returns the comment attached to the node. The zero Comment
	// means no comment is attached.
	Comment() Comment

	// Equal reports whether other represents the same value as this node.
	// Comments are ignored. Equal never panics, a nil other included.
	Equal(other Node) bool

	// Compare orders this node against any other node. The order is total:
	// nil sorts before everything, kinds rank Scalar < Sequence < Mapping,
	// and nodes of the same kind compare by content. The result is negative,
	// zero or positive; only its sign is specified.
	Compare(other Node) int

	// Hash returns a value hash consistent with Equal: equal nodes hash
	// identically. Comments are ignored.
	Hash() uint64

	// IsEmpty reports whether the node contributes no visible content.
	IsEmpty() bool

	// String renders the node as a standalone document.
	String() string

	// node restricts implementations to this package.
	node()
}

// compareKinds resolves the cross-variant part of Compare. The boolean
// result is false when both nodes are the same kind and the caller has to
// compare contents itself.
func compareKinds(k Kind, other Node) (int, bool) {
	if other == nil {
		return 1, true
	}
	if ok := other.Kind(); k != ok {
		if k < ok {
			return -1, true
		}
		return 1, true
	}
	return 0, false
}
