package ytree

import (
	"hash/fnv"
	"strings"
)

// nullLiteral is the text substituted for an absent scalar value when
// rendering. The parser reads a bare null back as an absent-value scalar.
const nullLiteral = "null"

// Scalar is a leaf node holding an optional string value and a Comment.
// The value being absent is a valid state distinct from an empty string.
type Scalar interface {
	Node

	// Value returns the scalar's text and whether a value is present.
	Value() (string, bool)
}

// scalarBase implements the behavior shared by every Scalar variant:
// equality, hashing, ordering against arbitrary nodes, emptiness and
// indented rendering. Variants embed it and point self at themselves on
// construction, so the shared methods read the variant's own value and
// comment.
type scalarBase struct {
	self Scalar
}

func (s *scalarBase) node() {}

// Kind returns KindScalar.
func (s *scalarBase) Kind() Kind { return KindScalar }

// Equal reports whether other is a Scalar with the same value. The same
// instance is always equal to itself; nil and non-scalar nodes are never
// equal. Comments do not participate.
func (s *scalarBase) Equal(other Node) bool {
	if other == nil {
		return false
	}
	if other == Node(s.self) {
		return true
	}
	if other.Kind() != KindScalar {
		return false
	}
	return s.Compare(other) == 0
}

// Compare orders the scalar against any node. The same instance compares
// equal to itself, nil sorts before everything and a scalar sorts before a
// sequence or a mapping regardless of content. Two scalars compare by value:
// an absent value sorts before a present one, two absent values are equal,
// and two present values compare lexicographically.
func (s *scalarBase) Compare(other Node) int {
	if other == Node(s.self) {
		return 0
	}
	if other == nil {
		return 1
	}
	o, ok := other.(Scalar)
	if !ok {
		return -1
	}
	val, present := s.self.Value()
	oval, opresent := o.Value()
	switch {
	case !present && !opresent:
		return 0
	case !present:
		return -1
	case !opresent:
		return 1
	}
	return strings.Compare(val, oval)
}

// Hash is derived from the value alone. A discriminator byte separates
// present from absent values, so two absent-value scalars hash identically
// without colliding with the empty string.
func (s *scalarBase) Hash() uint64 {
	h := fnv.New64a()
	if val, present := s.self.Value(); present {
		h.Write([]byte{1})
		h.Write([]byte(val))
	} else {
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// IsEmpty reports whether the value is absent or blank after trimming
// surrounding whitespace.
func (s *scalarBase) IsEmpty() bool {
	val, present := s.self.Value()
	return !present || strings.TrimSpace(val) == ""
}

// String renders the scalar as a standalone document. A bare value is not
// necessarily a valid document by itself, so printing goes through the
// document printer, which emits the document start marker. See mustPrint
// for the failure contract.
func (s *scalarBase) String() string {
	return mustPrint(s.self)
}

// indent renders the scalar as a single line: the requested number of
// leading spaces, the value text, and the comment after " # " when one is
// attached. Negative indentation is clamped to zero. Kept unexported; only
// the printer and the container nodes use it.
func (s *scalarBase) indent(indentation int) string {
	var b strings.Builder
	for i := 0; i < indentation; i++ {
		b.WriteByte(' ')
	}
	if val, present := s.self.Value(); present {
		b.WriteString(val)
	} else {
		b.WriteString(nullLiteral)
	}
	if c := s.self.Comment(); !c.IsEmpty() {
		b.WriteString(" # ")
		b.WriteString(c.Value())
	}
	return b.String()
}

// PlainScalar is a single-line scalar with an optional value.
type PlainScalar struct {
	scalarBase
	value   string
	present bool
	comment Comment
}

// NewScalar returns a scalar holding value.
func NewScalar(value string) *PlainScalar {
	s := &PlainScalar{value: value, present: true}
	s.self = s
	return s
}

// NewAbsentScalar returns a scalar with no value. It is empty, sorts before
// every scalar that has a value and renders as the null literal.
func NewAbsentScalar() *PlainScalar {
	s := &PlainScalar{}
	s.self = s
	return s
}

// WithComment returns a copy of the scalar with the given comment attached.
func (s *PlainScalar) WithComment(text string) *PlainScalar {
	c := &PlainScalar{value: s.value, present: s.present, comment: NewComment(text)}
	c.self = c
	return c
}

// Value returns the scalar's text and whether a value is present.
func (s *PlainScalar) Value() (string, bool) { return s.value, s.present }

// Comment returns the comment attached to the scalar.
func (s *PlainScalar) Comment() Comment { return s.comment }

// LiteralScalar is a block literal scalar: a value spanning multiple lines,
// printed in block style under the "|" marker. Its value is the lines
// joined by newlines, so ordering and equality against other scalars work
// on the joined text.
type LiteralScalar struct {
	scalarBase
	lines   []string
	comment Comment
}

// NewLiteralScalar returns a literal scalar holding the given lines.
func NewLiteralScalar(lines ...string) *LiteralScalar {
	s := &LiteralScalar{lines: append([]string(nil), lines...)}
	s.self = s
	return s
}

// WithComment returns a copy of the scalar with the given comment attached.
func (s *LiteralScalar) WithComment(text string) *LiteralScalar {
	c := &LiteralScalar{lines: s.lines, comment: NewComment(text)}
	c.self = c
	return c
}

// Value returns the literal lines joined by newlines. A literal scalar
// always has a value, even with zero lines.
func (s *LiteralScalar) Value() (string, bool) {
	return strings.Join(s.lines, "\n"), true
}

// Comment returns the comment attached to the scalar.
func (s *LiteralScalar) Comment() Comment { return s.comment }

// Lines returns a copy of the literal lines.
func (s *LiteralScalar) Lines() []string {
	return append([]string(nil), s.lines...)
}

// indent shadows the single-line rendering of scalarBase: every literal
// line is emitted at the given indentation, joined by newlines. The "|"
// marker and the comment belong to the owning entry and are written by the
// printer.
func (s *LiteralScalar) indent(indentation int) string {
	if indentation < 0 {
		indentation = 0
	}
	prefix := strings.Repeat(" ", indentation)
	out := make([]string, len(s.lines))
	for i, line := range s.lines {
		if line == "" {
			continue
		}
		out[i] = prefix + line
	}
	return strings.Join(out, "\n")
}

// indenter is the package-internal rendering hook implemented by every
// scalar variant. The printer falls back to renderScalar's manual path for
// scalars that do not provide it.
type indenter interface {
	indent(indentation int) string
}

// scalarText returns the value of s, or the null literal when the value is
// absent.
func scalarText(s Scalar) string {
	if val, present := s.Value(); present {
		return val
	}
	return nullLiteral
}

// renderScalar returns the single-line form of s at the given indentation.
func renderScalar(s Scalar, indentation int) string {
	if in, ok := s.(indenter); ok {
		return in.indent(indentation)
	}
	var b strings.Builder
	for i := 0; i < indentation; i++ {
		b.WriteByte(' ')
	}
	if val, present := s.Value(); present {
		b.WriteString(val)
	} else {
		b.WriteString(nullLiteral)
	}
	if c := s.Comment(); !c.IsEmpty() {
		b.WriteString(" # ")
		b.WriteString(c.Value())
	}
	return b.String()
}
