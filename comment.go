package ytree

// Comment is an immutable annotation attached to a node. Comments only
// matter when printing: they never participate in equality, ordering or
// hashing. The zero value is the "no comment" sentinel.
type Comment struct {
	text string
}

// NewComment returns a Comment wrapping text.
func NewComment(text string) Comment {
	return Comment{text: text}
}

// Value returns the comment text. It is empty when no comment is attached.
func (c Comment) Value() string {
	return c.text
}

// IsEmpty reports whether no comment is attached.
func (c Comment) IsEmpty() bool {
	return c.text == ""
}
