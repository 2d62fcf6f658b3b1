package ytree

import "bytes"

// Parse reads a document in the block subset understood by this package
// and returns its root node. All syntax errors found are returned together
// as a ParseErrors value.
func Parse(data []byte) (Node, error) {
	l := NewLexer(data)
	p := NewParser(l)
	n := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, errs
	}
	return n, nil
}

// Marshal returns the printed document form of n.
func Marshal(n Node, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewPrinter(&buf, opts...).Print(n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
