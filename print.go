package ytree

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const defaultIndent = 2

// Printer writes document trees to an output stream in block style.
type Printer struct {
	w    io.Writer
	opts []Option
}

// NewPrinter returns a new Printer that writes to w.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	return &Printer{w: w, opts: opts}
}

// Print writes the document form of n, terminated by a single newline.
// Scalar roots are printed after the document start marker, because a bare
// scalar value is not necessarily a valid document on its own.
func (p *Printer) Print(n Node) error {
	o := options{}
	for _, opt := range p.opts {
		if err := opt(&o); err != nil {
			return err
		}
	}
	step := defaultIndent
	if o.indent != nil {
		step = *o.indent
	}
	ps := &printState{w: p.w, step: step}
	return ps.printDocument(n)
}

// mustPrint renders n as a standalone document. Printing to an in-memory
// buffer cannot fail unless the tree itself is defective, so any error is
// treated as fatal.
func mustPrint(n Node) string {
	var sb strings.Builder
	if err := NewPrinter(&sb).Print(n); err != nil {
		panic(fmt.Errorf("ytree: printing node: %w", err))
	}
	return sb.String()
}

// printState carries the writer and indent width through one print run.
type printState struct {
	w    io.Writer
	step int
}

func (ps *printState) write(s string) error {
	_, err := ps.w.Write([]byte(s))
	return err
}

func (ps *printState) printDocument(n Node) error {
	if n == nil {
		return errors.New("ytree: cannot print a nil node")
	}
	switch t := n.(type) {
	case *LiteralScalar:
		if err := ps.printComment(t.Comment(), 0); err != nil {
			return err
		}
		if err := ps.write("--- |\n"); err != nil {
			return err
		}
		if len(t.lines) == 0 {
			return nil
		}
		return ps.write(t.indent(ps.step) + "\n")
	case Scalar:
		if c := t.Comment(); strings.Contains(c.Value(), "\n") {
			if err := ps.printComment(c, 0); err != nil {
				return err
			}
			return ps.write("--- " + scalarText(t) + "\n")
		}
		return ps.write("--- " + renderScalar(t, 0) + "\n")
	case *Sequence:
		if err := ps.printComment(t.Comment(), 0); err != nil {
			return err
		}
		if t.IsEmpty() {
			return ps.write("[]\n")
		}
		return ps.printSequence(t, 0)
	case *Mapping:
		if err := ps.printComment(t.Comment(), 0); err != nil {
			return err
		}
		if t.IsEmpty() {
			return ps.write("{}\n")
		}
		return ps.printMapping(t, 0)
	}
	return fmt.Errorf("ytree: unsupported node type for printing: %T", n)
}

func (ps *printState) printMapping(m *Mapping, indentation int) error {
	prefix := strings.Repeat(" ", indentation)
	for _, pair := range m.Pairs() {
		key, ok := pair.Key.(Scalar)
		if !ok {
			return fmt.Errorf("ytree: mapping key must be a scalar, got %s", kindOf(pair.Key))
		}
		if err := ps.printEntry(prefix+scalarText(key)+":", pair.Value, indentation); err != nil {
			return err
		}
	}
	return nil
}

func (ps *printState) printSequence(s *Sequence, indentation int) error {
	prefix := strings.Repeat(" ", indentation)
	for _, n := range s.Values() {
		if err := ps.printEntry(prefix+"-", n, indentation); err != nil {
			return err
		}
	}
	return nil
}

// printEntry writes one block entry: head is the already-indented lead-in
// ("key:" or "-"), value the node that follows it. Scalar values share the
// entry line; containers and literals open a deeper block.
func (ps *printState) printEntry(head string, value Node, indentation int) error {
	switch v := value.(type) {
	case nil:
		return ps.write(head + " " + nullLiteral + "\n")
	case *LiteralScalar:
		if err := ps.printComment(v.Comment(), indentation); err != nil {
			return err
		}
		if err := ps.write(head + " |\n"); err != nil {
			return err
		}
		if len(v.lines) == 0 {
			return nil
		}
		return ps.write(v.indent(indentation+ps.step) + "\n")
	case Scalar:
		// A multi-line comment cannot sit inline; it moves above the entry.
		if c := v.Comment(); strings.Contains(c.Value(), "\n") {
			if err := ps.printComment(c, indentation); err != nil {
				return err
			}
			return ps.write(head + " " + scalarText(v) + "\n")
		}
		return ps.write(head + " " + renderScalar(v, 0) + "\n")
	case *Sequence:
		if err := ps.printComment(v.Comment(), indentation); err != nil {
			return err
		}
		if v.IsEmpty() {
			return ps.write(head + " []\n")
		}
		if err := ps.write(head + "\n"); err != nil {
			return err
		}
		return ps.printSequence(v, indentation+ps.step)
	case *Mapping:
		if err := ps.printComment(v.Comment(), indentation); err != nil {
			return err
		}
		if v.IsEmpty() {
			return ps.write(head + " {}\n")
		}
		if err := ps.write(head + "\n"); err != nil {
			return err
		}
		return ps.printMapping(v, indentation+ps.step)
	}
	return fmt.Errorf("ytree: unsupported node type for printing: %T", value)
}

// printComment writes c as full "# ..." lines at the given indentation.
func (ps *printState) printComment(c Comment, indentation int) error {
	if c.IsEmpty() {
		return nil
	}
	prefix := strings.Repeat(" ", indentation)
	for _, line := range strings.Split(c.Value(), "\n") {
		if err := ps.write(prefix + "# " + line + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func kindOf(n Node) string {
	if n == nil {
		return "nil"
	}
	return n.Kind().String()
}
