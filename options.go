package ytree

import "fmt"

// Option configures printing.
type Option func(*options) error

type options struct {
	indent *int
}

// Indent returns an Option that sets the number of spaces per nesting level
// used when printing.
//
// The width n must be a positive integer: block structure is expressed
// through indentation, so a zero width would collapse nesting.
func Indent(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("ytree: indent must be a positive integer")
		}
		o.indent = &n
		return nil
	}
}
