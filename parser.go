package ytree

import (
	"fmt"
	"strings"
)

// Parser builds a document tree from a stream of line tokens.
type Parser struct {
	l      *Lexer
	tokens []lineToken
	pos    int
	errors ParseErrors
}

// NewParser creates a new Parser reading from l.
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}
	for {
		tok := l.Next()
		p.tokens = append(p.tokens, tok)
		if tok.typ == tokenEOF {
			break
		}
	}
	return p
}

// Errors returns the errors collected while parsing.
func (p *Parser) Errors() ParseErrors { return p.errors }

// Parse reads a single document and returns its root node. Errors are
// collected and available through Errors; the returned node may be partial
// when errors occurred. An input with no content parses as an absent-value
// scalar.
func (p *Parser) Parse() Node {
	pending := p.skipTrivia(0)
	var root Node
	switch tok := p.cur(); tok.typ {
	case tokenDocStart:
		p.next()
		if tok.value != "" || tok.comment != "" {
			root = p.parseInlineValue(tok.value, tok.comment, tok.indent)
		} else {
			more := p.skipTrivia(0)
			pending = joinComments(pending, more)
			root = p.parseBlock()
		}
	case tokenEOF:
	default:
		root = p.parseBlock()
	}
	p.skipTrivia(0)
	if tok := p.cur(); tok.typ != tokenEOF {
		p.errorf(tok, "unexpected content after document")
	}
	if root == nil {
		root = NewAbsentScalar()
	}
	return p.applyComment(root, pending)
}

func (p *Parser) cur() lineToken {
	return p.tokens[min(p.pos, len(p.tokens)-1)]
}

func (p *Parser) next() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *Parser) errorf(tok lineToken, format string, args ...any) {
	p.errors = append(p.errors, ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.line,
		Column:  tok.indent + 1,
	})
}

// skipTrivia consumes blank, comment and illegal lines. Comments indented
// less than minIndent are left for an outer block; the consumed comment
// text is returned joined by newlines.
func (p *Parser) skipTrivia(minIndent int) string {
	var comments []string
	for {
		switch tok := p.cur(); {
		case tok.typ == tokenBlank:
			p.next()
		case tok.typ == tokenIllegal:
			p.errorf(tok, "%s", tok.value)
			p.next()
		case tok.typ == tokenComment && tok.indent >= minIndent:
			comments = append(comments, tok.comment)
			p.next()
		default:
			return strings.Join(comments, "\n")
		}
	}
}

// parseBlock dispatches on the current line to parse one block value.
func (p *Parser) parseBlock() Node {
	switch tok := p.cur(); tok.typ {
	case tokenEntry:
		return p.parseSequence(tok.indent)
	case tokenKey:
		return p.parseMapping(tok.indent)
	case tokenScalar:
		p.next()
		return p.parseInlineValue(tok.value, tok.comment, tok.indent)
	case tokenEOF:
		return nil
	default:
		p.errorf(tok, "unexpected line")
		p.next()
		return nil
	}
}

func (p *Parser) parseMapping(indentation int) *Mapping {
	var pairs []Pair
	for {
		pending := p.skipTrivia(indentation)
		tok := p.cur()
		if tok.typ == tokenKey && tok.indent > indentation {
			p.errorf(tok, "unexpected indentation")
			p.next()
			continue
		}
		if tok.typ != tokenKey || tok.indent != indentation {
			break
		}
		p.next()
		value := p.parseEntryValue(tok, indentation, pending)
		var key Node
		if tok.key == nullLiteral {
			key = NewAbsentScalar()
		} else {
			key = NewScalar(tok.key)
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return NewMapping(pairs...)
}

func (p *Parser) parseSequence(indentation int) *Sequence {
	var nodes []Node
	for {
		pending := p.skipTrivia(indentation)
		tok := p.cur()
		if tok.typ == tokenEntry && tok.indent > indentation {
			p.errorf(tok, "unexpected indentation")
			p.next()
			continue
		}
		if tok.typ != tokenEntry || tok.indent != indentation {
			break
		}
		p.next()
		nodes = append(nodes, p.parseEntryValue(tok, indentation, pending))
	}
	return NewSequence(nodes...)
}

// parseEntryValue parses the value of one mapping or sequence entry whose
// lead-in line is tok. An inline value sits on the entry line itself; a
// nested block is everything indented deeper than the entry.
func (p *Parser) parseEntryValue(tok lineToken, indentation int, pending string) Node {
	if tok.value != "" || tok.comment != "" {
		n := p.parseInlineValue(tok.value, tok.comment, tok.indent)
		return p.applyComment(n, pending)
	}
	deeper := p.skipTrivia(indentation + 1)
	pending = joinComments(pending, deeper)
	if nxt := p.cur(); nxt.indent > indentation &&
		(nxt.typ == tokenKey || nxt.typ == tokenEntry || nxt.typ == tokenScalar) {
		return p.applyComment(p.parseBlock(), pending)
	}
	return p.applyComment(NewAbsentScalar(), pending)
}

// parseInlineValue interprets the value text of a single line: a literal
// block marker, an empty flow container, a null, or a plain scalar.
func (p *Parser) parseInlineValue(value, comment string, indentation int) Node {
	var n Node
	switch value {
	case "|":
		n = p.parseLiteral(indentation)
	case "[]":
		n = NewSequence()
	case "{}":
		n = NewMapping()
	case "", nullLiteral, "~":
		n = NewAbsentScalar()
	default:
		n = NewScalar(value)
	}
	return p.applyComment(n, comment)
}

// parseLiteral consumes the block of lines indented deeper than the entry
// that opened the "|" marker, verbatim. Interior blank lines are kept;
// trailing blank lines are not part of the literal.
func (p *Parser) parseLiteral(indentation int) *LiteralScalar {
	var raws []string
	blanks := 0
	// The first content line fixes the block indentation; a shallower
	// content line ends the literal.
	blockIndent := -1
	for {
		tok := p.cur()
		if tok.typ == tokenBlank {
			blanks++
			p.next()
			continue
		}
		if tok.typ == tokenEOF || tok.indent <= indentation {
			break
		}
		if blockIndent < 0 {
			blockIndent = tok.indent
		} else if tok.indent < blockIndent {
			break
		}
		raw, _ := p.l.Raw(tok.line)
		for ; blanks > 0; blanks-- {
			raws = append(raws, "")
		}
		raws = append(raws, raw)
		p.next()
	}
	if len(raws) == 0 {
		return NewLiteralScalar()
	}
	lines := make([]string, len(raws))
	for i, raw := range raws {
		if len(raw) >= blockIndent {
			lines[i] = raw[blockIndent:]
		}
	}
	return NewLiteralScalar(lines...)
}

// applyComment attaches text to n unless n already carries a comment of
// its own, which wins.
func (p *Parser) applyComment(n Node, text string) Node {
	if n == nil || text == "" || !n.Comment().IsEmpty() {
		return n
	}
	switch t := n.(type) {
	case *PlainScalar:
		return t.WithComment(text)
	case *LiteralScalar:
		return t.WithComment(text)
	case *Sequence:
		return t.WithComment(text)
	case *Mapping:
		return t.WithComment(text)
	}
	return n
}

func joinComments(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + "\n" + b
}
