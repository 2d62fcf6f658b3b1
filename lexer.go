package ytree

import "strings"

// Lexer turns input into a stream of line tokens.
type Lexer struct {
	lines []string
	pos   int
}

// NewLexer creates and returns a new Lexer over input.
func NewLexer(input []byte) *Lexer {
	lines := strings.Split(string(input), "\n")
	// A trailing newline yields one empty trailing element, not a line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return &Lexer{lines: lines}
}

// Next lexes the next line and advances. At end of input it keeps
// returning an EOF token.
func (l *Lexer) Next() lineToken {
	if l.pos >= len(l.lines) {
		return lineToken{typ: tokenEOF, line: len(l.lines) + 1}
	}
	tok := lexLine(l.lines[l.pos], l.pos+1)
	l.pos++
	return tok
}

// Raw returns the verbatim text of the 1-based source line n, without its
// line ending. The parser uses it to read literal block lines unlexed.
func (l *Lexer) Raw(n int) (string, bool) {
	if n < 1 || n > len(l.lines) {
		return "", false
	}
	return strings.TrimSuffix(l.lines[n-1], "\r"), true
}

func lexLine(raw string, n int) lineToken {
	line := strings.TrimSuffix(raw, "\r")
	trimmed := strings.TrimLeft(line, " ")
	tok := lineToken{indent: len(line) - len(trimmed), line: n}
	switch {
	case strings.TrimSpace(trimmed) == "":
		tok.typ = tokenBlank
	case strings.HasPrefix(trimmed, "\t"):
		tok.typ = tokenIllegal
		tok.value = "tab indentation is not allowed"
	case trimmed == "---" || strings.HasPrefix(trimmed, "--- "):
		tok.typ = tokenDocStart
		rest := strings.TrimPrefix(strings.TrimPrefix(trimmed, "---"), " ")
		tok.value, tok.comment = splitInlineComment(rest)
	case strings.HasPrefix(trimmed, "#"):
		tok.typ = tokenComment
		tok.comment = strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
	case trimmed == "-" || strings.HasPrefix(trimmed, "- "):
		tok.typ = tokenEntry
		rest := strings.TrimPrefix(strings.TrimPrefix(trimmed, "-"), " ")
		tok.value, tok.comment = splitInlineComment(rest)
	default:
		if key, rest, ok := splitKey(trimmed); ok {
			tok.typ = tokenKey
			tok.key = key
			tok.value, tok.comment = splitInlineComment(rest)
		} else {
			tok.typ = tokenScalar
			tok.value, tok.comment = splitInlineComment(trimmed)
		}
	}
	return tok
}

// splitKey splits "key: rest" and "key:" lines.
func splitKey(s string) (key, rest string, ok bool) {
	if i := strings.Index(s, ": "); i >= 0 {
		return s[:i], s[i+2:], true
	}
	if strings.HasSuffix(s, ":") {
		return strings.TrimSuffix(s, ":"), "", true
	}
	return "", "", false
}

// splitInlineComment separates a trailing inline comment from value text.
// The separator is the printer's own " # " form.
func splitInlineComment(s string) (value, comment string) {
	if strings.HasPrefix(s, "#") {
		return "", strings.TrimSpace(strings.TrimPrefix(s, "#"))
	}
	if i := strings.Index(s, " # "); i >= 0 {
		return strings.TrimRight(s[:i], " "), strings.TrimSpace(s[i+3:])
	}
	return strings.TrimRight(s, " "), ""
}
