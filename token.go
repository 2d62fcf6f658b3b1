package ytree

// tokenType classifies a single source line. The block format is
// line-structured, so the lexer deals in whole lines rather than characters.
type tokenType string

const (
	tokenIllegal  tokenType = "ILLEGAL"  // an unreadable line, e.g. tab indentation
	tokenEOF      tokenType = "EOF"      // end of input
	tokenBlank    tokenType = "BLANK"    // an empty or whitespace-only line
	tokenDocStart tokenType = "DOCSTART" // "---", optionally followed by an inline value
	tokenComment  tokenType = "COMMENT"  // "# ..." occupying a whole line
	tokenEntry    tokenType = "ENTRY"    // "- ..." sequence entry
	tokenKey      tokenType = "KEY"      // "key:" or "key: value"
	tokenScalar   tokenType = "SCALAR"   // a bare scalar line
)

// lineToken is one lexed source line.
type lineToken struct {
	typ     tokenType
	indent  int    // number of leading spaces
	key     string // key text for KEY lines
	value   string // scalar text, entry rest or document-start rest
	comment string // inline comment text, already trimmed
	line    int    // 1-based source line number
}
