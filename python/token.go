package python

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	// Significant kinds
	TokenName
	TokenNumber
	TokenString
	TokenOp
	TokenNewline

	// Insignificant kinds
	TokenNL
	TokenIndent
	TokenComment
	TokenContinuation
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:          "EOF",
	TokenError:        "Error",
	TokenName:         "Name",
	TokenNumber:       "Number",
	TokenString:       "String",
	TokenOp:           "Op",
	TokenNewline:      "Newline",
	TokenNL:           "NL",
	TokenIndent:       "Indent",
	TokenComment:      "Comment",
	TokenContinuation: "Continuation",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Insignificant reports whether the scanner should skip this kind when
// consuming tokens. Indentation, blank and bracket-nested newlines,
// comments, and backslash continuations carry no meaning for the analysis.
func (k TokenKind) Insignificant() bool {
	switch k {
	case TokenNL, TokenIndent, TokenComment, TokenContinuation:
		return true
	}
	return false
}

// Token is one lexeme of a Python source file. Text is the exact source
// spelling and Line is the verbatim source line the token starts on,
// kept for diagnostic rendering.
type Token struct {
	Kind TokenKind
	Text string
	Pos  Position
	Line string
}

func (t Token) IsOp(text string) bool {
	return t.Kind == TokenOp && t.Text == text
}

func (t Token) IsName(text string) bool {
	return t.Kind == TokenName && t.Text == text
}
