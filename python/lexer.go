package python

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input  []byte
	file   string
	lines  []string
	pos    int
	line   int
	column int

	// depth tracks open brackets so that newlines inside (), [] and {}
	// become insignificant NL tokens, the way Python's tokenizer
	// suppresses logical newlines there.
	depth int

	// significant is set once the current line has produced a token that
	// matters; a newline on a line without one is a blank-line NL.
	significant bool
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		lines:  splitLines(input),
		pos:    0,
		line:   1,
		column: 1,
	}
}

func splitLines(input []byte) []string {
	lines := strings.Split(string(input), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) sourceLine(line int) string {
	if line < 1 || line > len(l.lines) {
		return ""
	}
	return l.lines[line-1]
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) NextToken() Token {
	if l.column == 1 && (l.peek() == ' ' || l.peek() == '\t') {
		return l.scanIndent()
	}

	for l.peek() == ' ' || l.peek() == '\t' || l.peek() == '\r' || l.peek() == '\f' {
		l.advance()
	}

	startPos := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Pos: startPos, Line: l.sourceLine(startPos.Line)}
	}

	ch := l.peek()

	if ch == '\n' {
		return l.scanNewline(startPos)
	}

	if ch == '\\' && (l.peekN(1) == '\n' || (l.peekN(1) == '\r' && l.peekN(2) == '\n')) {
		return l.scanContinuation(startPos)
	}

	if ch == '#' {
		return l.scanComment(startPos)
	}

	if isStringQuote(ch) || l.hasStringPrefix() {
		return l.scanString(startPos)
	}

	if isDigit(ch) || (ch == '.' && isDigit(l.peekN(1))) {
		return l.scanNumber(startPos)
	}

	if isNameStart(ch) {
		return l.scanName(startPos)
	}

	return l.scanOperator(startPos)
}

func (l *Lexer) scanIndent() Token {
	startPos := l.Position()
	for l.peek() == ' ' || l.peek() == '\t' {
		l.advance()
	}
	return l.token(TokenIndent, startPos)
}

func (l *Lexer) scanNewline(start Position) Token {
	l.advance()
	kind := TokenNL
	if l.depth == 0 && l.significant {
		kind = TokenNewline
	}
	l.significant = false
	return Token{
		Kind: kind,
		Text: "\n",
		Pos:  start,
		Line: l.sourceLine(start.Line),
	}
}

func (l *Lexer) scanContinuation(start Position) Token {
	l.advance()
	if l.peek() == '\r' {
		l.advance()
	}
	l.advance()
	return l.token(TokenContinuation, start)
}

func (l *Lexer) scanComment(start Position) Token {
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokenComment, start)
}

// hasStringPrefix reports whether the cursor sits on a string prefix such
// as r'...', b"..." or rb'...' rather than a plain identifier.
func (l *Lexer) hasStringPrefix() bool {
	if !isStringPrefixChar(l.peek()) {
		return false
	}
	if isStringQuote(l.peekN(1)) {
		return true
	}
	return isStringPrefixChar(l.peekN(1)) && isStringQuote(l.peekN(2))
}

func (l *Lexer) scanString(start Position) Token {
	raw := false
	for isStringPrefixChar(l.peek()) {
		if l.peek() == 'r' || l.peek() == 'R' {
			raw = true
		}
		l.advance()
	}

	quote := l.peek()
	l.advance()

	if l.peek() == quote && l.peekN(1) == quote {
		l.advanceN(2)
		return l.scanTripleString(start, quote, raw)
	}

	for l.peek() != 0 && l.peek() != quote && l.peek() != '\n' {
		if l.peek() == '\\' && !raw {
			l.advance()
		}
		l.advance()
	}
	if l.peek() == quote {
		l.advance()
	}
	return l.significantToken(TokenString, start)
}

func (l *Lexer) scanTripleString(start Position, quote byte, raw bool) Token {
	for l.peek() != 0 {
		if l.peek() == quote && l.peekN(1) == quote && l.peekN(2) == quote {
			l.advanceN(3)
			break
		}
		if l.peek() == '\\' && !raw {
			l.advance()
		}
		l.advance()
	}
	return l.significantToken(TokenString, start)
}

func (l *Lexer) scanNumber(start Position) Token {
	if l.peek() == '0' {
		switch l.peekN(1) {
		case 'x', 'X':
			l.advanceN(2)
			for isHexDigit(l.peek()) || l.peek() == '_' {
				l.advance()
			}
			return l.significantToken(TokenNumber, start)
		case 'o', 'O':
			l.advanceN(2)
			for (l.peek() >= '0' && l.peek() <= '7') || l.peek() == '_' {
				l.advance()
			}
			return l.significantToken(TokenNumber, start)
		case 'b', 'B':
			l.advanceN(2)
			for l.peek() == '0' || l.peek() == '1' || l.peek() == '_' {
				l.advance()
			}
			return l.significantToken(TokenNumber, start)
		}
	}

	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	if l.peek() == '.' && (isDigit(l.peekN(1)) || !isNameStart(l.peekN(1))) {
		l.advance()
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		next := l.peekN(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekN(2))) {
			l.advance()
			if l.peek() == '+' || l.peek() == '-' {
				l.advance()
			}
			for isDigit(l.peek()) {
				l.advance()
			}
		}
	}
	if l.peek() == 'j' || l.peek() == 'J' || l.peek() == 'l' || l.peek() == 'L' {
		l.advance()
	}
	return l.significantToken(TokenNumber, start)
}

func (l *Lexer) scanName(start Position) Token {
	for isNameContinue(l.peek()) {
		l.advance()
	}
	return l.significantToken(TokenName, start)
}

// Multi-character operators, longest first. Everything else is a single
// punctuation character.
var operators = []string{
	"**=", "//=", ">>=", "<<=", "...",
	"**", "//", ">>", "<<", "<=", ">=", "==", "!=", "<>",
	"->", ":=",
	"+=", "-=", "*=", "/=", "%=", "@=", "&=", "|=", "^=",
}

const singleOps = "+-*/%@&|^~<>()[]{},:.;="

func (l *Lexer) scanOperator(start Position) Token {
	rest := l.input[l.pos:]
	for _, op := range operators {
		if len(rest) >= len(op) && string(rest[:len(op)]) == op {
			l.advanceN(len(op))
			return l.significantToken(TokenOp, start)
		}
	}

	ch := l.peek()
	if strings.IndexByte(singleOps, ch) >= 0 {
		switch ch {
		case '(', '[', '{':
			l.depth++
		case ')', ']', '}':
			if l.depth > 0 {
				l.depth--
			}
		}
		l.advance()
		return l.significantToken(TokenOp, start)
	}

	l.advance()
	return l.significantToken(TokenError, start)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	return Token{
		Kind: kind,
		Text: string(l.input[start.Offset:l.pos]),
		Pos:  start,
		Line: l.sourceLine(start.Line),
	}
}

func (l *Lexer) significantToken(kind TokenKind, start Position) Token {
	l.significant = true
	return l.token(kind, start)
}

// Tokenize materializes the full token stream for one file, ending with an
// EOF token.
func Tokenize(input []byte, file string) []Token {
	lexer := NewLexer(input, file)
	var tokens []Token
	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isStringQuote(ch byte) bool {
	return ch == '\'' || ch == '"'
}

func isStringPrefixChar(ch byte) bool {
	switch ch {
	case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
		return true
	}
	return false
}

func isNameStart(ch byte) bool {
	if ch >= 128 {
		r, _ := utf8.DecodeRune([]byte{ch})
		return unicode.IsLetter(r) || r == '_'
	}
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isNameContinue(ch byte) bool {
	return isNameStart(ch) || isDigit(ch)
}
