package python

import (
	"testing"
)

func TestLexerNames(t *testing.T) {
	tests := []string{
		"foo",
		"Bar",
		"_private",
		"snake_case",
		"with123Numbers",
		"logger",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lexer := NewLexer([]byte(input), "test.py")
			tok := lexer.NextToken()
			if tok.Kind != TokenName {
				t.Errorf("Kind = %v, want %v", tok.Kind, TokenName)
			}
			if tok.Text != input {
				t.Errorf("Text = %q, want %q", tok.Text, input)
			}
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []string{
		"0",
		"123",
		"1_000_000",
		"3.14",
		"1e10",
		"1.5e-10",
		"1.5E+10",
		"0x1F",
		"0o777",
		"0b1010",
		"2j",
		".5",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lexer := NewLexer([]byte(input), "test.py")
			tok := lexer.NextToken()
			if tok.Kind != TokenNumber {
				t.Errorf("Kind = %v, want %v", tok.Kind, TokenNumber)
			}
			if tok.Text != input {
				t.Errorf("Text = %q, want %q", tok.Text, input)
			}
		})
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []string{
		`'hello'`,
		`"hello"`,
		`''`,
		`'with \'escapes\''`,
		`"with \"escapes\""`,
		`r'raw \d+'`,
		`b"bytes"`,
		`u'unicode'`,
		`f'formatted'`,
		`rb'raw bytes'`,
		`'''triple'''`,
		`"""triple"""`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lexer := NewLexer([]byte(input), "test.py")
			tok := lexer.NextToken()
			if tok.Kind != TokenString {
				t.Errorf("Kind = %v, want %v", tok.Kind, TokenString)
			}
			if tok.Text != input {
				t.Errorf("Text = %q, want %q", tok.Text, input)
			}
		})
	}
}

func TestLexerMultilineTripleString(t *testing.T) {
	input := "'''line1\nline2'''"
	lexer := NewLexer([]byte(input), "test.py")
	tok := lexer.NextToken()
	if tok.Kind != TokenString {
		t.Errorf("Kind = %v, want %v", tok.Kind, TokenString)
	}
	if tok.Text != input {
		t.Errorf("Text = %q, want %q", tok.Text, input)
	}

	tok = lexer.NextToken()
	if tok.Kind != TokenEOF {
		t.Errorf("Kind after string = %v, want %v", tok.Kind, TokenEOF)
	}
}

func TestLexerOperators(t *testing.T) {
	tests := []string{
		"(", ")", "[", "]", "{", "}",
		",", ":", ".", ";", "@", "=",
		"+", "-", "*", "/", "%", "&", "|", "^", "~", "<", ">",
		"**", "//", ">>", "<<", "<=", ">=", "==", "!=",
		"->", ":=",
		"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
		"**=", "//=", ">>=", "<<=",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lexer := NewLexer([]byte(input), "test.py")
			tok := lexer.NextToken()
			if tok.Kind != TokenOp {
				t.Errorf("Kind = %v, want %v", tok.Kind, TokenOp)
			}
			if tok.Text != input {
				t.Errorf("Text = %q, want %q", tok.Text, input)
			}
		})
	}
}

func TestLexerComment(t *testing.T) {
	lexer := NewLexer([]byte("# a comment"), "test.py")
	tok := lexer.NextToken()
	if tok.Kind != TokenComment {
		t.Errorf("Kind = %v, want %v", tok.Kind, TokenComment)
	}
	if tok.Text != "# a comment" {
		t.Errorf("Text = %q", tok.Text)
	}
}

func TestLexerIndent(t *testing.T) {
	lexer := NewLexer([]byte("    x"), "test.py")
	tok := lexer.NextToken()
	if tok.Kind != TokenIndent {
		t.Errorf("Kind = %v, want %v", tok.Kind, TokenIndent)
	}
	tok = lexer.NextToken()
	if tok.Kind != TokenName || tok.Text != "x" {
		t.Errorf("token = %v %q, want Name \"x\"", tok.Kind, tok.Text)
	}
}

func TestLexerContinuation(t *testing.T) {
	lexer := NewLexer([]byte("x \\\ny"), "test.py")

	expected := []TokenKind{TokenName, TokenContinuation, TokenName, TokenEOF}
	for i, want := range expected {
		tok := lexer.NextToken()
		if tok.Kind != want {
			t.Errorf("Token %d: Kind = %v, want %v", i, tok.Kind, want)
		}
	}
}

func TestLexerLogicalNewline(t *testing.T) {
	lexer := NewLexer([]byte("x = 1\n"), "test.py")

	expected := []TokenKind{TokenName, TokenOp, TokenNumber, TokenNewline, TokenEOF}
	for i, want := range expected {
		tok := lexer.NextToken()
		if tok.Kind != want {
			t.Errorf("Token %d: Kind = %v, want %v", i, tok.Kind, want)
		}
	}
}

func TestLexerBlankLineIsNL(t *testing.T) {
	lexer := NewLexer([]byte("\n"), "test.py")
	tok := lexer.NextToken()
	if tok.Kind != TokenNL {
		t.Errorf("Kind = %v, want %v", tok.Kind, TokenNL)
	}
}

func TestLexerNewlineInsideParensIsNL(t *testing.T) {
	input := "f(a,\n  b)\n"
	lexer := NewLexer([]byte(input), "test.py")

	expected := []TokenKind{
		TokenName,    // f
		TokenOp,      // (
		TokenName,    // a
		TokenOp,      // ,
		TokenNL,      // newline inside parens
		TokenIndent,  // leading spaces on line 2
		TokenName,    // b
		TokenOp,      // )
		TokenNewline, // logical end of statement
		TokenEOF,
	}
	for i, want := range expected {
		tok := lexer.NextToken()
		if tok.Kind != want {
			t.Errorf("Token %d: Kind = %v, want %v (text %q)", i, tok.Kind, want, tok.Text)
		}
	}
}

func TestLexerPositionTracking(t *testing.T) {
	lexer := NewLexer([]byte("foo\nbar"), "test.py")

	tok1 := lexer.NextToken()
	if tok1.Pos.Line != 1 || tok1.Pos.Column != 1 {
		t.Errorf("First token at (%d, %d), want (1, 1)", tok1.Pos.Line, tok1.Pos.Column)
	}

	lexer.NextToken() // newline

	tok2 := lexer.NextToken()
	if tok2.Pos.Line != 2 || tok2.Pos.Column != 1 {
		t.Errorf("Second token at (%d, %d), want (2, 1)", tok2.Pos.Line, tok2.Pos.Column)
	}
}

func TestLexerSourceLine(t *testing.T) {
	src := "x = 1\nlogger.debug('hi')\n"
	lexer := NewLexer([]byte(src), "test.py")

	var tok Token
	for {
		tok = lexer.NextToken()
		if tok.Kind == TokenEOF || (tok.Kind == TokenName && tok.Text == "logger") {
			break
		}
	}

	if tok.Line != "logger.debug('hi')" {
		t.Errorf("Line = %q, want %q", tok.Line, "logger.debug('hi')")
	}
}

func TestLexerAdjacentStrings(t *testing.T) {
	lexer := NewLexer([]byte(`"a " "b"`), "test.py")

	tok := lexer.NextToken()
	if tok.Kind != TokenString || tok.Text != `"a "` {
		t.Errorf("first = %v %q, want String %q", tok.Kind, tok.Text, `"a "`)
	}
	tok = lexer.NextToken()
	if tok.Kind != TokenString || tok.Text != `"b"` {
		t.Errorf("second = %v %q, want String %q", tok.Kind, tok.Text, `"b"`)
	}
}

func TestLexerSequence(t *testing.T) {
	input := "logger.debug('foo: %s', 1)"
	lexer := NewLexer([]byte(input), "test.py")

	expected := []struct {
		kind TokenKind
		text string
	}{
		{TokenName, "logger"},
		{TokenOp, "."},
		{TokenName, "debug"},
		{TokenOp, "("},
		{TokenString, "'foo: %s'"},
		{TokenOp, ","},
		{TokenNumber, "1"},
		{TokenOp, ")"},
		{TokenEOF, ""},
	}

	for i, want := range expected {
		tok := lexer.NextToken()
		if tok.Kind != want.kind {
			t.Errorf("Token %d: Kind = %v, want %v", i, tok.Kind, want.kind)
		}
		if tok.Text != want.text {
			t.Errorf("Token %d: Text = %q, want %q", i, tok.Text, want.text)
		}
	}
}

func TestTokenizeEndsWithEOF(t *testing.T) {
	tokens := Tokenize([]byte("x"), "test.py")
	if len(tokens) == 0 {
		t.Fatal("no tokens")
	}
	if tokens[len(tokens)-1].Kind != TokenEOF {
		t.Errorf("last token = %v, want %v", tokens[len(tokens)-1].Kind, TokenEOF)
	}
}

func TestLexerUnknownCharacter(t *testing.T) {
	lexer := NewLexer([]byte("?"), "test.py")
	tok := lexer.NextToken()
	if tok.Kind != TokenError {
		t.Errorf("Kind = %v, want %v", tok.Kind, TokenError)
	}
}
