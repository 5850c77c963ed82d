package lint

import (
	"fmt"
	"strconv"

	"github.com/lgastako/loglint/python"
)

type stateKind int

const (
	stateInitial stateKind = iota
	statePossibleLogger
	stateFormatString
	stateCountingArgs
	stateUnreachable
	stateEnd
)

// transition names the next state plus any constructor arguments it needs.
type transition struct {
	target   stateKind
	expected int
	found    int
}

type state interface {
	process(*Buffer) transition
}

var loggerNames = map[string]bool{
	"logger": true,
	"log":    true,
	"LOG":    true,
	"LOGGER": true,
}

var loggerMethods = map[string]bool{
	"debug":     true,
	"info":      true,
	"warn":      true,
	"error":     true,
	"exception": true,
	"critical":  true,
}

// stateCore is the bookkeeping shared by every state: which tokens this
// state instance has consumed but not committed, and where each of them
// started, so the buffer can be rewound exactly.
type stateCore struct {
	file     string
	cfg      Config
	sink     Sink
	consumed []python.Token
	marks    []int
}

func (s *stateCore) consume(b *Buffer) (python.Token, error) {
	mark := b.Mark()
	tok, err := b.Next()
	if err != nil {
		return python.Token{}, err
	}
	s.marks = append(s.marks, mark)
	s.consumed = append(s.consumed, tok)
	return tok, nil
}

// rewind un-consumes the most recently consumed token.
func (s *stateCore) rewind(b *Buffer) {
	n := len(s.marks)
	if n == 0 {
		return
	}
	b.Reset(s.marks[n-1])
	s.marks = s.marks[:n-1]
	s.consumed = s.consumed[:n-1]
}

// rewindAll restores the buffer to its contents before this state consumed
// anything.
func (s *stateCore) rewindAll(b *Buffer) {
	if len(s.marks) == 0 {
		return
	}
	b.Reset(s.marks[0])
	s.marks = s.marks[:0]
	s.consumed = s.consumed[:0]
}

func (s *stateCore) current() python.Token {
	if len(s.consumed) == 0 {
		return python.Token{}
	}
	return s.consumed[len(s.consumed)-1]
}

func (s *stateCore) report(severity Severity, msg string) {
	tok := s.current()
	s.sink.Emit(Finding{
		Severity:   severity,
		Message:    msg,
		File:       s.file,
		Line:       tok.Pos.Line,
		Column:     tok.Pos.Column,
		SourceLine: tok.Line,
	})
}

func (s *stateCore) errorf(format string, args ...any) {
	s.report(SeverityError, fmt.Sprintf(format, args...))
}

func (s *stateCore) warn(msg string) {
	if s.cfg.SuppressWarnings {
		return
	}
	s.report(SeverityWarning, msg)
}

// initialState discards tokens until it sees one of the known logger
// identifiers. It never reports anything.
type initialState struct {
	stateCore
}

func (s *initialState) process(b *Buffer) transition {
	tok, err := s.consume(b)
	if err != nil {
		return transition{target: stateEnd}
	}
	if tok.Kind == python.TokenName && loggerNames[tok.Text] {
		return transition{target: statePossibleLogger}
	}
	return transition{target: stateInitial}
}

// possibleLoggerState confirms the shape <logger> . <method> ( <string>.
// Any mismatch rewinds everything it consumed and resumes scanning right
// after the logger identifier.
type possibleLoggerState struct {
	stateCore
}

func (s *possibleLoggerState) process(b *Buffer) transition {
	tok, err := s.consume(b)
	if err != nil || !tok.IsOp(".") {
		return s.abort(b)
	}

	tok, err = s.consume(b)
	if err != nil || tok.Kind != python.TokenName || !loggerMethods[tok.Text] {
		return s.abort(b)
	}

	tok, err = s.consume(b)
	if err != nil || !tok.IsOp("(") {
		return s.abort(b)
	}

	tok, err = s.consume(b)
	if err != nil || tok.Kind != python.TokenString {
		return s.abort(b)
	}

	// Leave the format string for the next state to reconsume.
	s.rewind(b)
	return transition{target: stateFormatString}
}

func (s *possibleLoggerState) abort(b *Buffer) transition {
	s.rewindAll(b)
	return transition{target: stateInitial}
}

// formatStringState counts the % specifiers in the format string,
// accumulating across adjacent string literals and "fmt" * N repetition,
// then decides whether argument counting is needed.
type formatStringState struct {
	stateCore
}

func (s *formatStringState) process(b *Buffer) transition {
	tok, err := s.consume(b)
	if err != nil {
		return transition{target: stateEnd}
	}
	count := countSpecifiers(tok.Text)

lookahead:
	for {
		tok, err = s.consume(b)
		if err != nil {
			return transition{target: stateEnd}
		}
		switch {
		case tok.Kind == python.TokenString:
			count += countSpecifiers(tok.Text)
		case tok.IsOp("*"):
			tok, err = s.consume(b)
			if err != nil {
				return transition{target: stateEnd}
			}
			if n, ok := intValue(tok); ok {
				count *= n
				continue
			}
			if count == 0 {
				// No specifiers to repeat, e.g. '-' * width.
				break lookahead
			}
			s.warn("Can't evaluate multiplied format string")
			break lookahead
		default:
			s.rewind(b)
			break lookahead
		}
	}

	if count > 0 {
		return transition{target: stateCountingArgs, expected: count}
	}

	// No specifiers: the only well-formed continuation is an immediate
	// close paren. Anything else means extra arguments, which
	// CountingArgs will count and report.
	tok, err = s.consume(b)
	if err != nil {
		return transition{target: stateEnd}
	}
	if tok.IsOp(")") {
		return transition{target: stateInitial}
	}
	s.rewind(b)
	return transition{target: stateCountingArgs}
}

// countSpecifiers counts unescaped % characters; %% is an escaped percent
// and contributes nothing. Width, precision and name qualifiers are not
// interpreted, so %5.2f and %(name)s each count once.
func countSpecifiers(text string) int {
	count := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '%' {
			continue
		}
		if i+1 < len(text) && text[i+1] == '%' {
			i++
			continue
		}
		count++
	}
	return count
}

func intValue(tok python.Token) (int, bool) {
	if tok.Kind != python.TokenNumber {
		return 0, false
	}
	n, err := strconv.Atoi(tok.Text)
	if err != nil {
		return 0, false
	}
	return n, true
}

// countingArgsState walks the argument list, counting top-level arguments
// while tracking nested parens, and reports a mismatch against the
// expected specifier count.
type countingArgsState struct {
	stateCore
	expected int
	found    int
}

func (s *countingArgsState) process(b *Buffer) transition {
	openParens := 0

	tok, err := s.consume(b)
	if err != nil {
		return transition{target: stateEnd}
	}

	switch {
	case tok.IsOp(")"):
		// The call closed before any argument appeared.
		s.errorf("Logger statement has %d format specifiers but %d argument(s).", s.expected, s.found)
		return transition{target: stateInitial}

	case tok.IsOp("%"):
		if !s.cfg.IgnorePercentFormats {
			s.report(SeverityError, "Logger statement uses % operator for formatting instead of letting logger handle it.")
		}
		return transition{target: stateInitial}

	case tok.IsOp("."):
		next, err := s.consume(b)
		if err != nil {
			return transition{target: stateEnd}
		}
		if next.IsName("format") {
			// Chained .format() call; validating it is out of scope.
			return transition{target: stateInitial}
		}
		// Only the token after the dot goes back; the dot itself stays
		// consumed and stands in as the first argument token below.
		// TODO: restore the dot as well; the current behavior is pinned
		// by a regression test until that change is made deliberately.
		s.rewind(b)

	case tok.IsOp("+"):
		if _, err := s.consume(b); err != nil {
			return transition{target: stateEnd}
		}
		s.warn("Can't handle added (+) format strings (yet)")
		return transition{target: stateInitial}
	}

	// The token just consumed starts the first argument.
	s.found++

counting:
	for {
		tok, err = s.consume(b)
		if err != nil {
			return transition{target: stateEnd}
		}
		switch {
		case tok.IsOp(",") && openParens == 0:
			next, err := s.consume(b)
			if err != nil {
				return transition{target: stateEnd}
			}
			s.rewind(b)
			// A comma directly before the close paren is a trailing
			// comma, not a new argument.
			if !next.IsOp(")") {
				s.found++
			}
		case tok.IsOp(")"):
			if openParens > 0 {
				openParens--
			} else {
				break counting
			}
		case tok.IsOp("("):
			openParens++
		}
	}

	if s.expected != s.found {
		s.errorf("Logger statement has %d format specifiers but %d argument(s).", s.expected, s.found)
	}
	return transition{target: stateInitial}
}

// unreachableState exists so that a defective transition still produces a
// diagnostic instead of a panic. No valid input reaches it.
type unreachableState struct {
	stateCore
}

func (s *unreachableState) process(b *Buffer) transition {
	s.report(SeverityInternal, "scanner entered an unreachable state")
	return transition{target: stateEnd}
}
