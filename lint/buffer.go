package lint

import (
	"errors"

	"github.com/lgastako/loglint/python"
)

// ErrExhausted is returned by Buffer.Next when no tokens remain.
var ErrExhausted = errors.New("token buffer exhausted")

// Buffer is a cursor over an immutable token slice. States consume tokens
// through Next and backtrack by resetting the cursor to an earlier mark,
// which restores the buffer to exactly its prior contents.
type Buffer struct {
	tokens []python.Token
	pos    int
}

func NewBuffer(tokens []python.Token) *Buffer {
	return &Buffer{tokens: tokens}
}

// Next returns the next significant token, skipping insignificant kinds
// (indentation, blank newlines, comments, continuations). It returns
// ErrExhausted once the underlying slice is spent.
func (b *Buffer) Next() (python.Token, error) {
	for b.pos < len(b.tokens) {
		tok := b.tokens[b.pos]
		b.pos++
		if tok.Kind.Insignificant() {
			continue
		}
		return tok, nil
	}
	return python.Token{}, ErrExhausted
}

// Mark returns the current cursor position for a later Reset.
func (b *Buffer) Mark() int {
	return b.pos
}

// Reset rewinds the cursor to a previously obtained mark.
func (b *Buffer) Reset(mark int) {
	b.pos = mark
}

// Len reports how many tokens remain from the cursor, counting
// insignificant ones.
func (b *Buffer) Len() int {
	return len(b.tokens) - b.pos
}
