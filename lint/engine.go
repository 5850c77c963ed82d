package lint

import (
	"github.com/lgastako/loglint/python"
)

// Engine drives the recognizer over one file's token buffer. It holds no
// cross-file state; create one per file.
type Engine struct {
	file string
	cfg  Config
	sink Sink
}

func NewEngine(file string, cfg Config, sink Sink) *Engine {
	return &Engine{file: file, cfg: cfg, sink: sink}
}

// Run processes the buffer to completion, constructing each state from the
// previous state's transition until End is reached.
func (e *Engine) Run(b *Buffer) {
	next := transition{target: stateInitial}
	for next.target != stateEnd {
		next = e.newState(next).process(b)
	}
}

func (e *Engine) newState(t transition) state {
	core := stateCore{file: e.file, cfg: e.cfg, sink: e.sink}
	switch t.target {
	case stateInitial:
		return &initialState{core}
	case statePossibleLogger:
		return &possibleLoggerState{core}
	case stateFormatString:
		return &formatStringState{core}
	case stateCountingArgs:
		return &countingArgsState{stateCore: core, expected: t.expected, found: t.found}
	default:
		return &unreachableState{core}
	}
}

// ScanSource tokenizes src and runs the engine over it. This is the whole
// per-file pipeline; callers that already hold a token slice can build a
// Buffer themselves.
func ScanSource(file string, src []byte, cfg Config, sink Sink) {
	tokens := python.Tokenize(src, file)
	NewEngine(file, cfg, sink).Run(NewBuffer(tokens))
}
