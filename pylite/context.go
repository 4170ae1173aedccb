package pylite

import (
	"io"
	"strings"
)

// Context carries the single piece of ambient state evaluation needs
// beyond the environment and the AST itself: where print output goes.
// Stringify needs a Context too, since it calls __str__ methods which
// may themselves print: Stringify runs them against the caller's
// Context, while StringifyIsolated runs them against a private
// buffering Context so that their output never reaches the real sink.
type Context interface {
	Output() io.Writer
}

// StdContext writes print output to a real sink, normally the
// interpreter's configured stdout.
type StdContext struct {
	out io.Writer
}

func NewStdContext(out io.Writer) *StdContext {
	return &StdContext{out: out}
}

func (c *StdContext) Output() io.Writer { return c.out }

// bufferContext captures output into an in-memory buffer instead of a
// real sink. StringifyIsolated uses one so that a __str__ method's
// side-effect prints don't reach the user.
type bufferContext struct {
	buf strings.Builder
}

func newBufferContext() *bufferContext {
	return &bufferContext{}
}

func (c *bufferContext) Output() io.Writer { return &c.buf }

func (c *bufferContext) String() string { return c.buf.String() }
