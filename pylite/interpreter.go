package pylite

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Config controls how an Engine executes a program.
type Config struct {
	// Output receives everything written by print statements. Defaults
	// to os.Stdout.
	Output io.Writer
}

// Engine parses and executes programs against a persistent global
// scope, so that successive calls to Run see each other's top-level
// class and variable definitions — the shape a REPL needs.
type Engine struct {
	config Config
	global *Closure
	ctx    Context
}

// NewEngine constructs an Engine with sane defaults.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return &Engine{
		config: cfg,
		global: NewClosure(),
		ctx:    NewStdContext(cfg.Output),
	}, nil
}

// MustNewEngine constructs an Engine or panics if the config is invalid.
func MustNewEngine(cfg Config) *Engine {
	engine, err := NewEngine(cfg)
	if err != nil {
		panic(err)
	}
	return engine
}

// Global exposes the engine's top-level scope, letting a host inspect
// or seed variables between runs.
func (e *Engine) Global() *Closure {
	return e.global
}

// Run lexes, parses, and executes source against the engine's global
// scope. The program runs as one Compound, so the result is None unless
// a top-level return statement supplies a value.
func (e *Engine) Run(ctx context.Context, source string) (Value, error) {
	select {
	case <-ctx.Done():
		return None, ctx.Err()
	default:
	}

	program, err := e.Parse(source)
	if err != nil {
		return None, err
	}

	out, err := program.Execute(e.global, e.ctx)
	if err != nil {
		return None, err
	}
	return out.Value.Get(), nil
}

// Parse lexes and parses source into a Node without executing it.
func (e *Engine) Parse(source string) (Node, error) {
	lex, err := NewLexer([]byte(source))
	if err != nil {
		return nil, err
	}
	p := NewParser(lex)
	return p.ParseProgram()
}

// ConfigSummary provides a human-readable description of the engine's
// configuration, mainly useful from a REPL's status line.
func (e *Engine) ConfigSummary() string {
	return fmt.Sprintf("output=%T", e.config.Output)
}
