package pylite

import (
	"context"
	"strings"
	"testing"
)

func runScript(t *testing.T, src string) string {
	t.Helper()
	var out strings.Builder
	engine, err := NewEngine(Config{Output: &out})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if _, err := engine.Run(context.Background(), src); err != nil {
		t.Fatalf("Run(%q): %v", src, err)
	}
	return out.String()
}

func TestScenarioS1ArithmeticPrecedence(t *testing.T) {
	if got := runScript(t, "print 1 + 2 * 3\n"); got != "7\n" {
		t.Errorf("got %q, want %q", got, "7\n")
	}
}

func TestScenarioS2StringConcatenation(t *testing.T) {
	src := "x = \"hi\"\nprint x + \" world\"\n"
	if got := runScript(t, src); got != "hi world\n" {
		t.Errorf("got %q, want %q", got, "hi world\n")
	}
}

func TestScenarioS3IfElse(t *testing.T) {
	src := "if 0:\n  print \"a\"\nelse:\n  print \"b\"\n"
	if got := runScript(t, src); got != "b\n" {
		t.Errorf("got %q, want %q", got, "b\n")
	}
}

func TestScenarioS4DunderStr(t *testing.T) {
	src := "class A:\n  def __str__(self):\n    return \"hello\"\na = A()\nprint a\n"
	if got := runScript(t, src); got != "hello\n" {
		t.Errorf("got %q, want %q", got, "hello\n")
	}
}

func TestScenarioS5InheritanceOverride(t *testing.T) {
	src := "class A:\n  def f(self):\n    return 1\n" +
		"class B(A):\n  def f(self):\n    return 2\n" +
		"print B().f() A().f()\n"
	if got := runScript(t, src); got != "2 1\n" {
		t.Errorf("got %q, want %q", got, "2 1\n")
	}
}

func TestScenarioS6NonLocalReturn(t *testing.T) {
	src := "class C:\n  def g(self, n):\n    if n:\n      return \"yes\"\n    return \"no\"\n" +
		"print C().g(1) C().g(0)\n"
	if got := runScript(t, src); got != "yes no\n" {
		t.Errorf("got %q, want %q", got, "yes no\n")
	}
}

// TestReturnSkipsTrailingStatements covers property 8: statements after
// Return do not execute, and the unwind reaches the enclosing MethodBody
// through nested IfElse/Compound.
func TestReturnSkipsTrailingStatements(t *testing.T) {
	src := "class C:\n" +
		"  def f(self):\n" +
		"    if True:\n" +
		"      return 1\n" +
		"      print \"unreachable\"\n" +
		"    print \"also unreachable\"\n" +
		"print C().f()\n"
	if got := runScript(t, src); got != "1\n" {
		t.Errorf("got %q, want %q", got, "1\n")
	}
}

func TestUnknownVariableIsRuntimeError(t *testing.T) {
	var out strings.Builder
	engine := MustNewEngine(Config{Output: &out})
	_, err := engine.Run(context.Background(), "print nope\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	re, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("got %T, want *RuntimeError", err)
	}
	if re.Kind != errUnknownNameVariable {
		t.Errorf("got kind %q, want %q", re.Kind, errUnknownNameVariable)
	}
}

func TestEngineGlobalPersistsAcrossRuns(t *testing.T) {
	var out strings.Builder
	engine := MustNewEngine(Config{Output: &out})
	ctx := context.Background()

	if _, err := engine.Run(ctx, "x = 41\n"); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if _, err := engine.Run(ctx, "print x + 1\n"); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if got := out.String(); got != "42\n" {
		t.Errorf("got %q, want %q", got, "42\n")
	}
}

func TestEngineRunHonorsCancelledContext(t *testing.T) {
	engine := MustNewEngine(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Run(ctx, "print 1\n")
	if err == nil {
		t.Fatal("expected the cancelled context's error")
	}
}

func TestCheckReportsSyntaxErrorsWithoutExecuting(t *testing.T) {
	var out strings.Builder
	engine := MustNewEngine(Config{Output: &out})
	_, err := engine.Parse("if 1\n  print 1\n")
	if err == nil {
		t.Fatal("expected a parse error for a missing ':'")
	}
	if out.String() != "" {
		t.Errorf("Parse must not execute anything, got output %q", out.String())
	}
}
