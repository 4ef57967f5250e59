package eval

import (
	"testing"

	"github.com/leinonen/golisp/internal/reader"
	"github.com/leinonen/golisp/internal/value"
)

func evalString(t *testing.T, env *value.Environment, src string) value.Value {
	t.Helper()
	prog, err := reader.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll(%q): %v", src, err)
	}
	result, evalErr := Eval(prog, env)
	if evalErr != nil {
		t.Fatalf("Eval(%q): %s", src, value.Debug(evalErr.Value))
	}
	return result
}

func newTestEnv(t *testing.T) *value.Environment {
	t.Helper()
	env, err := NewRootEnvironment(nil)
	if err != nil {
		t.Fatalf("NewRootEnvironment: %v", err)
	}
	return env
}

func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"(+ 1 2 3)", "6"},
		{"((\\ (x y) (+ x y)) 3 4)", "7"},
		{"(let* (a 1 b (+ a 2)) (* a b))", "3"},
		{"(try* (/ 1 0) (catch* e (first (rest e))))", "DivideByZero"},
		{"`(1 ~(+ 1 1) 3)", "(1 2 3)"},
		{"(map (\\ (x) (* x x)) (list 1 2 3))", "(1 4 9)"},
		{"(count {a 1 b 2})", "2"},
	}
	for _, tt := range tests {
		env := newTestEnv(t)
		got := value.Debug(evalString(t, env, tt.src))
		if got != tt.want {
			t.Errorf("%s => %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestTailCallDoesNotOverflowHostStack(t *testing.T) {
	env := newTestEnv(t)
	evalString(t, env, `(def! count-down (\ (n) (if (= n 0) 0 (count-down (- n 1)))))`)
	got := evalString(t, env, "(count-down 100000)")
	if got != value.Int(0) {
		t.Fatalf("expected 0 after counting down, got %v", got)
	}
}

func TestConsAccumulatesThroughTailChain(t *testing.T) {
	env := newTestEnv(t)
	got := value.Debug(evalString(t, env, "(cons 1 (cons 2 (cons 3 (list))))"))
	if got != "(1 2 3)" {
		t.Errorf("got %s", got)
	}
}

func TestErrorShape(t *testing.T) {
	env := newTestEnv(t)
	got := evalString(t, env, `(try* (/ 1 0) (catch* e e))`)
	if !value.IsError(got) {
		t.Errorf("expected an error-shaped value, got %v", got)
	}
	if value.TypeName(got) != "err" {
		t.Errorf("expected type err, got %v", value.TypeName(got))
	}
}

func TestUnresolvedIdentifier(t *testing.T) {
	env := newTestEnv(t)
	_, err := Eval(value.Symbol("no-such-binding"), env)
	if err == nil || !value.IsError(err.Value) {
		t.Fatalf("expected UnresolvedIdentifier error")
	}
	kind := err.Value.(*value.List).Rest().First()
	if kind != value.Symbol(UnresolvedIdentifier) {
		t.Errorf("expected kind %s, got %v", UnresolvedIdentifier, kind)
	}
}

func TestDestructuringLetStar(t *testing.T) {
	env := newTestEnv(t)
	got := evalString(t, env, "(let* (x 5) x)")
	if got != value.Int(5) {
		t.Errorf("got %v", got)
	}
}

func TestQuasiquoteIdentityWithoutUnquote(t *testing.T) {
	env := newTestEnv(t)
	a := evalString(t, env, "`(1 2 3)")
	b := evalString(t, env, "(quote (1 2 3))")
	if !value.Equal(a, b) {
		t.Errorf("expected quasiquote with no unquotes to equal quote, got %v vs %v", a, b)
	}
}

func TestMacroReceivesUnevaluatedArgs(t *testing.T) {
	env := newTestEnv(t)
	evalString(t, env, `(def! my-quote (macro (\ (x) (list (quote quote) x))))`)
	got := evalString(t, env, "(my-quote (+ 1 2))")
	want := value.NewList(value.Symbol("+"), value.Int(1), value.Int(2))
	if !value.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPreludeDerivedForms(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		src  string
		want string
	}{
		{"(when true 1)", "1"},
		{"(when false 1)", "nil"},
		{"(unless false 2)", "2"},
		{"(cond false 1 true 2 3)", "2"},
		{"(and true true true)", "true"},
		{"(and true false true)", "false"},
		{"(or false false 5)", "5"},
		{"(filter (\\ (x) (> x 1)) (list 1 2 3))", "(2 3)"},
		{"(reduce (\\ (a b) (+ a b)) 0 (list 1 2 3))", "6"},
	}
	for _, tt := range tests {
		got := value.Debug(evalString(t, env, tt.src))
		if got != tt.want {
			t.Errorf("%s => %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestHelpReturnsBuiltinDoc(t *testing.T) {
	env := newTestEnv(t)
	got := evalString(t, env, "(help (quote +))")
	if got == value.SymNil {
		t.Errorf("expected a docstring for +, got nil")
	}
}
