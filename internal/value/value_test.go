package value

import "testing"

func TestSelfEvaluation(t *testing.T) {
	// Int, String, Function, Lambda, and Atom all evaluate to
	// themselves in the evaluator; at the value-package level this
	// test only checks that each one renders a non-empty String form.
	vals := []Value{
		Int(42),
		String("hi"),
		&BuiltinFunction{Name: "f", Fn: func([]Value, *Environment) (Value, *EvalError) { return nil, nil }},
		&Lambda{Params: Symbol("x"), Body: Symbol("x")},
		NewAtom(Int(1)),
	}
	for _, v := range vals {
		if v.String() == "" {
			t.Errorf("%#v: expected non-empty String()", v)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{SymFalse, false},
		{SymNil, false},
		{SymTrue, true},
		{Int(0), true},
		{String(""), true},
		{NewList(), true},
	}
	for _, tt := range tests {
		if got := IsTruthy(tt.v); got != tt.want {
			t.Errorf("IsTruthy(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestEqualityReflexiveSymmetric(t *testing.T) {
	vals := []Value{
		Int(3),
		String("abc"),
		Symbol("x"),
		NewList(Int(1), Int(2)),
		NewTableWithPairs(Symbol("a"), Int(1)),
	}
	for _, v := range vals {
		if !Equal(v, v) {
			t.Errorf("Equal(%v, %v) = false, want true (reflexive)", v, v)
		}
	}

	a := NewList(Int(1), Int(2))
	b := NewList(Int(1), Int(2))
	if Equal(a, b) != Equal(b, a) {
		t.Errorf("Equal not symmetric for %v, %v", a, b)
	}
}

func TestListEqualityElementwise(t *testing.T) {
	a := NewList(Int(1), Int(2), Int(3))
	b := NewList(Int(1), Int(2), Int(3))
	c := NewList(Int(1), Int(2))
	if !Equal(a, b) {
		t.Errorf("expected equal lists")
	}
	if Equal(a, c) {
		t.Errorf("expected unequal lists of different length")
	}
}

func TestTableSetEquality(t *testing.T) {
	a := NewTableWithPairs(Symbol("a"), Int(1), Symbol("b"), Int(2))
	b := NewTableWithPairs(Symbol("b"), Int(2), Symbol("a"), Int(1))
	if !Equal(a, b) {
		t.Errorf("expected tables with same entries in different insertion order to be equal")
	}
}

func TestTableAssocDissocImmutable(t *testing.T) {
	t0 := NewTable()
	t1 := t0.Assoc(Symbol("k"), Int(1))
	if t0.Count() != 0 {
		t.Errorf("Assoc must not mutate the receiver")
	}
	if t1.Count() != 1 || !Equal(t1.Get(Symbol("k")), Int(1)) {
		t.Errorf("Assoc did not add the entry")
	}
	t2 := t1.Dissoc(Symbol("k"))
	if t1.Count() != 1 {
		t.Errorf("Dissoc must not mutate the receiver")
	}
	if t2.Count() != 0 {
		t.Errorf("Dissoc did not remove the entry")
	}
}

func TestConsIsO1Share(t *testing.T) {
	base := NewList(Int(2), Int(3))
	full := Cons(Int(1), base)
	if full.First() != Int(1) || full.Rest() != base {
		t.Errorf("Cons did not prepend sharing the original tail")
	}
}

func TestIsError(t *testing.T) {
	err := NewError("DivideByZero")
	if !IsError(err.Value) {
		t.Errorf("expected NewError's Value to be error-shaped")
	}
	if IsError(NewList(Symbol("not-err"))) {
		t.Errorf("expected non-err-headed list to not be error-shaped")
	}
}

func TestEnvironmentLookupChain(t *testing.T) {
	root := NewEnvironment(nil)
	root.Set("x", Int(1))
	child := NewEnvironment(root)
	child.Set("y", Int(2))

	if v, ok := child.Get("x"); !ok || v != Int(1) {
		t.Errorf("expected child to see parent binding x")
	}
	if v, ok := child.Get("y"); !ok || v != Int(2) {
		t.Errorf("expected child to see its own binding y")
	}
	if _, ok := root.Get("y"); ok {
		t.Errorf("expected parent to not see child's binding y")
	}
}
