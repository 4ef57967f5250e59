package eval

import "github.com/leinonen/golisp/internal/value"

func builtinEq(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) <= 1 {
		return boolValue(true), nil
	}
	for _, a := range args[1:] {
		if !value.Equal(args[0], a) {
			return boolValue(false), nil
		}
	}
	return boolValue(true), nil
}

func boolValue(b bool) value.Symbol {
	if b {
		return value.SymTrue
	}
	return value.SymFalse
}

func twoInts(args []value.Value) (int32, int32, *value.EvalError) {
	if len(args) != 2 {
		return 0, 0, value.NewError(InvalidArgs, value.NewList(args...))
	}
	ns, err := intsOf(args)
	if err != nil {
		return 0, 0, err
	}
	return ns[0], ns[1], nil
}

func builtinLt(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	a, b, err := twoInts(args)
	if err != nil {
		return nil, err
	}
	return boolValue(a < b), nil
}

func builtinLe(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	a, b, err := twoInts(args)
	if err != nil {
		return nil, err
	}
	return boolValue(a <= b), nil
}

func builtinGt(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	a, b, err := twoInts(args)
	if err != nil {
		return nil, err
	}
	return boolValue(a > b), nil
}

func builtinGe(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	a, b, err := twoInts(args)
	if err != nil {
		return nil, err
	}
	return boolValue(a >= b), nil
}

func builtinNot(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	return boolValue(!value.IsTruthy(args[0])), nil
}
