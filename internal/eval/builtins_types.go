package eval

import "github.com/leinonen/golisp/internal/value"

func builtinType(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	return value.TypeName(args[0]), nil
}

func typePredicate(want value.Symbol) func([]value.Value, *value.Environment) (value.Value, *value.EvalError) {
	return func(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
		if len(args) != 1 {
			return nil, value.NewError(InvalidArgs, value.NewList(args...))
		}
		return boolValue(value.TypeName(args[0]) == want), nil
	}
}
