package eval

import "github.com/leinonen/golisp/internal/value"

func builtinAssoc(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) == 0 || len(args)%2 != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	t, ok := args[0].(*value.Table)
	if !ok {
		return nil, value.NewError(NotATable, args[0])
	}
	return t.Assoc(args[1:]...), nil
}

func builtinDissoc(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) == 0 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	t, ok := args[0].(*value.Table)
	if !ok {
		return nil, value.NewError(NotATable, args[0])
	}
	return t.Dissoc(args[1:]...), nil
}

func builtinGet(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 2 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	t, ok := args[0].(*value.Table)
	if !ok {
		return nil, value.NewError(NotATable, args[0])
	}
	return t.Get(args[1]), nil
}

func builtinKeys(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	t, ok := args[0].(*value.Table)
	if !ok {
		return nil, value.NewError(NotATable, args[0])
	}
	return value.NewList(t.Keys()...), nil
}

func builtinValues(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	t, ok := args[0].(*value.Table)
	if !ok {
		return nil, value.NewError(NotATable, args[0])
	}
	return value.NewList(t.Values()...), nil
}

func builtinContains(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 2 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	t, ok := args[0].(*value.Table)
	if !ok {
		return nil, value.NewError(NotATable, args[0])
	}
	return boolValue(t.Contains(args[1])), nil
}
