package eval

import "github.com/leinonen/golisp/internal/value"

func builtinList(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	return value.NewList(args...), nil
}

func builtinFirst(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	switch v := args[0].(type) {
	case value.Symbol:
		if v == value.SymNil {
			return value.SymNil, nil
		}
		return nil, value.NewError(NotASequence, v)
	case *value.List:
		return v.First(), nil
	case value.String:
		runes := []rune(v)
		if len(runes) == 0 {
			return value.SymNil, nil
		}
		return value.String(string(runes[0])), nil
	default:
		return nil, value.NewError(NotASequence, v)
	}
}

func builtinLast(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	switch v := args[0].(type) {
	case value.Symbol:
		if v == value.SymNil {
			return value.SymNil, nil
		}
		return nil, value.NewError(NotASequence, v)
	case *value.List:
		elems := v.Slice()
		if len(elems) == 0 {
			return value.SymNil, nil
		}
		return elems[len(elems)-1], nil
	case value.String:
		runes := []rune(v)
		if len(runes) == 0 {
			return value.SymNil, nil
		}
		return value.String(string(runes[len(runes)-1])), nil
	default:
		return nil, value.NewError(NotASequence, v)
	}
}

func builtinRest(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	switch v := args[0].(type) {
	case value.Symbol:
		if v == value.SymNil {
			return value.SymNil, nil
		}
		return nil, value.NewError(NotASequence, v)
	case *value.List:
		return v.Rest(), nil
	case value.String:
		runes := []rune(v)
		if len(runes) == 0 {
			return value.String(""), nil
		}
		return value.String(string(runes[1:])), nil
	default:
		return nil, value.NewError(NotASequence, v)
	}
}

func builtinNth(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 2 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	idx, ok := args[1].(value.Int)
	if !ok {
		return nil, value.NewError(NotANumber, args[1])
	}
	i := int(idx)
	switch v := args[0].(type) {
	case *value.List:
		elems := v.Slice()
		if i < 0 || i >= len(elems) {
			return nil, value.NewError(InvalidIndex, args[1])
		}
		return elems[i], nil
	case value.String:
		runes := []rune(v)
		if i < 0 || i >= len(runes) {
			return nil, value.NewError(InvalidIndex, args[1])
		}
		return value.String(string(runes[i])), nil
	default:
		return nil, value.NewError(NotASequence, v)
	}
}

func builtinCount(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	var n int
	switch v := args[0].(type) {
	case *value.List:
		n = v.Len()
	case value.String:
		n = len([]rune(v))
	case *value.Table:
		n = v.Count()
	case value.Symbol:
		if v != value.SymNil {
			return nil, value.NewError(NotASequence, v)
		}
		n = 0
	default:
		return nil, value.NewError(NotASequence, v)
	}
	if n > int(^uint32(0)>>1) {
		return nil, value.NewError(Overflow, args[0])
	}
	return value.Int(int32(n)), nil
}

func builtinMap(args []value.Value, env *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 2 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	seq, ok := args[1].(*value.List)
	if !ok {
		return nil, value.NewError(NotASequence, args[1])
	}
	elems := seq.Slice()
	result := make([]value.Value, len(elems))
	for i, e := range elems {
		v, err := applyFn(args[0], []value.Value{e}, env)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return value.NewList(result...), nil
}
