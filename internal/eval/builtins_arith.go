package eval

import "github.com/leinonen/golisp/internal/value"

func intsOf(args []value.Value) ([]int32, *value.EvalError) {
	out := make([]int32, len(args))
	for i, a := range args {
		n, ok := a.(value.Int)
		if !ok {
			return nil, value.NewError(NotANumber, a)
		}
		out[i] = int32(n)
	}
	return out, nil
}

func builtinAdd(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	ns, err := intsOf(args)
	if err != nil {
		return nil, err
	}
	var sum int32
	for _, n := range ns {
		sum += n
	}
	return value.Int(sum), nil
}

func builtinSub(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	ns, err := intsOf(args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return value.Int(0), nil
	}
	if len(ns) == 1 {
		return value.Int(-ns[0]), nil
	}
	result := ns[0]
	for _, n := range ns[1:] {
		result -= n
	}
	return value.Int(result), nil
}

func builtinMul(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	ns, err := intsOf(args)
	if err != nil {
		return nil, err
	}
	product := int32(1)
	for _, n := range ns {
		product *= n
	}
	return value.Int(product), nil
}

func builtinDiv(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	ns, err := intsOf(args)
	if err != nil {
		return nil, err
	}
	if len(ns) != 2 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	if ns[1] == 0 {
		return nil, value.NewError(DivideByZero)
	}
	return value.Int(ns[0] / ns[1]), nil
}

func builtinMod(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	ns, err := intsOf(args)
	if err != nil {
		return nil, err
	}
	if len(ns) != 2 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	if ns[1] == 0 {
		return nil, value.NewError(DivideByZero)
	}
	return value.Int(ns[0] % ns[1]), nil
}
