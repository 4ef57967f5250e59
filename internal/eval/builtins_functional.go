package eval

import "github.com/leinonen/golisp/internal/value"

// applyFn calls fn (a Function or Lambda, non-macro) with already
// evaluated args, the way function application inside Eval does, so
// built-ins like `map` and `apply` share the same dispatch rules.
func applyFn(fn value.Value, args []value.Value, env *value.Environment) (value.Value, *value.EvalError) {
	switch f := fn.(type) {
	case *value.BuiltinFunction:
		return f.Fn(args, env)
	case *value.Lambda:
		callEnv := value.NewEnvironment(f.Env)
		if err := destructure(f.Params, value.NewList(args...), callEnv); err != nil {
			return nil, err
		}
		return Eval(f.Body, callEnv)
	default:
		return nil, value.NewError(NotAFunction, fn)
	}
}

func builtinApply(args []value.Value, env *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 2 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	l, ok := args[1].(*value.List)
	if !ok {
		return nil, value.NewError(NotAList, args[1])
	}
	return applyFn(args[0], l.Slice(), env)
}

func builtinEval(args []value.Value, env *value.Environment) (value.Value, *value.EvalError) {
	if len(args) == 0 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	if len(args) == 1 {
		return Eval(args[0], env)
	}
	result := make([]value.Value, len(args))
	for i, a := range args {
		v, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return value.NewList(result...), nil
}

func builtinMacro(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	switch f := args[0].(type) {
	case *value.BuiltinFunction:
		return f.AsMacro(), nil
	case *value.Lambda:
		return f.AsMacro(), nil
	default:
		return nil, value.NewError(NotAFunction, f)
	}
}
