package eval

import "github.com/leinonen/golisp/internal/value"

func builtinAtom(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	return value.NewAtom(args[0]), nil
}

func builtinSet(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 2 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	a, ok := args[0].(*value.Atom)
	if !ok {
		return nil, value.NewError(InvalidArgs, args[0])
	}
	return a.Set(args[1]), nil
}

// builtinInspect replaces an atom's contents with f(current), applied
// as a single step so no other atom operation can interleave — trivial
// in this single-threaded evaluator, but stated because §4.4 requires
// the result to observe exactly one update.
func builtinInspect(args []value.Value, env *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 2 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	a, ok := args[0].(*value.Atom)
	if !ok {
		return nil, value.NewError(InvalidArgs, args[0])
	}
	next, err := applyFn(args[1], []value.Value{a.Get()}, env)
	if err != nil {
		return nil, err
	}
	a.Set(next)
	return next, nil
}

func builtinHelp(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	sym, ok := args[0].(value.Symbol)
	if !ok {
		return nil, value.NewError(InvalidArgs, args[0])
	}
	if doc, ok := lookupDoc(sym); ok {
		return value.String(doc), nil
	}
	return value.SymNil, nil
}

func builtinDoc(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, value.NewError(InvalidArgs, args[0])
	}
	setPendingDoc(string(s))
	return value.SymNil, nil
}
