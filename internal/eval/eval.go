// Package eval implements the tree-walking evaluator: the tail-call
// trampoline, the nine special forms plus cons, destructuring bind,
// quasiquote expansion, and the built-in registry installed by
// NewRootEnvironment.
package eval

import (
	"github.com/leinonen/golisp/internal/value"
)

// Eval evaluates expr against env, looping rather than recursing through
// every tail position so that self-tail-recursive lambdas, chained
// if/do/let* tails, and stacked cons accumulation run in O(1) host
// stack per level.
func Eval(expr value.Value, env *value.Environment) (value.Value, *value.EvalError) {
	var consPrefix []value.Value

	finish := func(v value.Value, err *value.EvalError) (value.Value, *value.EvalError) {
		if err != nil || len(consPrefix) == 0 {
			return v, err
		}
		l, ok := v.(*value.List)
		if !ok {
			return nil, value.NewError(NotAList, v)
		}
		for i := len(consPrefix) - 1; i >= 0; i-- {
			l = value.Cons(consPrefix[i], l)
		}
		return l, nil
	}

	for {
		switch v := expr.(type) {
		case value.Int, value.String, *value.BuiltinFunction, *value.Lambda, *value.Atom:
			return finish(v, nil)

		case value.Symbol:
			switch v {
			case value.SymTrue, value.SymFalse, value.SymNil:
				return finish(v, nil)
			}
			if val, ok := env.Get(v); ok {
				return finish(val, nil)
			}
			return finish(nil, value.NewError(UnresolvedIdentifier, v))

		case *value.Table:
			result := value.NewTable()
			for _, k := range v.Keys() {
				val, err := Eval(v.Get(k), env)
				if err != nil {
					return finish(nil, err)
				}
				result = result.Assoc(k, val)
			}
			return finish(result, nil)

		case *value.List:
			if v.IsEmpty() {
				return finish(v, nil)
			}

			if sym, ok := v.First().(value.Symbol); ok && isSpecialForm(sym) {
				if sym == "cons" {
					rest := v.Rest()
					if rest == nil || rest.Rest() == nil {
						return finish(nil, value.NewError(InvalidArgs, v))
					}
					headVal, err := Eval(rest.First(), env)
					if err != nil {
						return finish(nil, err)
					}
					consPrefix = append(consPrefix, headVal)
					expr = rest.Rest().First()
					continue
				}

				nextExpr, nextEnv, result, done, err := evalSpecialForm(sym, v.Rest(), env)
				if err != nil {
					return finish(nil, err)
				}
				if done {
					return finish(result, nil)
				}
				expr, env = nextExpr, nextEnv
				continue
			}

			head, err := Eval(v.First(), env)
			if err != nil {
				return finish(nil, err)
			}
			args := v.Rest()

			switch fn := head.(type) {
			case *value.BuiltinFunction:
				if fn.IsMacro {
					expansion, err := fn.Fn(sliceOf(args), env)
					if err != nil {
						return finish(nil, err)
					}
					expr = expansion
					continue
				}
				evaled, err := evalArgs(args, env)
				if err != nil {
					return finish(nil, err)
				}
				result, err := fn.Fn(evaled, env)
				if err != nil {
					return finish(nil, err)
				}
				return finish(result, nil)

			case *value.Lambda:
				if fn.IsMacro {
					callEnv := value.NewEnvironment(fn.Env)
					if err := destructure(fn.Params, value.NewList(sliceOf(args)...), callEnv); err != nil {
						return finish(nil, err)
					}
					expansion, err := Eval(fn.Body, callEnv)
					if err != nil {
						return finish(nil, err)
					}
					expr = expansion
					continue
				}
				evaled, err := evalArgs(args, env)
				if err != nil {
					return finish(nil, err)
				}
				callEnv := value.NewEnvironment(fn.Env)
				if err := destructure(fn.Params, value.NewList(evaled...), callEnv); err != nil {
					return finish(nil, err)
				}
				expr, env = fn.Body, callEnv
				continue

			default:
				return finish(nil, value.NewError(NotAFunction, head))
			}

		default:
			return finish(expr, nil)
		}
	}
}

func sliceOf(l *value.List) []value.Value {
	if l == nil {
		return nil
	}
	return l.Slice()
}

// evalArgs evaluates each element of args left-to-right.
func evalArgs(args *value.List, env *value.Environment) ([]value.Value, *value.EvalError) {
	elems := sliceOf(args)
	result := make([]value.Value, len(elems))
	for i, e := range elems {
		v, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

func isSpecialForm(sym value.Symbol) bool {
	switch sym {
	case `\`, "if", "quote", "quasiquote", "err", "let*", "def!", "do", "try*", "cons":
		return true
	}
	return false
}

// evalSpecialForm handles every special form except cons (handled inline
// in Eval so its accumulation can share the trampoline's consPrefix).
// It returns either (nextExpr, nextEnv, _, false, nil) to continue the
// trampoline in tail position, or (_, _, result, true, err) to return
// directly.
func evalSpecialForm(sym value.Symbol, args *value.List, env *value.Environment) (value.Value, *value.Environment, value.Value, bool, *value.EvalError) {
	switch sym {
	case `\`:
		if args == nil || args.Rest() == nil {
			return nil, nil, nil, true, value.NewError(InvalidLambdaError, value.NewList(args.Slice()...))
		}
		lam := &value.Lambda{Params: args.First(), Body: args.Rest().First(), Env: env}
		return nil, nil, lam, true, nil

	case "if":
		if args == nil {
			return nil, nil, nil, true, value.NewError(InvalidArgs, value.Symbol("if"))
		}
		cond, err := Eval(args.First(), env)
		if err != nil {
			return nil, nil, nil, true, err
		}
		rest := args.Rest()
		if value.IsTruthy(cond) {
			if rest == nil {
				return nil, nil, value.SymNil, true, nil
			}
			return rest.First(), env, nil, false, nil
		}
		if rest == nil || rest.Rest() == nil {
			return nil, nil, value.SymNil, true, nil
		}
		return rest.Rest().First(), env, nil, false, nil

	case "quote":
		if args == nil {
			return nil, nil, value.SymNil, true, nil
		}
		return nil, nil, args.First(), true, nil

	case "quasiquote":
		if args == nil {
			return nil, nil, value.SymNil, true, nil
		}
		result, err := evalQuasiquote(args.First(), env)
		return nil, nil, result, true, err

	case "err":
		if args == nil {
			return nil, nil, nil, true, value.NewError(InvalidArgs, value.Symbol("err"))
		}
		kindSym, ok := args.First().(value.Symbol)
		if !ok {
			return nil, nil, nil, true, value.NewError(InvalidArgs, args.First())
		}
		evaled, err := evalArgs(args.Rest(), env)
		if err != nil {
			return nil, nil, nil, true, err
		}
		return nil, nil, nil, true, value.NewError(string(kindSym), evaled...)

	case "let*":
		if args == nil || args.Rest() == nil {
			return nil, nil, nil, true, value.NewError(InvalidArgs, value.Symbol("let*"))
		}
		bindingsList, ok := args.First().(*value.List)
		if !ok {
			return nil, nil, nil, true, value.NewError(InvalidArgs, args.First())
		}
		body := args.Rest().First()
		childEnv := value.NewEnvironment(env)
		pairs := bindingsList.Slice()
		for i := 0; i+1 < len(pairs); i += 2 {
			val, err := Eval(pairs[i+1], childEnv)
			if err != nil {
				return nil, nil, nil, true, err
			}
			if err := destructure(pairs[i], val, childEnv); err != nil {
				return nil, nil, nil, true, err
			}
		}
		return body, childEnv, nil, false, nil

	case "def!":
		if args == nil || args.Rest() == nil {
			return nil, nil, nil, true, value.NewError(InvalidArgs, value.Symbol("def!"))
		}
		name, ok := args.First().(value.Symbol)
		if !ok {
			return nil, nil, nil, true, value.NewError(InvalidArgs, args.First())
		}
		val, err := Eval(args.Rest().First(), env)
		if err != nil {
			return nil, nil, nil, true, err
		}
		env.Set(name, val)
		registerDocTarget(name, val)
		return nil, nil, value.SymNil, true, nil

	case "do":
		elems := sliceOf(args)
		if len(elems) == 0 {
			return nil, nil, value.SymNil, true, nil
		}
		for _, e := range elems[:len(elems)-1] {
			if _, err := Eval(e, env); err != nil {
				return nil, nil, nil, true, err
			}
		}
		return elems[len(elems)-1], env, nil, false, nil

	case "try*":
		return evalTry(args, env)
	}
	return nil, nil, nil, true, value.NewError(InvalidArgs, value.Symbol(sym))
}

func evalTry(args *value.List, env *value.Environment) (value.Value, *value.Environment, value.Value, bool, *value.EvalError) {
	if args == nil {
		return nil, nil, nil, true, value.NewError(InvalidArgs, value.Symbol("try*"))
	}
	result, evalErr := Eval(args.First(), env)
	if evalErr == nil {
		return nil, nil, result, true, nil
	}
	raised := evalErr.Value
	raisedList, _ := raised.(*value.List)
	var kind value.Symbol
	if raisedList != nil && raisedList.Rest() != nil {
		if k, ok := raisedList.Rest().First().(value.Symbol); ok {
			kind = k
		}
	}

	for _, c := range args.Rest().Slice() {
		clause, ok := c.(*value.List)
		if !ok || clause.IsEmpty() {
			return nil, nil, nil, true, value.NewError(InvalidCatchBlock, c)
		}
		head, ok := clause.First().(value.Symbol)
		if !ok || head != "catch*" {
			return nil, nil, nil, true, value.NewError(InvalidCatchBlock, c)
		}
		elems := clause.Rest().Slice()
		childEnv := value.NewEnvironment(env)
		switch len(elems) {
		case 2:
			bindSym, ok := elems[0].(value.Symbol)
			if !ok {
				return nil, nil, nil, true, value.NewError(InvalidCatchBlock, c)
			}
			childEnv.Set(bindSym, raised)
			return elems[1], childEnv, nil, false, nil
		case 3:
			kindSym, ok1 := elems[0].(value.Symbol)
			bindSym, ok2 := elems[1].(value.Symbol)
			if !ok1 || !ok2 {
				return nil, nil, nil, true, value.NewError(InvalidCatchBlock, c)
			}
			if kindSym != kind {
				continue
			}
			childEnv.Set(bindSym, raised)
			return elems[2], childEnv, nil, false, nil
		default:
			return nil, nil, nil, true, value.NewError(InvalidCatchBlock, c)
		}
	}
	return nil, nil, nil, true, evalErr
}

// destructure binds pattern against val in env. A Symbol pattern binds
// any value; a List pattern matches a List value whose length is at
// least the pattern length, element-wise, ignoring extras.
func destructure(pattern, val value.Value, env *value.Environment) *value.EvalError {
	switch p := pattern.(type) {
	case value.Symbol:
		env.Set(p, val)
		return nil
	case *value.List:
		l, ok := val.(*value.List)
		if !ok {
			return value.NewError(PatternMismatch, pattern, val)
		}
		pc, lc := p, l
		for pc != nil {
			if lc == nil {
				return value.NewError(PatternMismatch, pattern, val)
			}
			if err := destructure(pc.First(), lc.First(), env); err != nil {
				return err
			}
			pc, lc = pc.Rest(), lc.Rest()
		}
		return nil
	default:
		return value.NewError(PatternMismatch, pattern, val)
	}
}

// evalQuasiquote recursively copies expr, evaluating (unquote Y) forms
// at the position they occur and preserving every other sub-form
// structurally.
func evalQuasiquote(expr value.Value, env *value.Environment) (value.Value, *value.EvalError) {
	l, ok := expr.(*value.List)
	if !ok {
		return expr, nil
	}
	if l.IsEmpty() {
		return l, nil
	}
	if sym, ok := l.First().(value.Symbol); ok && sym == "unquote" {
		if l.Rest() == nil {
			return nil, value.NewError(InvalidArgs, l)
		}
		return Eval(l.Rest().First(), env)
	}
	elems := l.Slice()
	result := make([]value.Value, len(elems))
	for i, e := range elems {
		v, err := evalQuasiquote(e, env)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return value.NewList(result...), nil
}
