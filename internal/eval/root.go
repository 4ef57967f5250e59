package eval

import (
	"github.com/leinonen/golisp/internal/lisp"
	"github.com/leinonen/golisp/internal/reader"
	"github.com/leinonen/golisp/internal/value"
)

type builtinDef struct {
	name  value.Symbol
	doc   string
	fn    func([]value.Value, *value.Environment) (value.Value, *value.EvalError)
	macro bool
}

var builtinDefs = []builtinDef{
	{name: "+", doc: "sum any number of ints", fn: builtinAdd},
	{name: "-", doc: "left-fold subtraction, or negate with one arg", fn: builtinSub},
	{name: "*", doc: "product of any number of ints", fn: builtinMul},
	{name: "/", doc: "integer division truncating toward zero", fn: builtinDiv},
	{name: "%", doc: "remainder of integer division", fn: builtinMod},

	{name: "=", doc: "true iff all args equal the first", fn: builtinEq},
	{name: "<", doc: "less than", fn: builtinLt},
	{name: "<=", doc: "less than or equal", fn: builtinLe},
	{name: ">", doc: "greater than", fn: builtinGt},
	{name: ">=", doc: "greater than or equal", fn: builtinGe},
	{name: "not", doc: "true iff argument is not truthy", fn: builtinNot},

	{name: "type", doc: "the type symbol of a value", fn: builtinType},
	{name: "err?", doc: "true iff value is error-shaped", fn: typePredicate("err")},
	{name: "function?", doc: "true iff value is a non-macro callable", fn: typePredicate("function")},
	{name: "macro?", doc: "true iff value is a macro callable", fn: typePredicate("macro")},
	{name: "list?", doc: "true iff value is a list", fn: typePredicate("list")},
	{name: "table?", doc: "true iff value is a table", fn: typePredicate("table")},
	{name: "symbol?", doc: "true iff value is a symbol", fn: typePredicate("symbol")},
	{name: "int?", doc: "true iff value is an int", fn: typePredicate("int")},
	{name: "nil?", doc: "true iff value is nil", fn: typePredicate("nil")},
	{name: "bool?", doc: "true iff value is true or false", fn: typePredicate("bool")},
	{name: "atom?", doc: "true iff value is an atom", fn: typePredicate("atom")},

	{name: "list", doc: "collect args into a list", fn: builtinList},
	{name: "first", doc: "first element of a list or string", fn: builtinFirst},
	{name: "last", doc: "last element of a list or string", fn: builtinLast},
	{name: "rest", doc: "all but the first element", fn: builtinRest},
	{name: "nth", doc: "index into a list or string", fn: builtinNth},
	{name: "count", doc: "number of elements, chars, or entries", fn: builtinCount},
	{name: "map", doc: "apply a function to each element of a list", fn: builtinMap},

	{name: "assoc", doc: "return a table with entries added or updated", fn: builtinAssoc},
	{name: "dissoc", doc: "return a table with keys removed", fn: builtinDissoc},
	{name: "get", doc: "look up a key in a table, or nil", fn: builtinGet},
	{name: "keys", doc: "list of a table's keys", fn: builtinKeys},
	{name: "values", doc: "list of a table's values", fn: builtinValues},
	{name: "contains?", doc: "true iff a table has the given key", fn: builtinContains},

	{name: "str", doc: "concatenate args in display form", fn: builtinStr},
	{name: "symbol", doc: "convert a string to a symbol", fn: builtinSymbol},
	{name: "int", doc: "parse a string as an int", fn: builtinInt},
	{name: "chr", doc: "convert a code point to a single-character string", fn: builtinChr},
	{name: "findall", doc: "list of capture groups for each regex match", fn: builtinFindAll},

	{name: "print", doc: "print args separated by spaces, then a newline", fn: builtinPrint},
	{name: "input", doc: "read one line from stdin", fn: builtinInput},

	{name: "apply", doc: "call a function with the elements of a list", fn: builtinApply},
	{name: "eval", doc: "evaluate a value in the caller's environment", fn: builtinEval},

	{name: "macro", doc: "return a copy of a callable with its macro flag set", fn: builtinMacro},

	{name: "atom", doc: "create an atom holding a value", fn: builtinAtom},
	{name: "set!", doc: "replace an atom's contents, returning the old value", fn: builtinSet},
	{name: "inspect!", doc: "replace an atom's contents with f(current)", fn: builtinInspect},

	{name: "help", doc: "the docstring for a symbol, or nil", fn: builtinHelp},
	{name: "doc", doc: "register a pending docstring for the next def!", fn: builtinDoc},
}

// NewRootEnvironment builds the root environment: every built-in
// registered first, *ARGS* bound, then the embedded prelude evaluated
// once for its derived-form definitions, matching the load order
// resolved in SPEC_FULL.md §1.1.
func NewRootEnvironment(args []string) (*value.Environment, error) {
	env := value.NewEnvironment(nil)

	for _, b := range builtinDefs {
		bf := &value.BuiltinFunction{Name: string(b.name), IsMacro: b.macro, Fn: b.fn}
		env.Set(b.name, bf)
		registerBuiltinDoc(b.name, b.doc)
	}

	argVals := make([]value.Value, len(args))
	for i, a := range args {
		argVals[i] = value.String(a)
	}
	env.Set("*ARGS*", value.NewList(argVals...))

	prelude, err := reader.ReadAll(lisp.Prelude)
	if err != nil {
		return nil, err
	}
	if _, evalErr := Eval(prelude, env); evalErr != nil {
		return nil, evalErr
	}
	return env, nil
}
