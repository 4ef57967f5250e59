package value

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Display renders v in display form: strings unquoted, symbols bare,
// ints decimal, lists and tables recursively in display form, functions
// as #<function>.
func Display(v Value) string {
	var b strings.Builder
	writeValue(&b, v, false)
	return b.String()
}

// Debug renders v in debug form: identical to Display except strings are
// double-quoted and escaped, and table entries are written "k: v, k: v".
func Debug(v Value) string {
	var b strings.Builder
	writeValue(&b, v, true)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, debug bool) {
	switch x := v.(type) {
	case Int:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case String:
		if debug {
			b.WriteString(strconv.Quote(string(x)))
		} else {
			b.WriteString(string(x))
		}
	case Symbol:
		b.WriteString(string(x))
	case *List:
		b.WriteByte('(')
		for c, first := x, true; c != nil; c, first = c.tail, false {
			if !first {
				b.WriteByte(' ')
			}
			writeValue(b, c.head, debug)
		}
		b.WriteByte(')')
	case *Table:
		b.WriteByte('{')
		for i, k := range x.order {
			if i > 0 {
				if debug {
					b.WriteString(", ")
				} else {
					b.WriteByte(' ')
				}
			}
			e := x.entries[k]
			writeValue(b, e.key, debug)
			if debug {
				b.WriteString(": ")
			} else {
				b.WriteByte(' ')
			}
			writeValue(b, e.value, debug)
		}
		b.WriteByte('}')
	case *BuiltinFunction, *Lambda:
		b.WriteString("#<function>")
	case *Atom:
		b.WriteString("#<atom>")
	case nil:
		b.WriteString("nil")
	default:
		b.WriteString(fmt.Sprintf("%v", x))
	}
}

// Equal implements the equality rules of the data model: Symbol by
// string, List element-wise, Table by set-equality of entries, Function
// by identity of the underlying callable plus macro flag, Lambda by
// parameter pattern + body + macro flag (captures ignored).
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case *List:
		y, ok := b.(*List)
		if !ok {
			return false
		}
		for {
			if x == nil || y == nil {
				return x == nil && y == nil
			}
			if !Equal(x.head, y.head) {
				return false
			}
			x, y = x.tail, y.tail
		}
	case *Table:
		y, ok := b.(*Table)
		if !ok || x.Count() != y.Count() {
			return false
		}
		for k, e := range x.entries {
			oe, ok := y.entries[k]
			if !ok || !Equal(e.value, oe.value) {
				return false
			}
		}
		return true
	case *BuiltinFunction:
		y, ok := b.(*BuiltinFunction)
		return ok && x.IsMacro == y.IsMacro &&
			reflect.ValueOf(x.Fn).Pointer() == reflect.ValueOf(y.Fn).Pointer()
	case *Lambda:
		y, ok := b.(*Lambda)
		return ok && x.IsMacro == y.IsMacro &&
			Equal(x.Params, y.Params) && Equal(x.Body, y.Body)
	case *Atom:
		y, ok := b.(*Atom)
		return ok && x == y
	}
	return false
}

// TypeName returns the type-predicate symbol for v, per §4.4: a List
// shaped like an error classifies as "err" rather than "list".
func TypeName(v Value) Symbol {
	if IsError(v) {
		return "err"
	}
	switch x := v.(type) {
	case Int:
		return "int"
	case String:
		return "string"
	case Symbol:
		switch x {
		case SymNil:
			return "nil"
		case SymTrue, SymFalse:
			return "bool"
		default:
			return "symbol"
		}
	case *List:
		return "list"
	case *Table:
		return "table"
	case *Atom:
		return "atom"
	case *BuiltinFunction:
		if x.IsMacro {
			return "macro"
		}
		return "function"
	case *Lambda:
		if x.IsMacro {
			return "macro"
		}
		return "function"
	}
	return "nil"
}
