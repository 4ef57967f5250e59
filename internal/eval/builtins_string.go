package eval

import (
	"regexp"
	"strings"

	"github.com/leinonen/golisp/internal/value"
)

func builtinStr(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(value.Display(a))
	}
	return value.String(b.String()), nil
}

func builtinSymbol(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, value.NewError(InvalidArgs, args[0])
	}
	return value.Symbol(s), nil
}

func builtinInt(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, value.NewError(InvalidArgs, args[0])
	}
	text := string(s)
	if text == "" {
		return nil, value.NewError(EmptyString)
	}
	neg := false
	i := 0
	if text[0] == '-' || text[0] == '+' {
		neg = text[0] == '-'
		i = 1
	}
	if i >= len(text) {
		return nil, value.NewError(InvalidDigit, value.String(text))
	}
	var magnitude int64
	for ; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return nil, value.NewError(InvalidDigit, value.String(text))
		}
		magnitude = magnitude*10 + int64(c-'0')
		if magnitude > 1<<32 {
			if neg {
				return nil, value.NewError(NegativeOverflow, value.String(text))
			}
			return nil, value.NewError(PositiveOverflow, value.String(text))
		}
	}
	if neg {
		magnitude = -magnitude
	}
	if magnitude > int64(1<<31-1) {
		return nil, value.NewError(PositiveOverflow, value.String(text))
	}
	if magnitude < int64(-1<<31) {
		return nil, value.NewError(NegativeOverflow, value.String(text))
	}
	return value.Int(int32(magnitude)), nil
}

func builtinChr(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 1 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	n, ok := args[0].(value.Int)
	if !ok || n < 0 {
		return nil, value.NewError(InvalidChar, args[0])
	}
	r := rune(n)
	if !isValidRune(r) {
		return nil, value.NewError(InvalidChar, args[0])
	}
	return value.String(string(r)), nil
}

func isValidRune(r rune) bool {
	return r >= 0 && r <= 0x10FFFF && !(r >= 0xD800 && r <= 0xDFFF)
}

// maxPatternLength bounds findall's regex source length, per the
// RegexTooLong error kind — a denial-of-service guard on host-supplied
// patterns the way the teacher's string built-ins bound input size.
const maxPatternLength = 4096

func builtinFindAll(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 2 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	pattern, ok1 := args[0].(value.String)
	haystack, ok2 := args[1].(value.String)
	if !ok1 || !ok2 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	if len(pattern) > maxPatternLength {
		return nil, value.NewError(RegexTooLong, args[0])
	}
	re, err := regexp.Compile(string(pattern))
	if err != nil {
		return nil, value.NewError(InvalidRegex, value.String(err.Error()))
	}
	matches := re.FindAllStringSubmatch(string(haystack), -1)
	result := make([]value.Value, 0, len(matches))
	for _, m := range matches {
		groups := make([]value.Value, len(m))
		for i, g := range m {
			groups[i] = value.String(g)
		}
		result = append(result, value.NewList(groups...))
	}
	return value.NewList(result...), nil
}
