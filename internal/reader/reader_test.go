package reader

import (
	"testing"

	"github.com/leinonen/golisp/internal/value"
)

func mustRead(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll(%q): %v", src, err)
	}
	return v
}

func TestTopLevelDoWrapping(t *testing.T) {
	v := mustRead(t, "1 2 3")
	l, ok := v.(*value.List)
	if !ok {
		t.Fatalf("expected a List, got %T", v)
	}
	if l.First() != value.Symbol("do") {
		t.Errorf("expected leading do symbol, got %v", l.First())
	}
	if l.Len() != 4 {
		t.Errorf("expected do plus 3 forms, got %d elements", l.Len())
	}
}

func TestIntegerLiteral(t *testing.T) {
	v := mustRead(t, "(do 42)")
	l := v.(*value.List)
	inner := l.Rest().First().(*value.List)
	if inner.Rest().First() != value.Int(42) {
		t.Errorf("expected Int(42), got %v", inner.Rest().First())
	}
}

func TestInvalidIntegerLiteral(t *testing.T) {
	if _, err := ReadAll("12a"); err == nil {
		t.Errorf("expected a parse error for a non-digit inside an integer literal")
	}
}

func TestStringEscapes(t *testing.T) {
	v := mustRead(t, `"a\nb\\c"`)
	str := v.(*value.List).Rest().First().(value.String)
	if string(str) != "a\nb\\c" {
		t.Errorf("got %q", string(str))
	}
}

func TestUnknownEscapeSurvives(t *testing.T) {
	v := mustRead(t, `"\q"`)
	str := v.(*value.List).Rest().First().(value.String)
	if string(str) != `\q` {
		t.Errorf("expected unrecognized escape to survive unchanged, got %q", string(str))
	}
}

func TestUnterminatedString(t *testing.T) {
	if _, err := ReadAll(`"abc`); err == nil {
		t.Errorf("expected a parse error for an unterminated string")
	}
}

func TestBracketListDesugarsToList(t *testing.T) {
	v := mustRead(t, "[1 2 3]")
	form := v.(*value.List).Rest().First().(*value.List)
	if form.First() != value.Symbol("list") {
		t.Errorf("expected [..] to desugar to (list ..), got head %v", form.First())
	}
}

func TestTableLiteral(t *testing.T) {
	v := mustRead(t, "{a 1 b 2}")
	tbl := v.(*value.List).Rest().First().(*value.Table)
	if tbl.Count() != 2 {
		t.Errorf("expected 2 entries, got %d", tbl.Count())
	}
}

func TestOddTableLiteralIsError(t *testing.T) {
	if _, err := ReadAll("{a 1 b}"); err == nil {
		t.Errorf("expected an error for an odd-length table literal")
	}
}

func TestReaderMacros(t *testing.T) {
	tests := []struct {
		src  string
		want value.Symbol
	}{
		{"'x", "quote"},
		{"`x", "quasiquote"},
		{"~x", "unquote"},
	}
	for _, tt := range tests {
		v := mustRead(t, tt.src)
		form := v.(*value.List).Rest().First().(*value.List)
		if form.First() != tt.want {
			t.Errorf("%s: expected head %v, got %v", tt.src, tt.want, form.First())
		}
	}
}

func TestStackedReaderMacros(t *testing.T) {
	v := mustRead(t, "'`x")
	outer := v.(*value.List).Rest().First().(*value.List)
	if outer.First() != value.Symbol("quote") {
		t.Errorf("expected outer quote, got %v", outer.First())
	}
	inner := outer.Rest().First().(*value.List)
	if inner.First() != value.Symbol("quasiquote") {
		t.Errorf("expected inner quasiquote, got %v", inner.First())
	}
}

func TestUnmatchedClosingDelimiter(t *testing.T) {
	if _, err := ReadAll(")"); err == nil {
		t.Errorf("expected an error for an unmatched closing paren")
	}
}

func TestUnmatchedOpeningDelimiter(t *testing.T) {
	if _, err := ReadAll("(1 2"); err == nil {
		t.Errorf("expected an error for an unmatched opening paren")
	}
}

func TestDocCommentEmitsDocForm(t *testing.T) {
	v := mustRead(t, "## adds two numbers\n(def! f (\\ (x y) (+ x y)))")
	top := v.(*value.List)
	// top: (do (doc "adds two numbers") (def! f ...))
	if top.Len() != 3 {
		t.Fatalf("expected do + doc-form + def!-form, got %d elements", top.Len())
	}
	docForm := top.Rest().First().(*value.List)
	if docForm.First() != value.Symbol("doc") {
		t.Errorf("expected a (doc ...) form, got head %v", docForm.First())
	}
}

func TestLineCommentIgnored(t *testing.T) {
	v := mustRead(t, "# just a comment\n1")
	if v.(*value.List).Len() != 2 {
		t.Errorf("expected the comment to produce no form")
	}
}
