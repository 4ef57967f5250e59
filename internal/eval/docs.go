package eval

import "github.com/leinonen/golisp/internal/value"

// docstrings is the process-wide Symbol→docstring map required by
// §4.4's `help`: populated at builtin registration time and by
// `(doc "…")` forms pairing with the `def!` that follows them.
var docstrings = map[value.Symbol]string{}

var pendingDoc string
var havePendingDoc bool

func registerBuiltinDoc(name value.Symbol, doc string) {
	docstrings[name] = doc
}

// registerDocTarget associates any doc comment queued by the reader's
// `##` handling (surfaced here as a `doc` builtin call) with the name
// just bound by `def!`.
func registerDocTarget(name value.Symbol, _ value.Value) {
	if havePendingDoc {
		docstrings[name] = pendingDoc
		pendingDoc = ""
		havePendingDoc = false
	}
}

func setPendingDoc(text string) {
	pendingDoc = text
	havePendingDoc = true
}

func lookupDoc(name value.Symbol) (string, bool) {
	d, ok := docstrings[name]
	return d, ok
}
