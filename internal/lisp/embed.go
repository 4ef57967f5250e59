// Package lisp embeds the self-hosted standard library text evaluated
// against the root environment after built-in registration.
package lisp

import _ "embed"

//go:embed prelude.lisp
var Prelude string
