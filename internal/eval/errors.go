package eval

// Canonical error kinds raised by the evaluator and built-ins. Each
// built-in raises only the kinds documented alongside it.
const (
	UnresolvedIdentifier = "UnresolvedIdentifier"
	NotAFunction          = "NotAFunction"
	NotANumber            = "NotANumber"
	NotAList              = "NotAList"
	NotATable             = "NotATable"
	NotASequence          = "NotASequence"
	DivideByZero          = "DivideByZero"
	InvalidArgs           = "InvalidArgs"
	InvalidLambdaError    = "InvalidLambdaError"
	InvalidIndex          = "InvalidIndex"
	InvalidChar           = "InvalidChar"
	InvalidCatchBlock     = "InvalidCatchBlock"
	PatternMismatch       = "PatternMismatch"
	ParseError            = "ParseError"
	InvalidRegex          = "InvalidRegex"
	RegexTooLong          = "RegexTooLong"
	RegexError            = "RegexError"
	Overflow              = "Overflow"

	// int-parsing kinds for the `int` built-in.
	EmptyString    = "EmptyString"
	InvalidDigit   = "InvalidDigit"
	PositiveOverflow = "PositiveOverflow"
	NegativeOverflow = "NegativeOverflow"
	UnknownReason    = "UnknownReason"
)
