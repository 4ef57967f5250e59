// Package reader turns source text into a single value.Value: a Lexer
// that tracks row/column the way the teacher's pkg/core reader does, and
// a Parser that assembles S-expressions, reader macros, and table
// literals in a single pass over the lexer's characters.
package reader

import (
	"fmt"
	"strings"

	"github.com/leinonen/golisp/internal/value"
)

// ParseError reports a reader failure with its source location, in the
// same row/column-plus-source-line style as the teacher's ParseError.
type ParseError struct {
	Message string
	Row     int
	Col     int
	Source  string
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		lines := strings.Split(e.Source, "\n")
		if e.Row > 0 && e.Row <= len(lines) {
			line := lines[e.Row-1]
			pointer := strings.Repeat(" ", max0(e.Col-1)) + "^"
			return fmt.Sprintf("Parse error: %s at %d:%d\n%s\n%s", e.Message, e.Row, e.Col, line, pointer)
		}
	}
	return fmt.Sprintf("Parse error: %s at %d:%d", e.Message, e.Row, e.Col)
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

const delimiters = "()[]{}#"

func isDelimiter(c byte) bool {
	return strings.IndexByte(delimiters, c) >= 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// lexer walks the source byte by byte, tracking row/column the way the
// teacher's Lexer does (1-based row, 1-based column, reset on '\n').
type lexer struct {
	src string
	pos int
	row int
	col int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, row: 1, col: 1}
}

func (l *lexer) eof() bool { return l.pos >= len(l.src) }

func (l *lexer) peek() byte {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.row++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

// reader-macro wrapper states, pushed when '\'', '`', '~' are seen and
// popped once they've wrapped the next single value, matching
// original_source's ParserState stack approach.
type wrapKind int

const (
	wrapQuote wrapKind = iota
	wrapQuasiquote
	wrapUnquote
)

func (k wrapKind) symbol() value.Symbol {
	switch k {
	case wrapQuote:
		return "quote"
	case wrapQuasiquote:
		return "quasiquote"
	default:
		return "unquote"
	}
}

// Parser reads successive forms from source text.
type Parser struct {
	lx          *lexer
	stack       []wrapKind
	pendingDocs []value.String
}

// NewParser creates a Parser over src.
func NewParser(src string) *Parser {
	return &Parser{lx: newLexer(src)}
}

// ReadAll reads every top-level form in src and wraps them in a leading
// `do`, matching the reader's top-level wrapping rule.
func ReadAll(src string) (value.Value, error) {
	p := NewParser(src)
	var forms []value.Value
	for {
		p.skipSpaceAndComments()
		forms = append(forms, p.drainDocs()...)
		v, ok, err := p.readForm()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		forms = append(forms, v)
	}
	if len(p.stack) > 0 {
		return nil, p.errorf("dangling reader macro at end of input")
	}
	elems := make([]value.Value, 0, len(forms)+1)
	elems = append(elems, value.Symbol("do"))
	elems = append(elems, forms...)
	return value.NewList(elems...), nil
}

func (p *Parser) errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Row:     p.lx.row,
		Col:     p.lx.col,
		Source:  p.lx.src,
	}
}

// readForm reads the next top-level value, consuming any leading reader
// macros and whitespace/comments. ok is false only at clean end-of-input.
func (p *Parser) readForm() (value.Value, bool, error) {
	v, ok, err := p.readOne()
	if err != nil || !ok {
		return v, ok, err
	}
	return p.applyWraps(v), true, nil
}

func (p *Parser) applyWraps(v value.Value) value.Value {
	for len(p.stack) > 0 {
		k := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		v = value.NewList(k.symbol(), v)
	}
	return v
}

// readOne reads a single datum, recursing through reader macros until a
// real value (atom, list, or table) is produced.
func (p *Parser) readOne() (value.Value, bool, error) {
	for {
		p.skipSpaceAndComments()
		if p.lx.eof() {
			return nil, false, nil
		}
		c := p.lx.peek()
		switch {
		case c == '(':
			v, err := p.readList()
			return v, true, err
		case c == '[':
			v, err := p.readBracketList()
			return v, true, err
		case c == '{':
			v, err := p.readTable()
			return v, true, err
		case c == ')' || c == ']' || c == '}':
			return nil, false, p.errorf("unmatched closing %q", c)
		case c == '\'':
			p.lx.advance()
			p.stack = append(p.stack, wrapQuote)
			continue
		case c == '`':
			p.lx.advance()
			p.stack = append(p.stack, wrapQuasiquote)
			continue
		case c == '~':
			p.lx.advance()
			p.stack = append(p.stack, wrapUnquote)
			continue
		case c == '"':
			v, err := p.readString()
			return v, true, err
		case isDigit(c):
			v, err := p.readInt()
			return v, true, err
		default:
			v, err := p.readSymbol()
			return v, true, err
		}
	}
}

// skipSpaceAndComments consumes whitespace, '#' line comments, and '##'
// doc comments. A doc comment is emitted by the caller as a (doc "…")
// form rather than discarded; to keep that form in source order among
// sibling forms it is queued in p.pendingDocs and spliced in by the
// list/top-level readers.
func (p *Parser) skipSpaceAndComments() {
	for !p.lx.eof() {
		c := p.lx.peek()
		if isSpace(c) {
			p.lx.advance()
			continue
		}
		if c == '#' {
			p.skipComment()
			continue
		}
		break
	}
}

// skipComment consumes a '#' or '##' comment to end of line. A doc
// comment ('##' optionally followed by one space) is captured into
// p.pendingDocs so the enclosing list/top-level reader can splice in a
// (doc "…") form at this position, per the reader's doc-comment rule.
func (p *Parser) skipComment() {
	p.lx.advance() // first '#'
	doc := false
	if p.lx.peek() == '#' {
		p.lx.advance()
		doc = true
	}
	if doc && p.lx.peek() == ' ' {
		p.lx.advance()
	}
	start := p.lx.pos
	for !p.lx.eof() && p.lx.peek() != '\n' {
		p.lx.advance()
	}
	if doc {
		text := p.lx.src[start:p.lx.pos]
		p.pendingDocs = append(p.pendingDocs, value.String(text))
	}
}

func (p *Parser) readInt() (value.Value, error) {
	start := p.lx.pos
	for !p.lx.eof() && isDigit(p.lx.peek()) {
		p.lx.advance()
	}
	if c := p.lx.peek(); !p.lx.eof() && !isSpace(c) && !isDelimiter(c) && c != '\'' && c != '`' && c != '~' && c != '"' {
		return nil, p.errorf("invalid character %q in integer literal", p.lx.peek())
	}
	text := p.lx.src[start:p.lx.pos]
	var n int64
	for _, c := range []byte(text) {
		n = n*10 + int64(c-'0')
	}
	return value.Int(int32(n)), nil
}

func (p *Parser) readString() (value.Value, error) {
	p.lx.advance() // opening quote
	var b strings.Builder
	for {
		if p.lx.eof() {
			return nil, p.errorf("unterminated string")
		}
		c := p.lx.advance()
		if c == '"' {
			return value.String(b.String()), nil
		}
		if c == '\\' {
			if p.lx.eof() {
				return nil, p.errorf("unterminated string")
			}
			esc := p.lx.advance()
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte('\\')
				b.WriteByte(esc)
			}
			continue
		}
		b.WriteByte(c)
	}
}

func (p *Parser) readSymbol() (value.Value, error) {
	start := p.lx.pos
	for !p.lx.eof() {
		c := p.lx.peek()
		if isSpace(c) || isDelimiter(c) || c == '\'' || c == '`' || c == '~' || c == '"' {
			break
		}
		p.lx.advance()
	}
	if p.lx.pos == start {
		return nil, p.errorf("unexpected character %q", p.lx.peek())
	}
	return value.Symbol(p.lx.src[start:p.lx.pos]), nil
}

// readList reads a parenthesized form as-is.
func (p *Parser) readList() (value.Value, error) {
	return p.readDelimited('(', ')')
}

// readBracketList reads `[...]` and rewrites it as `(list ...)`.
func (p *Parser) readBracketList() (value.Value, error) {
	l, err := p.readDelimited('[', ']')
	if err != nil {
		return nil, err
	}
	elems := append([]value.Value{value.Symbol("list")}, l.(*value.List).Slice()...)
	return value.NewList(elems...), nil
}

// readTable reads `{...}` as an even-length sequence of forms and
// builds a Table of consecutive (key, value) pairs.
func (p *Parser) readTable() (value.Value, error) {
	l, err := p.readDelimited('{', '}')
	if err != nil {
		return nil, err
	}
	elems := l.(*value.List).Slice()
	if len(elems)%2 != 0 {
		return nil, p.errorf("table literal has odd number of forms")
	}
	return value.NewTableWithPairs(elems...), nil
}

func (p *Parser) readDelimited(open, close byte) (value.Value, error) {
	p.lx.advance() // skip opener
	// Reader macros pending before the opener wrap the whole delimited
	// form, not its first element: set them aside while reading inside.
	outer := p.stack
	p.stack = nil
	defer func() { p.stack = outer }()
	var elems []value.Value
	for {
		p.skipSpaceAndComments()
		if p.lx.eof() {
			return nil, p.errorf("unmatched opening %q", open)
		}
		if p.lx.peek() == close {
			p.lx.advance()
			elems = append(elems, p.drainDocs()...)
			return value.NewList(elems...), nil
		}
		elems = append(elems, p.drainDocs()...)
		v, ok, err := p.readOne()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, p.errorf("unmatched opening %q", open)
		}
		elems = append(elems, p.applyWraps(v))
	}
}

func (p *Parser) drainDocs() []value.Value {
	if len(p.pendingDocs) == 0 {
		return nil
	}
	docs := make([]value.Value, 0, len(p.pendingDocs))
	for _, d := range p.pendingDocs {
		docs = append(docs, value.NewList(value.Symbol("doc"), d))
	}
	p.pendingDocs = nil
	return docs
}
