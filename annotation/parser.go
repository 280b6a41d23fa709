// Package annotation parses documented type expressions such as
// `?array<string, User>`, `int|string|null` or `array{id: int, tags?: string[]}`
// into a small syntax tree. Turning that tree into IR is the job of the
// typebuilder package.
package annotation

import (
	"fmt"
	"strconv"
)

// Node is a parsed annotation expression.
type Node interface {
	node()
}

// Ident is a bare name: a primitive keyword, `null`, or a class name.
type Ident struct {
	Name string
}

// LiteralKind distinguishes literal types.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralInt
	LiteralFloat
)

// Literal is a constant type such as 'draft' or 42.
type Literal struct {
	Kind LiteralKind
	Text string
}

// Nullable is the `?T` form.
type Nullable struct {
	Inner Node
}

// Union is `A|B|...` with at least two members.
type Union struct {
	Members []Node
}

// Generic is `Base<A, B>`.
type Generic struct {
	Base string
	Args []Node
}

// ArrayOf is the `T[]` form.
type ArrayOf struct {
	Inner Node
}

// ShapeItem is one key of an array-shape literal. Positional items get their
// index as key.
type ShapeItem struct {
	Key      string
	Optional bool
	Value    Node
}

// Shape is an array-shape literal `array{key: T, other?: U}`. A bare `{...}`
// has an empty Base.
type Shape struct {
	Base  string
	Items []ShapeItem
}

func (*Ident) node()    {}
func (*Literal) node()  {}
func (*Nullable) node() {}
func (*Union) node()    {}
func (*Generic) node()  {}
func (*ArrayOf) node()  {}
func (*Shape) node()    {}

// ParseError reports where an expression stopped making sense.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("annotation: %s at offset %d", e.Msg, e.Pos)
}

// Parse parses a complete annotation expression.
func Parse(src string) (Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected %s %q", t.kind, t.text)
	}
	return n, nil
}

type parser struct {
	toks []lexeme
	pos  int
}

func (p *parser) peek() lexeme {
	return p.toks[p.pos]
}

func (p *parser) peekAt(offset int) lexeme {
	if p.pos+offset >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+offset]
}

func (p *parser) next() lexeme {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) isSymbol(s string) bool {
	t := p.peek()
	return t.kind == tokSymbol && t.text == s
}

func (p *parser) accept(s string) bool {
	if p.isSymbol(s) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(s string) error {
	if p.accept(s) {
		return nil
	}
	t := p.peek()
	return p.errorf(t, "expected %q, found %s %q", s, t.kind, t.text)
}

func (p *parser) errorf(t lexeme, format string, args ...any) error {
	return &ParseError{Pos: t.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseUnion() (Node, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if !p.isSymbol("|") {
		return first, nil
	}
	members := []Node{first}
	for p.accept("|") {
		m, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return &Union{Members: members}, nil
}

func (p *parser) parseUnary() (Node, error) {
	if p.accept("?") {
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Nullable{Inner: inner}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (Node, error) {
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.isSymbol("[") && p.peekAt(1).kind == tokSymbol && p.peekAt(1).text == "]" {
		p.next()
		p.next()
		n = &ArrayOf{Inner: n}
	}
	return n, nil
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.peek()
	switch t.kind {
	case tokIdent:
		p.next()
		switch {
		case p.isSymbol("<"):
			return p.parseGeneric(t.text)
		case p.isSymbol("{"):
			return p.parseShape(t.text)
		}
		return &Ident{Name: t.text}, nil
	case tokString:
		p.next()
		return &Literal{Kind: LiteralString, Text: t.text}, nil
	case tokNumber:
		p.next()
		if _, err := strconv.ParseInt(t.text, 10, 64); err == nil {
			return &Literal{Kind: LiteralInt, Text: t.text}, nil
		}
		if _, err := strconv.ParseFloat(t.text, 64); err != nil {
			return nil, p.errorf(t, "invalid number %q", t.text)
		}
		return &Literal{Kind: LiteralFloat, Text: t.text}, nil
	case tokSymbol:
		switch t.text {
		case "(":
			p.next()
			n, err := p.parseUnion()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return n, nil
		case "{":
			return p.parseShape("")
		}
	}
	if t.kind == tokEOF {
		return nil, p.errorf(t, "unexpected end of input")
	}
	return nil, p.errorf(t, "unexpected %s %q", t.kind, t.text)
}

func (p *parser) parseGeneric(base string) (Node, error) {
	if err := p.expect("<"); err != nil {
		return nil, err
	}
	g := &Generic{Base: base}
	for {
		arg, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		g.Args = append(g.Args, arg)
		if !p.accept(",") {
			break
		}
	}
	if err := p.expect(">"); err != nil {
		return nil, err
	}
	return g, nil
}

func (p *parser) parseShape(base string) (Node, error) {
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	s := &Shape{Base: base}
	for !p.isSymbol("}") {
		item, err := p.parseShapeItem(len(s.Items))
		if err != nil {
			return nil, err
		}
		s.Items = append(s.Items, item)
		if !p.accept(",") {
			break
		}
	}
	if err := p.expect("}"); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *parser) parseShapeItem(index int) (ShapeItem, error) {
	if key, optional, ok := p.shapeKey(); ok {
		value, err := p.parseUnion()
		if err != nil {
			return ShapeItem{}, err
		}
		return ShapeItem{Key: key, Optional: optional, Value: value}, nil
	}
	value, err := p.parseUnion()
	if err != nil {
		return ShapeItem{}, err
	}
	return ShapeItem{Key: strconv.Itoa(index), Value: value}, nil
}

// shapeKey consumes `key:` or `key?:` when present.
func (p *parser) shapeKey() (key string, optional bool, ok bool) {
	t := p.peek()
	if t.kind != tokIdent && t.kind != tokString && t.kind != tokNumber {
		return "", false, false
	}
	colon := p.peekAt(1)
	if colon.kind == tokSymbol && colon.text == "?" {
		optional = true
		colon = p.peekAt(2)
	}
	if colon.kind != tokSymbol || colon.text != ":" {
		return "", false, false
	}
	p.next()
	if optional {
		p.next()
	}
	p.next()
	return t.text, optional, true
}
