package guard

// atom is one conjunct of a guard expression: a comparison, or a bare
// operand tested for truthiness (rhs nil).
type atom struct {
	lhs operand
	op  string
	rhs operand
}

// operand is a node evaluating to a value against the runtime arguments.
type operand interface {
	value(args []any) (value, error)
}

type parser struct {
	src  string
	toks []token
	pos  int
}

func parse(src string) ([]atom, error) {
	lx := &lexer{src: src}
	toks, err := lx.tokens()
	if err != nil {
		return nil, err
	}

	p := &parser{src: src, toks: toks}
	var atoms []atom
	for {
		a, err := p.atom()
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, a)

		switch tok := p.peek(); tok.kind {
		case tokEOF:
			return atoms, nil
		case tokAnd:
			p.pos++
		default:
			return nil, syntaxErr(src, tok.pos, "expected && or end of expression, got %q", tok.text)
		}
	}
}

func (p *parser) atom() (atom, error) {
	lhs, err := p.operand()
	if err != nil {
		return atom{}, err
	}

	tok := p.peek()
	if tok.kind != tokOp {
		return atom{lhs: lhs}, nil
	}
	p.pos++

	rhs, err := p.operand()
	if err != nil {
		return atom{}, err
	}
	return atom{lhs: lhs, op: tok.text, rhs: rhs}, nil
}

func (p *parser) operand() (operand, error) {
	tok := p.peek()
	switch tok.kind {
	case tokRef:
		p.pos++
		return refOperand{index: int(tok.num)}, nil

	case tokNumber:
		p.pos++
		return litOperand{val: numberValue(tok.num)}, nil

	case tokString:
		p.pos++
		return litOperand{val: stringValue(tok.text)}, nil

	case tokIdent:
		return p.call()

	default:
		return nil, syntaxErr(p.src, tok.pos, "expected a value, got %q", tok.text)
	}
}

func (p *parser) call() (operand, error) {
	name := p.peek()
	p.pos++

	fn, ok := functions[name.text]
	if !ok {
		return nil, &SyntaxError{
			Expression: p.src,
			Pos:        name.pos,
			Message:    "unknown function " + name.text,
			Kind:       ErrUnknownFunction,
		}
	}

	if tok := p.peek(); tok.kind != tokLParen {
		return nil, syntaxErr(p.src, tok.pos, "expected ( after %s", name.text)
	}
	p.pos++

	var args []operand
	if p.peek().kind != tokRParen {
		for {
			arg, err := p.operand()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			tok := p.peek()
			if tok.kind == tokComma {
				p.pos++
				continue
			}
			break
		}
	}

	if tok := p.peek(); tok.kind != tokRParen {
		return nil, syntaxErr(p.src, tok.pos, "expected ) in %s call", name.text)
	}
	p.pos++

	if len(args) < fn.minArgs || len(args) > fn.maxArgs {
		return nil, &SyntaxError{
			Expression: p.src,
			Pos:        name.pos,
			Message:    "wrong number of arguments to " + name.text,
			Kind:       ErrArity,
		}
	}

	return callOperand{name: name.text, fn: fn, args: args}, nil
}

func (p *parser) peek() token {
	if p.pos >= len(p.toks) {
		return token{kind: tokEOF, pos: len(p.src)}
	}
	return p.toks[p.pos]
}
