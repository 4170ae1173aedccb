package pylite

// Parser is a recursive-descent parser with a precedence ladder for
// binary operators, in the shape of a Pratt parser cut down to this
// grammar's small, fixed operator set: no user-definable operators, so
// there is no need for a prefix/infix function table, only one method
// per precedence level.
type Parser struct {
	lex *Lexer
	cur Token
	pos Position
}

// NewParser starts a Parser over an already-primed Lexer.
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex, cur: lex.Current(), pos: lex.TokenPos()}
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	p.pos = p.lex.TokenPos()
	return nil
}

func (p *Parser) curPos() Position {
	return p.pos
}

func (p *Parser) curIsChar(c byte) bool {
	return p.cur.Kind == TokenChar && p.cur.Ch == c
}

func (p *Parser) expectChar(c byte) error {
	if !p.curIsChar(c) {
		return parseErrorf(p.curPos(), "expected '%c', got %s", c, p.cur.String())
	}
	return p.advance()
}

func (p *Parser) expect(k TokenKind) error {
	if p.cur.Kind != k {
		return parseErrorf(p.curPos(), "expected %s, got %s", k, p.cur.String())
	}
	return p.advance()
}

func (p *Parser) expectID() (string, error) {
	if p.cur.Kind != TokenId {
		return "", parseErrorf(p.curPos(), "expected identifier, got %s", p.cur.String())
	}
	name := p.cur.Str
	return name, p.advance()
}

func (p *Parser) skipNewlines() error {
	for p.cur.Kind == TokenNewline {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// ParseProgram parses a full source file into a single Compound node.
func (p *Parser) ParseProgram() (Node, error) {
	var stmts []Node
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	for p.cur.Kind != TokenEof {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
	}
	return &Compound{Stmts: stmts}, nil
}

// parseBlock consumes Newline Indent Statement+ Dedent, as opened by
// any header ending in ':'.
func (p *Parser) parseBlock() (Node, error) {
	if err := p.expect(TokenNewline); err != nil {
		return nil, err
	}
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	if err := p.expect(TokenIndent); err != nil {
		return nil, err
	}
	var stmts []Node
	for p.cur.Kind != TokenDedent {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(TokenDedent); err != nil {
		return nil, err
	}
	return &Compound{Stmts: stmts}, nil
}

func (p *Parser) parseStatement() (Node, error) {
	switch p.cur.Kind {
	case TokenClass:
		return p.parseClassDef()
	case TokenIf:
		return p.parseIf()
	case TokenReturn:
		return p.parseReturn()
	case TokenPrint:
		return p.parsePrint()
	default:
		return p.parseExprOrAssignStatement()
	}
}

func (p *Parser) parseClassDef() (Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expectID()
	if err != nil {
		return nil, err
	}
	parentName := ""
	if p.curIsChar('(') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		parentName, err = p.expectID()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if err := p.expect(TokenNewline); err != nil {
		return nil, err
	}
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	if err := p.expect(TokenIndent); err != nil {
		return nil, err
	}
	var methods []MethodDecl
	for p.cur.Kind != TokenDedent {
		if p.cur.Kind != TokenDef {
			return nil, parseErrorf(p.curPos(), "expected method definition, got %s", p.cur.String())
		}
		m, err := p.parseMethodDecl()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(TokenDedent); err != nil {
		return nil, err
	}
	return &ClassDefinition{Name: name, ParentName: parentName, Methods: methods}, nil
}

func (p *Parser) parseMethodDecl() (MethodDecl, error) {
	if err := p.advance(); err != nil {
		return MethodDecl{}, err
	}
	name, err := p.expectID()
	if err != nil {
		return MethodDecl{}, err
	}
	if err := p.expectChar('('); err != nil {
		return MethodDecl{}, err
	}
	var params []string
	for !p.curIsChar(')') {
		param, err := p.expectID()
		if err != nil {
			return MethodDecl{}, err
		}
		params = append(params, param)
		if p.curIsChar(',') {
			if err := p.advance(); err != nil {
				return MethodDecl{}, err
			}
		}
	}
	if err := p.advance(); err != nil { // consume ')'
		return MethodDecl{}, err
	}
	if err := p.expectChar(':'); err != nil {
		return MethodDecl{}, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return MethodDecl{}, err
	}
	body := &MethodBody{Inner: block}
	// The receiver is passed implicitly (see operators.go's callMethod,
	// which always binds "self"); the source still writes it as the
	// first declared parameter for readability, so it's stripped here.
	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}
	return MethodDecl{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseIf() (Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock Node
	if p.cur.Kind == TokenElse {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &IfElse{Cond: cond, Then: thenBlock, Else: elseBlock}, nil
}

func (p *Parser) parseReturn() (Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Kind == TokenNewline || p.cur.Kind == TokenEof || p.cur.Kind == TokenDedent {
		return &Return{Val: &NoneLiteral{}}, nil
	}
	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Return{Val: val}, nil
}

// parsePrint reads one expression, then keeps reading further
// expressions back to back until the line ends: print arguments are
// not separated by commas.
func (p *Parser) parsePrint() (Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	var args []Node
	for p.cur.Kind != TokenNewline && p.cur.Kind != TokenEof && p.cur.Kind != TokenDedent {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return &Print{Args: args}, nil
}

func (p *Parser) parseExprOrAssignStatement() (Node, error) {
	node, path, hadCall, err := p.parsePostfixChain()
	if err != nil {
		return nil, err
	}
	if !hadCall && p.curIsChar('=') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if len(path) == 1 {
			return &Assignment{Name: path[0], Rhs: rhs}, nil
		}
		return &FieldAssignment{
			ObjectPath: path[:len(path)-1],
			FieldName:  path[len(path)-1],
			Rhs:        rhs,
		}, nil
	}
	expr, err := p.continueBinary(node, 0)
	if err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr}, nil
}

// parsePostfixChain parses a leading identifier and any following
// ".name" / "(args)" postfix operators. It reports the plain dotted
// path walked so far (valid only when hadCall is false) so that
// statement-level assignment can be recognized without backtracking.
func (p *Parser) parsePostfixChain() (Node, []string, bool, error) {
	name, err := p.expectID()
	if err != nil {
		return nil, nil, false, err
	}
	path := []string{name}
	var call Node

	for {
		switch {
		case call == nil && p.curIsChar('('):
			args, err := p.parseArgs()
			if err != nil {
				return nil, nil, false, err
			}
			if len(path) == 1 {
				call = &NewInstance{ClassName: path[0], Args: args}
			} else {
				call = &MethodCall{
					Object:     &VariableValue{Path: path[:len(path)-1]},
					MethodName: path[len(path)-1],
					Args:       args,
				}
			}
			path = nil
		case p.curIsChar('.'):
			if err := p.advance(); err != nil {
				return nil, nil, false, err
			}
			seg, err := p.expectID()
			if err != nil {
				return nil, nil, false, err
			}
			if call != nil {
				if !p.curIsChar('(') {
					return nil, nil, false, parseErrorf(p.curPos(), "field access on a call result is not supported")
				}
				args, err := p.parseArgs()
				if err != nil {
					return nil, nil, false, err
				}
				call = &MethodCall{Object: call, MethodName: seg, Args: args}
			} else {
				path = append(path, seg)
			}
		default:
			if call != nil {
				return call, nil, true, nil
			}
			return &VariableValue{Path: path}, path, false, nil
		}
	}
}

func (p *Parser) parseArgs() ([]Node, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var args []Node
	for !p.curIsChar(')') {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curIsChar(',') {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	return args, p.advance() // consume ')'
}

// Precedence levels, lowest to highest.
const (
	precOr = iota
	precAnd
	precComparison
	precAdditive
	precMultiplicative
)

func (p *Parser) parseExpression() (Node, error) {
	return p.parseBinary(precOr)
}

func (p *Parser) parseBinary(level int) (Node, error) {
	if level > precMultiplicative {
		return p.parseUnary()
	}
	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}
	return p.continueBinaryLevel(left, level)
}

// continueBinary resumes precedence climbing from an already-parsed
// left operand at the lowest level, used after the postfix-chain path
// disambiguation has consumed the leading identifier itself.
func (p *Parser) continueBinary(left Node, level int) (Node, error) {
	for lvl := precMultiplicative; lvl >= level; lvl-- {
		var err error
		left, err = p.continueBinaryLevel(left, lvl)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) continueBinaryLevel(left Node, level int) (Node, error) {
	for {
		op, matches := p.matchOpAt(level)
		if !matches {
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		left = buildBinaryNode(op, left, right)
	}
}

type opTag int

const (
	opNone opTag = iota
	opOr
	opAnd
	opEq
	opNotEq
	opLt
	opGt
	opLe
	opGe
	opAdd
	opSub
	opMul
	opDiv
)

func (p *Parser) matchOpAt(level int) (opTag, bool) {
	switch level {
	case precOr:
		if p.cur.Kind == TokenOr {
			return opOr, true
		}
	case precAnd:
		if p.cur.Kind == TokenAnd {
			return opAnd, true
		}
	case precComparison:
		switch {
		case p.cur.Kind == TokenEq:
			return opEq, true
		case p.cur.Kind == TokenNotEq:
			return opNotEq, true
		case p.cur.Kind == TokenLessOrEq:
			return opLe, true
		case p.cur.Kind == TokenGreaterOrEq:
			return opGe, true
		case p.curIsChar('<'):
			return opLt, true
		case p.curIsChar('>'):
			return opGt, true
		}
	case precAdditive:
		switch {
		case p.curIsChar('+'):
			return opAdd, true
		case p.curIsChar('-'):
			return opSub, true
		}
	case precMultiplicative:
		switch {
		case p.curIsChar('*'):
			return opMul, true
		case p.curIsChar('/'):
			return opDiv, true
		}
	}
	return opNone, false
}

func buildBinaryNode(op opTag, left, right Node) Node {
	switch op {
	case opOr:
		return &Or{Left: left, Right: right}
	case opAnd:
		return &And{Left: left, Right: right}
	case opEq:
		return &Comparison{Op: OpEq, Left: left, Right: right}
	case opNotEq:
		return &Comparison{Op: OpNotEq, Left: left, Right: right}
	case opLt:
		return &Comparison{Op: OpLess, Left: left, Right: right}
	case opGt:
		return &Comparison{Op: OpGreater, Left: left, Right: right}
	case opLe:
		return &Comparison{Op: OpLessOrEq, Left: left, Right: right}
	case opGe:
		return &Comparison{Op: OpGreaterOrEq, Left: left, Right: right}
	case opAdd:
		return &BinaryArith{Op: '+', Left: left, Right: right}
	case opSub:
		return &BinaryArith{Op: '-', Left: left, Right: right}
	case opMul:
		return &BinaryArith{Op: '*', Left: left, Right: right}
	case opDiv:
		return &BinaryArith{Op: '/', Left: left, Right: right}
	default:
		return left
	}
}

func (p *Parser) parseUnary() (Node, error) {
	if p.cur.Kind == TokenNot {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Not{Operand: operand}, nil
	}
	if p.curIsChar('-') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Negate{Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Node, error) {
	switch p.cur.Kind {
	case TokenNumber:
		v := p.cur.Num
		return &NumberLiteral{Val: v}, p.advance()
	case TokenString:
		v := p.cur.Str
		return &StringLiteral{Val: v}, p.advance()
	case TokenTrue:
		return &BoolLiteral{Val: true}, p.advance()
	case TokenFalse:
		return &BoolLiteral{Val: false}, p.advance()
	case TokenNone:
		return &NoneLiteral{}, p.advance()
	case TokenId:
		if p.cur.Str == "str" {
			return p.parseStringifyCall()
		}
		node, _, _, err := p.parsePostfixChain()
		return node, err
	case TokenChar:
		if p.cur.Ch == '(' {
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			return expr, nil
		}
	}
	return nil, parseErrorf(p.curPos(), "unexpected token %s", p.cur.String())
}

// parseStringifyCall recognizes the surface form str(expr): there is no
// reserved keyword for Stringify, so the plain identifier spelling
// "str" followed immediately by a call is treated as the builtin.
func (p *Parser) parseStringifyCall() (Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	return &StringifyExpr{Operand: expr}, nil
}
