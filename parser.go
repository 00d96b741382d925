package engineering

import (
	"fmt"
	"strings"
)

// NodePosition is the rune span of a node in the source expression
type NodePosition struct {
	Start int
	End   int
}

// ASTNode is a parsed call expression or one of its arguments
type ASTNode interface {
	Eval(bf *BuiltInFunctions) (Value, error)
	GetPosition() NodePosition
	ToString() string
}

// StringNode is a quoted text literal
type StringNode struct {
	Value    string
	Position NodePosition
}

func (n *StringNode) Eval(*BuiltInFunctions) (Value, error) { return Text(n.Value), nil }
func (n *StringNode) GetPosition() NodePosition             { return n.Position }

func (n *StringNode) ToString() string {
	return `"` + strings.ReplaceAll(n.Value, `"`, `""`) + `"`
}

// NumberNode is a numeric literal, sign included
type NumberNode struct {
	Value    Number
	Position NodePosition
}

func (n *NumberNode) Eval(*BuiltInFunctions) (Value, error) { return n.Value, nil }
func (n *NumberNode) GetPosition() NodePosition             { return n.Position }
func (n *NumberNode) ToString() string                      { return n.Value.String() }

type BooleanNode struct {
	Value    bool
	Position NodePosition
}

func (n *BooleanNode) Eval(*BuiltInFunctions) (Value, error) { return Boolean(n.Value), nil }
func (n *BooleanNode) GetPosition() NodePosition             { return n.Position }
func (n *BooleanNode) ToString() string                      { return FormatResult(Boolean(n.Value)) }

// BlankNode is an argument slot left empty, as in DEC2BIN(35,). The
// argument is supplied, its value is Blank.
type BlankNode struct {
	Position NodePosition
}

func (n *BlankNode) Eval(*BuiltInFunctions) (Value, error) { return Blank{}, nil }
func (n *BlankNode) GetPosition() NodePosition             { return n.Position }
func (n *BlankNode) ToString() string                      { return "" }

// FunctionCallNode is NAME(arg, ...)
type FunctionCallNode struct {
	Name     string
	Args     []ASTNode
	Position NodePosition
}

// Eval evaluates every argument first. A failing argument is handed to the
// function as an error value and the function decides what to do with it.
func (n *FunctionCallNode) Eval(bf *BuiltInFunctions) (Value, error) {
	args := make([]Value, len(n.Args))
	for i, arg := range n.Args {
		v, err := arg.Eval(bf)
		if err != nil {
			v = asSpreadsheetError(err)
		}
		args[i] = v
	}

	result, err := bf.Call(n.Name, args...)
	if err != nil {
		return nil, asSpreadsheetError(err)
	}
	return result, nil
}

func (n *FunctionCallNode) GetPosition() NodePosition { return n.Position }

func (n *FunctionCallNode) ToString() string {
	parts := make([]string, 0, len(n.Args))
	for _, arg := range n.Args {
		parts = append(parts, arg.ToString())
	}
	return n.Name + "(" + strings.Join(parts, ",") + ")"
}

func asSpreadsheetError(err error) *SpreadsheetError {
	if se, ok := err.(*SpreadsheetError); ok {
		return se
	}
	return NewSpreadsheetError(ErrorCodeValue, err.Error())
}

// Parser turns the tokens of one call expression into an ASTNode
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func parseError(format string, args ...any) *SpreadsheetError {
	return NewSpreadsheetError(ErrorCodeValue, fmt.Sprintf(format, args...))
}

// peek returns the current token, EOF once the tokens run out
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) take() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// Parse parses a whole expression. The leading '=' is optional and nothing
// may follow the expression.
func (p *Parser) Parse() (ASTNode, error) {
	if p.peek().Type == TokenEquals {
		p.take()
	}

	node, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, parseError("unexpected %q after expression", tok.Value)
	}
	return node, nil
}

func (p *Parser) parseOperand() (ASTNode, error) {
	tok := p.peek()

	switch tok.Type {
	case TokenEOF:
		return nil, parseError("expression ends too early")
	case TokenNumber, TokenUnaryPrefixOp:
		return p.parseSignedNumber()
	case TokenString:
		p.take()
		// +2 for the quotes
		return &StringNode{Value: tok.Value, Position: NodePosition{tok.Pos, tok.Pos + len([]rune(tok.Value)) + 2}}, nil
	case TokenBoolean:
		p.take()
		return &BooleanNode{Value: tok.Value == "TRUE", Position: NodePosition{tok.Pos, tok.Pos + len(tok.Value)}}, nil
	case TokenFunction:
		return p.parseCall()
	case TokenIdentifier:
		return nil, NewSpreadsheetError(ErrorCodeName, fmt.Sprintf("Unknown name: %s", tok.Value))
	}
	return nil, parseError("unexpected %q", tok.Value)
}

// parseSignedNumber folds any run of leading signs into the literal
func (p *Parser) parseSignedNumber() (ASTNode, error) {
	start := p.peek().Pos
	negative := false
	for p.peek().Type == TokenUnaryPrefixOp {
		if p.take().Value == "-" {
			negative = !negative
		}
	}

	tok := p.take()
	if tok.Type != TokenNumber {
		return nil, parseError("sign without a number")
	}
	n, err := ParseNumber(tok.Value)
	if err != nil {
		return nil, parseError("bad number %s", tok.Value)
	}
	if negative {
		n = n.Neg()
	}
	return &NumberNode{Value: n, Position: NodePosition{start, tok.Pos + len(tok.Value)}}, nil
}

// parseCall parses NAME(...). NAME() has no arguments; any other empty slot
// becomes a BlankNode.
func (p *Parser) parseCall() (ASTNode, error) {
	name := p.take()
	if p.take().Type != TokenLeftParen {
		return nil, parseError("%s must be followed by '('", name.Value)
	}

	call := &FunctionCallNode{Name: name.Value, Args: []ASTNode{}}
	if p.peek().Type == TokenRightParen {
		call.Position = NodePosition{name.Pos, p.take().Pos + 1}
		return call, nil
	}

	for {
		if tok := p.peek(); tok.Type == TokenComma || tok.Type == TokenRightParen {
			call.Args = append(call.Args, &BlankNode{Position: NodePosition{tok.Pos, tok.Pos}})
		} else {
			arg, err := p.parseOperand()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
		}

		switch sep := p.take(); sep.Type {
		case TokenComma:
			continue
		case TokenRightParen:
			call.Position = NodePosition{name.Pos, sep.Pos + 1}
			return call, nil
		default:
			return nil, parseError("%s arguments must be separated by ',' and closed by ')'", name.Value)
		}
	}
}

// Parse lexes and parses a call expression such as =HEX2DEC("FF")
func Parse(formula string) (ASTNode, error) {
	tokens, errs := NewLexer(formula).Tokenize()
	if len(errs) > 0 {
		return nil, parseError("%s", strings.Join(errs, "; "))
	}
	return NewParser(tokens).Parse()
}

// Evaluate parses formula and evaluates it against bf
func (bf *BuiltInFunctions) Evaluate(formula string) (Value, error) {
	node, err := Parse(formula)
	if err != nil {
		return nil, err
	}
	return node.Eval(bf)
}

// ParseLiteral classifies a single operand typed outside of a formula.
// Empty input is Blank, TRUE/FALSE are booleans, numeric text is a Number,
// a double-quoted string is Text without its quotes and anything else is
// Text as typed.
func ParseLiteral(input string) Value {
	if input == "" {
		return Blank{}
	}

	if tokens, errs := NewLexerForBoolean(input).Tokenize(); len(errs) == 0 && len(tokens) == 2 {
		return Boolean(tokens[0].Value == "TRUE")
	}

	if tokens, errs := NewLexerForNumber(input).Tokenize(); len(errs) == 0 && len(tokens) >= 2 {
		if node, err := NewParser(tokens).Parse(); err == nil {
			if num, ok := node.(*NumberNode); ok {
				return num.Value
			}
		}
	}

	if tokens, errs := NewLexerForString(input).Tokenize(); len(errs) == 0 && len(tokens) == 2 {
		return Text(tokens[0].Value)
	}

	return Text(input)
}

// FormatResult renders a value the way a cell would display it
func FormatResult(v Value) string {
	switch val := v.(type) {
	case nil, Blank:
		return ""
	case Boolean:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case Number:
		return val.String()
	case Text:
		return string(val)
	case *SpreadsheetError:
		return val.ErrorCode.String()
	}
	return fmt.Sprintf("%v", v)
}
