package engineering

import (
	"strings"
	"unicode"
)

// TokenType is the kind of a lexed token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenEquals
	TokenNumber
	TokenString
	TokenBoolean
	TokenFunction
	TokenIdentifier
	TokenUnaryPrefixOp
	TokenComma
	TokenLeftParen
	TokenRightParen
	TokenError
)

// TokenState is what the lexer has just seen, used to reject token
// sequences that cannot form a call expression
type TokenState int

const (
	StateStart TokenState = iota
	StateAfterEquals
	StateAfterValue
	StateAfterOperator
	StateAfterLeftParen
	StateAfterRightParen
	StateAfterComma
	StateAfterFunction
)

type tokenSet map[TokenType]bool

var operandTokens = tokenSet{
	TokenFunction:      true,
	TokenIdentifier:    true,
	TokenUnaryPrefixOp: true,
	TokenNumber:        true,
	TokenString:        true,
	TokenBoolean:       true,
}

// an argument slot may be left empty, so ',' and ')' may follow '(' or ','
var argumentTokens = tokenSet{
	TokenFunction:      true,
	TokenIdentifier:    true,
	TokenUnaryPrefixOp: true,
	TokenNumber:        true,
	TokenString:        true,
	TokenBoolean:       true,
	TokenComma:         true,
	TokenRightParen:    true,
}

var closingTokens = tokenSet{
	TokenComma:      true,
	TokenRightParen: true,
}

// allowedNext lists, per state, the tokens that may come next
var allowedNext = map[TokenState]tokenSet{
	StateStart:           withEquals(operandTokens),
	StateAfterEquals:     operandTokens,
	StateAfterValue:      closingTokens,
	StateAfterOperator:   {TokenNumber: true, TokenUnaryPrefixOp: true},
	StateAfterLeftParen:  argumentTokens,
	StateAfterComma:      argumentTokens,
	StateAfterRightParen: closingTokens,
	StateAfterFunction:   {TokenLeftParen: true},
}

func withEquals(set tokenSet) tokenSet {
	out := tokenSet{TokenEquals: true}
	for t := range set {
		out[t] = true
	}
	return out
}

// Token is one lexeme. Pos counts runes from the start of the input.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// LexerContext restricts a lexer. With ExpectedTokens set, only those token
// types are accepted and the state table is not consulted.
type LexerContext struct {
	InitialState   TokenState
	ExpectedTokens map[TokenType]bool
}

// Lexer splits a call expression such as =DEC2BIN(35, 4) into tokens
type Lexer struct {
	src     []rune
	pos     int
	state   TokenState
	depth   int
	tokens  []Token
	context *LexerContext
}

func NewLexer(input string) *Lexer {
	return NewLexerWithContext(input, &LexerContext{InitialState: StateStart})
}

func NewLexerWithContext(input string, context *LexerContext) *Lexer {
	return &Lexer{
		src:     []rune(input),
		state:   context.InitialState,
		context: context,
	}
}

// NewLexerForNumber accepts a signed number literal and nothing else
func NewLexerForNumber(input string) *Lexer {
	return restricted(input, TokenUnaryPrefixOp, TokenNumber)
}

// NewLexerForBoolean accepts TRUE or FALSE and nothing else
func NewLexerForBoolean(input string) *Lexer {
	return restricted(input, TokenBoolean)
}

// NewLexerForString accepts a double-quoted string and nothing else
func NewLexerForString(input string) *Lexer {
	return restricted(input, TokenString)
}

func restricted(input string, types ...TokenType) *Lexer {
	expected := make(map[TokenType]bool, len(types))
	for _, t := range types {
		expected[t] = true
	}
	return NewLexerWithContext(input, &LexerContext{InitialState: StateStart, ExpectedTokens: expected})
}

// Tokenize lexes the whole input. On success the tokens end with TokenEOF;
// on failure the tokens are nil and the single message says what was wrong.
func (l *Lexer) Tokenize() ([]Token, []string) {
	for {
		tok := l.next()
		if tok.Type == TokenEOF {
			break
		}
		if tok.Type == TokenError {
			return nil, []string{tok.Value}
		}
		if !l.accepts(tok.Type) {
			return nil, []string{"unexpected token: " + tok.Value}
		}
		l.tokens = append(l.tokens, tok)
		l.advance(tok.Type)
	}

	if l.depth > 0 {
		return nil, []string{"unbalanced parentheses: missing closing parenthesis"}
	}
	return append(l.tokens, Token{Type: TokenEOF, Pos: l.pos}), nil
}

func (l *Lexer) accepts(t TokenType) bool {
	if l.context != nil && len(l.context.ExpectedTokens) > 0 {
		return l.context.ExpectedTokens[t]
	}
	return allowedNext[l.state][t]
}

func (l *Lexer) advance(t TokenType) {
	switch t {
	case TokenEquals:
		l.state = StateAfterEquals
	case TokenNumber, TokenString, TokenBoolean, TokenIdentifier:
		l.state = StateAfterValue
	case TokenUnaryPrefixOp:
		l.state = StateAfterOperator
	case TokenFunction:
		l.state = StateAfterFunction
	case TokenLeftParen:
		l.depth++
		l.state = StateAfterLeftParen
	case TokenRightParen:
		l.depth--
		l.state = StateAfterRightParen
	case TokenComma:
		l.state = StateAfterComma
	}
}

// signAllowed reports whether a '+' or '-' here is a sign rather than a
// binary operator, which call expressions do not have
func (l *Lexer) signAllowed() bool {
	switch l.state {
	case StateStart, StateAfterEquals, StateAfterOperator, StateAfterLeftParen, StateAfterComma:
		return true
	}
	return false
}

func (l *Lexer) at(offset int) rune {
	i := l.pos + offset
	if i < 0 || i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func (l *Lexer) token(t TokenType, start int) Token {
	return Token{Type: t, Value: string(l.src[start:l.pos]), Pos: start}
}

func (l *Lexer) fail(msg string, start int) Token {
	return Token{Type: TokenError, Value: msg, Pos: start}
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) next() Token {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return Token{Type: TokenEOF, Pos: l.pos}
	}

	start := l.pos
	ch := l.at(0)

	switch {
	case ch == '"':
		return l.lexString()
	case isDigit(ch), ch == '.' && isDigit(l.at(1)):
		return l.lexNumber()
	case isLetter(ch), ch == '_':
		return l.lexName()
	}

	l.pos++
	switch ch {
	case '=':
		if len(l.tokens) > 0 {
			return l.fail("unexpected '='", start)
		}
		return l.token(TokenEquals, start)
	case '+', '-':
		if !l.signAllowed() {
			return l.fail("operators are not supported: "+string(ch), start)
		}
		return l.token(TokenUnaryPrefixOp, start)
	case '(':
		return l.token(TokenLeftParen, start)
	case ')':
		if l.depth == 0 {
			return l.fail("unbalanced parentheses: too many closing parentheses", start)
		}
		return l.token(TokenRightParen, start)
	case ',':
		if l.depth == 0 {
			return l.fail("',' outside of a function call", start)
		}
		return l.token(TokenComma, start)
	}
	return l.fail("unexpected character: "+string(ch), start)
}

// lexNumber reads digits, an optional fraction and an optional exponent.
// An 'e' not followed by digits is left for the next token.
func (l *Lexer) lexNumber() Token {
	start := l.pos
	l.digits()
	if l.at(0) == '.' && isDigit(l.at(1)) {
		l.pos++
		l.digits()
	}
	if e := l.at(0); e == 'e' || e == 'E' {
		mark := l.pos
		l.pos++
		if s := l.at(0); s == '+' || s == '-' {
			l.pos++
		}
		if isDigit(l.at(0)) {
			l.digits()
		} else {
			l.pos = mark
		}
	}
	return l.token(TokenNumber, start)
}

func (l *Lexer) digits() {
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
}

// lexString reads a double-quoted string; "" inside stands for one quote
func (l *Lexer) lexString() Token {
	start := l.pos
	l.pos++

	var sb strings.Builder
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		l.pos++
		if ch != '"' {
			sb.WriteRune(ch)
			continue
		}
		if l.at(0) != '"' {
			return Token{Type: TokenString, Value: sb.String(), Pos: start}
		}
		sb.WriteRune('"')
		l.pos++
	}
	return l.fail("unclosed string literal", start)
}

// lexName reads a word. Followed by '(' it is a function name, TRUE and
// FALSE are booleans, anything else is an identifier. Function names and
// booleans are upper cased.
func (l *Lexer) lexName() Token {
	start := l.pos
	for l.pos < len(l.src) && isNameChar(l.src[l.pos]) {
		l.pos++
	}
	word := string(l.src[start:l.pos])
	upper := strings.ToUpper(word)

	end := l.pos
	l.skipSpace()
	if l.at(0) == '(' {
		return Token{Type: TokenFunction, Value: upper, Pos: start}
	}
	l.pos = end

	if upper == "TRUE" || upper == "FALSE" {
		return Token{Type: TokenBoolean, Value: upper, Pos: start}
	}
	return Token{Type: TokenIdentifier, Value: word, Pos: start}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch rune) bool {
	return ch < unicode.MaxASCII && unicode.IsLetter(ch)
}

func isNameChar(ch rune) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}
