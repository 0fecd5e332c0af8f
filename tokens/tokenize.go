package tokens

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLetter(r rune) bool {
	return isLower(r) || isUpper(r) || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isReserved reports whether r belongs to any token of the language.
func isReserved(r rune) bool {
	return isLetter(r) || isDigit(r) || r == ':' || r == '=' || r == '\n'
}

type lexer struct {
	src       []rune
	pos       int
	curr      Pos
	tokens    []Token
	positions []Pos
}

// Tokenize splits src into tokens. It stops at the first character that cannot be lexed.
func Tokenize(src string) (*Stream, error) {
	l := &lexer{
		src: []rune(src),
		curr: Pos{
			Line:   1,
			Column: 1,
		},
	}
	if err := l.run(); err != nil {
		return nil, err
	}
	return NewStream(l.tokens, l.positions, l.curr), nil
}

func (l *lexer) more() bool {
	return l.pos < len(l.src)
}

func (l *lexer) peek() rune {
	return l.src[l.pos]
}

func (l *lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.curr.Line++
		l.curr.Column = 1
	} else {
		l.curr.Column++
	}
	return r
}

func (l *lexer) emit(t Token, at Pos) {
	l.tokens = append(l.tokens, t)
	l.positions = append(l.positions, at)
}

func (l *lexer) run() error {
	for l.more() {
		r := l.peek()
		var err error
		switch {
		case isLetter(r):
			err = l.identifier()
		case isDigit(r):
			err = l.intLiteral()
		case r == ':':
			err = l.definition()
		case r == '\n':
			l.newline()
		case r == ' ':
			l.advance()
		case isReserved(r):
			err = UnsuitableCharacterError{Char: r, Pos: l.curr}
		default:
			err = UnknownCharacterError{Char: r, Pos: l.curr}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *lexer) identifier() error {
	start := l.curr
	from := l.pos
	for l.more() {
		r := l.peek()
		if r == '=' {
			return UnsuitableCharacterError{Char: r, Pos: l.curr}
		}
		if !isLetter(r) && !isDigit(r) {
			break
		}
		l.advance()
	}
	l.emit(Identifier{Text: string(l.src[from:l.pos])}, start)
	return nil
}

func (l *lexer) intLiteral() error {
	start := l.curr
	from := l.pos
	for l.more() {
		r := l.peek()
		if isLetter(r) || r == '=' {
			return UnsuitableCharacterError{Char: r, Pos: l.curr}
		}
		if !isDigit(r) {
			break
		}
		l.advance()
	}
	l.emit(IntLiteral{Text: string(l.src[from:l.pos])}, start)
	return nil
}

func (l *lexer) definition() error {
	start := l.curr
	l.advance() // :
	if !l.more() {
		return UnsuitableCharacterError{Char: ':', Pos: start}
	}
	if r := l.peek(); r != '=' {
		return UnsuitableCharacterError{Char: r, Pos: l.curr}
	}
	l.advance() // =
	l.emit(Definition{}, start)
	return nil
}

func (l *lexer) newline() {
	start := l.curr
	for l.more() && l.peek() == '\n' {
		l.advance()
	}
	l.emit(Newline{}, start)
}
