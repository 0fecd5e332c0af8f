package tokens

import "strings"

// Stream is a finished token sequence with a cursor that only moves forward.
type Stream struct {
	tokens    []Token
	positions []Pos
	end       Pos
	idx       int
}

func NewStream(tokens []Token, positions []Pos, end Pos) *Stream {
	if len(positions) != len(tokens) {
		panic("tokens and positions length mismatch")
	}
	return &Stream{
		tokens:    tokens,
		positions: positions,
		end:       end,
	}
}

func (s *Stream) Current() Token {
	if s.idx >= len(s.tokens) {
		return EndOfInput{}
	}
	return s.tokens[s.idx]
}

// Pos returns the position of the current token, or the end of input.
func (s *Stream) Pos() Pos {
	if s.idx >= len(s.positions) {
		return s.end
	}
	return s.positions[s.idx]
}

func (s *Stream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}

func (s *Stream) Done() bool {
	return s.idx >= len(s.tokens)
}

func (s *Stream) Len() int {
	return len(s.tokens)
}

// Tokens returns a copy of all tokens regardless of the cursor.
func (s *Stream) Tokens() []Token {
	ret := make([]Token, len(s.tokens))
	copy(ret, s.tokens)
	return ret
}

func (s *Stream) String() string {
	return Format(s.tokens)
}

// Format renders tokens as a bracketed list of display forms.
func Format(list []Token) string {
	var b strings.Builder
	b.WriteString("[")
	for i, t := range list {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteString("]")
	return b.String()
}
