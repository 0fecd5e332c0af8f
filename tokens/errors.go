package tokens

import "fmt"

// UnknownCharacterError reports a character outside the set the language knows about.
type UnknownCharacterError struct {
	Char rune
	Pos  Pos
}

func (u UnknownCharacterError) Error() string {
	return fmt.Sprintf("CharacterError: I found an unknown character '%c'.", u.Char)
}

func (u UnknownCharacterError) Position() Pos {
	return u.Pos
}

// UnsuitableCharacterError reports a known character in a place no token may start or continue.
type UnsuitableCharacterError struct {
	Char rune
	Pos  Pos
}

func (u UnsuitableCharacterError) Error() string {
	return fmt.Sprintf("TokenError: I found an unsuitable character '%c'.", u.Char)
}

func (u UnsuitableCharacterError) Position() Pos {
	return u.Pos
}

// Positioned is implemented by every error the front end produces.
type Positioned interface {
	error
	Position() Pos
}

var (
	_ Positioned = UnknownCharacterError{}
	_ Positioned = UnsuitableCharacterError{}
)
