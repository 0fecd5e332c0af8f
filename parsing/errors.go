package parsing

import (
	"fmt"

	"github.com/reusee/jehanni/tokens"
)

// SyntaxError reports a token that does not fit the grammar slot being parsed.
type SyntaxError struct {
	Expected string
	Found    string
	Pos      tokens.Pos
}

var _ tokens.Positioned = SyntaxError{}

func (s SyntaxError) Error() string {
	return fmt.Sprintf("SyntaxError: I was expecting %s, but found %s before it.", s.Expected, s.Found)
}

func (s SyntaxError) Position() tokens.Pos {
	return s.Pos
}

const (
	ExpectNewline    = "a newline at the end of a line"
	ExpectDefinition = "':=' for a variable definition"
	ExpectVarName    = "the variable name at the beginning of a line"
	ExpectValue      = "the value of the variable"
)
