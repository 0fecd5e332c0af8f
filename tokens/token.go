package tokens

import "fmt"

// Token is one lexical unit. The set of variants is closed.
type Token interface {
	fmt.Stringer
	isToken()
}

type Identifier struct {
	Text string
}

type IntLiteral struct {
	Text string
}

// Definition is the ':=' operator.
type Definition struct{}

// Newline stands for one or more consecutive '\n'.
type Newline struct{}

// EndOfInput is returned when reading past the last token. It is never stored in a Stream.
type EndOfInput struct{}

var (
	_ Token = Identifier{}
	_ Token = IntLiteral{}
	_ Token = Definition{}
	_ Token = Newline{}
	_ Token = EndOfInput{}
)

func (Identifier) isToken() {}
func (IntLiteral) isToken() {}
func (Definition) isToken() {}
func (Newline) isToken()    {}
func (EndOfInput) isToken() {}

func (i Identifier) String() string {
	return "'" + i.Text + "'"
}

func (i IntLiteral) String() string {
	return "'" + i.Text + "'"
}

func (Definition) String() string {
	return "':='"
}

func (Newline) String() string {
	return `'\n'`
}

func (EndOfInput) String() string {
	return "EOF"
}

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
