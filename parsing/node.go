package parsing

import (
	"fmt"
	"strings"
)

// Node is an AST node. The set of variants is closed.
type Node interface {
	fmt.Stringer
	isNode()
}

// Line holds exactly one statement.
type Line struct {
	Inner Node
}

// VarDefinition is `name := value`.
type VarDefinition struct {
	Name  *VarName
	Value *Value
}

type VarName struct {
	Text string
}

type Value struct {
	Text string
}

var (
	_ Node = new(Line)
	_ Node = new(VarDefinition)
	_ Node = new(VarName)
	_ Node = new(Value)
)

func (*Line) isNode()          {}
func (*VarDefinition) isNode() {}
func (*VarName) isNode()       {}
func (*Value) isNode()         {}

func (l *Line) String() string {
	return l.Inner.String()
}

func (v *VarDefinition) String() string {
	return v.Name.String() + ":=" + v.Value.String()
}

func (v *VarName) String() string {
	return v.Text
}

func (v *Value) String() string {
	return v.Text
}

// Program is the parsed source, one Line per statement in source order.
type Program struct {
	Lines []*Line
}

func (p *Program) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, line := range p.Lines {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(line.String())
	}
	b.WriteString("]")
	return b.String()
}
