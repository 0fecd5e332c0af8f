package codegen

import (
	"fmt"
	"strings"

	"github.com/reusee/jehanni/parsing"
)

// Generate renders program as Rust source.
func Generate(program *parsing.Program) string {
	return Rust.Generate(program)
}

// Generate wraps every line of program in one top-level block of the target language.
func (t Target) Generate(program *parsing.Program) string {
	var b strings.Builder
	b.WriteString(t.Header)
	b.WriteString("\n")
	for _, line := range program.Lines {
		t.node(&b, line, 1)
	}
	b.WriteString(t.Footer)
	b.WriteString("\n")
	return b.String()
}

func (t Target) node(b *strings.Builder, node parsing.Node, depth int) {
	switch node := node.(type) {
	case *parsing.Line:
		t.node(b, node.Inner, depth)
	case *parsing.VarDefinition:
		b.WriteString(strings.Repeat(t.Indent, depth))
		b.WriteString(t.Keyword)
		t.node(b, node.Name, depth)
		b.WriteString(t.Assign)
		t.node(b, node.Value, depth)
		b.WriteString(t.Terminator)
		b.WriteString("\n")
	case *parsing.VarName:
		b.WriteString(node.Text)
	case *parsing.Value:
		b.WriteString(node.Text)
	default:
		panic(fmt.Errorf("unknown node type %T", node))
	}
}
