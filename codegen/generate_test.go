package codegen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/reusee/jehanni/parsing"
	"github.com/reusee/jehanni/tokens"
)

func line(name, value string) *parsing.Line {
	return &parsing.Line{
		Inner: &parsing.VarDefinition{
			Name:  &parsing.VarName{Text: name},
			Value: &parsing.Value{Text: value},
		},
	}
}

func TestGenerate(t *testing.T) {
	program := &parsing.Program{
		Lines: []*parsing.Line{
			line("name", "value"),
		},
	}
	if got := Generate(program); got != "fn main() {\n    let name = value;\n}\n" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerateEmpty(t *testing.T) {
	if got := Generate(new(parsing.Program)); got != "fn main() {\n}\n" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerateKeepsOrder(t *testing.T) {
	program := new(parsing.Program)
	var expected []string
	for i := range 50 {
		name := fmt.Sprintf("v%d", 49-i)
		program.Lines = append(program.Lines, line(name, fmt.Sprint(i)))
		expected = append(expected, fmt.Sprintf("    let %s = %d;", name, i))
	}
	// duplicated names are emitted as is
	program.Lines = append(program.Lines, line("v0", "7"))
	expected = append(expected, "    let v0 = 7;")

	lines := strings.Split(strings.TrimSuffix(Generate(program), "\n"), "\n")
	if len(lines) != len(expected)+2 {
		t.Fatalf("got %d lines", len(lines))
	}
	for i, want := range expected {
		if lines[i+1] != want {
			t.Fatalf("line %d: got %q, want %q", i+1, lines[i+1], want)
		}
	}
}

func TestGenerateFromSource(t *testing.T) {
	stream, err := tokens.Tokenize("test01 := 3\ntest02:=25\n")
	if err != nil {
		t.Fatal(err)
	}
	program, err := parsing.Parse(stream)
	if err != nil {
		t.Fatal(err)
	}
	expected := `fn main() {
    let test01 = 3;
    let test02 = 25;
}
`
	if got := Generate(program); got != expected {
		t.Fatalf("got %q", got)
	}
}

func TestNestedDepth(t *testing.T) {
	var b strings.Builder
	Rust.node(&b, line("x", "1"), 3)
	if got := b.String(); got != strings.Repeat("    ", 3)+"let x = 1;\n" {
		t.Fatalf("got %q", got)
	}
}

func TestCustomTarget(t *testing.T) {
	js := Target{
		Name:       "js",
		Header:     "(function () {",
		Footer:     "})();",
		Indent:     "\t",
		Keyword:    "const ",
		Assign:     " = ",
		Terminator: ";",
	}
	program := &parsing.Program{
		Lines: []*parsing.Line{
			line("a", "1"),
		},
	}
	if got := js.Generate(program); got != "(function () {\n\tconst a = 1;\n})();\n" {
		t.Fatalf("got %q", got)
	}
}

func TestLookupTarget(t *testing.T) {
	target, err := LookupTarget("rust")
	if err != nil {
		t.Fatal(err)
	}
	if target != Rust {
		t.Fatalf("got %+v", target)
	}
	_, err = LookupTarget("cobol")
	if err == nil {
		t.Fatal("should fail")
	}
	if !strings.Contains(err.Error(), `unknown target "cobol"`) {
		t.Fatalf("got %v", err)
	}
}
