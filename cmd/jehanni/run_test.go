package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/jehanni/jhconfigs"
	"github.com/reusee/jehanni/logs"
	"github.com/reusee/jehanni/modes"
	"github.com/reusee/jehanni/parsing"
)

func testScope(t *testing.T, source string) (dscope.Scope, string, string) {
	dir := t.TempDir()
	input := filepath.Join(dir, "main.jh")
	output := filepath.Join(dir, "out.rs")
	if err := os.WriteFile(input, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(dir, "jehanni.cue")
	config := fmt.Sprintf("input: %q\noutput: %q\n", input, output)
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}
	scope := dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() jhconfigs.ConfigFiles {
			return jhconfigs.ConfigFiles{configPath}
		},
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	)
	return scope, input, output
}

func TestRun(t *testing.T) {
	scope, _, output := testScope(t, "test01 := 3\ntest02:=25\n")
	stdout := new(bytes.Buffer)
	err := run(t.Context(), scope, Options{
		ShowTokens: true,
		ShowAST:    true,
		Inspects: []string{
			"len(program)",
			"target['Name']",
		},
	}, stdout)
	if err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	expected := "fn main() {\n    let test01 = 3;\n    let test02 = 25;\n}\n"
	if string(content) != expected {
		t.Fatalf("got %q", content)
	}

	out := stdout.String()
	for _, want := range []string{
		`tokens: ['test01', ':=', '3', '\n', 'test02', ':=', '25', '\n']` + "\n",
		"ast: [test01:=3, test02:=25]\n",
		"program:\n",
		"\n2\nrust\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("no %q in %q", want, out)
		}
	}
}

func TestRunStdout(t *testing.T) {
	scope, _, output := testScope(t, "x := 1\n")
	stdout := new(bytes.Buffer)
	if err := run(t.Context(), scope, Options{
		Stdout: true,
	}, stdout); err != nil {
		t.Fatal(err)
	}
	if stdout.String() != "fn main() {\n    let x = 1;\n}\n" {
		t.Fatalf("got %q", stdout.String())
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Fatalf("output file written: %v", err)
	}
}

func TestRunFailureKeepsOutput(t *testing.T) {
	scope, _, output := testScope(t, "x := 1\ny :=\n")
	if err := os.WriteFile(output, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := run(t.Context(), scope, Options{}, new(bytes.Buffer))
	var syntaxErr parsing.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("got %v", err)
	}
	if syntaxErr.Expected != parsing.ExpectValue || syntaxErr.Found != `'\n'` {
		t.Fatalf("got %+v", syntaxErr)
	}
	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "previous" {
		t.Fatalf("got %q", content)
	}
	entries, err := os.ReadDir(filepath.Dir(output))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("unexpected files: %v", entries)
	}
}

func TestRunMissingInput(t *testing.T) {
	scope, input, _ := testScope(t, "")
	if err := os.Remove(input); err != nil {
		t.Fatal(err)
	}
	err := run(t.Context(), scope, Options{}, new(bytes.Buffer))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

func TestRunMetrics(t *testing.T) {
	scope, input, _ := testScope(t, "a := 1\n")
	metricsPath := filepath.Join(filepath.Dir(input), "metrics.prom")
	if err := run(t.Context(), scope, Options{
		MetricsPath: metricsPath,
	}, new(bytes.Buffer)); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `jehanni_transpile_runs_total{result="ok"} 1`) {
		t.Fatalf("got %s", content)
	}
	if !strings.Contains(string(content), "jehanni_lines_total 1") {
		t.Fatalf("got %s", content)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.rs")
	if err := writeFile(path, []byte("a")); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(path, []byte("b")); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "b" {
		t.Fatalf("got %q", content)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left: %v", entries)
	}

	if err := writeFile(filepath.Join(dir, "no", "such", "dir"), []byte("x")); err == nil {
		t.Fatal("should fail")
	}
}
