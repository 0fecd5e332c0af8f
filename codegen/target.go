package codegen

import (
	"fmt"
	"maps"
	"slices"
)

// Target describes the surface syntax of the output language.
type Target struct {
	Name       string `json:"name"`
	Header     string `json:"header"`
	Footer     string `json:"footer"`
	Indent     string `json:"indent"`
	Keyword    string `json:"keyword"`
	Assign     string `json:"assign"`
	Terminator string `json:"terminator"`
}

var Rust = Target{
	Name:       "rust",
	Header:     "fn main() {",
	Footer:     "}",
	Indent:     "    ",
	Keyword:    "let ",
	Assign:     " = ",
	Terminator: ";",
}

var builtinTargets = map[string]Target{
	Rust.Name: Rust,
}

func LookupTarget(name string) (Target, error) {
	target, ok := builtinTargets[name]
	if !ok {
		return Target{}, fmt.Errorf("unknown target %q, available: %v", name, TargetNames())
	}
	return target, nil
}

func TargetNames() []string {
	return slices.Sorted(maps.Keys(builtinTargets))
}
