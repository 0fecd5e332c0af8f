package jhconfigs

import (
	"cmp"
	"errors"

	"github.com/reusee/jehanni/cmds"
	"github.com/reusee/jehanni/configs"
)

const (
	DefaultInput  = "main.jh"
	DefaultOutput = "out.rs"
)

var (
	inputFlag  = cmds.Var[string]("-in")
	outputFlag = cmds.Var[string]("-out")
)

type Paths struct {
	Input  string
	Output string
}

type GetPaths func() (Paths, error)

func (Module) GetPaths(
	loader configs.Loader,
) GetPaths {
	return func() (ret Paths, err error) {
		var input, output string
		if err := loader.AssignFirst("input", &input); err != nil && !errors.Is(err, configs.ErrValueNotFound) {
			return ret, err
		}
		if err := loader.AssignFirst("output", &output); err != nil && !errors.Is(err, configs.ErrValueNotFound) {
			return ret, err
		}
		ret.Input = cmp.Or(*inputFlag, input, DefaultInput)
		ret.Output = cmp.Or(*outputFlag, output, DefaultOutput)
		return ret, nil
	}
}
