package jhconfigs

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/reusee/jehanni/cmds"
	"github.com/reusee/jehanni/codegen"
	"github.com/reusee/jehanni/configs"
)

var targetFlag = cmds.Var[string]("-target")

// GetTarget resolves the output target: flag, then config, then rust.
// Targets defined in config files shadow built-in ones.
type GetTarget func() (codegen.Target, error)

func (Module) GetTarget(
	loader configs.Loader,
) GetTarget {
	return func() (ret codegen.Target, err error) {
		var name string
		if err := loader.AssignFirst("target", &name); err != nil && !errors.Is(err, configs.ErrValueNotFound) {
			return ret, err
		}
		name = cmp.Or(*targetFlag, name, codegen.Rust.Name)

		for target, err := range configs.All[codegen.Target](loader, fmt.Sprintf("targets.%q", name)) {
			if err != nil {
				return ret, fmt.Errorf("target %s: %w", name, err)
			}
			target.Name = name
			return target, nil
		}

		return codegen.LookupTarget(name)
	}
}
