package debugs

import (
	"context"

	"github.com/reusee/jehanni/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Inspect evaluates a Starlark expression with globals and returns the printed result.
type Inspect func(ctx context.Context, expr string, globals map[string]any) (string, error)

func (Module) Inspect(
	logger logs.Logger,
) Inspect {
	return func(ctx context.Context, expr string, globals map[string]any) (string, error) {
		thread := &starlark.Thread{
			Name: "inspect",
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, "inspect print", "msg", msg)
			},
		}
		value, err := starlark.EvalOptions(fileOptions, thread, "<inspect>", expr, toStringDict(globals))
		if err != nil {
			return "", err
		}
		if str, ok := starlark.AsString(value); ok {
			return str, nil
		}
		return value.String(), nil
	}
}
