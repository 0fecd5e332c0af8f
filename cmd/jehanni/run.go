package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/reusee/dscope"
	"github.com/reusee/jehanni/codegen"
	"github.com/reusee/jehanni/debugs"
	"github.com/reusee/jehanni/jhconfigs"
	"github.com/reusee/jehanni/logs"
	"github.com/reusee/jehanni/pipeline"
	"github.com/reusee/jehanni/tokens"
	"gopkg.in/yaml.v2"
)

type Options struct {
	ShowTokens  bool
	ShowAST     bool
	Stdout      bool
	Tap         bool
	MetricsPath string
	Inspects    []string
}

func run(ctx context.Context, scope dscope.Scope, options Options, stdout io.Writer) (err error) {
	scope.Call(func(
		logger logs.Logger,
		getPaths jhconfigs.GetPaths,
		transpile pipeline.Transpile,
		registry pipeline.Registry,
		inspect debugs.Inspect,
		tap debugs.Tap,
	) {
		if options.MetricsPath != "" {
			defer func() {
				if e := prometheus.WriteToTextfile(options.MetricsPath, registry); e != nil && err == nil {
					err = fmt.Errorf("write metrics: %w", e)
				}
			}()
		}
		err = transpileFile(ctx, options, stdout, logger, getPaths, transpile, inspect, tap)
	})
	return
}

func transpileFile(
	ctx context.Context,
	options Options,
	stdout io.Writer,
	logger logs.Logger,
	getPaths jhconfigs.GetPaths,
	transpile pipeline.Transpile,
	inspect debugs.Inspect,
	tap debugs.Tap,
) error {
	paths, err := getPaths()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	content, err := os.ReadFile(paths.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	result, err := transpile(ctx, paths.Input, string(content))
	if err != nil {
		return err
	}

	if options.ShowTokens {
		fmt.Fprintf(stdout, "tokens: %s\n", tokens.Format(result.Tokens))
	}
	if options.ShowAST {
		out, err := yaml.Marshal(result.Program)
		if err != nil {
			return fmt.Errorf("marshal ast: %w", err)
		}
		fmt.Fprintf(stdout, "ast: %s\n%s", result.Program, out)
	}

	globals := map[string]any{
		"source":       result.Source.Content,
		"tokens":       result.Tokens,
		"program":      result.Program,
		"output":       result.Output,
		"target":       result.Target,
		"target_names": codegen.TargetNames,
	}
	for _, expr := range options.Inspects {
		out, err := inspect(ctx, expr, globals)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", expr, err)
		}
		fmt.Fprintln(stdout, out)
	}
	if options.Tap {
		tap(ctx, paths.Input, globals)
	}

	if options.Stdout {
		_, err := io.WriteString(stdout, result.Output)
		return err
	}
	if err := writeFile(paths.Output, []byte(result.Output)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.InfoContext(ctx, "transpiled",
		"input", paths.Input,
		"output", paths.Output,
		"lines", len(result.Program.Lines),
	)
	return nil
}
