package pipeline

import (
	"context"
	"time"

	"github.com/reusee/jehanni/codegen"
	"github.com/reusee/jehanni/jhconfigs"
	"github.com/reusee/jehanni/logs"
	"github.com/reusee/jehanni/parsing"
	"github.com/reusee/jehanni/sources"
	"github.com/reusee/jehanni/tokens"
)

type Result struct {
	Span    logs.Span
	Source  *sources.Source
	Target  codegen.Target
	Tokens  []tokens.Token
	Program *parsing.Program
	Output  string
}

// Transpile runs lexer, parser and generator over src. name is used in error locations only.
type Transpile func(ctx context.Context, name string, src string) (*Result, error)

func (Module) Transpile(
	logger logs.Logger,
	newSpan logs.NewSpan,
	getTarget jhconfigs.GetTarget,
	metrics *Metrics,
) Transpile {
	return func(ctx context.Context, name string, src string) (_ *Result, err error) {
		ctx, span := newSpan(ctx, "")
		source := sources.New(name, src)
		defer func() {
			if err != nil {
				metrics.Runs.WithLabelValues(resultFailure).Inc()
				err = logs.WrapSpan(ctx, sources.WithPos(err, source))
				logger.DebugContext(ctx, "transpile failed", "name", name, "error", err)
				return
			}
			metrics.Runs.WithLabelValues(resultOK).Inc()
		}()

		target, err := getTarget()
		if err != nil {
			return nil, err
		}

		stage := func(stageName string) func() {
			t0 := time.Now()
			return func() {
				metrics.Duration.WithLabelValues(stageName).Observe(time.Since(t0).Seconds())
			}
		}

		done := stage("tokenize")
		stream, err := tokens.Tokenize(src)
		done()
		if err != nil {
			return nil, err
		}
		list := stream.Tokens()
		metrics.Tokens.Add(float64(len(list)))
		logger.DebugContext(ctx, "tokenized", "name", name, "tokens", len(list))

		done = stage("parse")
		program, err := parsing.Parse(stream)
		done()
		if err != nil {
			return nil, err
		}
		metrics.Lines.Add(float64(len(program.Lines)))
		logger.DebugContext(ctx, "parsed", "name", name, "lines", len(program.Lines))

		done = stage("generate")
		output := target.Generate(program)
		done()
		logger.DebugContext(ctx, "generated", "name", name, "target", target.Name, "bytes", len(output))

		return &Result{
			Span:    span,
			Source:  source,
			Target:  target,
			Tokens:  list,
			Program: program,
			Output:  output,
		}, nil
	}
}
