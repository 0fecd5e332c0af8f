package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/jehanni/cmds"
	"github.com/reusee/jehanni/modes"
)

var (
	showTokens  = cmds.Switch("-tokens")
	showAST     = cmds.Switch("-ast")
	toStdout    = cmds.Switch("-stdout")
	openTap     = cmds.Switch("-tap")
	metricsPath = cmds.Var[string]("-metrics")
	inspects    = cmds.Collect[string]("-inspect")
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmds.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if err := run(context.Background(), scope, Options{
		ShowTokens:  *showTokens,
		ShowAST:     *showAST,
		Stdout:      *toStdout,
		Tap:         *openTap,
		MetricsPath: *metricsPath,
		Inspects:    *inspects,
	}, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
