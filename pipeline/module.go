package pipeline

import (
	"github.com/reusee/dscope"
	"github.com/reusee/jehanni/jhconfigs"
	"github.com/reusee/jehanni/logs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs jhconfigs.Module
}
