package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/jehanni/debugs"
	"github.com/reusee/jehanni/pipeline"
)

type Module struct {
	dscope.Module
	Pipeline pipeline.Module
	Debugs   debugs.Module
}
