package main

import (
	"github.com/reusee/dscope"
	"github.com/zalgonoise/walk/configs"
	"github.com/zalgonoise/walk/logs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs configs.Module
}
