package configs

import (
	"fmt"
)

// Schema closes the set of settings the walk command reads from CUE files
const Schema = `
grammar?: "arith" | "threading"
mode?: "tokens" | "tree" | "eval" | "script"
vars?: [string]: number
script?: string
hidden?: bool
log_level?: "debug" | "info" | "warn" | "error"
`

type Config struct {
	Grammar  string
	Mode     string
	Vars     map[string]float64
	Script   string
	Hidden   bool
	LogLevel string
}

// Config collects every setting from the first file defining it. Settings no file
// defines keep their zero value
func (l Loader) Config() (cfg Config, err error) {
	if _, err := l.getRoots(); err != nil {
		return Config{}, err
	}

	// First panics on values that do not decode into the setting's type
	defer func() {
		if p := recover(); p != nil {
			e, ok := p.(error)
			if !ok {
				panic(p)
			}
			cfg, err = Config{}, fmt.Errorf("config: %w", e)
		}
	}()

	return Config{
		Grammar:  First[string](l, "grammar"),
		Mode:     First[string](l, "mode"),
		Vars:     First[map[string]float64](l, "vars"),
		Script:   First[string](l, "script"),
		Hidden:   First[bool](l, "hidden"),
		LogLevel: First[string](l, "log_level"),
	}, nil
}
