package configs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Loader with no files, fork a scope with dscope.Provide(NewLoader(...)) to load some
func (Module) Loader() Loader {
	return NewLoader(nil, Schema)
}

type GetConfig func() (Config, error)

func (Module) GetConfig(loader Loader) GetConfig {
	return loader.Config
}
