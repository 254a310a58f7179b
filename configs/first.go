package configs

import (
	"errors"
	"fmt"
)

// First decodes the value at `path` from the first file defining it, or returns T's zero
// value when no file does. Any other error panics
func First[T any](loader Loader, path string) T {
	var value T
	err := loader.AssignFirst(path, &value)
	switch {
	case err == nil, errors.Is(err, ErrValueNotFound):
		return value
	default:
		panic(fmt.Errorf("%s: %w", path, err))
	}
}
