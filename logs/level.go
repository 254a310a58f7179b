package logs

import (
	"fmt"
	"log/slog"
	"strings"
)

type Level = *slog.LevelVar

func (Module) Level() Level {
	return new(slog.LevelVar)
}

// ParseLevel reads one of debug, info, warn or error
func ParseLevel(str string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(str))); err != nil {
		return l, fmt.Errorf("log level %q: %w", str, err)
	}
	return l, nil
}
