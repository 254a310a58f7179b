package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestLoggerLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
		level Level,
	) {
		logger.Debug("hidden")
		logger.Info("shown", "grammar", "arith")
		level.Set(slog.LevelDebug)
		logger.Debug("now shown")

		out := buf.String()
		if strings.Contains(out, "msg=hidden") {
			t.Fatalf("got %v", out)
		}
		if !strings.Contains(out, "msg=shown grammar=arith") {
			t.Fatalf("got %v", out)
		}
		if !strings.Contains(out, `msg="now shown"`) {
			t.Fatalf("got %v", out)
		}
	})
}

func TestParseLevel(t *testing.T) {
	for str, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(str)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%q: got %v", str, got)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("should error")
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("walk.grammar-name"); got != "WALK_GRAMMAR_NAME" {
		t.Fatalf("got %v", got)
	}
}
