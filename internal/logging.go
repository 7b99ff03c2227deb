package internal

import (
	"log/slog"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var CurrentLevel slog.Level

// ParseLevel reads a level name as found in XPROD_VERBOSITY.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s))))
	return level, err
}

// DefaultColor tells whether stderr is a terminal and NO_COLOR is unset.
func DefaultColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

func SetLoggingHandler(level slog.Level, color bool) {
	CurrentLevel = level
	var h slog.Handler
	if color {
		h = tint.NewHandler(os.Stderr, &tint.Options{
			Level:       level,
			ReplaceAttr: replaceAttr,
			TimeFormat:  "15:04:05",
		})
	} else {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: replaceAttr,
		})
	}
	slog.SetDefault(slog.New(h))
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindAny {
		return a
	}
	switch v := a.Value.Any().(type) {
	case nil:
		if a.Key == "err" {
			// Drop nil error.
			return slog.Attr{}
		}
	case mapset.Set[string]:
		s := v.ToSlice()
		a.Value = slog.AnyValue(s)
	}
	return a
}
