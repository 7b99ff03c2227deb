package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dalibo/xprod/internal"
	"github.com/lithammer/dedent"
	"github.com/spf13/pflag"
)

func newFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SortFlags = false
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [OPTIONS] [NAME=V1,V2,...]...\n\n", name)
		flags.PrintDefaults()
		os.Stderr.Write([]byte(dedent.Dedent(`

		xprod prints every combination of dimension values, one per line.
		Dimensions come from the YAML configuration file and from NAME=V1,V2
		arguments. The rightmost dimension varies fastest.
		`)))
	}

	flags.StringP("config", "c", "", "Path to YAML configuration file. Use - for stdin.")
	flags.StringP("format", "f", "", "Format of each combination, like {env}-{region.upper()}.")
	flags.StringP("output", "o", "text", "Output: text, json or yaml.")
	flags.IntP("limit", "n", 0, "Stop after this number of combinations. 0 means no limit.")
	flags.Bool("count", false, "Print only the number of combinations.")
	flags.Bool("fail-empty", false, "Exit with 2 if there is no combination.")
	flags.Uint("retries", 3, "Number of attempts to open dimension files.")
	flags.Bool("color", internal.DefaultColor(), "Force color output.")
	flags.CountP("quiet", "q", "Decrease log verbosity.")
	flags.CountP("verbose", "v", "Increase log verbosity.")
	flags.BoolP("version", "V", false, "Show version and exit.")
	flags.BoolP("help", "?", false, "Show this help message and exit.")
	return flags
}

// Controller holds flags and environment values controlling the execution
// of xprod, not the generation itself.
type Controller struct {
	Color     bool
	Help      bool
	Version   bool
	Quiet     int
	Verbose   int
	Verbosity string
	LogLevel  slog.Level
}

var levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

func unmarshalController(flags *pflag.FlagSet) (controller Controller, err error) {
	controller.Color, _ = flags.GetBool("color")
	controller.Help, _ = flags.GetBool("help")
	controller.Version, _ = flags.GetBool("version")
	controller.Quiet, _ = flags.GetCount("quiet")
	controller.Verbose, _ = flags.GetCount("verbose")
	controller.Verbosity = os.Getenv("XPROD_VERBOSITY")

	if controller.Verbosity == "" || flags.Changed("quiet") || flags.Changed("verbose") {
		// Default log level is INFO, which index is 1.
		levelIndex := 1 - controller.Verbose + controller.Quiet
		levelIndex = max(0, min(levelIndex, len(levels)-1))
		controller.LogLevel = levels[levelIndex]
		return
	}

	controller.LogLevel, err = internal.ParseLevel(controller.Verbosity)
	if err != nil {
		return controller, fmt.Errorf("XPROD_VERBOSITY: %w", err)
	}
	return
}
