// Command line entry point of xprod.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/dalibo/xprod/internal"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func Main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	defer logPanic()

	// Bootstrap logging first to log in setup.
	internal.SetLoggingHandler(slog.LevelInfo, internal.DefaultColor())

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file.", "err", err)
	}

	err = run(ctx, os.Args[1:])
	if err == nil {
		return
	}
	cancel()
	var code errorCode
	if errors.As(err, &code) {
		slog.Error("Exiting.", "reason", code.message, "code", code.code)
		code.Exit()
	}
	slog.Error("Fatal error.", "err", err)
	if internal.CurrentLevel > slog.LevelDebug {
		slog.Error("Run xprod with --verbose to get more informations.")
	}
	os.Exit(1)
}

func run(ctx context.Context, args []string) error {
	flags := newFlagSet("xprod")
	err := flags.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	controller, err := unmarshalController(flags)
	if err != nil {
		return err
	}
	if controller.Help {
		flags.Usage()
		return nil
	} else if controller.Version {
		showVersion(os.Stdout)
		return nil
	}

	internal.SetLoggingHandler(controller.LogLevel, controller.Color)
	return xprod(ctx, flags, os.Stdout)
}

func logPanic() {
	r := recover()
	if r == nil {
		return
	}
	slog.Error("Panic!", "err", r)
	buf := debug.Stack()
	fmt.Fprintf(os.Stderr, "%s", buf)
	slog.Error("Aborting xprod.", "err", r)
	if internal.CurrentLevel > slog.LevelDebug {
		slog.Error("Run xprod with --verbose to get more informations.")
	}
	os.Exit(1)
}
