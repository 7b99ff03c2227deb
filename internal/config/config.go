// Configuration from YAML file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/dalibo/xprod/internal/errorlist"
	"github.com/dalibo/xprod/internal/lists"
	"github.com/dalibo/xprod/internal/render"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds what to generate and how to print it.
type Config struct {
	Path       string      `koanf:"-"`
	Format     string      `koanf:"format"`
	Output     string      `koanf:"output"`
	Limit      int         `koanf:"limit"`
	Count      bool        `koanf:"count"`
	FailEmpty  bool        `koanf:"fail_empty"`
	Retries    uint        `koanf:"retries"`
	Dimensions []Dimension `koanf:"-"`
}

func defaults() map[string]any {
	return map[string]any{
		"format":     "",
		"output":     "text",
		"limit":      0,
		"count":      false,
		"fail_empty": false,
		"retries":    3,
	}
}

// flags not loaded in configuration.
var controlFlags = []string{"config", "color", "help", "quiet", "verbose", "version"}

// Load configuration in order of precedence: defaults, YAML file,
// XPROD_* environment, then flags explicitly set. Positional arguments of
// flags are NAME=V1,V2 dimensions, appended after file dimensions.
func Load(flags *pflag.FlagSet) (c Config, err error) {
	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults(), k.Delim()), nil)

	userPath, _ := flags.GetString("config")
	if userPath == "" {
		userPath = os.Getenv("XPROD_CONFIG")
	}
	c.Path, err = FindFile(userPath)
	if err != nil {
		return
	}
	switch c.Path {
	case "":
		slog.Debug("No configuration file.")
	case "-":
		slog.Info("Reading configuration from standard input.")
		err = k.Load(readerProvider{os.Stdin}, yaml.Parser())
	default:
		slog.Info("Using YAML configuration file.", "path", c.Path)
		err = k.Load(file.Provider(c.Path), yaml.Parser())
	}
	if err != nil {
		return c, fmt.Errorf("%s: %w", c.Path, err)
	}

	err = k.Load(env.Provider("XPROD_", k.Delim(), func(key string) string {
		key = strings.ToLower(strings.TrimPrefix(key, "XPROD_"))
		if key == "dimensions" || key == "config" || key == "verbosity" {
			// Handled elsewhere.
			return ""
		}
		slog.Debug("Loading environment var.", "var", key)
		return key
	}), nil)
	if err != nil {
		return c, fmt.Errorf("environment: %w", err)
	}

	err = k.Load(posflag.ProviderWithFlag(flags, k.Delim(), k, func(f *pflag.Flag) (string, any) {
		if !f.Changed || slices.Contains(controlFlags, f.Name) {
			return "", nil
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		return key, posflag.FlagVal(flags, f)
	}), nil)
	if err != nil {
		return c, fmt.Errorf("flags: %w", err)
	}

	err = k.Unmarshal("", &c)
	if err != nil {
		return c, fmt.Errorf("decode: %w", err)
	}

	err = c.loadDimensions(k.Get("dimensions"), flags.Args())
	if err != nil {
		return
	}
	err = c.Check()
	return
}

func (c *Config) loadDimensions(yaml any, args []string) error {
	errs := errorlist.New("bad dimensions")
	for i, item := range yamlList(yaml) {
		d, err := DecodeDimension(item)
		if err != nil {
			if !errs.Append(fmt.Errorf("dimension %d: %w", i, err)) {
				break
			}
			continue
		}
		c.Dimensions = append(c.Dimensions, d)
	}
	for _, arg := range args {
		d, err := ParseArg(arg)
		if err != nil {
			if !errs.Append(err) {
				break
			}
			continue
		}
		c.Dimensions = append(c.Dimensions, d)
	}
	return errs.Err()
}

func yamlList(yaml any) []any {
	switch v := yaml.(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}

// Check validates the whole configuration, reporting many errors at once.
func (c Config) Check() error {
	errs := errorlist.New("bad configuration")
	if !slices.Contains(render.Outputs, c.Output) {
		errs.Append(fmt.Errorf("output: unknown %q, must be one of %s", c.Output, strings.Join(render.Outputs, ", ")))
	}
	if c.Limit < 0 {
		errs.Append(fmt.Errorf("limit: must be positive"))
	}

	names := lists.Multimap[string, int]{}
	for i, d := range c.Dimensions {
		names.Put(d.Name, i)
		if !errs.Append(d.Check()) {
			return errs
		}
	}
	duplicates := names.Duplicates()
	slices.Sort(duplicates)
	for _, name := range duplicates {
		if !errs.Append(fmt.Errorf("dimension %s: defined %d times", name, len(names[name]))) {
			break
		}
	}
	return errs.Err()
}

// Names returns dimension names in order.
func (c Config) Names() []string {
	return lists.Map(c.Dimensions, func(d Dimension) string { return d.Name })
}

// FindFile returns the configuration file path, or empty string if none.
//
// Having both xprod.yml and xprod.yaml in the same directory is ambiguous.
func FindFile(userValue string) (configpath string, err error) {
	if userValue != "" {
		return userValue, nil
	}

	slog.Debug("Searching configuration file in standard locations.")
	home, _ := os.UserHomeDir()
	dirs := []string{
		".",
		path.Join(home, ".config"),
		"/etc",
	}

	for _, dir := range dirs {
		var found lists.Slice[string]
		for _, name := range []string{"xprod.yml", "xprod.yaml"} {
			candidate := path.Join(dir, name)
			_, err := os.Stat(candidate)
			if err == nil {
				found = append(found, candidate)
				continue
			}
			slog.Debug("Ignoring configuration file.", "path", candidate, "err", err)
		}
		single, err := lists.GetSingleOrNone[string](found)
		if err != nil {
			return "", fmt.Errorf("%s: ambiguous configuration file: %w", dir, err)
		}
		if v, ok := single.Get(); ok {
			slog.Debug("Found configuration file.", "path", v)
			return v, nil
		}
	}

	return "", nil
}

// readerProvider reads configuration bytes from a stream, like stdin.
type readerProvider struct {
	r io.Reader
}

func (p readerProvider) ReadBytes() ([]byte, error) {
	return io.ReadAll(p.r)
}

func (readerProvider) Read() (map[string]any, error) {
	return nil, errors.New("readerProvider does not support Read()")
}
