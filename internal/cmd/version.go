package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"slices"
)

var (
	commit   string
	Version  string // set by main
	versions = make(map[string]string)
	mainDeps = []string{
		"github.com/knadh/koanf/v2",
		"github.com/deckarep/golang-set/v2",
		"gopkg.in/yaml.v3",
	}
)

func version() string {
	if Version == "" {
		return versions["github.com/dalibo/xprod"]
	}
	return Version
}

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, mod := range bi.Deps {
		if slices.Contains(mainDeps, mod.Path) {
			versions[mod.Path] = mod.Version
		}
		if len(versions) >= len(mainDeps) {
			break
		}
	}

	versions[bi.Main.Path] = bi.Main.Version

	for _, setting := range bi.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 8 {
			commit = setting.Value[:8]
			break
		}
	}
}

func showVersion(w io.Writer) {
	fmt.Fprintf(w, "xprod %s\n", version())

	for _, path := range mainDeps {
		fmt.Fprintf(w, "%s %s\n", path, versions[path])
	}

	fmt.Fprintf(w, "%s %s %s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
