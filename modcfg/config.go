// Package modcfg loads the TOML run configuration that drives a translator
// invocation: where the source tree lives, what default nullability
// assumption a file without NS_ASSUME_NONNULL starts from, how many pass
// sweeps to allow, and which standard-library type table to load into the
// type mapper (spec §4.5's Named lookups for Foundation/UIKit-adjacent
// types). This generalizes the teacher's `bootstrap/depm/load_mod.go`
// TOML-module loader from Chai module/profile metadata to translator
// behaviour.
package modcfg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// RunConfigFileName is the file LoadConfig looks for inside a project root.
const RunConfigFileName = "swiftify.toml"

// Config is the resolved, validated run configuration for one translation
// run.
type Config struct {
	// ProjectRoot is the directory RunConfigFileName was loaded from.
	ProjectRoot string

	// Name identifies the project being translated. Nothing outside this
	// package reads it.
	Name string

	// AssumeNonnullDefault is the nullability a file starts from before any
	// NS_ASSUME_NONNULL_BEGIN/END region is seen (spec §4.4 item 7). Chai's
	// module system has no analogue; Objective-C's own default is "nullable
	// unless annotated otherwise", so this defaults to false. It is loaded
	// and stored only: no pass or lowering step reads it.
	AssumeNonnullDefault bool

	// MaxPassIterations overrides passes.DefaultMaxIterations; zero means
	// "use the package default".
	MaxPassIterations int

	// TypeTable names which built-in Named-type table the type mapper
	// loads for framework types it doesn't see a declaration for (e.g.
	// "foundation", "uikit", "none"). Unset defaults to "foundation". It is
	// loaded and stored only: the type mapper uses its fixed built-in tables
	// and does not read this field.
	TypeTable string

	// SourceDirs are directories (relative to ProjectRoot) collected for
	// Objective-C sources; empty means the whole project root.
	SourceDirs []string
}

// tomlConfig is the on-disk shape of RunConfigFileName.
type tomlConfig struct {
	Project *tomlProject `toml:"project"`
}

type tomlProject struct {
	Name                 string   `toml:"name"`
	AssumeNonnullDefault bool     `toml:"assume-nonnull-default"`
	MaxPassIterations    int      `toml:"max-pass-iterations,omitempty"`
	TypeTable            string   `toml:"type-table,omitempty"`
	SourceDirs           []string `toml:"source-dirs,omitempty"`
}

// LoadConfig loads and validates the run configuration from
// projectRoot/RunConfigFileName.
func LoadConfig(projectRoot string) (*Config, error) {
	f, err := os.Open(filepath.Join(projectRoot, RunConfigFileName))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", RunConfigFileName, err)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", RunConfigFileName, err)
	}

	tc := &tomlConfig{}
	if err := toml.Unmarshal(buf, tc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", RunConfigFileName, err)
	}

	cfg, err := validate(projectRoot, tc)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the run configuration used when no RunConfigFileName is
// present -- a bare `swiftify translate some/dir` with no project file at
// all is still a legal invocation (spec §6: the core only needs a parse
// tree and a reporter, nothing project-shaped).
func Default(projectRoot, name string) *Config {
	return &Config{
		ProjectRoot: projectRoot,
		Name:        name,
		TypeTable:   "foundation",
	}
}

func validate(projectRoot string, tc *tomlConfig) (*Config, error) {
	if tc.Project == nil {
		return nil, fmt.Errorf("%s: missing [project] table", RunConfigFileName)
	}
	if tc.Project.Name == "" {
		return nil, fmt.Errorf("%s: [project] is missing a name", RunConfigFileName)
	}

	typeTable := tc.Project.TypeTable
	if typeTable == "" {
		typeTable = "foundation"
	}

	return &Config{
		ProjectRoot:          projectRoot,
		Name:                 tc.Project.Name,
		AssumeNonnullDefault: tc.Project.AssumeNonnullDefault,
		MaxPassIterations:    tc.Project.MaxPassIterations,
		TypeTable:            typeTable,
		SourceDirs:           tc.Project.SourceDirs,
	}, nil
}
