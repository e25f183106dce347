package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"swiftify/intent"
	"swiftify/listener"
	"swiftify/logging"
	"swiftify/modcfg"
	"swiftify/passes"
	"swiftify/report"
)

// sourceExts are the file extensions Driver.CollectFiles walks for.
var sourceExts = map[string]bool{".h": true, ".m": true, ".mm": true}

// importDirective matches an Objective-C `#import`/`#include` line well
// enough to discover file-collection edges (spec §6's listener hook)
// without needing the grammar front end that whole-file parsing requires;
// scanning preprocessor directives is a lexical concern, not a syntactic
// one, so it stays in scope for the driver rather than package lower.
var importDirective = regexp.MustCompile(`^\s*#\s*(?:import|include)\s*["<]([^">]+)[">]`)

// Driver is the root of the compilation-independent glue between disk and
// the translation core (Intention Graph, AST lowering, Intention Passes):
// it owns the run configuration, the diagnostics reporter, and the import
// listener registry, mirroring the shape of the teacher's own Compiler
// (rootAbsPath, a dependency graph, a shared reporter) generalized from
// "compile Chai packages to LLVM" to "translate an Objective-C source tree
// into an Intention Graph."
type Driver struct {
	cfg     *modcfg.Config
	rep     *report.Reporter
	imports *listener.Registry
}

// NewDriver creates a Driver over cfg, reporting into rep.
func NewDriver(cfg *modcfg.Config, rep *report.Reporter) *Driver {
	return &Driver{cfg: cfg, rep: rep, imports: listener.NewRegistry()}
}

// Imports exposes the import-observer registry so a caller can watch
// file-collection edges as they're discovered (spec §6, SPEC_FULL §C.2).
func (d *Driver) Imports() *listener.Registry { return d.imports }

// CollectFiles walks the configured source directories (or the project
// root, if none are configured) and returns every Objective-C header and
// implementation file found, in a stable (lexical) order.
func (d *Driver) CollectFiles() ([]string, error) {
	roots := d.cfg.SourceDirs
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var files []string
	for _, rel := range roots {
		root := filepath.Join(d.cfg.ProjectRoot, rel)
		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			if sourceExts[strings.ToLower(filepath.Ext(path))] {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("collecting sources under %s: %w", root, err)
		}
	}
	return files, nil
}

// ScanImports reads path and fires the import registry for every
// #import/#include directive found, resolving the referenced path relative
// to path's own directory.
func (d *Driver) ScanImports(path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i, line := range strings.Split(string(contents), "\n") {
		m := importDirective.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		d.imports.Notify(listener.Reference{
			FromPath: path,
			ToPath:   filepath.Join(dir, m[1]),
			Span:     &report.TextSpan{StartLine: i + 1, EndLine: i + 1},
		})
	}
	return nil
}

// RunPasses runs the standard Intention Pass catalogue over g to
// convergence, honoring the configured iteration cap override (spec
// §4.4's scheduler contract), inside a logging phase spinner, and returns
// the sweep count.
func (d *Driver) RunPasses(g *intent.Graph) int {
	maxIter := d.cfg.MaxPassIterations
	if maxIter <= 0 {
		maxIter = passes.DefaultMaxIterations
	}

	logging.BeginPhase("Analyzing")
	sweeps := passes.Run(g, d.rep, passes.StandardCatalogue(), maxIter)
	logging.EndPhase(!d.rep.AnyErrors())
	return sweeps
}
