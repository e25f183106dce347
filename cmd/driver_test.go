package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"swiftify/intent"
	"swiftify/listener"
	"swiftify/modcfg"
	"swiftify/report"
	"swiftify/typesys"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestCollectFilesFindsObjectiveCSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Widget.h"), "@interface Widget @end\n")
	writeFile(t, filepath.Join(dir, "Widget.m"), "@implementation Widget @end\n")
	writeFile(t, filepath.Join(dir, "README.md"), "not a source file\n")

	cfg := modcfg.Default(dir, "Widgets")
	d := NewDriver(cfg, report.NewReporter(report.LogLevelSilent))

	files, err := d.CollectFiles()
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 source files, got %d: %v", len(files), files)
	}
}

func TestScanImportsFiresRegistry(t *testing.T) {
	dir := t.TempDir()
	widgetPath := filepath.Join(dir, "Widget.m")
	writeFile(t, widgetPath, "#import \"Base.h\"\n#include <Foundation/Foundation.h>\n\n@implementation Widget\n@end\n")

	cfg := modcfg.Default(dir, "Widgets")
	d := NewDriver(cfg, report.NewReporter(report.LogLevelSilent))

	var seen []listener.Reference
	d.Imports().Register(listener.ImportObserverFunc(func(ref listener.Reference) {
		seen = append(seen, ref)
	}))

	if err := d.ScanImports(widgetPath); err != nil {
		t.Fatalf("ScanImports: %v", err)
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 import edges, got %d: %v", len(seen), seen)
	}
	if seen[0].ToPath != filepath.Join(dir, "Base.h") {
		t.Errorf("expected the local import to resolve relative to Widget.m's directory, got %q", seen[0].ToPath)
	}
}

func TestRunPassesConvergesOverASingleTypeGraph(t *testing.T) {
	cfg := modcfg.Default(t.TempDir(), "Widgets")
	d := NewDriver(cfg, report.NewReporter(report.LogLevelSilent))

	g := intent.NewGraph()
	typ := intent.NewType(intent.TypeClass, "Widget", false)
	typ.AddProperty(intent.NewProperty("count", typesys.Int), nil)
	g.AddType(typ)

	sweeps := d.RunPasses(g)
	if sweeps == 0 {
		t.Errorf("expected at least one sweep")
	}
}
