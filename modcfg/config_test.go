package modcfg

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, RunConfigFileName), []byte(body), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}
}

func TestLoadConfigAppliesTypeTableDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[project]
name = "Widgets"
assume-nonnull-default = true
`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "Widgets" {
		t.Errorf("expected name %q, got %q", "Widgets", cfg.Name)
	}
	if !cfg.AssumeNonnullDefault {
		t.Errorf("expected assume-nonnull-default to carry through as true")
	}
	if cfg.TypeTable != "foundation" {
		t.Errorf("expected the type table to default to %q, got %q", "foundation", cfg.TypeTable)
	}
}

func TestLoadConfigHonorsExplicitTypeTableAndSources(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[project]
name = "Widgets"
type-table = "uikit"
max-pass-iterations = 4
source-dirs = ["Sources", "Vendor/Widgets"]
`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TypeTable != "uikit" {
		t.Errorf("expected type table %q, got %q", "uikit", cfg.TypeTable)
	}
	if cfg.MaxPassIterations != 4 {
		t.Errorf("expected max-pass-iterations 4, got %d", cfg.MaxPassIterations)
	}
	if len(cfg.SourceDirs) != 2 || cfg.SourceDirs[0] != "Sources" || cfg.SourceDirs[1] != "Vendor/Widgets" {
		t.Errorf("unexpected source dirs: %v", cfg.SourceDirs)
	}
}

func TestLoadConfigRejectsMissingProjectTable(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `caching = true`)

	if _, err := LoadConfig(dir); err == nil {
		t.Fatalf("expected an error for a config file with no [project] table")
	}
}

func TestLoadConfigRejectsMissingName(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[project]
type-table = "uikit"
`)

	if _, err := LoadConfig(dir); err == nil {
		t.Fatalf("expected an error for a project with no name")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(dir); err == nil {
		t.Fatalf("expected an error when %s is absent", RunConfigFileName)
	}
}

func TestDefaultUsesFoundationTypeTable(t *testing.T) {
	cfg := Default("/tmp/proj", "Widgets")
	if cfg.TypeTable != "foundation" {
		t.Errorf("expected the zero-config default to be %q, got %q", "foundation", cfg.TypeTable)
	}
	if cfg.Name != "Widgets" {
		t.Errorf("expected name %q, got %q", "Widgets", cfg.Name)
	}
}
