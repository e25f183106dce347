package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ComedicChimera/olive"

	"swiftify/listener"
	"swiftify/logging"
	"swiftify/modcfg"
	"swiftify/report"
	"swiftify/util"
)

// Version is the current swiftify version string, printed by the `version`
// subcommand.
const Version = "0.1.0"

var logLevels = map[string]int{
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warn":    report.LogLevelWarn,
	"verbose": report.LogLevelVerbose,
}

// Execute is the CLI entry point, generalizing the teacher's own
// olive-based `chai` command tree (build/mod/version) into
// translate/check/version.
func Execute() {
	cli := olive.NewCLI("swiftify", "swiftify translates Objective-C sources into Swift", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the translator log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("warn")

	translateCmd := cli.AddSubcommand("translate", "lower, run intention passes, and emit Swift for a project", true)
	translateCmd.AddPrimaryArg("project-path", "the path to the project to translate", true)

	checkCmd := cli.AddSubcommand("check", "lower and run intention passes without emitting Swift", true)
	checkCmd.AddPrimaryArg("project-path", "the path to the project to check", true)

	cli.AddSubcommand("version", "print the swiftify version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("Argument Error", err)
		os.Exit(1)
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "translate":
		execRun(subResult, logLevelOf(result), true)
	case "check":
		execRun(subResult, logLevelOf(result), false)
	case "version":
		logging.PrintInfoMessage("swiftify", Version)
	}
}

func logLevelOf(result *olive.ArgParseResult) int {
	if lvl, ok := logLevels[result.Arguments["loglevel"].(string)]; ok {
		return lvl
	}
	return report.LogLevelWarn
}

// execRun drives the shared translate/check pipeline: load the run
// configuration, collect source files, scan their import directives, and
// print a diagnostic summary. Neither an Objective-C front end nor a
// concrete Emitter ships with this repository (spec §1/§6: both are
// external collaborators), so execRun does not lower sources, run the
// Intention Pass scheduler or emit Swift; it prints an info line saying no
// front end is wired in and, for translate, one saying no Emitter is
// registered.
func execRun(result *olive.ArgParseResult, logLevel int, emit bool) {
	projectPath, _ := result.PrimaryArg()
	rep := report.NewReporter(logLevel)

	cfg, err := modcfg.LoadConfig(projectPath)
	if err != nil {
		cfg = modcfg.Default(projectPath, projectPath)
	}

	d := NewDriver(cfg, rep)
	d.Imports().Register(listenerLogger{})

	logging.BeginPhase("Collecting")
	files, err := d.CollectFiles()
	if err != nil {
		logging.EndPhase(false)
		logging.PrintErrorMessage("Collection Error", err)
		os.Exit(1)
	}
	for _, f := range files {
		if err := d.ScanImports(f); err != nil {
			rep.ReportCompileError(nil, "%s", err.Error())
		}
	}
	logging.EndPhase(true)

	names := util.Map(files, filepath.Base)
	logging.PrintInfoMessage("Files", fmt.Sprintf("%d source file(s) collected (%s)", len(files), strings.Join(names, ", ")))
	logging.PrintInfoMessage("Front End", "no Objective-C grammar front end is wired into this repository; "+
		"plug one in against the parsetree.Node contract (spec §6) to lower real sources")

	if emit {
		logging.PrintInfoMessage("Emitter", "no Emitter is registered; translation stops at the Intention Graph (spec §6)")
	}

	errCount, warnCount := 0, 0
	for _, msg := range rep.Messages() {
		if msg.IsError {
			errCount++
		} else {
			warnCount++
		}
	}
	logging.PrintSummary(errCount, warnCount)
	if rep.AnyErrors() {
		os.Exit(1)
	}
}

// listenerLogger reports every discovered import edge through the logging
// package, giving a translate/check run visible feedback on the file
// dependency graph spec §6 asks the listener hook to expose.
type listenerLogger struct{}

func (listenerLogger) OnImport(ref listener.Reference) {
	logging.PrintInfoMessage("Import", fmt.Sprintf("%s -> %s", ref.FromPath, ref.ToPath))
}
