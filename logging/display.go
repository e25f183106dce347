// Package logging provides the CLI driver's terminal output: colored
// status lines and a phase spinner, generalized from the teacher's
// `logging/display.go`. The translation core never imports this package --
// it is pure ambient stack for `cmd/`.
package logging

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a tagged error line, e.g. "Config Error: ...".
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintInfoMessage prints a tagged informational line.
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// phaseSpinner tracks the in-flight phase spinner, mirroring the teacher's
// single-spinner-at-a-time model: the pipeline runs phases sequentially
// (spec §5), so there is never more than one phase in flight.
var (
	phaseSpinner   *pterm.SpinnerPrinter
	currentPhase   string
	phaseStartTime time.Time
)

const maxPhaseLen = len("Synthesizing")

// BeginPhase starts a spinner for one pipeline phase (lowering, a named
// pass, emission).
func BeginPhase(phase string) {
	currentPhase = phase
	pad := strings.Repeat(" ", max0(maxPhaseLen-len(phase))+2)

	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))
	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: SuccessStyleBG, Text: "Done"},
	}
	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: ErrorStyleBG, Text: "Fail"},
	}

	phaseSpinner.Start(phase + "..." + pad)
	phaseStartTime = time.Now()
}

// EndPhase stops the current spinner, reporting success or failure.
func EndPhase(success bool) {
	if phaseSpinner == nil {
		return
	}

	pad := strings.Repeat(" ", max0(maxPhaseLen-len(currentPhase))+2)
	if success {
		phaseSpinner.Success(currentPhase+pad, fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()))
	} else {
		phaseSpinner.Fail(currentPhase + pad)
	}
	phaseSpinner = nil
}

// PrintSummary prints the final "N errors, N warnings" line.
func PrintSummary(errorCount, warningCount int) {
	fmt.Print("\n")
	if errorCount == 0 {
		SuccessColorFG.Print("Translation succeeded ")
	} else {
		ErrorColorFG.Print("Translation failed ")
	}

	fmt.Print("(")
	printCount(errorCount, "error", "errors")
	fmt.Print(", ")
	printCount(warningCount, "warning", "warnings")
	fmt.Println(")")
}

func printCount(n int, singular, plural string) {
	word := plural
	if n == 1 {
		word = singular
	}

	if n == 0 {
		SuccessColorFG.Print(n)
	} else {
		ErrorColorFG.Print(n)
	}
	fmt.Print(" " + word)
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
