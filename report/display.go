package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DisplaySourceText prints the source text a span covers, underlined with
// carets, the way the teacher compiler annotates compile errors. absPath is
// the file the span came from; the core itself never opens files, so this is
// only ever called from the CLI driver after a Message has been produced.
func DisplaySourceText(absPath string, span *TextSpan) error {
	f, err := os.Open(absPath)
	if err != nil {
		return err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	minIndent := 0
	for i, line := range lines {
		indent := 0
		for _, c := range line {
			if c != ' ' {
				break
			}
			indent++
		}
		if i == 0 || indent < minIndent {
			minIndent = indent
		}
	}

	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmt := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Printf(lineNumFmt, i+span.StartLine+1)
		if minIndent < len(line) {
			fmt.Println(line[minIndent:])
		} else {
			fmt.Println()
		}

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")
		switch {
		case i == 0 && i == len(lines)-1:
			fmt.Print(strings.Repeat(" ", span.StartCol-minIndent))
			fmt.Println(strings.Repeat("^", max(span.EndCol-span.StartCol, 1)))
		case i == 0:
			fmt.Print(strings.Repeat(" ", span.StartCol-minIndent))
			fmt.Println(strings.Repeat("^", max(len(line)-span.StartCol-minIndent, 1)))
		case i == len(lines)-1:
			fmt.Println(strings.Repeat("^", max(span.EndCol-minIndent, 1)))
		default:
			fmt.Println(strings.Repeat("^", max(len(line)-minIndent, 1)))
		}
	}

	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Print writes every recorded message to stdout in `path:line:col: label:
// text` form, one after another. It is meant for the CLI driver; the core
// packages never call it.
func (r *Reporter) Print(pathOf func(*TextSpan) string) {
	for _, msg := range r.Messages() {
		label := "warning"
		if msg.IsError {
			label = "error"
		}

		if msg.Span == nil {
			fmt.Printf("%s: %s\n", label, msg.Text)
			continue
		}

		path := ""
		if pathOf != nil {
			path = pathOf(msg.Span)
		}
		fmt.Printf("%s:%d:%d: %s: %s\n", path, msg.Span.StartLine+1, msg.Span.StartCol+1, label, msg.Text)
	}
}
