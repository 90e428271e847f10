package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/joseph-ayodele/utility-bills/internal/export"
	"github.com/joseph-ayodele/utility-bills/internal/money"
)

var (
	boldRed     = color.New(color.FgRed, color.Bold).SprintFunc()
	brightGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
	dimYellow   = color.New(color.FgYellow).SprintFunc()
)

func outcomeText(outcome string) string {
	switch outcome {
	case money.Matched.String():
		return brightGreen(outcome)
	case money.Mismatched.String():
		return boldRed(outcome)
	default:
		return dimYellow(outcome)
	}
}

func statusText(passed bool, status string) string {
	if passed {
		return brightGreen(status)
	}
	return boldRed(status)
}

// printRow shows one bill and, for failures, every mismatched check.
func printRow(r export.Row) {
	pterm.Printf("%s  %s  %s  (matched %d, mismatched %d, inapplicable %d)\n",
		statusText(r.Passed, r.Status), r.Provider, r.File, r.Matched, r.Mismatched, r.Inapplicable)
	for _, c := range r.Checks {
		if c.Outcome != money.Mismatched.String() {
			continue
		}
		pterm.Printf("    %s %s: calculated %s, stated %s, difference %s\n",
			outcomeText(c.Outcome), c.Annotation, c.Calculated, blank(c.Stated), blank(c.Difference))
		if c.Formula != "" {
			pterm.Printf("      formula: %s\n", c.Formula)
		}
	}
}

func printSummary(rows []export.Row) {
	data := pterm.TableData{{"Provider", "Bills", "Passed", "Failed", "Mismatches", "Corrections"}}
	for _, t := range export.Summarize(rows) {
		data = append(data, []string{
			t.Provider,
			strconv.Itoa(t.Bills),
			brightGreen(strconv.Itoa(t.Passed)),
			failedCount(t.Failed),
			strconv.Itoa(t.Mismatches),
			strconv.Itoa(t.Corrections),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fmt.Println(err)
	}
}

func failedCount(n int) string {
	if n == 0 {
		return "0"
	}
	return boldRed(strconv.Itoa(n))
}

func blank(s string) string {
	if s == "" {
		return "null"
	}
	return s
}
