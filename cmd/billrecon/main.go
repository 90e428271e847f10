// Command billrecon reconciles utility bills: it extracts bill PDFs with a
// vision model, checks line items and totals against each provider's rules,
// and files every bill under processed/ or unprocessed/.
package main

import (
	"errors"
	"os"

	"github.com/pterm/pterm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errGateFailed) {
			os.Exit(1)
		}
		pterm.Error.Println(err)
		os.Exit(2)
	}
}
