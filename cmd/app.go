// Package cmd implements the rbk CLI over the rentbook report engines.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/rentbook"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&cashFlowCmd{}, "reports")
	c.Register(&delinquencyCmd{}, "reports")
	c.Register(&vacancyCmd{}, "reports")
	c.Register(&expensesCmd{}, "reports")
	c.Register(&rentRollCmd{}, "reports")
	c.Register(&yoyCmd{}, "reports")
	c.Register(&ccaCmd{}, "reports")

	c.Register(&checkCmd{}, "ledger")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("l", defaultLedgerFile(), "Path to the ledger file (JSONL format)")

// defaultLedgerFile resolves the ledger path from the environment, loading a
// .env file if one is present.
func defaultLedgerFile() string {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}
	if f := os.Getenv("RENTBOOK_LEDGER"); f != "" {
		return f
	}
	return "ledger.jsonl"
}

// DecodeLedgerFile loads and validates the app ledger file.
func DecodeLedgerFile() (*rentbook.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	ledger, err := rentbook.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", *ledgerFile, err)
	}
	return ledger, nil
}

// render prints a markdown report, nicely formatted for the terminal when
// possible.
func render(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
