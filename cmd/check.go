package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the ledger file" }
func (*checkCmd) Usage() string {
	return `rbk check

  Reads the whole ledger file, validating every record's invariants,
  referential integrity and uniqueness constraints. Prints a summary on
  success, the first violation otherwise.

`
}
func (*checkCmd) SetFlags(*flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var properties, units, tenants, leases, payments, expenses, assets int
	for range ledger.Properties() {
		properties++
	}
	for range ledger.Units() {
		units++
	}
	for range ledger.Tenants() {
		tenants++
	}
	for range ledger.Leases() {
		leases++
	}
	for range ledger.Payments() {
		payments++
	}
	for range ledger.Expenses() {
		expenses++
	}
	for range ledger.Assets() {
		assets++
	}
	fmt.Printf("ok: %d properties, %d units, %d tenants, %d leases, %d payments, %d expenses, %d assets\n",
		properties, units, tenants, leases, payments, expenses, assets)
	return subcommands.ExitSuccess
}
