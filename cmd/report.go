package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ebersole/sellbook"
	"github.com/ebersole/sellbook/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	offset float64
	topN   int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the trailing-window sales report" }
func (*reportCmd) Usage() string {
	return `sbk report [-offset <amount>] [-n <count>]

  Displays sales, profit and margin for the trailing 7/31/90/365 day
  windows and year to date, with the combined profit summary.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.offset, "offset", 0, "Flat non-platform sales amount added to total profit")
	f.IntVar(&c.topN, "n", 10, "Number of top sellers to display")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := buildReport(c.offset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RelativeMarkdown(report, c.topN))
	return subcommands.ExitSuccess
}

// buildReport loads the ledger, catalog and costs ledger and assembles
// the report.
func buildReport(offset float64) (*sellbook.Report, error) {
	ledger, err := loadLedger()
	if err != nil {
		return nil, err
	}
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	purchases, err := loadPurchases()
	if err != nil {
		return nil, err
	}
	return sellbook.NewReport(ledger, catalog, purchases.Sum(), sellbook.M(offset, sellbook.Currency)), nil
}
