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

type monthlyCmd struct {
	year   int
	offset float64
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the month-by-month sales report" }
func (*monthlyCmd) Usage() string {
	return `sbk monthly [-y <year>]

  Displays one line per calendar month of the given year with
  month-over-month changes for orders, sales and profit.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", sellbook.Today().Year(), "Year to report on")
	f.Float64Var(&c.offset, "offset", 0, "Flat non-platform sales amount added to total profit")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := buildReport(c.offset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MonthlyMarkdown(report, c.year))
	return subcommands.ExitSuccess
}
