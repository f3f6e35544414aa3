package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ebersole/sellbook/renderer"
	"github.com/google/subcommands"
)

type topItemsCmd struct {
	n int
}

func (*topItemsCmd) Name() string     { return "topitems" }
func (*topItemsCmd) Synopsis() string { return "display the all-time top sellers" }
func (*topItemsCmd) Usage() string {
	return `sbk topitems [-n <count>]

  Displays the most sold items over the whole ledger.
`
}

func (c *topItemsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 10, "Number of items to display")
}

func (c *topItemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := buildReport(0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TopItemsMarkdown(report.AllTime, c.n))
	return subcommands.ExitSuccess
}
