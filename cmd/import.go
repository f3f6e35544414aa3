package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ebersole/sellbook"
	"github.com/google/subcommands"
)

type importCmd struct {
	reportsDir string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge new raw export files into the ledger database" }
func (*importCmd) Usage() string {
	return `sbk import [-reports <dir>]

  Scans the reports directory for export csv files not imported yet,
  strips their metadata preamble, drops payout and refund rows,
  deduplicates by order number and merges them into the ledger database
  sorted by date.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.reportsDir, "reports", "", "Directory holding raw export files (defaults to <data-dir>/reports)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reports := c.reportsDir
	if reports == "" {
		reports = reportsDir()
	}
	cache := importCacheFile()
	if c.reportsDir != "" {
		cache = filepath.Join(c.reportsDir, "cached_reports.txt")
	}

	imp := &sellbook.Importer{
		ReportsDir: reports,
		Database:   ledgerFile(),
		CacheFile:  cache,
	}
	result, err := imp.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(result.Files) == 0 {
		fmt.Fprintln(os.Stderr, "No new export files to import.")
		return subcommands.ExitSuccess
	}
	for _, file := range result.Files {
		fmt.Fprintf(os.Stderr, "Imported %s\n", file)
	}
	fmt.Fprintf(os.Stderr, "Database now holds %d rows (%d duplicates and %d payout/refund rows dropped).\n",
		result.Rows, result.Duplicates, result.Dropped)
	return subcommands.ExitSuccess
}
