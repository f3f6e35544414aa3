package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/ebersole/sellbook"
	"github.com/google/subcommands"
)

// Register the sellbook subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&topItemsCmd{}, "reports")

	c.Register(&importCmd{}, "data")
	c.Register(&itemsCmd{}, "data")
	c.Register(&costsCmd{}, "data")
}

var dataDir = flag.String("data-dir", "", "Directory holding the ledger and cost table csv files (defaults to $SELLBOOK_DIR or .)")

func dir() string {
	if *dataDir != "" {
		return *dataDir
	}
	if env := os.Getenv("SELLBOOK_DIR"); env != "" {
		return env
	}
	return "."
}

func ledgerFile() string     { return filepath.Join(dir(), "ledger.csv") }
func costTableFile() string  { return filepath.Join(dir(), "item_lookup_table.csv") }
func aliasTableFile() string { return filepath.Join(dir(), "item_alias_table.csv") }
func purchasesFile() string  { return filepath.Join(dir(), "costs.csv") }
func reportsDir() string     { return filepath.Join(dir(), "reports") }
func importCacheFile() string {
	return filepath.Join(reportsDir(), "cached_reports.txt")
}

// loadLedger reads the merged transaction database. A missing database
// is not an error, only an empty ledger.
func loadLedger() (*sellbook.Ledger, error) {
	f, err := os.Open(ledgerFile())
	if os.IsNotExist(err) {
		log.Println("warning, ledger database does not exist, run 'import' first")
		return sellbook.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()
	return sellbook.DecodeLedger(f)
}

// loadCatalog reads the cost and alias tables. Missing tables load as an
// empty catalog; malformed tables are fatal.
func loadCatalog() (*sellbook.Catalog, error) {
	catalog := sellbook.NewCatalog()

	if f, err := os.Open(costTableFile()); err == nil {
		defer f.Close()
		if err := sellbook.DecodeCostTable(f, catalog); err != nil {
			return nil, fmt.Errorf("loading cost table: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("opening cost table: %w", err)
	}

	if f, err := os.Open(aliasTableFile()); err == nil {
		defer f.Close()
		if err := sellbook.DecodeAliasTable(f, catalog); err != nil {
			return nil, fmt.Errorf("loading alias table: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("opening alias table: %w", err)
	}

	return catalog, nil
}

func loadPurchases() (*sellbook.PurchaseLedger, error) {
	f, err := os.Open(purchasesFile())
	if os.IsNotExist(err) {
		return sellbook.NewPurchaseLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening costs ledger: %w", err)
	}
	defer f.Close()
	return sellbook.DecodePurchases(f)
}

// saveCatalog writes the cost and alias tables back after an editing
// session.
func saveCatalog(catalog *sellbook.Catalog) error {
	costs, err := os.Create(costTableFile())
	if err != nil {
		return fmt.Errorf("writing cost table: %w", err)
	}
	defer costs.Close()
	if err := sellbook.EncodeCostTable(costs, catalog); err != nil {
		return err
	}

	aliases, err := os.Create(aliasTableFile())
	if err != nil {
		return fmt.Errorf("writing alias table: %w", err)
	}
	defer aliases.Close()
	return sellbook.EncodeAliasTable(aliases, catalog)
}

func savePurchases(ledger *sellbook.PurchaseLedger) error {
	f, err := os.Create(purchasesFile())
	if err != nil {
		return fmt.Errorf("writing costs ledger: %w", err)
	}
	defer f.Close()
	return sellbook.EncodePurchases(f, ledger)
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering fails (e.g. no tty).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
