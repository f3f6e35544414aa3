package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/ebersole/sellbook"
	"github.com/google/subcommands"
)

// itemsCmd is the interactive editing session for the cost catalog. It
// runs strictly before any report generation: the catalog is read-only
// once reports start.
type itemsCmd struct{}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "define costs and aliases for sold items" }
func (*itemsCmd) Usage() string {
	return `sbk items

  Interactive session to give costs to newly sold items, add past costs
  for known items, and alias duplicate listings to a canonical name.
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	catalog, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	seen := make(sellbook.ItemSet)
	for row := range ledger.Rows() {
		seen.Add(row.Item)
	}

	if err := runItemsSession(newPrompter(), catalog, seen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveCatalog(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

const itemsMenu = `
Commands:
    new   - add costs for new items
    past  - add a past cost for a known item
    alias - alias an item to another
    list  - print the cost table
    exit  - save and exit
`

func runItemsSession(p *prompter, catalog *sellbook.Catalog, seen sellbook.ItemSet) error {
	for {
		p.say(itemsMenu)
		reply := p.ask("")
		if p.closed {
			return nil
		}
		switch reply {
		case "exit":
			return nil
		case "new":
			defineNewItems(p, catalog, seen)
		case "past":
			addPastCost(p, catalog)
		case "alias":
			createAlias(p, catalog, seen)
		case "list":
			listCosts(p, catalog)
		}
	}
}

// defineNewItems walks the observed items that have no cost record yet.
func defineNewItems(p *prompter, catalog *sellbook.Catalog, seen sellbook.ItemSet) {
	for _, item := range catalog.NewItems(seen) {
		p.say("Current item: %s", item)
		p.say("Enter -1 to ignore the item, or exit to stop")

		cost := p.ask("Cost")
		switch cost {
		case "exit":
			return
		case "-1":
			// an ignore record spanning all of history
			catalog.Append(sellbook.CostRecord{
				Item:   item,
				Ignore: true,
				From:   sellbook.NewDate(2000, 1, 1),
			})
			continue
		}

		rec, err := promptCostRecord(p, item, cost)
		if err != nil {
			p.say("%v", err)
			continue
		}
		catalog.Append(rec)
	}
}

func addPastCost(p *prompter, catalog *sellbook.Catalog) {
	listCosts(p, catalog)
	costs := catalog.Costs()

	reply := p.ask("Item number")
	i, err := strconv.Atoi(reply)
	if err != nil || i < 0 || i >= len(costs) {
		p.say("no such item %q", reply)
		return
	}
	item := costs[i].Item

	rec, err := promptCostRecord(p, item, p.ask("Cost"))
	if err != nil {
		p.say("%v", err)
		return
	}
	catalog.Append(rec)
}

// promptCostRecord completes a cost record from the validity prompts.
func promptCostRecord(p *prompter, item, cost string) (sellbook.CostRecord, error) {
	amount, err := sellbook.ParseMoney(cost, sellbook.Currency)
	if err != nil {
		return sellbook.CostRecord{}, err
	}

	p.say("Dates in format YYYY-MM-DD, or \"present\"")
	from, err := parseBoundReply(p.ask("Effective start date"))
	if err != nil {
		return sellbook.CostRecord{}, err
	}
	to, err := parseBoundReply(p.ask("Effective end date"))
	if err != nil {
		return sellbook.CostRecord{}, err
	}
	return sellbook.CostRecord{Item: item, Cost: amount, From: from, To: to}, nil
}

func parseBoundReply(reply string) (sellbook.Date, error) {
	if reply == "present" || reply == "" {
		return sellbook.Date{}, nil
	}
	return sellbook.ParseDate(reply)
}

func createAlias(p *prompter, catalog *sellbook.Catalog, seen sellbook.ItemSet) {
	items := seen.Sorted()
	for i, item := range items {
		p.say("%d : %s", i, item)
	}
	from := pickItem(p, items, "Item to alias (number or name)")
	to := pickItem(p, items, "Canonical item (number or name)")
	if from == "" || to == "" {
		return
	}
	catalog.AppendAlias(sellbook.AliasRecord{From: from, To: to})
}

// pickItem resolves a numeric reply against the listed items, keeping a
// non-numeric reply as a literal name.
func pickItem(p *prompter, items []string, prompt string) string {
	reply := p.ask(prompt)
	if i, err := strconv.Atoi(reply); err == nil {
		if i < 0 || i >= len(items) {
			p.say("no such item %d", i)
			return ""
		}
		return items[i]
	}
	return reply
}

func listCosts(p *prompter, catalog *sellbook.Catalog) {
	today := sellbook.Today()
	for i, rec := range catalog.Costs() {
		p.say("%d : %s - %s", i, rec.Item, catalog.Cost(rec.Item, today))
	}
}
