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

// costsCmd is the interactive session for the material costs ledger.
type costsCmd struct{}

func (*costsCmd) Name() string     { return "costs" }
func (*costsCmd) Synopsis() string { return "record material purchases and sum costs" }
func (*costsCmd) Usage() string {
	return `sbk costs

  Interactive session to record material purchases into the costs
  ledger, or print the total material costs.
`
}

func (c *costsCmd) SetFlags(f *flag.FlagSet) {}

func (c *costsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadPurchases()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := runCostsSession(newPrompter(), ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := savePurchases(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

const costsMenu = `
Commands:
    add  - add a purchase
    sum  - total of costs
    exit - save and exit
`

func runCostsSession(p *prompter, ledger *sellbook.PurchaseLedger) error {
	for {
		p.say(costsMenu)
		reply := p.ask("")
		if p.closed {
			return nil
		}
		switch reply {
		case "exit":
			return nil
		case "sum":
			p.say("Total costs: %s", ledger.Sum())
		case "add":
			if purchase, ok := promptPurchase(p, ledger); ok {
				ledger.Append(purchase)
			}
		}
	}
}

// promptPurchase collects one purchase. It mirrors the costs ledger
// entry flow: pick or name an item, default the date to today and the
// website to the item's previous supplier, then compute tax and totals.
func promptPurchase(p *prompter, ledger *sellbook.PurchaseLedger) (sellbook.Purchase, bool) {
	items := ledger.Items()
	p.say("Existing items:")
	for i, item := range items {
		p.say("%d : %s", i, item)
	}
	item := pickItem(p, items, "Enter a number or the name of a new item")
	if item == "" {
		return sellbook.Purchase{}, false
	}

	today := sellbook.Today()
	on := today
	if reply := p.askDefault("Date of purchase", today.String()); reply != today.String() {
		parsed, err := sellbook.ParseDate(reply)
		if err != nil {
			p.say("%v", err)
			return sellbook.Purchase{}, false
		}
		on = parsed
	}

	website := p.askDefault("Website used for purchase", ledger.LastWebsite(item))

	costUnit, err := sellbook.ParseMoney(p.ask("Cost/unit"), sellbook.Currency)
	if err != nil {
		p.say("%v", err)
		return sellbook.Purchase{}, false
	}
	quantity, err := strconv.Atoi(p.ask("Quantity"))
	if err != nil {
		p.say("invalid quantity: %v", err)
		return sellbook.Purchase{}, false
	}
	taxed := p.confirm("Sales tax?")

	purchase := sellbook.NewPurchase(on, website, item, costUnit, quantity, taxed)
	p.say("%s x%d from %s on %s, total %s", purchase.Item, purchase.Quantity, purchase.Website, purchase.Date, purchase.Total)
	if !p.confirm("Does this look right?") {
		return sellbook.Purchase{}, false
	}
	return purchase, true
}
