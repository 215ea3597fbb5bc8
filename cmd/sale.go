package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/lafermette/boutique"
	"github.com/lafermette/boutique/renderer"
	"github.com/shopspring/decimal"
)

// itemsFlag collects repeated -item values of the form "name:amount".
type itemsFlag struct {
	names   []string
	amounts []decimal.Decimal
}

func (i *itemsFlag) String() string { return strings.Join(i.names, ",") }

func (i *itemsFlag) Set(value string) error {
	// The amount follows the last colon so names may contain one.
	cut := strings.LastIndex(value, ":")
	if cut <= 0 || cut == len(value)-1 {
		return fmt.Errorf("want <name>:<amount>, got %q", value)
	}
	amount, err := decimal.NewFromString(value[cut+1:])
	if err != nil {
		return fmt.Errorf("invalid amount in %q: %w", value, err)
	}
	i.names = append(i.names, value[:cut])
	i.amounts = append(i.amounts, amount)
	return nil
}

type saleAddCmd struct {
	date   string
	nom    string
	prenom string
	items  itemsFlag
}

func (*saleAddCmd) Name() string     { return "vente-add" }
func (*saleAddCmd) Synopsis() string { return "record a sale of one or more products to a client" }
func (*saleAddCmd) Usage() string {
	return `bqt vente-add -d <date> -nom <nom> [-prenom <prénom>] -item <produit>:<kg> [-item ...]

  Records one transaction. Every line gets the same transaction number,
  and each line's price is the quantity times the product's current
  price per kilogram.

Usage Examples:
$ bqt vente-add -d 2025-06-01 -nom Dupont -prenom Marie -item Tomates:2 -item Fraises:0.5
`
}

func (c *saleAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Sale date, YYYY-MM-DD (required)")
	f.StringVar(&c.nom, "nom", "", "Client family name (required)")
	f.StringVar(&c.prenom, "prenom", "", "Client first name")
	f.Var(&c.items, "item", "Sold line as <produit>:<kg>, repeatable")
}

func (c *saleAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	lines := make([]boutique.SaleLine, len(c.items.names))
	for i := range c.items.names {
		lines[i] = boutique.SaleLine{Produit: c.items.names[i], Quantite: c.items.amounts[i]}
	}
	shop := OpenShop()
	id, err := shop.AddSale(c.date, c.nom, c.prenom, lines)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Vente %d recorded (%d lines).\n", id, len(lines))
	return subcommands.ExitSuccess
}

type saleDeleteCmd struct {
	id int
}

func (*saleDeleteCmd) Name() string     { return "vente-delete" }
func (*saleDeleteCmd) Synopsis() string { return "delete a whole transaction" }
func (*saleDeleteCmd) Usage() string {
	return `bqt vente-delete -id <vente>

  Deletes every line of the given transaction.
`
}

func (c *saleDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Transaction number (required)")
}

func (c *saleDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := OpenShop()
	if err := shop.DeleteSale(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Vente %d deleted.\n", c.id)
	return subcommands.ExitSuccess
}

type saleListCmd struct{}

func (*saleListCmd) Name() string     { return "ventes" }
func (*saleListCmd) Synopsis() string { return "display all sales, one row per transaction" }
func (*saleListCmd) Usage() string {
	return `bqt ventes

  Displays the sales overview: date, client and total per transaction.
`
}

func (*saleListCmd) SetFlags(*flag.FlagSet) {}

func (c *saleListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := OpenShop()
	printMarkdown(renderer.SalesMarkdown(shop.SalesOverview()))
	return subcommands.ExitSuccess
}

type saleShowCmd struct{}

func (*saleShowCmd) Name() string     { return "vente" }
func (*saleShowCmd) Synopsis() string { return "display the line items of one transaction" }
func (*saleShowCmd) Usage() string {
	return `bqt vente <vente>

  Displays each product, quantity and price of the given transaction.
`
}

func (*saleShowCmd) SetFlags(*flag.FlagSet) {}

func (c *saleShowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(fmt.Errorf("want exactly one transaction number"))
	}
	id, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		return usageError(fmt.Errorf("invalid transaction number %q", f.Arg(0)))
	}
	shop := OpenShop()
	details := shop.SaleDetails(id)
	if len(details) == 0 {
		return fail(fmt.Errorf("vente %d: %w", id, boutique.ErrNotFound))
	}
	printMarkdown(renderer.SaleDetailsMarkdown(id, details))
	return subcommands.ExitSuccess
}
