package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/lafermette/boutique"
	"github.com/lafermette/boutique/renderer"
)

// parseRange builds a date filter from optional -from and -to values.
func parseRange(from, to string) (boutique.Range, error) {
	var r boutique.Range
	if from != "" {
		d, err := boutique.ParseDate(from)
		if err != nil {
			return r, fmt.Errorf("invalid start date %q: %w", from, err)
		}
		r.From = d
	}
	if to != "" {
		d, err := boutique.ParseDate(to)
		if err != nil {
			return r, fmt.Errorf("invalid end date %q: %w", to, err)
		}
		r.To = d
	}
	return boutique.NewRange(r.From, r.To), nil
}

type profitCmd struct{}

func (*profitCmd) Name() string     { return "benefice" }
func (*profitCmd) Synopsis() string { return "display the cumulative profit over time" }
func (*profitCmd) Usage() string {
	return `bqt benefice

  Displays the day by day cumulative profit, revenue minus expenses,
  over the whole history.
`
}

func (*profitCmd) SetFlags(*flag.FlagSet) {}

func (c *profitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := OpenShop()
	printMarkdown(renderer.ProfitMarkdown(shop.ProfitTimeline()))
	return subcommands.ExitSuccess
}

type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "mensuel" }
func (*monthlyCmd) Synopsis() string { return "display revenue and expenses month by month" }
func (*monthlyCmd) Usage() string {
	return `bqt mensuel [<month> ...]

  Displays revenue next to expenses for each month of activity.
  Months given as arguments, like "June 2025", restrict the report.
`
}

func (*monthlyCmd) SetFlags(*flag.FlagSet) {}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := OpenShop()
	printMarkdown(renderer.MonthlyMarkdown(shop.MonthlyRevenueVsExpense(f.Args()...)))
	return subcommands.ExitSuccess
}

type revenueCmd struct {
	by   string
	from string
	to   string
}

func (*revenueCmd) Name() string     { return "chiffre" }
func (*revenueCmd) Synopsis() string { return "display revenue grouped by product or by client" }
func (*revenueCmd) Usage() string {
	return `bqt chiffre [-by produit|client] [-from <date>] [-to <date>]

  Displays total revenue per product or per client, largest first,
  optionally restricted to a date range.
`
}

func (c *revenueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "produit", "Group revenue by 'produit' or 'client'")
	f.StringVar(&c.from, "from", "", "Start date, YYYY-MM-DD")
	f.StringVar(&c.to, "to", "", "End date, YYYY-MM-DD")
}

func (c *revenueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.from, c.to)
	if err != nil {
		return usageError(err)
	}
	shop := OpenShop()
	switch c.by {
	case "produit":
		printMarkdown(renderer.AmountsMarkdown("Chiffre d'affaires par produit", shop.RevenueByProduct(r)))
	case "client":
		printMarkdown(renderer.AmountsMarkdown("Chiffre d'affaires par client", shop.RevenueByClient(r)))
	default:
		return usageError(fmt.Errorf("unknown grouping %q, want 'produit' or 'client'", c.by))
	}
	return subcommands.ExitSuccess
}

type spendingCmd struct {
	from string
	to   string
}

func (*spendingCmd) Name() string     { return "depenses-par-poste" }
func (*spendingCmd) Synopsis() string { return "display expenses grouped by label" }
func (*spendingCmd) Usage() string {
	return `bqt depenses-par-poste [-from <date>] [-to <date>]

  Displays total expenses per label, largest first, optionally
  restricted to a date range.
`
}

func (c *spendingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date, YYYY-MM-DD")
	f.StringVar(&c.to, "to", "", "End date, YYYY-MM-DD")
}

func (c *spendingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.from, c.to)
	if err != nil {
		return usageError(err)
	}
	shop := OpenShop()
	printMarkdown(renderer.AmountsMarkdown("Dépenses par poste", shop.ExpenseByLabel(r)))
	return subcommands.ExitSuccess
}
