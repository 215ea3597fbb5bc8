package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/lafermette/boutique"
	"github.com/lafermette/boutique/renderer"
)

type expenseAddCmd struct {
	date  string
	items itemsFlag
}

func (*expenseAddCmd) Name() string     { return "depense-add" }
func (*expenseAddCmd) Synopsis() string { return "record one or more expenses for a day" }
func (*expenseAddCmd) Usage() string {
	return `bqt depense-add -d <date> -item <nom>:<prix> [-item ...]

  Records a batch of expenses. Every line gets the same batch number.

Usage Examples:
$ bqt depense-add -d 2025-06-01 -item Semences:40 -item Essence:25.30
`
}

func (c *expenseAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Expense date, YYYY-MM-DD (required)")
	f.Var(&c.items, "item", "Expense line as <nom>:<prix>, repeatable")
}

func (c *expenseAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	lines := make([]boutique.ExpenseLine, len(c.items.names))
	for i := range c.items.names {
		lines[i] = boutique.ExpenseLine{Nom: c.items.names[i], Prix: c.items.amounts[i]}
	}
	shop := OpenShop()
	id, err := shop.AddExpense(c.date, lines)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Dépense %d recorded (%d lines).\n", id, len(lines))
	return subcommands.ExitSuccess
}

type expenseDeleteCmd struct {
	id int
}

func (*expenseDeleteCmd) Name() string     { return "depense-delete" }
func (*expenseDeleteCmd) Synopsis() string { return "delete a whole expense batch" }
func (*expenseDeleteCmd) Usage() string {
	return `bqt depense-delete -id <dépense>

  Deletes every line of the given expense batch.
`
}

func (c *expenseDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Batch number (required)")
}

func (c *expenseDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := OpenShop()
	if err := shop.DeleteExpense(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Dépense %d deleted.\n", c.id)
	return subcommands.ExitSuccess
}

type expenseListCmd struct{}

func (*expenseListCmd) Name() string     { return "depenses" }
func (*expenseListCmd) Synopsis() string { return "display all expenses, one row per day" }
func (*expenseListCmd) Usage() string {
	return `bqt depenses

  Displays the expense overview: total spent per day.
`
}

func (*expenseListCmd) SetFlags(*flag.FlagSet) {}

func (c *expenseListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := OpenShop()
	printMarkdown(renderer.ExpensesMarkdown(shop.ExpensesOverview()))
	return subcommands.ExitSuccess
}

type expenseShowCmd struct{}

func (*expenseShowCmd) Name() string     { return "depense" }
func (*expenseShowCmd) Synopsis() string { return "display the expense lines of one day" }
func (*expenseShowCmd) Usage() string {
	return `bqt depense <date>

  Displays each label and amount spent on the given date.
`
}

func (*expenseShowCmd) SetFlags(*flag.FlagSet) {}

func (c *expenseShowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(fmt.Errorf("want exactly one date"))
	}
	date := f.Arg(0)
	shop := OpenShop()
	details := shop.ExpenseDetails(date)
	if len(details) == 0 {
		return fail(fmt.Errorf("depenses on %s: %w", date, boutique.ErrNotFound))
	}
	printMarkdown(renderer.ExpenseDetailsMarkdown(date, details))
	return subcommands.ExitSuccess
}
