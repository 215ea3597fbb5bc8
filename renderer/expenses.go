package renderer

import (
	"bytes"

	"github.com/lafermette/boutique"
	md "github.com/nao1215/markdown"
)

// ExpensesMarkdown renders the expense overview, one row per day.
func ExpensesMarkdown(expenses []boutique.ExpenseSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dépenses")
	table := md.TableSet{Header: []string{"Date", "Total"}}
	for _, e := range expenses {
		table.Rows = append(table.Rows, []string{e.Date, boutique.M(e.Total).String()})
	}
	doc.Table(table)

	return doc.String()
}

// ExpenseDetailsMarkdown renders the labels and amounts of one day.
func ExpenseDetailsMarkdown(date string, details []boutique.ExpenseDetail) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dépenses du " + date)
	table := md.TableSet{Header: []string{"Nom", "Prix"}}
	for _, d := range details {
		table.Rows = append(table.Rows, []string{d.Nom, boutique.M(d.Prix).String()})
	}
	doc.Table(table)

	return doc.String()
}
