package renderer

import (
	"bytes"
	"fmt"

	"github.com/lafermette/boutique"
	md "github.com/nao1215/markdown"
)

// ProfitMarkdown renders the cumulative profit timeline, ending with the
// latest figure.
func ProfitMarkdown(timeline []boutique.ProfitPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Évolution du bénéfice cumulé")
	if len(timeline) == 0 {
		doc.PlainText("Aucune donnée.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Date", "Bénéfice cumulé"}}
	for _, p := range timeline {
		table.Rows = append(table.Rows, []string{p.Date.String(), boutique.M(p.Cumulative).String()})
	}
	doc.Table(table)

	last := timeline[len(timeline)-1]
	doc.PlainText(fmt.Sprintf("Bénéfice au %s : %s", last.Date, boutique.M(last.Cumulative)))

	return doc.String()
}

// MonthlyMarkdown renders the revenue vs expense report, chronological by
// month.
func MonthlyMarkdown(amounts []boutique.MonthlyAmount) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Chiffre d'affaires et dépenses par mois")
	table := md.TableSet{Header: []string{"Mois", "Type", "Montant"}}
	for _, a := range amounts {
		table.Rows = append(table.Rows, []string{a.Label, a.Kind, boutique.M(a.Amount).String()})
	}
	doc.Table(table)

	return doc.String()
}

// AmountsMarkdown renders one grouped total view (revenue by product or
// client, expenses by label) under the given title.
func AmountsMarkdown(title string, amounts []boutique.NameAmount) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	table := md.TableSet{Header: []string{"Nom", "Montant"}}
	for _, a := range amounts {
		table.Rows = append(table.Rows, []string{a.Name, boutique.M(a.Amount).String()})
	}
	doc.Table(table)

	return doc.String()
}
