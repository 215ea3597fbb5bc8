package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/lafermette/boutique"
	md "github.com/nao1215/markdown"
)

// SalesMarkdown renders the sales overview, one row per transaction.
func SalesMarkdown(sales []boutique.SaleSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ventes")
	table := md.TableSet{Header: []string{"Vente", "Date", "Client", "Prix total"}}
	for _, s := range sales {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(s.VenteID), s.Date, s.Client, boutique.M(s.Total).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// SaleDetailsMarkdown renders the line items of one transaction.
func SaleDetailsMarkdown(venteID int, details []boutique.SaleDetail) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Vente %d", venteID))
	table := md.TableSet{Header: []string{"Produit", "Quantité (kg)", "Prix unitaire", "Prix total"}}
	for _, d := range details {
		table.Rows = append(table.Rows, []string{
			d.Produit,
			d.Quantite.String(),
			boutique.M(d.PrixUnitaire).String(),
			boutique.M(d.Prix).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
