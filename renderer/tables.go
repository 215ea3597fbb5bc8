// Package renderer renders shop tables and reports as markdown, ready for
// terminal display or publication.
package renderer

import (
	"bytes"
	"strconv"

	"github.com/lafermette/boutique"
	md "github.com/nao1215/markdown"
)

// ClientsMarkdown renders the clients table.
func ClientsMarkdown(clients []boutique.Client) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Clients")
	table := md.TableSet{Header: []string{"ID", "Nom", "Prénom", "Email", "Téléphone"}}
	for _, c := range clients {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(c.ID), c.Nom, c.Prenom, c.Email, c.Telephone,
		})
	}
	doc.Table(table)

	return doc.String()
}

// ProductsMarkdown renders the produits table with formatted unit prices.
func ProductsMarkdown(produits []boutique.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Produits")
	table := md.TableSet{Header: []string{"ID", "Nom", "Prix (au Kg)"}}
	for _, p := range produits {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(p.ID), p.Nom, boutique.M(p.Prix).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
