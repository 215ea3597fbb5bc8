package boutique

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is one row of the produits table. Nom is the natural key, unique
// case-insensitively. Prix is the unit price per kilogram.
type Product struct {
	ID   int
	Nom  string
	Prix decimal.Decimal
}

func (p Product) RowID() int { return p.ID }

func (p Product) sameName(nom string) bool { return strings.EqualFold(p.Nom, nom) }

// productByID returns the product owning the identifier.
func productByID(t *Table[Product], id int) (Product, bool) {
	for p := range t.Rows() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

type produitSchema struct{}

func (produitSchema) Header() []string {
	return []string{"Produit_ID", "Nom", "Prix (au Kg)"}
}

func (produitSchema) Encode(p Product) []string {
	return []string{strconv.Itoa(p.ID), p.Nom, p.Prix.String()}
}

func (produitSchema) Decode(record []string) (Product, error) {
	id, err := parseIdentifier(record[0])
	if err != nil {
		return Product{}, err
	}
	prix, err := parseAmount(record[2])
	if err != nil {
		return Product{}, err
	}
	return Product{ID: id, Nom: record[1], Prix: prix}, nil
}
