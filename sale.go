package boutique

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Sale is one line item of the ventes table. One Vente_ID spans every line
// of a transaction. Prix is the line's amount, quantity times the unit
// price at sale time: the snapshot is deliberate, so a later price change
// never rewrites sales history.
type Sale struct {
	ID        int
	Date      string
	ClientID  int
	ProduitID int
	Quantite  decimal.Decimal
	Prix      decimal.Decimal
}

func (v Sale) RowID() int { return v.ID }

type venteSchema struct{}

func (venteSchema) Header() []string {
	return []string{"Vente_ID", "Date", "Client_ID", "Produit_ID", "Quantité", "Prix"}
}

func (venteSchema) Encode(v Sale) []string {
	return []string{
		strconv.Itoa(v.ID),
		v.Date,
		strconv.Itoa(v.ClientID),
		strconv.Itoa(v.ProduitID),
		v.Quantite.String(),
		v.Prix.String(),
	}
}

func (venteSchema) Decode(record []string) (Sale, error) {
	id, err := parseIdentifier(record[0])
	if err != nil {
		return Sale{}, err
	}
	clientID, err := parseIdentifier(record[2])
	if err != nil {
		return Sale{}, err
	}
	produitID, err := parseIdentifier(record[3])
	if err != nil {
		return Sale{}, err
	}
	quantite, err := parseAmount(record[4])
	if err != nil {
		return Sale{}, err
	}
	prix, err := parseAmount(record[5])
	if err != nil {
		return Sale{}, err
	}
	return Sale{
		ID:        id,
		Date:      record[1],
		ClientID:  clientID,
		ProduitID: produitID,
		Quantite:  quantite,
		Prix:      prix,
	}, nil
}
