package boutique

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Expense is one line of the depenses table. One Depense_ID spans every
// line of a user-entered batch. Date stays a raw string in the row: an
// unparseable date must survive the round trip to disk, reports drop it at
// aggregation time.
type Expense struct {
	ID   int
	Date string
	Nom  string
	Prix decimal.Decimal
}

func (e Expense) RowID() int { return e.ID }

type depenseSchema struct{}

func (depenseSchema) Header() []string {
	return []string{"Depense_ID", "Date", "Nom", "Prix"}
}

func (depenseSchema) Encode(e Expense) []string {
	return []string{strconv.Itoa(e.ID), e.Date, e.Nom, e.Prix.String()}
}

func (depenseSchema) Decode(record []string) (Expense, error) {
	id, err := parseIdentifier(record[0])
	if err != nil {
		return Expense{}, err
	}
	prix, err := parseAmount(record[3])
	if err != nil {
		return Expense{}, err
	}
	return Expense{ID: id, Date: record[1], Nom: record[2], Prix: prix}, nil
}
