package boutique

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// parseIdentifier reads an integer identifier column. Files written by
// earlier spreadsheet tooling sometimes carry float-formatted integers
// ("3.0"), so those are tolerated as long as they carry no fraction.
func parseIdentifier(field string) (int, error) {
	if id, err := strconv.Atoi(field); err == nil {
		return id, nil
	}
	dec, err := decimal.NewFromString(field)
	if err != nil || !dec.IsInteger() {
		return 0, fmt.Errorf("invalid identifier %q", field)
	}
	return int(dec.IntPart()), nil
}

// parseAmount reads a decimal price or quantity column.
func parseAmount(field string) (decimal.Decimal, error) {
	dec, err := decimal.NewFromString(field)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", field, err)
	}
	return dec, nil
}
