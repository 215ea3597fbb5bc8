package boutique

import (
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// The reporting engine derives read-only views by joining ventes with
// clients/produits and grouping by time bucket or dimension. Every report
// reads through a freshly invalidated store, so it always reflects the
// on-disk state; an empty table is a valid input producing an empty
// result. Rows with unparseable dates are dropped, never zero-filled.

// Inconnu is substituted for a foreign key that resolves to no row.
const Inconnu = "Inconnu"

// Report kinds of the monthly revenue vs expense view.
const (
	KindRevenue = "Ventes"
	KindExpense = "Dépenses"
)

// ProfitPoint is one step of the cumulative profit timeline.
type ProfitPoint struct {
	Date       Date
	Cumulative decimal.Decimal
}

// MonthlyAmount is one bar of the monthly revenue vs expense report.
type MonthlyAmount struct {
	Label  string // e.g. "March 2025"
	Kind   string // KindRevenue or KindExpense
	Amount decimal.Decimal
}

// NameAmount is one grouped total, keyed by a joined entity name or an
// expense label.
type NameAmount struct {
	Name   string
	Amount decimal.Decimal
}

// ProfitTimeline sums sale amounts and expense amounts per date,
// outer-joins the two daily totals (a missing side counts as zero),
// computes the daily profit and returns the running sum in ascending date
// order.
func (s *Shop) ProfitTimeline() []ProfitPoint {
	ventes, _ := s.Sales.Table(true)
	depenses, _ := s.Expenses.Table(true)

	revenue := make(map[Date]decimal.Decimal)
	for v := range ventes.Rows() {
		on, err := ParseDate(v.Date)
		if err != nil {
			continue
		}
		revenue[on] = revenue[on].Add(v.Prix)
	}
	spent := make(map[Date]decimal.Decimal)
	for e := range depenses.Rows() {
		on, err := ParseDate(e.Date)
		if err != nil {
			continue
		}
		spent[on] = spent[on].Add(e.Prix)
	}

	days := make([]Date, 0, len(revenue)+len(spent))
	for on := range revenue {
		days = append(days, on)
	}
	for on := range spent {
		if _, dup := revenue[on]; !dup {
			days = append(days, on)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	points := make([]ProfitPoint, 0, len(days))
	cumulative := decimal.Zero
	for _, on := range days {
		cumulative = cumulative.Add(revenue[on]).Sub(spent[on])
		points = append(points, ProfitPoint{Date: on, Cumulative: cumulative})
	}
	return points
}

// LatestProfit returns the last point of the profit timeline, or ok=false
// when there is no data at all.
func (s *Shop) LatestProfit() (decimal.Decimal, Date, bool) {
	timeline := s.ProfitTimeline()
	if len(timeline) == 0 {
		return decimal.Zero, Date{}, false
	}
	last := timeline[len(timeline)-1]
	return last.Cumulative, last.Date, true
}

// monthKey orders calendar months chronologically, not by label.
type monthKey struct {
	year  int
	month int
}

// MonthlyRevenueVsExpense groups sale and expense amounts by calendar
// month. Within a month the revenue entry precedes the expense entry. When
// months is non-empty, only the given "January 2006" labels are kept.
func (s *Shop) MonthlyRevenueVsExpense(months ...string) []MonthlyAmount {
	ventes, _ := s.Sales.Table(true)
	depenses, _ := s.Expenses.Table(true)

	revenue := make(map[monthKey]decimal.Decimal)
	for v := range ventes.Rows() {
		on, err := ParseDate(v.Date)
		if err != nil {
			continue
		}
		k := monthKey{on.Year(), int(on.Month())}
		revenue[k] = revenue[k].Add(v.Prix)
	}
	spent := make(map[monthKey]decimal.Decimal)
	for e := range depenses.Rows() {
		on, err := ParseDate(e.Date)
		if err != nil {
			continue
		}
		k := monthKey{on.Year(), int(on.Month())}
		spent[k] = spent[k].Add(e.Prix)
	}

	keys := make([]monthKey, 0, len(revenue)+len(spent))
	for k := range revenue {
		keys = append(keys, k)
	}
	for k := range spent {
		if _, dup := revenue[k]; !dup {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	var out []MonthlyAmount
	for _, k := range keys {
		label := NewDate(k.year, time.Month(k.month), 1).MonthLabel()
		if len(months) > 0 && !slices.Contains(months, label) {
			continue
		}
		if amount, ok := revenue[k]; ok {
			out = append(out, MonthlyAmount{Label: label, Kind: KindRevenue, Amount: amount})
		}
		if amount, ok := spent[k]; ok {
			out = append(out, MonthlyAmount{Label: label, Kind: KindExpense, Amount: amount})
		}
	}
	return out
}

// RevenueByProduct sums sale amounts per product name within the range,
// sorted descending by amount. A sale whose Produit_ID resolves to no
// product is grouped under Inconnu.
func (s *Shop) RevenueByProduct(r Range) []NameAmount {
	ventes, _ := s.Sales.Table(true)
	produits, _ := s.Products.Table(true)

	totals := make(map[string]decimal.Decimal)
	for v := range ventes.Rows() {
		on, err := ParseDate(v.Date)
		if err != nil || !r.Contains(on) {
			continue
		}
		name := Inconnu
		if p, ok := productByID(produits, v.ProduitID); ok {
			name = p.Nom
		}
		totals[name] = totals[name].Add(v.Prix)
	}
	return sortedByAmount(totals)
}

// RevenueByClient sums sale amounts per client full name within the range,
// sorted descending by amount, with Inconnu for unresolved clients.
func (s *Shop) RevenueByClient(r Range) []NameAmount {
	ventes, _ := s.Sales.Table(true)
	clients, _ := s.Clients.Table(true)

	totals := make(map[string]decimal.Decimal)
	for v := range ventes.Rows() {
		on, err := ParseDate(v.Date)
		if err != nil || !r.Contains(on) {
			continue
		}
		name := Inconnu
		if c, ok := clientByID(clients, v.ClientID); ok {
			name = c.FullName()
		}
		totals[name] = totals[name].Add(v.Prix)
	}
	return sortedByAmount(totals)
}

// ExpenseByLabel sums expense amounts per free-text label within the
// range, sorted descending by amount.
func (s *Shop) ExpenseByLabel(r Range) []NameAmount {
	depenses, _ := s.Expenses.Table(true)

	totals := make(map[string]decimal.Decimal)
	for e := range depenses.Rows() {
		on, err := ParseDate(e.Date)
		if err != nil || !r.Contains(on) {
			continue
		}
		totals[e.Nom] = totals[e.Nom].Add(e.Prix)
	}
	return sortedByAmount(totals)
}

// sortedByAmount flattens grouped totals, descending by amount, ties
// broken by name for a deterministic order.
func sortedByAmount(totals map[string]decimal.Decimal) []NameAmount {
	out := make([]NameAmount, 0, len(totals))
	for name, amount := range totals {
		out = append(out, NameAmount{Name: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// SaleSummary is one transaction of the sales overview: all lines of a
// Vente_ID collapsed into a total, joined to the client's full name.
type SaleSummary struct {
	VenteID int
	Date    string
	Client  string
	Total   decimal.Decimal
}

// SalesOverview groups ventes by transaction, sums line amounts and
// left-joins the client name, ordered by Vente_ID.
func (s *Shop) SalesOverview() []SaleSummary {
	ventes, _ := s.Sales.Table(true)
	clients, _ := s.Clients.Table(true)

	byID := make(map[int]*SaleSummary)
	for v := range ventes.Rows() {
		sum, ok := byID[v.ID]
		if !ok {
			name := Inconnu
			if c, found := clientByID(clients, v.ClientID); found {
				name = c.FullName()
			}
			sum = &SaleSummary{VenteID: v.ID, Date: v.Date, Client: name}
			byID[v.ID] = sum
		}
		sum.Total = sum.Total.Add(v.Prix)
	}

	out := make([]SaleSummary, 0, len(byID))
	for _, sum := range byID {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VenteID < out[j].VenteID })
	return out
}

// SaleDetail is one line of a transaction, joined to the product's name
// and current unit price.
type SaleDetail struct {
	Produit      string
	Quantite     decimal.Decimal
	PrixUnitaire decimal.Decimal
	Prix         decimal.Decimal
}

// SaleDetails returns the line items of one transaction, with Inconnu and
// a zero unit price for an unresolved product.
func (s *Shop) SaleDetails(venteID int) []SaleDetail {
	ventes, _ := s.Sales.Table(true)
	produits, _ := s.Products.Table(true)

	var out []SaleDetail
	for v := range ventes.Rows() {
		if v.ID != venteID {
			continue
		}
		detail := SaleDetail{Produit: Inconnu, Quantite: v.Quantite, Prix: v.Prix}
		if p, ok := productByID(produits, v.ProduitID); ok {
			detail.Produit = p.Nom
			detail.PrixUnitaire = p.Prix
		}
		out = append(out, detail)
	}
	return out
}

// ExpenseSummary is one day of the expense overview.
type ExpenseSummary struct {
	Date  string
	Total decimal.Decimal
}

// ExpensesOverview groups depenses by date and sums their amounts,
// ordered by date.
func (s *Shop) ExpensesOverview() []ExpenseSummary {
	depenses, _ := s.Expenses.Table(true)

	totals := make(map[string]decimal.Decimal)
	for e := range depenses.Rows() {
		totals[e.Date] = totals[e.Date].Add(e.Prix)
	}

	out := make([]ExpenseSummary, 0, len(totals))
	for date, total := range totals {
		out = append(out, ExpenseSummary{Date: date, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ExpenseDetail is one line of a day's expenses.
type ExpenseDetail struct {
	Nom  string
	Prix decimal.Decimal
}

// ExpenseDetails returns the labels and amounts spent on one date.
func (s *Shop) ExpenseDetails(date string) []ExpenseDetail {
	depenses, _ := s.Expenses.Table(true)

	var out []ExpenseDetail
	for e := range depenses.Rows() {
		if e.Date == date {
			out = append(out, ExpenseDetail{Nom: e.Nom, Prix: e.Prix})
		}
	}
	return out
}
