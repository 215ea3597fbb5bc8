package boutique

import (
	"testing"
)

// reportShop seeds a shop directly through the stores so report inputs,
// including dangling foreign keys and bad dates, are fully controlled.
func reportShop(t *testing.T) *Shop {
	t.Helper()
	s := Open(t.TempDir())

	err := s.Clients.Insert("seed",
		Client{ID: 1, Nom: "Dupont", Prenom: "Marie"},
		Client{ID: 2, Nom: "Martin", Prenom: "Luc"},
	)
	if err != nil {
		t.Fatal(err)
	}
	err = s.Products.Insert("seed",
		Product{ID: 1, Nom: "Tomates", Prix: dec("3.50")},
		Product{ID: 2, Nom: "Fraises", Prix: dec("8")},
	)
	if err != nil {
		t.Fatal(err)
	}
	err = s.Sales.Insert("seed",
		Sale{ID: 1, Date: "2025-01-01", ClientID: 1, ProduitID: 1, Quantite: dec("20"), Prix: dec("70")},
		Sale{ID: 1, Date: "2025-01-01", ClientID: 1, ProduitID: 2, Quantite: dec("3.75"), Prix: dec("30")},
		Sale{ID: 2, Date: "2025-01-02", ClientID: 2, ProduitID: 2, Quantite: dec("6.25"), Prix: dec("50")},
		Sale{ID: 3, Date: "2025-02-10", ClientID: 9, ProduitID: 9, Quantite: dec("1"), Prix: dec("5")},
		Sale{ID: 4, Date: "not-a-date", ClientID: 1, ProduitID: 1, Quantite: dec("1"), Prix: dec("1000")},
	)
	if err != nil {
		t.Fatal(err)
	}
	err = s.Expenses.Insert("seed",
		Expense{ID: 1, Date: "2025-01-01", Nom: "Semences", Prix: dec("40")},
		Expense{ID: 2, Date: "2025-01-02", Nom: "Essence", Prix: dec("30")},
		Expense{ID: 3, Date: "2025-02-15", Nom: "Semences", Prix: dec("10")},
	)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestProfitTimeline(t *testing.T) {
	s := reportShop(t)

	got := s.ProfitTimeline()
	want := []struct {
		date       string
		cumulative string
	}{
		// 100 sold minus 40 spent, then 50 minus 30, then the February
		// rows. The unparseable date row never contributes.
		{"2025-01-01", "60"},
		{"2025-01-02", "80"},
		{"2025-02-10", "85"},
		{"2025-02-15", "75"},
	}
	if len(got) != len(want) {
		t.Fatalf("ProfitTimeline() has %d points, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Date.String() != w.date || !got[i].Cumulative.Equal(dec(w.cumulative)) {
			t.Errorf("point %d = %s %s, want %s %s", i, got[i].Date, got[i].Cumulative, w.date, w.cumulative)
		}
	}

	profit, on, ok := s.LatestProfit()
	if !ok || on.String() != "2025-02-15" || !profit.Equal(dec("75")) {
		t.Errorf("LatestProfit() = %s on %s (%t), want 75 on 2025-02-15", profit, on, ok)
	}
}

func TestLatestProfit_Empty(t *testing.T) {
	s := Open(t.TempDir())
	if _, _, ok := s.LatestProfit(); ok {
		t.Error("LatestProfit() on an empty shop reported data")
	}
}

func TestMonthlyRevenueVsExpense(t *testing.T) {
	s := reportShop(t)

	got := s.MonthlyRevenueVsExpense()
	want := []struct {
		label  string
		kind   string
		amount string
	}{
		{"January 2025", KindRevenue, "150"},
		{"January 2025", KindExpense, "70"},
		{"February 2025", KindRevenue, "5"},
		{"February 2025", KindExpense, "10"},
	}
	if len(got) != len(want) {
		t.Fatalf("MonthlyRevenueVsExpense() has %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Label != w.label || got[i].Kind != w.kind || !got[i].Amount.Equal(dec(w.amount)) {
			t.Errorf("entry %d = %+v, want {%s %s %s}", i, got[i], w.label, w.kind, w.amount)
		}
	}

	// A label filter keeps only the named months.
	filtered := s.MonthlyRevenueVsExpense("February 2025")
	if len(filtered) != 2 || filtered[0].Label != "February 2025" {
		t.Errorf("filtered report = %+v, want the two February entries", filtered)
	}
}

func TestRevenueByProduct(t *testing.T) {
	s := reportShop(t)

	got := s.RevenueByProduct(Range{})
	want := []struct {
		name   string
		amount string
	}{
		// Descending by amount; the dangling Produit_ID 9 groups under
		// Inconnu with the bad-date row dropped.
		{"Fraises", "80"},
		{"Tomates", "70"},
		{Inconnu, "5"},
	}
	if len(got) != len(want) {
		t.Fatalf("RevenueByProduct() has %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Name != w.name || !got[i].Amount.Equal(dec(w.amount)) {
			t.Errorf("entry %d = %+v, want {%s %s}", i, got[i], w.name, w.amount)
		}
	}

	january := NewRange(MustParse("2025-01-01"), MustParse("2025-01-31"))
	got = s.RevenueByProduct(january)
	if len(got) != 2 || got[0].Name != "Fraises" || !got[0].Amount.Equal(dec("80")) {
		t.Errorf("January revenue = %+v, want Fraises 80 then Tomates 70", got)
	}
}

func TestRevenueByClient(t *testing.T) {
	s := reportShop(t)

	got := s.RevenueByClient(Range{})
	if len(got) != 3 {
		t.Fatalf("RevenueByClient() has %d entries, want 3: %+v", len(got), got)
	}
	if got[0].Name != "Dupont Marie" || !got[0].Amount.Equal(dec("100")) {
		t.Errorf("top client = %+v, want Dupont Marie 100", got[0])
	}
	if got[2].Name != Inconnu || !got[2].Amount.Equal(dec("5")) {
		t.Errorf("last entry = %+v, want Inconnu 5", got[2])
	}
}

func TestExpenseByLabel(t *testing.T) {
	s := reportShop(t)

	got := s.ExpenseByLabel(Range{})
	want := []struct {
		name   string
		amount string
	}{
		{"Semences", "50"},
		{"Essence", "30"},
	}
	if len(got) != len(want) {
		t.Fatalf("ExpenseByLabel() has %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Name != w.name || !got[i].Amount.Equal(dec(w.amount)) {
			t.Errorf("entry %d = %+v, want {%s %s}", i, got[i], w.name, w.amount)
		}
	}
}

func TestSalesOverview(t *testing.T) {
	s := reportShop(t)

	got := s.SalesOverview()
	if len(got) != 4 {
		t.Fatalf("SalesOverview() has %d transactions, want 4: %+v", len(got), got)
	}
	if got[0].VenteID != 1 || got[0].Client != "Dupont Marie" || !got[0].Total.Equal(dec("100")) {
		t.Errorf("vente 1 = %+v, want Dupont Marie total 100", got[0])
	}
	if got[2].Client != Inconnu {
		t.Errorf("vente 3 client = %q, want %q for a dangling Client_ID", got[2].Client, Inconnu)
	}
}

func TestSaleDetails(t *testing.T) {
	s := reportShop(t)

	got := s.SaleDetails(1)
	if len(got) != 2 {
		t.Fatalf("SaleDetails(1) has %d lines, want 2: %+v", len(got), got)
	}
	if got[0].Produit != "Tomates" || !got[0].PrixUnitaire.Equal(dec("3.50")) || !got[0].Prix.Equal(dec("70")) {
		t.Errorf("line 0 = %+v, want Tomates at 3.50 for 70", got[0])
	}

	if details := s.SaleDetails(999); len(details) != 0 {
		t.Errorf("SaleDetails(999) = %+v, want none", details)
	}
}

func TestExpensesOverview(t *testing.T) {
	s := reportShop(t)

	got := s.ExpensesOverview()
	if len(got) != 3 {
		t.Fatalf("ExpensesOverview() has %d days, want 3: %+v", len(got), got)
	}
	if got[0].Date != "2025-01-01" || !got[0].Total.Equal(dec("40")) {
		t.Errorf("first day = %+v, want 2025-01-01 total 40", got[0])
	}

	details := s.ExpenseDetails("2025-01-01")
	if len(details) != 1 || details[0].Nom != "Semences" {
		t.Errorf("ExpenseDetails() = %+v, want the Semences line", details)
	}
}
