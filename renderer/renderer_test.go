package renderer

import (
	"strings"
	"testing"

	"github.com/lafermette/boutique"
	"github.com/shopspring/decimal"
)

func TestClientsMarkdown(t *testing.T) {
	got := ClientsMarkdown([]boutique.Client{
		{ID: 1, Nom: "Dupont", Prenom: "Marie", Email: "marie@example.org"},
	})
	for _, want := range []string{"# Clients", "Dupont", "Marie", "marie@example.org"} {
		if !strings.Contains(got, want) {
			t.Errorf("ClientsMarkdown() misses %q:\n%s", want, got)
		}
	}
}

func TestProductsMarkdown_FormatsPrices(t *testing.T) {
	got := ProductsMarkdown([]boutique.Product{
		{ID: 1, Nom: "Tomates", Prix: decimal.RequireFromString("3.5")},
	})
	if !strings.Contains(got, "€3.50") {
		t.Errorf("ProductsMarkdown() misses the formatted price:\n%s", got)
	}
}

func TestProfitMarkdown_Empty(t *testing.T) {
	got := ProfitMarkdown(nil)
	if !strings.Contains(got, "Aucune donnée") {
		t.Errorf("ProfitMarkdown(nil) misses the empty notice:\n%s", got)
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	got := MonthlyMarkdown([]boutique.MonthlyAmount{
		{Label: "June 2025", Kind: boutique.KindRevenue, Amount: decimal.RequireFromString("150")},
		{Label: "June 2025", Kind: boutique.KindExpense, Amount: decimal.RequireFromString("70")},
	})
	for _, want := range []string{"June 2025", "Ventes", "Dépenses", "€150.00", "€70.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("MonthlyMarkdown() misses %q:\n%s", want, got)
		}
	}
}
