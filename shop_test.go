package boutique

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newShop opens a shop over a throwaway folder, optionally seeded with
// clients and products.
func newShop(t *testing.T) *Shop {
	t.Helper()
	return Open(t.TempDir())
}

func seedShop(t *testing.T) *Shop {
	t.Helper()
	s := newShop(t)
	mustAdd := func(id int, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}
	mustAdd(s.AddClient(ClientInput{Nom: "Dupont", Prenom: "Marie"}))
	mustAdd(s.AddClient(ClientInput{Nom: "Martin", Prenom: "Luc"}))
	mustAdd(s.AddProduct(ProductInput{Nom: "Tomates", Prix: dec("3.50")}))
	mustAdd(s.AddProduct(ProductInput{Nom: "Fraises", Prix: dec("8")}))
	return s
}

func TestAddClient(t *testing.T) {
	s := newShop(t)

	id, err := s.AddClient(ClientInput{Nom: "Dupont", Prenom: "Marie", Email: "marie@example.org"})
	if err != nil {
		t.Fatalf("AddClient(): %v", err)
	}
	if id != 1 {
		t.Errorf("first client got ID %d, want 1", id)
	}

	tests := []struct {
		name string
		in   ClientInput
	}{
		{"duplicate pair", ClientInput{Nom: "Dupont", Prenom: "Marie"}},
		{"duplicate pair other case", ClientInput{Nom: "DUPONT", Prenom: "marie"}},
		{"missing nom", ClientInput{Prenom: "Paul"}},
		{"bad email", ClientInput{Nom: "Petit", Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.AddClient(tt.in); !errors.Is(err, ErrInvalid) {
				t.Errorf("AddClient(%+v) error = %v, want ErrInvalid", tt.in, err)
			}
		})
	}

	// Same Nom with another Prénom is a different person.
	if _, err := s.AddClient(ClientInput{Nom: "Dupont", Prenom: "Jean"}); err != nil {
		t.Errorf("AddClient() homonym: %v", err)
	}
}

func TestDeleteClient(t *testing.T) {
	s := seedShop(t)

	if err := s.DeleteClient("dupont", "MARIE"); err != nil {
		t.Fatalf("DeleteClient() case-insensitive: %v", err)
	}
	clients, _ := s.ListClients()
	if len(clients) != 1 {
		t.Errorf("after delete, %d clients remain, want 1", len(clients))
	}
	if err := s.DeleteClient("Nobody", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteClient() unknown error = %v, want ErrNotFound", err)
	}
}

func TestAddProduct(t *testing.T) {
	s := newShop(t)

	if _, err := s.AddProduct(ProductInput{Nom: "Tomates", Prix: dec("3.50")}); err != nil {
		t.Fatalf("AddProduct(): %v", err)
	}
	if _, err := s.AddProduct(ProductInput{Nom: "TOMATES", Prix: dec("4")}); !errors.Is(err, ErrInvalid) {
		t.Errorf("duplicate name error = %v, want ErrInvalid", err)
	}
	if _, err := s.AddProduct(ProductInput{Nom: "Avoine", Prix: dec("-1")}); !errors.Is(err, ErrInvalid) {
		t.Errorf("negative price error = %v, want ErrInvalid", err)
	}
}

func TestAddSale(t *testing.T) {
	s := seedShop(t)

	id, err := s.AddSale("2025-06-01", "Dupont", "Marie", []SaleLine{
		{Produit: "Tomates", Quantite: dec("2")},
		{Produit: "fraises", Quantite: dec("0.5")},
	})
	if err != nil {
		t.Fatalf("AddSale(): %v", err)
	}
	if id != 1 {
		t.Errorf("first sale got Vente_ID %d, want 1", id)
	}

	sales, _ := s.ListSales()
	if len(sales) != 2 {
		t.Fatalf("AddSale() stored %d lines, want 2", len(sales))
	}
	for _, v := range sales {
		if v.ID != 1 {
			t.Errorf("line %+v has Vente_ID %d, want the shared 1", v, v.ID)
		}
	}
	// Each line snapshots quantité × current unit price.
	if !sales[0].Prix.Equal(dec("7")) {
		t.Errorf("Tomates line Prix = %s, want 7", sales[0].Prix)
	}
	if !sales[1].Prix.Equal(dec("4")) {
		t.Errorf("Fraises line Prix = %s, want 4", sales[1].Prix)
	}

	// The next transaction gets the next identifier.
	id, err = s.AddSale("2025-06-02", "Martin", "Luc", []SaleLine{{Produit: "Tomates", Quantite: dec("1")}})
	if err != nil {
		t.Fatalf("AddSale() second: %v", err)
	}
	if id != 2 {
		t.Errorf("second sale got Vente_ID %d, want 2", id)
	}
}

func TestAddSale_AbortsWholeBatch(t *testing.T) {
	s := seedShop(t)

	tests := []struct {
		name   string
		date   string
		nom    string
		lines  []SaleLine
		target error
	}{
		{"unknown client", "2025-06-01", "Nobody", []SaleLine{{Produit: "Tomates", Quantite: dec("1")}}, ErrNotFound},
		{"unknown product in second line", "2025-06-01", "Martin",
			[]SaleLine{{Produit: "Tomates", Quantite: dec("1")}, {Produit: "Caviar", Quantite: dec("1")}}, ErrNotFound},
		{"zero quantity", "2025-06-01", "Martin", []SaleLine{{Produit: "Tomates", Quantite: dec("0")}}, ErrInvalid},
		{"bad date", "junk", "Martin", []SaleLine{{Produit: "Tomates", Quantite: dec("1")}}, ErrInvalid},
		{"no lines", "2025-06-01", "Martin", nil, ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prenom := ""
			if tt.nom == "Martin" {
				prenom = "Luc"
			}
			if _, err := s.AddSale(tt.date, tt.nom, prenom, tt.lines); !errors.Is(err, tt.target) {
				t.Fatalf("AddSale() error = %v, want %v", err, tt.target)
			}
			if sales, _ := s.ListSales(); len(sales) != 0 {
				t.Errorf("failed AddSale() left %d lines behind, want none", len(sales))
			}
		})
	}
}

func TestSetPrice(t *testing.T) {
	s := seedShop(t)

	if _, err := s.AddSale("2025-06-01", "Dupont", "Marie", []SaleLine{{Produit: "Tomates", Quantite: dec("2")}}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPrice("tomates", dec("5")); err != nil {
		t.Fatalf("SetPrice(): %v", err)
	}
	if _, err := s.AddSale("2025-06-02", "Dupont", "Marie", []SaleLine{{Produit: "Tomates", Quantite: dec("2")}}); err != nil {
		t.Fatal(err)
	}

	sales, _ := s.ListSales()
	if !sales[0].Prix.Equal(dec("7")) {
		t.Errorf("past sale line Prix = %s, want the recorded 7", sales[0].Prix)
	}
	if !sales[1].Prix.Equal(dec("10")) {
		t.Errorf("new sale line Prix = %s, want 10 at the new price", sales[1].Prix)
	}

	if err := s.SetPrice("Tomates", dec("-2")); !errors.Is(err, ErrInvalid) {
		t.Errorf("SetPrice() negative error = %v, want ErrInvalid", err)
	}
	if err := s.SetPrice("Caviar", dec("2")); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetPrice() unknown error = %v, want ErrNotFound", err)
	}
}

func TestAddExpense(t *testing.T) {
	s := newShop(t)

	id, err := s.AddExpense("2025-06-01", []ExpenseLine{
		{Nom: "Semences", Prix: dec("40")},
		{Nom: "Essence", Prix: dec("25.30")},
	})
	if err != nil {
		t.Fatalf("AddExpense(): %v", err)
	}
	if id != 1 {
		t.Errorf("first batch got Depense_ID %d, want 1", id)
	}

	id, err = s.AddExpense("2025-06-02", []ExpenseLine{{Nom: "Outils", Prix: dec("12")}})
	if err != nil {
		t.Fatal(err)
	}
	if id != 2 {
		t.Errorf("second batch got Depense_ID %d, want 2", id)
	}

	expenses, _ := s.ListExpenses()
	if len(expenses) != 3 {
		t.Fatalf("stored %d expense lines, want 3", len(expenses))
	}
	if expenses[0].ID != 1 || expenses[1].ID != 1 {
		t.Errorf("first batch lines carry IDs %d and %d, want the shared 1", expenses[0].ID, expenses[1].ID)
	}

	if _, err := s.AddExpense("2025-06-03", []ExpenseLine{{Nom: "Vol", Prix: dec("-5")}}); !errors.Is(err, ErrInvalid) {
		t.Errorf("negative amount error = %v, want ErrInvalid", err)
	}
	if _, err := s.AddExpense("2025-06-03", nil); !errors.Is(err, ErrInvalid) {
		t.Errorf("empty batch error = %v, want ErrInvalid", err)
	}
}

func TestDeleteSale_RemovesAllLines(t *testing.T) {
	s := seedShop(t)
	id, err := s.AddSale("2025-06-01", "Dupont", "Marie", []SaleLine{
		{Produit: "Tomates", Quantite: dec("1")},
		{Produit: "Fraises", Quantite: dec("1")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteSale(id); err != nil {
		t.Fatalf("DeleteSale(): %v", err)
	}
	if sales, _ := s.ListSales(); len(sales) != 0 {
		t.Errorf("DeleteSale() left %d lines, want none", len(sales))
	}
}
