package boutique

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Shop owns the four record stores and exposes the validated operations
// the presentation layer calls. It is the sole owner of each table's
// in-memory representation: the resolver and the reports read through the
// stores and never hold a private copy.
type Shop struct {
	Clients  *Store[Client]
	Products *Store[Product]
	Expenses *Store[Expense]
	Sales    *Store[Sale]

	validate *validator.Validate
}

// Open creates a shop whose tables live as CSV files under dir.
func Open(dir string) *Shop {
	return &Shop{
		Clients:  NewStore(filepath.Join(dir, "clients.csv"), clientSchema{}),
		Products: NewStore(filepath.Join(dir, "produits.csv"), produitSchema{}),
		Expenses: NewStore(filepath.Join(dir, "depenses.csv"), depenseSchema{}),
		Sales:    NewStore(filepath.Join(dir, "ventes.csv"), venteSchema{}),
		validate: validator.New(),
	}
}

// SetSyncer attaches the remote sync collaborator to every store.
func (s *Shop) SetSyncer(syncer Syncer) {
	s.Clients.SetSyncer(syncer)
	s.Products.SetSyncer(syncer)
	s.Expenses.SetSyncer(syncer)
	s.Sales.SetSyncer(syncer)
}

// check runs struct-tag validation and converts the first violation into
// an ErrInvalid the caller can test for.
func (s *Shop) check(in any) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		ve := verrs[0]
		return fmt.Errorf("field %s fails %q: %w", ve.Field(), ve.Tag(), ErrInvalid)
	}
	return err
}

// checkDate validates a user-supplied YYYY-MM-DD date string.
func checkDate(date string) error {
	if _, err := ParseDate(date); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalid)
	}
	return nil
}

// ClientInput is the validated form input for a new client.
type ClientInput struct {
	Nom       string `validate:"required"`
	Prenom    string
	Email     string `validate:"omitempty,email"`
	Telephone string
}

// AddClient inserts a new client and returns its identifier. A client with
// the same (Nom, Prénom) pair, case-insensitively, is rejected with
// ErrInvalid.
func (s *Shop) AddClient(in ClientInput) (int, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	t, _ := s.Clients.Table(true)
	for c := range t.Rows() {
		if c.sameName(in.Nom, in.Prenom) {
			return 0, fmt.Errorf("client %q %q already exists: %w", in.Nom, in.Prenom, ErrInvalid)
		}
	}
	c := Client{
		ID:        t.NextID(),
		Nom:       in.Nom,
		Prenom:    in.Prenom,
		Email:     in.Email,
		Telephone: in.Telephone,
	}
	if err := s.Clients.Insert("add client "+c.FullName(), c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// DeleteClient removes the client matching the natural key.
func (s *Shop) DeleteClient(nom, prenom string) error {
	t, _ := s.Clients.Table(true)
	id, err := ResolveClient(t, nom, prenom)
	if err != nil {
		return err
	}
	return s.Clients.Delete(id, fmt.Sprintf("delete client %s %s", nom, prenom))
}

// ListClients returns the current clients table.
func (s *Shop) ListClients() ([]Client, error) {
	t, err := s.Clients.Table(true)
	return t.Slice(), err
}

// ProductInput is the validated form input for a new product.
type ProductInput struct {
	Nom  string `validate:"required"`
	Prix decimal.Decimal
}

// AddProduct inserts a new product and returns its identifier. A negative
// price or a duplicate name is rejected with ErrInvalid.
func (s *Shop) AddProduct(in ProductInput) (int, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	if in.Prix.IsNegative() {
		return 0, fmt.Errorf("negative price %s: %w", in.Prix, ErrInvalid)
	}
	t, _ := s.Products.Table(true)
	for p := range t.Rows() {
		if p.sameName(in.Nom) {
			return 0, fmt.Errorf("produit %q already exists: %w", in.Nom, ErrInvalid)
		}
	}
	p := Product{ID: t.NextID(), Nom: in.Nom, Prix: in.Prix}
	if err := s.Products.Insert("add produit "+p.Nom, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// DeleteProduct removes the product matching the name.
func (s *Shop) DeleteProduct(nom string) error {
	t, _ := s.Products.Table(true)
	id, err := ResolveProduct(t, nom)
	if err != nil {
		return err
	}
	return s.Products.Delete(id, "delete produit "+nom)
}

// SetPrice updates the unit price of the product matching the name. This
// is the only field update of the system: sales keep their recorded
// amounts, only future sales see the new price.
func (s *Shop) SetPrice(nom string, prix decimal.Decimal) error {
	if prix.IsNegative() {
		return fmt.Errorf("negative price %s: %w", prix, ErrInvalid)
	}
	t, _ := s.Products.Table(true)
	id, err := ResolveProduct(t, nom)
	if err != nil {
		return err
	}
	return s.Products.UpdateWhere(
		func(p Product) bool { return p.ID == id },
		func(p Product) Product { p.Prix = prix; return p },
		fmt.Sprintf("set price of %s to %s", nom, prix),
	)
}

// ListProducts returns the current produits table.
func (s *Shop) ListProducts() ([]Product, error) {
	t, err := s.Products.Table(true)
	return t.Slice(), err
}

// SaleLine is one item of a sale: a product name and a quantity in kg.
type SaleLine struct {
	Produit  string `validate:"required"`
	Quantite decimal.Decimal
}

// AddSale records one transaction: the client and every product are
// resolved by natural key, all lines share one fresh Vente_ID, and each
// line stores its computed amount quantité × prix-au-kg. Any resolution or
// validation failure aborts the whole batch, nothing is inserted.
func (s *Shop) AddSale(date, nom, prenom string, lines []SaleLine) (int, error) {
	if err := checkDate(date); err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, fmt.Errorf("sale without line items: %w", ErrInvalid)
	}

	clients, _ := s.Clients.Table(true)
	clientID, err := ResolveClient(clients, nom, prenom)
	if err != nil {
		return 0, err
	}

	produits, _ := s.Products.Table(true)
	ventes, _ := s.Sales.Table(true)
	venteID := ventes.NextID()

	rows := make([]Sale, 0, len(lines))
	for _, line := range lines {
		if err := s.check(line); err != nil {
			return 0, err
		}
		if !line.Quantite.IsPositive() {
			return 0, fmt.Errorf("quantity %s for %q: %w", line.Quantite, line.Produit, ErrInvalid)
		}
		produitID, err := ResolveProduct(produits, line.Produit)
		if err != nil {
			return 0, err
		}
		produit, _ := productByID(produits, produitID)
		rows = append(rows, Sale{
			ID:        venteID,
			Date:      date,
			ClientID:  clientID,
			ProduitID: produitID,
			Quantite:  line.Quantite,
			Prix:      line.Quantite.Mul(produit.Prix),
		})
	}

	if err := s.Sales.Insert(fmt.Sprintf("add vente %d", venteID), rows...); err != nil {
		return 0, err
	}
	return venteID, nil
}

// DeleteSale removes every line of the transaction.
func (s *Shop) DeleteSale(venteID int) error {
	return s.Sales.Delete(venteID, fmt.Sprintf("delete vente %d", venteID))
}

// ListSales returns the current ventes table.
func (s *Shop) ListSales() ([]Sale, error) {
	t, err := s.Sales.Table(true)
	return t.Slice(), err
}

// ExpenseLine is one item of an expense batch: a label and an amount.
type ExpenseLine struct {
	Nom  string `validate:"required"`
	Prix decimal.Decimal
}

// AddExpense records one batch of expenses sharing a fresh Depense_ID.
func (s *Shop) AddExpense(date string, lines []ExpenseLine) (int, error) {
	if err := checkDate(date); err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, fmt.Errorf("expense without line items: %w", ErrInvalid)
	}

	depenses, _ := s.Expenses.Table(true)
	depenseID := depenses.NextID()

	rows := make([]Expense, 0, len(lines))
	for _, line := range lines {
		if err := s.check(line); err != nil {
			return 0, err
		}
		if line.Prix.IsNegative() {
			return 0, fmt.Errorf("negative amount %s for %q: %w", line.Prix, line.Nom, ErrInvalid)
		}
		rows = append(rows, Expense{ID: depenseID, Date: date, Nom: line.Nom, Prix: line.Prix})
	}

	if err := s.Expenses.Insert(fmt.Sprintf("add depense %d", depenseID), rows...); err != nil {
		return 0, err
	}
	return depenseID, nil
}

// DeleteExpense removes every line of the expense batch.
func (s *Shop) DeleteExpense(depenseID int) error {
	return s.Expenses.Delete(depenseID, fmt.Sprintf("delete depense %d", depenseID))
}

// ListExpenses returns the current depenses table.
func (s *Shop) ListExpenses() ([]Expense, error) {
	t, err := s.Expenses.Table(true)
	return t.Slice(), err
}
