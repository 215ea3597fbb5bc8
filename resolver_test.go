package boutique

import (
	"errors"
	"testing"
)

func TestResolveClient(t *testing.T) {
	table := NewTable(
		Client{ID: 1, Nom: "Dupont", Prenom: "Marie"},
		Client{ID: 2, Nom: "Dupont", Prenom: "Jean"},
		Client{ID: 3, Nom: "Martin", Prenom: "Luc"},
		Client{ID: 4, Nom: "Martin", Prenom: "Luc"},
	)

	tests := []struct {
		name   string
		nom    string
		prenom string
		id     int
		err    error
	}{
		{"exact", "Dupont", "Marie", 1, nil},
		{"case-insensitive", "dUpOnT", "MARIE", 1, nil},
		{"homonym disambiguated by prénom", "Dupont", "Jean", 2, nil},
		{"missing prénom does not widen the match", "Dupont", "", 0, ErrNotFound},
		{"unknown", "Petit", "", 0, ErrNotFound},
		{"two identical pairs", "Martin", "Luc", 0, ErrAmbiguous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ResolveClient(table, tt.nom, tt.prenom)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ResolveClient(%q, %q) error = %v, want %v", tt.nom, tt.prenom, err, tt.err)
			}
			if id != tt.id {
				t.Errorf("ResolveClient(%q, %q) = %d, want %d", tt.nom, tt.prenom, id, tt.id)
			}
		})
	}
}

func TestResolveProduct(t *testing.T) {
	table := NewTable(
		Product{ID: 1, Nom: "Tomates"},
		Product{ID: 2, Nom: "Fraises"},
		Product{ID: 3, Nom: "fraises"},
	)

	tests := []struct {
		name string
		nom  string
		id   int
		err  error
	}{
		{"exact", "Tomates", 1, nil},
		{"case-insensitive", "TOMATES", 1, nil},
		{"unknown", "Caviar", 0, ErrNotFound},
		{"two case variants", "Fraises", 0, ErrAmbiguous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ResolveProduct(table, tt.nom)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ResolveProduct(%q) error = %v, want %v", tt.nom, err, tt.err)
			}
			if id != tt.id {
				t.Errorf("ResolveProduct(%q) = %d, want %d", tt.nom, id, tt.id)
			}
		})
	}
}
