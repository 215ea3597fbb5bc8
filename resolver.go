package boutique

import "fmt"

// The resolver translates a human-entered natural key into the owning
// entity's identifier before a dependent sale row may reference it. It is
// the single place where insert-time referential integrity is checked,
// rather than ad hoc at each call site.

// ResolveClient resolves the case-insensitive (Nom, Prénom) pair to the
// client's identifier. No match is ErrNotFound. More than one match means
// the uniqueness invariant was violated upstream: the resolver reports
// ErrAmbiguous instead of guessing.
func ResolveClient(t *Table[Client], nom, prenom string) (int, error) {
	var matches []Client
	for c := range t.Rows() {
		if c.sameName(nom, prenom) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("client %q %q: %w", nom, prenom, ErrNotFound)
	case 1:
		return matches[0].ID, nil
	default:
		return 0, fmt.Errorf("client %q %q matches %d rows: %w", nom, prenom, len(matches), ErrAmbiguous)
	}
}

// ResolveProduct resolves a case-insensitive product name to its
// identifier, with the same NotFound/Ambiguous contract as ResolveClient.
func ResolveProduct(t *Table[Product], nom string) (int, error) {
	var matches []Product
	for p := range t.Rows() {
		if p.sameName(nom) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("produit %q: %w", nom, ErrNotFound)
	case 1:
		return matches[0].ID, nil
	default:
		return 0, fmt.Errorf("produit %q matches %d rows: %w", nom, len(matches), ErrAmbiguous)
	}
}
