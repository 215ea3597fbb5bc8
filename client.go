package boutique

import (
	"strconv"
	"strings"
)

// Client is one row of the clients table. The (Nom, Prénom) pair is the
// natural key: no two clients may share it, case-insensitively.
type Client struct {
	ID        int
	Nom       string
	Prenom    string
	Email     string
	Telephone string
}

func (c Client) RowID() int { return c.ID }

// FullName returns "Nom Prénom" for display, trimmed when one part is empty.
func (c Client) FullName() string {
	return strings.TrimSpace(c.Nom + " " + c.Prenom)
}

// sameName reports a case-insensitive match on the natural key.
func (c Client) sameName(nom, prenom string) bool {
	return strings.EqualFold(c.Nom, nom) && strings.EqualFold(c.Prenom, prenom)
}

// clientByID returns the client owning the identifier.
func clientByID(t *Table[Client], id int) (Client, bool) {
	for c := range t.Rows() {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

type clientSchema struct{}

func (clientSchema) Header() []string {
	return []string{"Client_ID", "Nom", "Prénom", "Email", "Téléphone"}
}

func (clientSchema) Encode(c Client) []string {
	return []string{strconv.Itoa(c.ID), c.Nom, c.Prenom, c.Email, c.Telephone}
}

func (clientSchema) Decode(record []string) (Client, error) {
	id, err := parseIdentifier(record[0])
	if err != nil {
		return Client{}, err
	}
	return Client{
		ID:        id,
		Nom:       record[1],
		Prenom:    record[2],
		Email:     record[3],
		Telephone: record[4],
	}, nil
}
