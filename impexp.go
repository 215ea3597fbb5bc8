package boutique

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Upload operations let the user load a previously downloaded CSV back
// into the shop. The uploaded rows are merged with the existing table,
// duplicates on the entity's natural key are dropped keeping the uploaded
// (last) occurrence, and a fresh sequential identifier range is assigned
// before persisting. A file with missing or unexpected columns is rejected
// with ErrInvalid and the existing table is left unmodified.

// decodeUpload parses an uploaded CSV against the schema. Unlike the
// store's loader it does not self-heal: any defect rejects the upload.
func decodeUpload[R Row](r io.Reader, schema Schema[R]) ([]R, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("missing header: %w", ErrInvalid)
	}
	if !slices.Equal(header, schema.Header()) {
		return nil, fmt.Errorf("got columns %v want %v: %w", header, schema.Header(), ErrInvalid)
	}

	var rows []R
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed record: %w", ErrInvalid)
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("record %v has %d fields want %d: %w", record, len(record), len(header), ErrInvalid)
		}
		row, err := schema.Decode(record)
		if err != nil {
			return nil, fmt.Errorf("record %v: %v: %w", record, err, ErrInvalid)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// dedupeKeepLast keeps, for each key, the last occurrence, in the order of
// those last occurrences.
func dedupeKeepLast[R Row](rows []R, key func(R) string) []R {
	seen := make(map[string]bool, len(rows))
	kept := make([]R, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		k := key(rows[i])
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, rows[i])
	}
	slices.Reverse(kept)
	return kept
}

// UploadClients merges an uploaded clients.csv into the table. Duplicate
// (Nom, Prénom) pairs keep the uploaded row, and Client_IDs are reassigned
// sequentially.
func (s *Shop) UploadClients(r io.Reader) error {
	uploaded, err := decodeUpload(r, clientSchema{})
	if err != nil {
		return fmt.Errorf("upload clients.csv: %w", err)
	}
	existing, _ := s.Clients.Table(true)
	merged := dedupeKeepLast(append(existing.Slice(), uploaded...), func(c Client) string {
		return strings.ToLower(c.Nom) + "\x00" + strings.ToLower(c.Prenom)
	})
	for i := range merged {
		merged[i].ID = i + 1
	}
	return s.Clients.Replace(merged, "upload clients.csv")
}

// UploadProduits merges an uploaded produits.csv, deduplicating on the
// product name.
func (s *Shop) UploadProduits(r io.Reader) error {
	uploaded, err := decodeUpload(r, produitSchema{})
	if err != nil {
		return fmt.Errorf("upload produits.csv: %w", err)
	}
	existing, _ := s.Products.Table(true)
	merged := dedupeKeepLast(append(existing.Slice(), uploaded...), func(p Product) string {
		return strings.ToLower(p.Nom)
	})
	for i := range merged {
		merged[i].ID = i + 1
	}
	return s.Products.Replace(merged, "upload produits.csv")
}

// UploadVentes merges an uploaded ventes.csv. Sales carry no natural key,
// so only exact duplicate lines are dropped; transaction identifiers are
// remapped to a fresh sequential range preserving the grouping of lines.
func (s *Shop) UploadVentes(r io.Reader) error {
	uploaded, err := decodeUpload(r, venteSchema{})
	if err != nil {
		return fmt.Errorf("upload ventes.csv: %w", err)
	}
	existing, _ := s.Sales.Table(true)
	merged := dedupeKeepLast(append(existing.Slice(), uploaded...), func(v Sale) string {
		return strings.Join(venteSchema{}.Encode(v), "\x00")
	})

	next := 1
	ids := make(map[int]int)
	for i, v := range merged {
		id, ok := ids[v.ID]
		if !ok {
			id = next
			ids[v.ID] = id
			next++
		}
		merged[i].ID = id
	}
	return s.Sales.Replace(merged, "upload ventes.csv")
}

// UploadDepenses merges an uploaded depenses.csv with the same contract as
// UploadVentes.
func (s *Shop) UploadDepenses(r io.Reader) error {
	uploaded, err := decodeUpload(r, depenseSchema{})
	if err != nil {
		return fmt.Errorf("upload depenses.csv: %w", err)
	}
	existing, _ := s.Expenses.Table(true)
	merged := dedupeKeepLast(append(existing.Slice(), uploaded...), func(e Expense) string {
		return strings.Join(depenseSchema{}.Encode(e), "\x00")
	})

	next := 1
	ids := make(map[int]int)
	for i, e := range merged {
		id, ok := ids[e.ID]
		if !ok {
			id = next
			ids[e.ID] = id
			next++
		}
		merged[i].ID = id
	}
	return s.Expenses.Replace(merged, "upload depenses.csv")
}

// ExportXLSX writes the whole book as one Excel workbook, one sheet per
// table, for the "download your data" page.
func (s *Shop) ExportXLSX(w io.Writer) error {
	f := excelize.NewFile()

	clients, _ := s.Clients.Table(true)
	if err := writeSheet(f, "Clients", clientSchema{}, clients); err != nil {
		return err
	}
	produits, _ := s.Products.Table(true)
	if err := writeSheet(f, "Produits", produitSchema{}, produits); err != nil {
		return err
	}
	depenses, _ := s.Expenses.Table(true)
	if err := writeSheet(f, "Depenses", depenseSchema{}, depenses); err != nil {
		return err
	}
	ventes, _ := s.Sales.Table(true)
	if err := writeSheet(f, "Ventes", venteSchema{}, ventes); err != nil {
		return err
	}

	f.DeleteSheet("Sheet1")
	return f.Write(w)
}

func writeSheet[R Row](f *excelize.File, sheet string, schema Schema[R], t *Table[R]) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for col, name := range schema.Header() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	row := 2
	for r := range t.Rows() {
		for col, value := range schema.Encode(r) {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}
