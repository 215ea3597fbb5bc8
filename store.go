package boutique

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
)

// Schema describes how rows of one table map to CSV records.
type Schema[R Row] interface {
	// Header returns the exact column names of the table.
	Header() []string
	// Encode serializes one row in header order.
	Encode(r R) []string
	// Decode parses one CSV record into a row.
	Decode(record []string) (R, error)
}

// Syncer receives the full post-write file content after every successful
// local write. A push failure is reported but never rolls back the local
// write.
type Syncer interface {
	Push(path string, content []byte, message string) error
}

// Store owns one CSV table: it loads the file, serves reads through a
// cache that is dropped after every write, and persists whole-table
// rewrites. The invalidate-then-reload discipline is the only consistency
// mechanism; there is no locking, which is acceptable for the single-user
// deployment this targets.
type Store[R Row] struct {
	path   string
	schema Schema[R]
	syncer Syncer
	cached *Table[R]
}

// NewStore creates a store for the table file at path.
func NewStore[R Row](path string, schema Schema[R]) *Store[R] {
	return &Store[R]{path: path, schema: schema}
}

// SetSyncer attaches a remote sync collaborator. A nil syncer disables
// remote pushes.
func (s *Store[R]) SetSyncer(syncer Syncer) { s.syncer = syncer }

// Path returns the location of the backing file.
func (s *Store[R]) Path() string { return s.path }

// Load reads the backing file, bypassing the cache.
//
// A missing file is created empty with the schema's header and persisted
// immediately. A file with unexpected columns or unreadable content yields
// an empty, correctly shaped table along with an error wrapping
// ErrBadSchema or ErrBadFormat: the caller can proceed on the healed table
// and report the condition. The broken file itself is left untouched until
// the next write.
func (s *Store[R]) Load() (*Table[R], error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logg.WithField("table", s.path).Warn("no table file, creating an empty one")
		t := NewTable[R]()
		if err := s.writeFile(t, "create "+filepath.Base(s.path)); err != nil {
			return t, err
		}
		return t, nil
	}
	if err != nil {
		return NewTable[R](), fmt.Errorf("cannot open %s: %w", s.path, errors.Join(ErrBadFormat, err))
	}
	defer f.Close()

	t, err := s.decode(f)
	if err != nil {
		logg.WithField("table", s.path).WithError(err).Warn("substituting an empty table")
		return NewTable[R](), fmt.Errorf("cannot read %s: %w", s.path, err)
	}
	return t, nil
}

// Table returns the cached table, reloading from disk first when the cache
// is empty or invalidate is true.
//
// This is the only path through which data is fetched: writers always pass
// invalidate=true before generating an identifier or checking uniqueness,
// so they never operate on a stale copy.
func (s *Store[R]) Table(invalidate bool) (*Table[R], error) {
	if s.cached != nil && !invalidate {
		return s.cached, nil
	}
	t, err := s.Load()
	s.cached = t
	return t, err
}

// Invalidate drops the cached table so the next read reloads from disk.
func (s *Store[R]) Invalidate() { s.cached = nil }

// Insert appends rows to the freshly reloaded table and persists it. The
// caller is expected to have assigned identifiers against that same fresh
// table (see Table.NextID) and to have verified its uniqueness invariants.
func (s *Store[R]) Insert(message string, rows ...R) error {
	t, _ := s.Table(true)
	return s.persist(t.append(rows...), message)
}

// Delete removes every row of the identifier's transaction group. It fails
// with ErrNotFound when no row matches, leaving storage untouched.
func (s *Store[R]) Delete(id int, message string) error {
	t, _ := s.Table(true)
	filtered, removed := t.without(id)
	if removed == 0 {
		return fmt.Errorf("id %d in %s: %w", id, s.path, ErrNotFound)
	}
	return s.persist(filtered, message)
}

// UpdateWhere rewrites every row matched by pred through apply. It fails
// with ErrNotFound when nothing matches. This is the only in-place row
// mutation of the system, used for product price changes.
func (s *Store[R]) UpdateWhere(pred func(R) bool, apply func(R) R, message string) error {
	t, _ := s.Table(true)
	rows := t.Slice()
	matched := 0
	for i, r := range rows {
		if pred(r) {
			rows[i] = apply(r)
			matched++
		}
	}
	if matched == 0 {
		return fmt.Errorf("no matching row in %s: %w", s.path, ErrNotFound)
	}
	return s.persist(NewTable(rows...), message)
}

// Replace persists a whole new set of rows, discarding the previous
// content. Used by the upload/merge operations.
func (s *Store[R]) Replace(rows []R, message string) error {
	return s.persist(NewTable(rows...), message)
}

// Export writes the current table content as CSV.
func (s *Store[R]) Export(w io.Writer) error {
	t, err := s.Table(true)
	if err != nil {
		return err
	}
	content, err := s.encode(t)
	if err != nil {
		return err
	}
	_, err = w.Write(content)
	return err
}

// persist writes the whole table back to disk, pushes the new content to
// the syncer and drops the cache so the next read reloads. A sync failure
// is logged, never propagated: the local write is durable regardless.
func (s *Store[R]) persist(t *Table[R], message string) error {
	if err := s.writeFile(t, message); err != nil {
		return err
	}
	s.cached = nil
	logg.WithFields(logrus.Fields{"table": s.path, "rows": t.Len()}).Debug(message)
	return nil
}

func (s *Store[R]) writeFile(t *Table[R], message string) error {
	content, err := s.encode(t)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("cannot create table directory: %w", err)
	}
	if err := os.WriteFile(s.path, content, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", s.path, err)
	}
	s.push(content, message)
	return nil
}

func (s *Store[R]) push(content []byte, message string) {
	if s.syncer == nil {
		return
	}
	if err := s.syncer.Push(filepath.Base(s.path), content, message); err != nil {
		logg.WithField("table", s.path).WithError(err).Warn("remote sync failed, local write kept")
	}
}

// encode serializes the table, header first, in on-disk order.
func (s *Store[R]) encode(t *Table[R]) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(s.schema.Header()); err != nil {
		return nil, err
	}
	for r := range t.Rows() {
		if err := w.Write(s.schema.Encode(r)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decode parses CSV content, validating the header against the schema.
func (s *Store[R]) decode(r io.Reader) (*Table[R], error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		// Empty or truncated file.
		return nil, fmt.Errorf("missing header: %w", errors.Join(ErrBadFormat, err))
	}
	if !slices.Equal(header, s.schema.Header()) {
		return nil, fmt.Errorf("got columns %v want %v: %w", header, s.schema.Header(), ErrBadSchema)
	}

	var rows []R
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed record: %w", errors.Join(ErrBadFormat, err))
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("record %v has %d fields want %d: %w", record, len(record), len(header), ErrBadFormat)
		}
		row, err := s.schema.Decode(record)
		if err != nil {
			return nil, fmt.Errorf("record %v: %w", record, errors.Join(ErrBadFormat, err))
		}
		rows = append(rows, row)
	}
	return NewTable(rows...), nil
}
