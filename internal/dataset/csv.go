package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

var (
	ErrEmptyTable      = errors.New("table has no header row")
	ErrMissingKey      = errors.New("key column not found")
	ErrDuplicateColumn = errors.New("duplicate column in header")
)

// Read parses a CSV table with a header row. The header must contain key.
func Read(r io.Reader, key string) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	// Files saved by spreadsheet tools may carry a UTF-8 BOM.
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	keyIdx := -1
	seen := make(map[string]bool, len(header))
	for i, col := range header {
		if seen[col] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col)
		}
		seen[col] = true
		if col == key {
			keyIdx = i
		}
	}
	if keyIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}

	t := &Table{
		Key:     key,
		Columns: append([]string{key}, without(header, keyIdx)...),
	}

	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		rec := Record{
			Name:   row[keyIdx],
			Values: make(map[string]Value, len(row)-1),
		}
		for i, cell := range row {
			if i == keyIdx {
				continue
			}
			rec.Values[header[i]] = ParseValue(cell)
		}
		t.Records = append(t.Records, rec)
	}

	return t, nil
}

// Load opens path on fs and parses it with Read. Every failure, including a
// missing file, is returned as a *DataLoadError naming path.
func Load(fs afero.Fs, path, key string) (*Table, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	defer f.Close()

	t, err := Read(f, key)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}

	return t, nil
}

// Write emits t as CSV. Missing cells are written as empty fields.
func Write(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return err
	}

	row := make([]string, len(t.Columns))
	for _, rec := range t.Records {
		for i, col := range t.Columns {
			if col == t.Key {
				row[i] = rec.Name
				continue
			}
			row[i] = rec.Get(col).String()
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Save writes t to path on fs, replacing any existing file.
func Save(fs afero.Fs, path string, t *Table) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Write(f, t); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

func without(cols []string, idx int) []string {
	out := make([]string, 0, len(cols)-1)
	out = append(out, cols[:idx]...)
	return append(out, cols[idx+1:]...)
}
