package soi

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Load reads the SOI dataset from a comma-delimited file with a header
// row. Declared columns (see DataSchema) are coerced strictly; a cell
// that does not parse fails the load with a *SchemaError. A missing
// file wraps ErrNotFound.
func Load(path string) (*Table, error) {
	var (
		f *os.File
		e error
	)
	if f, e = os.Open(path); e != nil {
		if errors.Is(e, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}

		return nil, e
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Read parses the dataset from r. Split out of Load so tests and
// non-file sources can feed the same path.
func Read(r io.Reader) (*Table, error) {
	rdr := csv.NewReader(r)
	rdr.TrimLeadingSpace = true

	var (
		recs [][]string
		e    error
	)
	if recs, e = rdr.ReadAll(); e != nil {
		return nil, fmt.Errorf("malformed data: %w", e)
	}

	if len(recs) < 1 {
		return nil, fmt.Errorf("malformed data: no header row")
	}

	header := recs[0]
	rows := recs[1:]

	sch := DataSchema()

	var cols []*Col
	for ind := 0; ind < len(header); ind++ {
		name := strings.TrimSpace(header[ind])

		var (
			col *Col
			eb  error
		)
		if col, eb = buildColumn(name, sch.Kind(name), rows, ind); eb != nil {
			return nil, eb
		}

		cols = append(cols, col)
	}

	return NewTable(cols...)
}

// buildColumn coerces one CSV column to its declared kind. Blank
// numeric cells load as zero: the source suppresses small cells rather
// than reporting them. Undeclared columns load as float when every
// cell parses, as string otherwise.
func buildColumn(name string, kind Kind, rows [][]string, at int) (*Col, error) {
	n := len(rows)

	switch kind {
	case KindString:
		x := make([]string, n)
		for ind := 0; ind < n; ind++ {
			x[ind] = strings.TrimSpace(rows[ind][at])
		}

		return NewCol(name, x)
	case KindInt:
		x := make([]int, n)
		for ind := 0; ind < n; ind++ {
			cell := strings.TrimSpace(rows[ind][at])
			if cell == "" {
				continue
			}

			var (
				v int64
				e error
			)
			if v, e = strconv.ParseInt(cell, 10, 64); e != nil {
				return nil, &SchemaError{Column: name, Row: ind, Value: cell, Want: KindInt}
			}

			x[ind] = int(v)
		}

		return NewCol(name, x)
	case KindFloat:
		x := make([]float64, n)
		for ind := 0; ind < n; ind++ {
			cell := strings.TrimSpace(rows[ind][at])
			if cell == "" {
				continue
			}

			var (
				v float64
				e error
			)
			if v, e = strconv.ParseFloat(cell, 64); e != nil {
				return nil, &SchemaError{Column: name, Row: ind, Value: cell, Want: KindFloat}
			}

			x[ind] = v
		}

		return NewCol(name, x)
	default:
		// undeclared: float if the whole column parses, else string
		x := make([]float64, n)
		ok := true
		for ind := 0; ind < n && ok; ind++ {
			cell := strings.TrimSpace(rows[ind][at])
			if cell == "" {
				continue
			}

			var e error
			if x[ind], e = strconv.ParseFloat(cell, 64); e != nil {
				ok = false
			}
		}

		if ok {
			return NewCol(name, x)
		}

		s := make([]string, n)
		for ind := 0; ind < n; ind++ {
			s[ind] = strings.TrimSpace(rows[ind][at])
		}

		return NewCol(name, s)
	}
}
