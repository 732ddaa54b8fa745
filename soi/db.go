package soi

import (
	"database/sql"
	"fmt"
	"reflect"
	"strconv"

	"github.com/ClickHouse/clickhouse-go/v2"
	_ "github.com/jackc/pgx/stdlib" // registers the pgx database/sql driver
)

// The dataset can also live in a warehouse table with the same column
// set as the CSV. All database access goes through database/sql so
// ClickHouse and Postgres share one read path.

// OpenClickHouse opens a ClickHouse connection.
func OpenClickHouse(addr, database, user, password string) *sql.DB {
	return clickhouse.OpenDB(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: database,
			Username: user,
			Password: password,
		},
	})
}

// OpenPostgres opens a Postgres connection via the pgx driver.
func OpenPostgres(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// LoadDB runs qry and assembles the result into a Table under the
// declared schema, with the same strictness as Load.
func LoadDB(db *sql.DB, qry string) (*Table, error) {
	var (
		rows *sql.Rows
		e    error
	)
	if rows, e = db.Query(qry); e != nil {
		return nil, e
	}
	defer func() { _ = rows.Close() }()

	var names []string
	if names, e = rows.Columns(); e != nil {
		return nil, e
	}

	row2read := make([]any, len(names))
	for ind := range row2read {
		var z any
		row2read[ind] = &z
	}

	raw := make([][]any, len(names))
	for rows.Next() {
		if es := rows.Scan(row2read...); es != nil {
			return nil, es
		}

		for ind := 0; ind < len(names); ind++ {
			raw[ind] = append(raw[ind], *row2read[ind].(*any))
		}
	}

	if e = rows.Err(); e != nil {
		return nil, e
	}

	sch := DataSchema()

	var cols []*Col
	for ind := 0; ind < len(names); ind++ {
		var (
			col *Col
			eb  error
		)
		if col, eb = coerceColumn(names[ind], sch.Kind(names[ind]), raw[ind]); eb != nil {
			return nil, eb
		}

		cols = append(cols, col)
	}

	return NewTable(cols...)
}

// coerceColumn converts one scanned column to its declared kind.
// Undeclared columns follow the driver's type: numeric scans load as
// float, everything else as string.
func coerceColumn(name string, kind Kind, vals []any) (*Col, error) {
	n := len(vals)

	if kind == KindUnknown {
		kind = KindFloat
		for ind := 0; ind < n; ind++ {
			if _, ok := asFloat(vals[ind]); !ok {
				kind = KindString
				break
			}
		}
	}

	switch kind {
	case KindString:
		x := make([]string, n)
		for ind := 0; ind < n; ind++ {
			x[ind] = asString(vals[ind])
		}

		return NewCol(name, x)
	case KindInt:
		x := make([]int, n)
		for ind := 0; ind < n; ind++ {
			var ok bool
			if x[ind], ok = asInt(vals[ind]); !ok {
				return nil, &SchemaError{Column: name, Row: ind, Value: asString(vals[ind]), Want: KindInt}
			}
		}

		return NewCol(name, x)
	default:
		x := make([]float64, n)
		for ind := 0; ind < n; ind++ {
			var ok bool
			if x[ind], ok = asFloat(vals[ind]); !ok {
				return nil, &SchemaError{Column: name, Row: ind, Value: asString(vals[ind]), Want: KindFloat}
			}
		}

		return NewCol(name, x)
	}
}

// *********** scan conversions ***********

func asFloat(x any) (float64, bool) {
	if x == nil {
		return 0, true // nullable cells load as zero, like blank CSV cells
	}

	xv := reflect.ValueOf(x)
	switch {
	case xv.CanFloat():
		return xv.Float(), true
	case xv.CanInt():
		return float64(xv.Int()), true
	case xv.CanUint():
		return float64(xv.Uint()), true
	}

	if s, ok := x.(string); ok {
		if f, e := strconv.ParseFloat(s, 64); e == nil {
			return f, true
		}
	}

	return 0, false
}

func asInt(x any) (int, bool) {
	if x == nil {
		return 0, true
	}

	xv := reflect.ValueOf(x)
	switch {
	case xv.CanInt():
		return int(xv.Int()), true
	case xv.CanUint():
		return int(xv.Uint()), true
	case xv.CanFloat():
		return int(xv.Float()), true
	}

	if s, ok := x.(string); ok {
		if i, e := strconv.ParseInt(s, 10, 64); e == nil {
			return int(i), true
		}
	}

	return 0, false
}

func asString(x any) string {
	if x == nil {
		return ""
	}

	if s, ok := x.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", x)
}
