// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // registers the duckdb driver
	"github.com/goccy/go-json"

	"github.com/tomtom215/musicmatch/internal/catalog"
)

// DuckDBLoader reads CSV or Parquet through an in-memory DuckDB database.
// Files ending in .parquet use read_parquet, everything else read_csv_auto.
type DuckDBLoader struct {
	path string
}

// NewDuckDBLoader returns a loader for the file at path.
func NewDuckDBLoader(path string) *DuckDBLoader {
	return &DuckDBLoader{path: path}
}

// Name identifies the loader in logs and metrics.
func (l *DuckDBLoader) Name() string {
	return FormatDuckDB
}

// Query returns the SQL used to read the file.
func (l *DuckDBLoader) Query() string {
	lit := quoteLiteral(l.path)
	if strings.EqualFold(filepath.Ext(l.path), ".parquet") {
		return "SELECT * FROM read_parquet(" + lit + ")"
	}
	return "SELECT * FROM read_csv_auto(" + lit + ", header = true, all_varchar = true)"
}

// Load opens an in-memory database, runs Query and converts the rows.
func (l *DuckDBLoader) Load(ctx context.Context) (catalog.Dataset, error) {
	conn, err := sql.Open("duckdb", ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false")
	if err != nil {
		return catalog.Dataset{}, fmt.Errorf("open duckdb: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, l.Query())
	if err != nil {
		return catalog.Dataset{}, fmt.Errorf("query %s: %w", l.path, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return catalog.Dataset{}, fmt.Errorf("read columns: %w", err)
	}

	ds := catalog.Dataset{Columns: columns}
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return catalog.Dataset{}, fmt.Errorf("scan row %d: %w", len(ds.Rows)+1, err)
		}
		row := make(catalog.Row, len(columns))
		for i, col := range columns {
			if s, ok := cellString(values[i]); ok {
				row[col] = s
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return catalog.Dataset{}, fmt.Errorf("iterate rows: %w", err)
	}
	return ds, nil
}

// cellString renders a scanned DuckDB value as text. SQL NULL reports false
// so the key stays absent in the row. LIST values, as Parquet files store
// genres, become JSON arrays that catalog.ParseGenres understands.
func cellString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case []byte:
		return string(x), true
	case bool:
		return strconv.FormatBool(x), true
	case int8, int16, int32, int64, uint8, uint16, uint32, uint64, int, uint:
		return fmt.Sprint(x), true
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case time.Time:
		return x.Format(time.RFC3339), true
	case []any:
		b, err := json.Marshal(x)
		if err != nil {
			return "", false
		}
		return string(b), true
	default:
		return fmt.Sprint(x), true
	}
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
