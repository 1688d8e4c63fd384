package database

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/stockbox/internal/config"
	"modernc.org/sqlite"
)

// sqliteLower is registered on the sqlite driver because the built-in LOWER
// only folds ASCII letters.
const sqliteLower = "stockbox_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(sqliteLower, 1, foldText)
}

// foldText lowercases text values with Unicode case mapping. NULL stays NULL
// and non-text values pass through unchanged.
func foldText(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// Dialect captures the SQL differences between the supported backends.
// Statements are written with ? placeholders and rebound per dialect.
type Dialect struct {
	name   string
	driver string
	lower  string
	dollar bool
}

var (
	// SQLite is the embedded default backend (modernc.org/sqlite)
	SQLite = Dialect{name: config.DriverSQLite, driver: "sqlite", lower: sqliteLower}
	// Postgres connects through pgx's database/sql adapter
	Postgres = Dialect{name: config.DriverPostgres, driver: "pgx", lower: "LOWER", dollar: true}
)

// DialectFor returns the dialect for a configured driver name
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "", config.DriverSQLite:
		return SQLite, nil
	case config.DriverPostgres:
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", name)
	}
}

// Name returns the configured driver name
func (d Dialect) Name() string { return d.name }

// DriverName returns the database/sql driver registered for the dialect
func (d Dialect) DriverName() string { return d.driver }

// Lower wraps expr in the dialect's Unicode-aware lowercase function
func (d Dialect) Lower(expr string) string {
	return d.lower + "(" + expr + ")"
}

// Placeholder returns the bind marker for the n-th (1-based) argument
func (d Dialect) Placeholder(n int) string {
	if d.dollar {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Rebind rewrites ? placeholders into the dialect's form. Question marks inside
// single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if !d.dollar {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	quoted := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			quoted = !quoted
			b.WriteByte(c)
		case c == '?' && !quoted:
			n++
			b.WriteString(d.Placeholder(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// schema returns the idempotent table definitions
func (d Dialect) schema() []string {
	id := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if d.dollar {
		id = "INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY"
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS boxes (
			id ` + id + `,
			name TEXT,
			location TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id ` + id + `,
			name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			category TEXT,
			box_id INTEGER REFERENCES boxes(id) ON DELETE SET NULL,
			location TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_box_id ON products(box_id)`,
	}
}

// resetSequences returns the statements that restart id generation
func (d Dialect) resetSequences() []string {
	if d.dollar {
		return []string{
			`ALTER TABLE products ALTER COLUMN id RESTART WITH 1`,
			`ALTER TABLE boxes ALTER COLUMN id RESTART WITH 1`,
		}
	}
	return []string{`DELETE FROM sqlite_sequence WHERE name IN ('products', 'boxes')`}
}
