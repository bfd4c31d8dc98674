package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Open opens and pings a database for the given driver.
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("openDB: unsupported driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("openDB: open %s database: %w", driver, err)
	}

	if driver == DriverSQLite {
		// SQLite serializes writers; one connection avoids SQLITE_BUSY and keeps
		// :memory: databases alive across calls.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("openDB: verify %s connection: %w", driver, err)
	}

	return db, nil
}

// Rebind rewrites '?' placeholders to the driver's bind style ($1, $2, ... for pgx).
func Rebind(driver, query string) string {
	if driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
