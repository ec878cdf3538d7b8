package storage

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"pokedex/internal/logger"
	"pokedex/internal/models"
)

const driverName = "sqlite"

// lookupQuery selects the whole row; the result set is validated against
// models.RecordColumns before scanning so schema drift fails the lookup
// instead of misaligning fields.
const lookupQuery = "SELECT * FROM pokemon WHERE nombre = ? ORDER BY id LIMIT 1"

// Store looks up creature records in a local SQLite file. Every lookup
// opens the file read-only and closes it before returning; no connection
// outlives a call.
type Store struct {
	path string
	log  logger.Logger
}

// New validates that the database file exists and returns a Store for it.
func New(path string, log logger.Logger) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to locate database %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("database path %s is a directory", path)
	}

	return &Store{path: path, log: log}, nil
}

// Path returns the database file backing the store.
func (s *Store) Path() string {
	return s.path
}

// FindByName returns the record stored under the given name, or (nil, nil)
// when no row matches. Matching is case and whitespace insensitive.
func (s *Store) FindByName(name string) (*models.Record, error) {
	normalized := models.NormalizeName(name)

	db, err := sql.Open(driverName, "file:"+s.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", s.path, err)
	}
	defer db.Close()

	rows, err := db.Query(lookupQuery, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to query record %q: %w", normalized, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}
	if err := models.ValidateColumns(columns); err != nil {
		return nil, fmt.Errorf("unexpected schema for table pokemon: %w", err)
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read result row: %w", err)
		}
		s.log.Debug("storage", "record not found", map[string]interface{}{
			"name": normalized,
		})
		return nil, nil
	}

	record, err := scanRecord(rows)
	if err != nil {
		return nil, err
	}

	s.log.Debug("storage", "record found", map[string]interface{}{
		"name": normalized,
		"id":   record.ID,
	})
	return record, nil
}

// scanRecord maps the current row onto a Record. Stat columns holding
// non-integer values fail the scan instead of silently coercing.
func scanRecord(rows *sql.Rows) (*models.Record, error) {
	var (
		record models.Record
		type2  sql.NullString
		sprite []byte
	)

	err := rows.Scan(
		&record.ID,
		&record.Name,
		&record.Type1,
		&type2,
		&record.Stats[models.StatHP],
		&record.Stats[models.StatAttack],
		&record.Stats[models.StatDefense],
		&record.Stats[models.StatSpecialAttack],
		&record.Stats[models.StatSpecialDefense],
		&record.Stats[models.StatSpeed],
		&sprite,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map row onto record: %w", err)
	}

	if type2.Valid {
		record.Type2 = &type2.String
	}
	record.Sprite = sprite

	return &record, nil
}
