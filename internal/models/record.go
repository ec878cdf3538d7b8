package models

import (
	"fmt"
	"strings"
)

// StatCount is the number of stat axes every creature carries.
const StatCount = 6

// Indices into Record.Stats.
const (
	StatHP = iota
	StatAttack
	StatDefense
	StatSpecialAttack
	StatSpecialDefense
	StatSpeed
)

// RecordColumns lists the store columns backing a Record, in scan order.
// Lookup queries must select exactly these columns.
var RecordColumns = []string{
	"id",
	"nombre",
	"tipo1",
	"tipo2",
	"hp",
	"ataque",
	"defensa",
	"ataque_especial",
	"defensa_especial",
	"velocidad",
	"imagen",
}

// Record represents one creature row from the store.
type Record struct {
	ID     int64
	Name   string
	Type1  string
	Type2  *string
	Stats  [StatCount]int
	Sprite []byte
}

// StatLabels returns the display names of the stat axes, in Stats order.
func StatLabels() [StatCount]string {
	return [StatCount]string{
		"HP",
		"Ataque",
		"Defensa",
		"At. Especial",
		"Def. Especial",
		"Velocidad",
	}
}

// NormalizeName canonicalizes a search term the way stored names are kept:
// surrounding whitespace stripped, letters lowered.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DisplayType2 renders the optional second type for the result panel.
// Absent and empty both read as "N/A".
func (r *Record) DisplayType2() string {
	if r.Type2 == nil || *r.Type2 == "" {
		return "N/A"
	}
	return *r.Type2
}

// HasSprite reports whether the record carries an image payload.
func (r *Record) HasSprite() bool {
	return len(r.Sprite) > 0
}

// ValidateColumns checks a result set's column list against RecordColumns.
// A store whose schema drifted fails here instead of scanning garbage.
func ValidateColumns(columns []string) error {
	if len(columns) != len(RecordColumns) {
		return fmt.Errorf("expected %d columns, got %d", len(RecordColumns), len(columns))
	}
	for i, name := range columns {
		if name != RecordColumns[i] {
			return fmt.Errorf("expected column %q at position %d, got %q", RecordColumns[i], i, name)
		}
	}
	return nil
}
