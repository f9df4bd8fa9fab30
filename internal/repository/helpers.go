package repository

import "database/sql"

// nullableIntToValue converts a *int to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil.
func nullableIntToValue(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// nullableFloatToValue converts a *float64 to a value suitable for SQLite
// storage. Returns nil (SQL NULL) if the pointer is nil.
func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// nullableStringToValue stores "" as SQL NULL.
func nullableStringToValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// intPtrFromNull converts a scanned sql.NullInt64 into a *int.
func intPtrFromNull(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
