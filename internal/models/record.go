package models

// SourceRecord maps a source column name to its raw value for one input row.
// A column missing from a short row is absent from the map, which extractors
// treat the same as an empty value.
type SourceRecord map[string]string

// Get returns the raw value of column and whether the row carried it.
func (r SourceRecord) Get(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}
