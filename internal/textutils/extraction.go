// Package textutils resolves target fields from source records by column name.
package textutils

import (
	"strings"

	"o2y/internal/models"
)

// Field returns the raw value of a single column, untrimmed and without fallback.
// It returns nil when the record does not carry the column.
func Field(record models.SourceRecord, column string) *string {
	v, ok := record.Get(column)
	if !ok {
		return nil
	}
	return &v
}

// FirstNonEmpty walks columns in priority order and returns the first value that is
// non-empty after trimming surrounding whitespace. The returned value is trimmed.
// It returns nil when no candidate has content or no candidates are given.
func FirstNonEmpty(record models.SourceRecord, columns ...string) *string {
	for _, column := range columns {
		if v := strings.TrimSpace(record[column]); v != "" {
			return &v
		}
	}
	return nil
}

// JoinNonEmpty concatenates the trimmed, non-empty values of every candidate column
// with single spaces, in the order the columns are given.
func JoinNonEmpty(record models.SourceRecord, columns ...string) string {
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		if v := strings.TrimSpace(record[column]); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
