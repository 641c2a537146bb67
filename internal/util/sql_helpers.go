package util

import (
	"database/sql"
	"strings"
)

// NullStringValue returns the trimmed string, or "" for NULL.
func NullStringValue(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return strings.TrimSpace(ns.String)
}
