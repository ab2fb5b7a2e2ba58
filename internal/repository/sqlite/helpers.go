package sqlite

import "github.com/Masterminds/squirrel"

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// clampLimit bounds a caller-supplied page size.
func clampLimit(limit int) uint64 {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return uint64(limit)
	}
}
