package postgres

import (
	"strings"

	"socialdesk/internal/errors"

	"gorm.io/gorm"
)

const maxListLimit = 200

func paginate(query *gorm.DB, limit, offset int) *gorm.DB {
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return query.Limit(limit).Offset(offset)
}

// rowsAffectedOr maps a zero-row update to notFound.
func rowsAffectedOr(result *gorm.DB, notFound error, message string) error {
	if result.Error != nil {
		return errors.Wrap(result.Error, message)
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
