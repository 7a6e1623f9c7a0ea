package common

import (
	"strings"

	"github.com/amirasaad/causehive/pkg/dto"
	"gorm.io/gorm"
)

// Paginate applies the page window of p.
func Paginate(p dto.PageRequest) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.PageSize)
	}
}

// Like wraps s for a case-insensitive substring match.
func Like(s string) string {
	s = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(strings.TrimSpace(s))
	return "%" + s + "%"
}

// Ordering translates "-field" / "field" into an ORDER BY clause, accepting
// only fields present in allowed. fallback is used otherwise.
func Ordering(ordering string, allowed map[string]string, fallback string) string {
	desc := strings.HasPrefix(ordering, "-")
	column, ok := allowed[strings.TrimPrefix(ordering, "-")]
	if !ok {
		return fallback
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}
