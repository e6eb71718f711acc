package repository

import (
	"strings"

	"github.com/jackaholy/Cheminv2.0/internal/database"
	"github.com/jackaholy/Cheminv2.0/internal/search"
	"github.com/jackaholy/Cheminv2.0/internal/search/dto"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// foldFunc wraps a name column so the database folds it the way
// textnorm.FoldName folds the term patterns.
type foldFunc func(column string) string

// pgWhitespace is the set unicode.IsSpace accepts.
const pgWhitespace = `[\t\n\v\f\r \u0085\u00a0\u1680\u2000-\u200a\u2028\u2029\u202f\u205f\u3000]`

// foldFor picks the fold expression for a sqlx driver name.
func foldFor(driverName string) foldFunc {
	if driverName == "sqlite" {
		return func(column string) string {
			return database.FoldNameFunc + "(" + column + ")"
		}
	}
	return func(column string) string {
		return "LOWER(REGEXP_REPLACE(" + column + ", '" + pgWhitespace + "', '', 'g'))"
	}
}

// whereClause renders p against the chemical alias "c" using "?" placeholders.
// Slice arguments are expanded later by sqlx.In.
func whereClause(p search.Predicate, fold foldFunc) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	if p.HasText() {
		alternatives := make([]string, 0, len(p.Terms))
		for _, t := range p.Terms {
			like := "%" + likeEscaper.Replace(t.Pattern) + "%"
			alt := []string{
				fold("c.name") + ` LIKE ? ESCAPE '\'`,
				fold("c.alphabetical_name") + ` LIKE ? ESCAPE '\'`,
				`c.formula = ?`,
			}
			args = append(args, like, like, t.Raw)
			if t.Sticker != nil {
				alt = append(alt, `EXISTS (
                    SELECT 1 FROM inventory ti
                    JOIN chemical_manufacturer tcm ON tcm.id = ti.chemical_manufacturer_id
                    WHERE tcm.chemical_id = c.id AND ti.sticker_number = ?)`)
				args = append(args, *t.Sticker)
			}
			alternatives = append(alternatives, "("+strings.Join(alt, " OR ")+")")
		}
		conditions = append(conditions, "("+strings.Join(alternatives, " OR ")+")")
	}

	if !p.Filter.IsEmpty() {
		clause, filterArgs := filterClause(p.Filter)
		conditions = append(conditions, clause)
		args = append(args, filterArgs...)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// filterClause requires at least one bottle of the chemical to satisfy every
// active filter at once, the same test dto.Filter.MatchBottle applies per bottle.
func filterClause(f dto.Filter) (string, []interface{}) {
	conditions := []string{"fcm.chemical_id = c.id"}
	args := []interface{}{}

	if f.RoomID != nil {
		conditions = append(conditions, "fs.location_id = ?")
		args = append(args, *f.RoomID)
	}
	if f.ShelfID != nil {
		conditions = append(conditions, "fs.id = ?")
		args = append(args, *f.ShelfID)
	}
	if len(f.ManufacturerIDs) > 0 {
		conditions = append(conditions, "fcm.manufacturer_id IN (?)")
		args = append(args, f.ManufacturerIDs)
	}

	return `EXISTS (
        SELECT 1 FROM inventory fi
        JOIN chemical_manufacturer fcm ON fcm.id = fi.chemical_manufacturer_id
        JOIN sub_location fs ON fs.id = fi.sub_location_id
        WHERE ` + strings.Join(conditions, " AND ") + ")", args
}
