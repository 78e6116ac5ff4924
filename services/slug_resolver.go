package services

import (
	"fmt"

	"gorm.io/gorm"
)

// resolveUniqueSlug finds the first free slug among base, base-1, base-2, …
// for the given model's table, ignoring the row excludeID on update.
//
// The loop is unbounded; collisions are sparse in practice so it terminates
// after a handful of iterations. Note the check and the later insert are two
// separate statements: two concurrent creates with the same base can both see
// the slug as free. The unique index on the slug column then fails the second
// insert instead of storing a duplicate.
func resolveUniqueSlug(db *gorm.DB, model interface{}, base string, excludeID uint) (string, error) {
	if base == "" {
		base = "untitled"
	}

	candidate := base
	counter := 1
	for {
		query := db.Model(model).Where("slug = ?", candidate)
		if excludeID != 0 {
			query = query.Where("id <> ?", excludeID)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}

		candidate = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}
