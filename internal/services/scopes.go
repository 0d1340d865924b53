package services

import "gorm.io/gorm"

var redactedListColumns = []string{"id", "age", "location", "ethnic_group", "type_of_abuse"}

// listColumns narrows the listing to the non-description columns when asked.
func listColumns(includeDescription bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if includeDescription {
			return db
		}
		return db.Select(redactedListColumns)
	}
}

func insertionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
