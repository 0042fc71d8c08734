package database

import "gorm.io/gorm"

// CustomerSearch filters customers by a contains match on first name,
// last name, or email. An empty term applies no filter.
func CustomerSearch(term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		pattern := "%" + term + "%"
		return db.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ?",
			pattern, pattern, pattern,
		)
	}
}
