package scope

import "gorm.io/gorm"

// OrderByCreatedDesc is the newest-first ordering used by feed-style
// listings (notifications).
func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
