package models

import "gorm.io/gorm"

// isPartialUpdate reports whether tx updates selected columns from a map,
// in which case the receiver of the hook is an empty model.
func isPartialUpdate(tx *gorm.DB) bool {
	if tx == nil || tx.Statement == nil || tx.Statement.Dest == nil {
		return false
	}
	_, ok := tx.Statement.Dest.(map[string]interface{})
	return ok
}
