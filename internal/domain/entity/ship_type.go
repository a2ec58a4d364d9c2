package entity

import "strings"

// TypeBases are the families a ship type code may belong to. A code is either
// a bare base ("cargo") or "{base}_{slug}" ("cargo_bulk").
var TypeBases = []string{"cargo", "military", "research", "passenger"}

type ShipType struct {
	ID          int64  `gorm:"primaryKey"`
	Code        string `gorm:"not null;uniqueIndex"` // immutable after creation
	Name        string `gorm:"not null"`
	Description string
}

// TypeBaseOf extracts the base family from a ship type code.
func TypeBaseOf(code string) string {
	if i := strings.IndexByte(code, '_'); i > 0 {
		return code[:i]
	}
	return code
}

func IsValidTypeBase(base string) bool {
	for _, b := range TypeBases {
		if b == base {
			return true
		}
	}
	return false
}
