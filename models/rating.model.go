package models

import "gorm.io/gorm"

// Rating holds one row per (user, store) pair. A resubmission overwrites
// Value and UpdatedAt of the existing row; the unique index is the
// serialization point for concurrent submits.
type Rating struct {
	gorm.Model
	UserID  uint `gorm:"not null;uniqueIndex:idx_user_store" json:"userId"`
	StoreID uint `gorm:"not null;uniqueIndex:idx_user_store" json:"storeId"`
	Value   int  `gorm:"not null;check:value >= 1 AND value <= 5" json:"rating"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}
