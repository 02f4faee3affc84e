package models

import "gorm.io/gorm"

type Store struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"default:''" json:"email"`
	Address   string `gorm:"default:''" json:"address"`
	OwnerID   uint   `gorm:"not null;index" json:"ownerId"` // references a store_owner user
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
