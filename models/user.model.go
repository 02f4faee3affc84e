package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name      string `gorm:"default:''" json:"name"`
	Email     string `gorm:"unique;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	Address   string `gorm:"default:''" json:"address"`
	Role      Role   `gorm:"type:varchar(20);default:'normal'" json:"role"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
