package model

import "gorm.io/gorm"

type Technician struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique;not null"`
	Phone    string `json:"phone"`
	Password string `json:"-"` // Empty until the technician follows the password-set link
}
