package models

import "gorm.io/gorm"

type MenuItem struct {
	gorm.Model
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" binding:"required"`
	Available   *bool  `json:"available"`
	ImageUrl    string `json:"imageUrl"`
}

// IsAvailable treats a never-set flag as available, matching the
// schema default.
func (m *MenuItem) IsAvailable() bool {
	return m.Available == nil || *m.Available
}
