package models

import "time"

// Category groups products in the public catalog. Previously a mock
// array in the admin UI, now persistence backed.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;type:varchar(100)" validate:"required,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	ImageURL    string    `json:"imageUrl,omitempty" validate:"omitempty,url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
