package models

import "time"

// Product is a catalog entry managed through the admin back office. It
// replaces the hard-coded product arrays of the previous admin views.
type Product struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string    `json:"name" validate:"required,min=2,max=255"`
	SKU        string    `json:"sku" gorm:"uniqueIndex;type:varchar(64)" validate:"required,max=64"`
	Category   string    `json:"category" validate:"required,max=100"`
	SupplierID string    `json:"supplierId" gorm:"index;type:varchar(36)" validate:"omitempty,uuid"`
	Price      float64   `json:"price" validate:"required,gt=0"`
	Stock      int       `json:"stock" validate:"gte=0"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
