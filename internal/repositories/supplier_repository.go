package repositories

import (
	"supplierhub/internal/models"
)

// SupplierRepository defines the interface for supplier data access.
type SupplierRepository interface {
	// List returns one page of suppliers plus the total match count for
	// the given query.
	List(query models.ListQuery) ([]models.Supplier, int64, error)
	// GetAll returns every supplier, newest first. Used by the directory
	// view, which filters and sorts in memory.
	GetAll() ([]models.Supplier, error)
	GetByID(id string) (*models.Supplier, error)
	GetByEmail(email string) (*models.Supplier, error)
	Create(supplier *models.Supplier) error
	Update(supplier *models.Supplier) error
	Delete(id string) error
}
