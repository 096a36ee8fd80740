package repositories

import (
	"errors"
	"fmt"
	"strings"

	"supplierhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// searchColumns are the text fields a free-text search term is matched
// against. main_products is stored as JSON text, so LIKE still applies.
var searchColumns = []string{
	"company_name",
	"main_products",
	"description",
	"address_country",
	"address_province",
	"address_city",
}

// sortOrders whitelists the explicitly requestable sort modes. Anything
// else falls back to newest-created-first.
var sortOrders = map[string]string{
	"newest": "created_at DESC",
	"oldest": "created_at ASC",
	"name":   "company_name ASC",
	"year":   "established_year DESC",
}

// GORMSupplierRepository is a GORM implementation of SupplierRepository.
type GORMSupplierRepository struct {
	db *gorm.DB
}

// NewGORMSupplierRepository creates a new instance of GORMSupplierRepository.
func NewGORMSupplierRepository(db *gorm.DB) *GORMSupplierRepository {
	return &GORMSupplierRepository{
		db: db,
	}
}

// List composes the listing query from page, limit, and search parameters
// and returns the requested page along with the total match count. Bad
// pagination values are coerced to their defaults rather than rejected.
func (r *GORMSupplierRepository) List(query models.ListQuery) ([]models.Supplier, int64, error) {
	query = query.Clamped()

	tx := r.db.Model(&models.Supplier{})
	if search := strings.TrimSpace(query.Search); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		conditions := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, col := range searchColumns {
			conditions[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = term
		}
		tx = tx.Where(strings.Join(conditions, " OR "), args...)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	order, ok := sortOrders[query.Sort]
	if !ok {
		order = sortOrders["newest"]
	}

	offset := (query.Page - 1) * query.Limit
	var suppliers []models.Supplier
	if err := tx.Order(order).Offset(offset).Limit(query.Limit).Find(&suppliers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, total, nil
}

// GetAll retrieves every supplier, newest first.
func (r *GORMSupplierRepository) GetAll() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.Order("created_at DESC").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all suppliers: %w", err)
	}
	return suppliers, nil
}

// GetByID retrieves a single supplier by its ID.
func (r *GORMSupplierRepository) GetByID(id string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("supplier with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get supplier by ID %s: %w", id, err)
	}
	return &supplier, nil
}

// GetByEmail retrieves a single supplier by email.
func (r *GORMSupplierRepository) GetByEmail(email string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, "email = ?", strings.ToLower(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("supplier with email %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get supplier by email %s: %w", email, err)
	}
	return &supplier, nil
}

// Create persists a new supplier, assigning an ID when absent. A
// concurrent create with the same email loses at the unique index and
// surfaces ErrEmailTaken.
func (r *GORMSupplierRepository) Create(supplier *models.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	if err := r.db.Create(supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("supplier with email %s: %w", supplier.Email, models.ErrEmailTaken)
		}
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// Update saves all fields of an existing supplier.
func (r *GORMSupplierRepository) Update(supplier *models.Supplier) error {
	res := r.db.Save(supplier)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("supplier with email %s: %w", supplier.Email, models.ErrEmailTaken)
		}
		return fmt.Errorf("failed to update supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("supplier with ID %s: %w", supplier.ID, models.ErrNotFound)
	}
	return nil
}

// Delete hard-deletes a supplier by its ID.
func (r *GORMSupplierRepository) Delete(id string) error {
	res := r.db.Delete(&models.Supplier{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("supplier with ID %s: %w", id, models.ErrNotFound)
	}
	return nil
}
