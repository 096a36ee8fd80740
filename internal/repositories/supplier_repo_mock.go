package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"supplierhub/internal/models"

	"github.com/google/uuid"
)

// MockSupplierRepository is an in-memory implementation of
// SupplierRepository, used in tests and local development.
type MockSupplierRepository struct {
	suppliers map[string]models.Supplier
	mu        sync.RWMutex
}

// NewMockSupplierRepository creates a new instance of MockSupplierRepository.
func NewMockSupplierRepository() *MockSupplierRepository {
	return &MockSupplierRepository{
		suppliers: make(map[string]models.Supplier),
	}
}

func supplierMatches(s *models.Supplier, search string) bool {
	if search == "" {
		return true
	}
	term := strings.ToLower(search)
	haystack := []string{s.CompanyName, s.Description, s.Address.Country, s.Address.Province, s.Address.City}
	haystack = append(haystack, s.MainProducts...)
	for _, field := range haystack {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// List filters, sorts, and pages the in-memory set with the same
// semantics as the GORM implementation.
func (r *MockSupplierRepository) List(query models.ListQuery) ([]models.Supplier, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = query.Clamped()
	matched := make([]models.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		if supplierMatches(&s, strings.TrimSpace(query.Search)) {
			matched = append(matched, s)
		}
	}
	switch query.Sort {
	case "name":
		sort.Slice(matched, func(i, j int) bool { return matched[i].CompanyName < matched[j].CompanyName })
	case "year":
		sort.Slice(matched, func(i, j int) bool { return matched[i].EstablishedYear > matched[j].EstablishedYear })
	case "oldest":
		sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) })
	default:
		sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	}

	total := int64(len(matched))
	start := (query.Page - 1) * query.Limit
	if start >= len(matched) {
		return []models.Supplier{}, total, nil
	}
	end := start + query.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// GetAll returns every supplier, newest first.
func (r *MockSupplierRepository) GetAll() ([]models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all, nil
}

// GetByID returns a supplier by its ID.
func (r *MockSupplierRepository) GetByID(id string) (*models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supplier, ok := r.suppliers[id]
	if !ok {
		return nil, fmt.Errorf("supplier with ID %s: %w", id, models.ErrNotFound)
	}
	return &supplier, nil
}

// GetByEmail returns a supplier by email.
func (r *MockSupplierRepository) GetByEmail(email string) (*models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(email)
	for _, s := range r.suppliers {
		if s.Email == email {
			supplier := s
			return &supplier, nil
		}
	}
	return nil, fmt.Errorf("supplier with email %s: %w", email, models.ErrNotFound)
}

// Create adds a new supplier, enforcing email uniqueness.
func (r *MockSupplierRepository) Create(supplier *models.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.suppliers {
		if s.Email == supplier.Email {
			return fmt.Errorf("supplier with email %s: %w", supplier.Email, models.ErrEmailTaken)
		}
	}
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	now := time.Now()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now
	r.suppliers[supplier.ID] = *supplier
	return nil
}

// Update replaces an existing supplier.
func (r *MockSupplierRepository) Update(supplier *models.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.suppliers[supplier.ID]; !ok {
		return fmt.Errorf("supplier with ID %s: %w", supplier.ID, models.ErrNotFound)
	}
	for id, s := range r.suppliers {
		if id != supplier.ID && s.Email == supplier.Email {
			return fmt.Errorf("supplier with email %s: %w", supplier.Email, models.ErrEmailTaken)
		}
	}
	supplier.UpdatedAt = time.Now()
	r.suppliers[supplier.ID] = *supplier
	return nil
}

// Delete removes a supplier by its ID.
func (r *MockSupplierRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.suppliers[id]; !ok {
		return fmt.Errorf("supplier with ID %s: %w", id, models.ErrNotFound)
	}
	delete(r.suppliers, id)
	return nil
}
