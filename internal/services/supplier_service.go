package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"supplierhub/internal/models"
	"supplierhub/internal/repositories"
	"supplierhub/pkg/events"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with a randomized salt, so two
// identical plaintexts never produce the same hash.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. A
// supplier without a stored hash can never authenticate by password, so
// an empty hash is simply false, never an error.
func VerifyPassword(plaintext, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// SupplierService handles business logic for the supplier directory:
// validation, credential handling, listing, and CRUD.
type SupplierService struct {
	repo      repositories.SupplierRepository
	publisher events.Publisher
	validate  *validator.Validate
}

// NewSupplierService creates a new SupplierService. The publisher may be
// nil; event publication is then skipped.
func NewSupplierService(repo repositories.SupplierRepository, publisher events.Publisher) *SupplierService {
	return &SupplierService{
		repo:      repo,
		publisher: publisher,
		validate:  newValidator(),
	}
}

// List returns one page of suppliers plus pagination metadata.
func (s *SupplierService) List(query models.ListQuery) ([]models.Supplier, models.Pagination, error) {
	query = query.Clamped()
	suppliers, total, err := s.repo.List(query)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}
	return suppliers, models.NewPagination(total, query.Page, query.Limit), nil
}

// GetAll returns the full supplier list for the in-memory directory view.
func (s *SupplierService) GetAll() ([]models.Supplier, error) {
	return s.repo.GetAll()
}

// GetByID retrieves a single supplier.
func (s *SupplierService) GetByID(id string) (*models.Supplier, error) {
	return s.repo.GetByID(id)
}

// Register validates a candidate supplier, hashes its password when one
// is supplied, persists it, and publishes a registration event.
func (s *SupplierService) Register(input *models.SupplierInput) (*models.Supplier, error) {
	input.Normalize()
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(input.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("supplier with email %s: %w", input.Email, models.ErrEmailTaken)
	}

	supplier := input.ToSupplier()
	if input.Password != "" {
		hash, err := HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		supplier.PasswordHash = hash
	}

	if err := s.repo.Create(supplier); err != nil {
		return nil, err
	}

	s.publish(events.SupplierEvent{
		Type:        events.TypeSupplierRegistered,
		SupplierID:  supplier.ID,
		CompanyName: supplier.CompanyName,
		Email:       supplier.Email,
	})
	return supplier, nil
}

// Update applies a partial update to an existing supplier. The merged
// record is re-validated, and the password is re-hashed only when the
// incoming value is non-empty and differs from the stored hash, so
// echoing a record back through an edit form never double-hashes.
func (s *SupplierService) Update(id string, update *models.SupplierUpdate) (*models.Supplier, error) {
	supplier, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	merged := inputFromSupplier(supplier)
	applyUpdate(merged, update)
	merged.Normalize()
	if err := s.validateInput(merged); err != nil {
		return nil, err
	}

	if merged.Email != supplier.Email {
		if existing, err := s.repo.GetByEmail(merged.Email); err == nil && existing != nil && existing.ID != id {
			return nil, fmt.Errorf("supplier with email %s: %w", merged.Email, models.ErrEmailTaken)
		}
	}

	updated := merged.ToSupplier()
	updated.ID = supplier.ID
	updated.CreatedAt = supplier.CreatedAt
	updated.PasswordHash = supplier.PasswordHash

	if update.Password != nil {
		incoming := strings.TrimSpace(*update.Password)
		if incoming != "" && incoming != supplier.PasswordHash {
			if len(incoming) < 6 {
				verr := models.NewValidationError()
				verr.Add("password", "must be at least 6 characters")
				return nil, verr
			}
			hash, err := HashPassword(incoming)
			if err != nil {
				return nil, err
			}
			updated.PasswordHash = hash
		}
	}

	if err := s.repo.Update(updated); err != nil {
		return nil, err
	}

	s.publish(events.SupplierEvent{
		Type:        events.TypeSupplierUpdated,
		SupplierID:  updated.ID,
		CompanyName: updated.CompanyName,
		Email:       updated.Email,
	})
	return updated, nil
}

// Delete hard-deletes a supplier.
func (s *SupplierService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(events.SupplierEvent{
		Type:       events.TypeSupplierDeleted,
		SupplierID: id,
	})
	return nil
}

// Authenticate checks supplier credentials. Every failure path collapses
// into ErrInvalidCredentials so callers cannot probe which emails exist.
func (s *SupplierService) Authenticate(email, password string) (*models.Supplier, error) {
	supplier, err := s.repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	if !VerifyPassword(password, supplier.PasswordHash) {
		return nil, models.ErrInvalidCredentials
	}
	return supplier, nil
}

func (s *SupplierService) publish(event events.SupplierEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSupplierEvent(event); err != nil {
		log.Printf("Warning: Failed to publish %s event for supplier %s: %v", event.Type, event.SupplierID, err)
	}
}

// validateInput enforces the supplier record schema, collecting every
// failing field instead of stopping at the first.
func (s *SupplierService) validateInput(input *models.SupplierInput) error {
	verr := models.NewValidationError()

	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("failed to validate supplier: %w", err)
		}
		for _, fe := range fieldErrs {
			verr.Add(fieldPath(fe), messageForTag(fe))
		}
	}

	// The tag can only express a lower bound; the upper bound moves with
	// the clock.
	if input.EstablishedYear != 0 && input.EstablishedYear > time.Now().Year() {
		verr.Add("establishedYear", fmt.Sprintf("must not be later than %d", time.Now().Year()))
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// inputFromSupplier reconstructs a candidate from a stored record so a
// partial update can be merged and re-validated as a whole.
func inputFromSupplier(s *models.Supplier) *models.SupplierInput {
	return &models.SupplierInput{
		CompanyName:   s.CompanyName,
		MainProducts:  append([]string(nil), s.MainProducts...),
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address: models.AddressInput{
			Country:  s.Address.Country,
			Province: s.Address.Province,
			City:     s.Address.City,
			Detail:   s.Address.Detail,
		},
		Description:        s.Description,
		Website:            s.Website,
		EstablishedYear:    s.EstablishedYear,
		EmployeeCount:      s.EmployeeCount,
		Certifications:     append([]string(nil), s.Certifications...),
		Images:             append([]string(nil), s.Images...),
		ProductDescription: s.ProductDescription,
	}
}

func applyUpdate(input *models.SupplierInput, update *models.SupplierUpdate) {
	if update.CompanyName != nil {
		input.CompanyName = *update.CompanyName
	}
	if update.MainProducts != nil {
		input.MainProducts = *update.MainProducts
	}
	if update.ContactPerson != nil {
		input.ContactPerson = *update.ContactPerson
	}
	if update.Email != nil {
		input.Email = *update.Email
	}
	if update.Phone != nil {
		input.Phone = *update.Phone
	}
	if update.Address != nil {
		input.Address = *update.Address
	}
	if update.Description != nil {
		input.Description = *update.Description
	}
	if update.Website != nil {
		input.Website = *update.Website
	}
	if update.EstablishedYear != nil {
		input.EstablishedYear = *update.EstablishedYear
	}
	if update.EmployeeCount != nil {
		input.EmployeeCount = *update.EmployeeCount
	}
	if update.Certifications != nil {
		input.Certifications = *update.Certifications
	}
	if update.Images != nil {
		input.Images = *update.Images
	}
	if update.ProductDescription != nil {
		input.ProductDescription = *update.ProductDescription
	}
}
