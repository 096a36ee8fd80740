package services

import (
	"errors"
	"fmt"

	"supplierhub/internal/models"
	"supplierhub/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// CategoryService handles business logic related to product categories.
type CategoryService struct {
	repo     repositories.CategoryRepository
	validate *validator.Validate
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo:     repo,
		validate: newValidator(),
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// CreateCategory validates and creates a new category.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	if err := s.validateCategory(category); err != nil {
		return err
	}
	return s.repo.Create(category)
}

// UpdateCategory validates and updates an existing category.
func (s *CategoryService) UpdateCategory(category *models.Category) error {
	if err := s.validateCategory(category); err != nil {
		return err
	}
	return s.repo.Update(category)
}

// DeleteCategory deletes a category by its ID.
func (s *CategoryService) DeleteCategory(id string) error {
	return s.repo.Delete(id)
}

func (s *CategoryService) validateCategory(category *models.Category) error {
	err := s.validate.Struct(category)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate category: %w", err)
	}
	verr := models.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe), messageForTag(fe))
	}
	return verr
}
