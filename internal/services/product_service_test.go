package services_test

import (
	"testing"

	"supplierhub/internal/models"
	"supplierhub/internal/repositories"
	"supplierhub/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestProductService_CreateAndFetch(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	product := &models.Product{
		Name:     "LED Panel",
		SKU:      "LED-001",
		Category: "Lighting",
		Price:    19.5,
		Stock:    100,
	}
	assert.NoError(t, service.CreateProduct(product))
	assert.NotEmpty(t, product.ID)

	fetched, err := service.GetProductByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "LED-001", fetched.SKU)
}

func TestProductService_DuplicateSKU(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	first := &models.Product{Name: "LED Panel", SKU: "LED-001", Category: "Lighting", Price: 19.5}
	assert.NoError(t, service.CreateProduct(first))

	second := &models.Product{Name: "Other Panel", SKU: "LED-001", Category: "Lighting", Price: 25}
	assert.ErrorIs(t, service.CreateProduct(second), models.ErrDuplicateSKU)
}

func TestProductService_Validation(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	err := service.CreateProduct(&models.Product{Name: "X", SKU: "", Price: 0})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "sku")
	assert.Contains(t, verr.Fields, "category")
	assert.Contains(t, verr.Fields, "price")

	all, repoErr := service.GetAllProducts()
	assert.NoError(t, repoErr)
	assert.Empty(t, all)
}

func TestProductService_BySupplier(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	supplierID := "0d9f5e07-0fd2-4f30-9a4c-2f4b3a8b9d11"
	assert.NoError(t, service.CreateProduct(&models.Product{
		Name: "Office Chair", SKU: "CHAIR-042", Category: "Furniture", Price: 75, SupplierID: supplierID,
	}))
	assert.NoError(t, service.CreateProduct(&models.Product{
		Name: "Desk", SKU: "DESK-001", Category: "Furniture", Price: 120,
	}))

	products, err := service.GetProductsBySupplier(supplierID)
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "CHAIR-042", products[0].SKU)
}

func TestCategoryService_CRUD(t *testing.T) {
	repo := repositories.NewMockCategoryRepository()
	service := services.NewCategoryService(repo)

	category := &models.Category{Name: "Consumer Electronics", Slug: "consumer-electronics"}
	assert.NoError(t, service.CreateCategory(category))
	assert.NotEmpty(t, category.ID)

	// Slug uniqueness.
	dup := &models.Category{Name: "Electronics Again", Slug: "consumer-electronics"}
	assert.ErrorIs(t, service.CreateCategory(dup), models.ErrDuplicateSlug)

	category.Description = "Phones, tablets, accessories"
	assert.NoError(t, service.UpdateCategory(category))

	fetched, err := service.GetCategoryByID(category.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Phones, tablets, accessories", fetched.Description)

	assert.NoError(t, service.DeleteCategory(category.ID))
	_, err = service.GetCategoryByID(category.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCategoryService_Validation(t *testing.T) {
	repo := repositories.NewMockCategoryRepository()
	service := services.NewCategoryService(repo)

	err := service.CreateCategory(&models.Category{Name: "A", Slug: "", ImageURL: "not a url"})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "slug")
	assert.Contains(t, verr.Fields, "imageUrl")
}
