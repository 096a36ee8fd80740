package services_test

import (
	"fmt"
	"testing"

	"supplierhub/internal/models"
	"supplierhub/internal/repositories"
	"supplierhub/internal/services"
	"supplierhub/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockSupplierRepo is a testify mock of repositories.SupplierRepository.
type MockSupplierRepo struct {
	mock.Mock
}

func (m *MockSupplierRepo) List(query models.ListQuery) ([]models.Supplier, int64, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Supplier), args.Get(1).(int64), args.Error(2)
}

func (m *MockSupplierRepo) GetAll() ([]models.Supplier, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Supplier), args.Error(1)
}

func (m *MockSupplierRepo) GetByID(id string) (*models.Supplier, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierRepo) GetByEmail(email string) (*models.Supplier, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierRepo) Create(supplier *models.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func (m *MockSupplierRepo) Update(supplier *models.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func (m *MockSupplierRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPublisher is a testify mock of events.Publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishSupplierEvent(event events.SupplierEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func validInput() *models.SupplierInput {
	return &models.SupplierInput{
		CompanyName:   "Shenzhen Electronics Co., Ltd.",
		MainProducts:  []string{"Smartphones", "Tablets"},
		ContactPerson: "Zhang Wei",
		Email:         "contact@shenzhentronics.com",
		Password:      "secret123",
		Phone:         "+86 755 1234 5678",
		Address: models.AddressInput{
			Country:  "China",
			Province: "Guangdong",
			City:     "Shenzhen",
			Detail:   "88 Keji Road, Nanshan District",
		},
		Description:     "Consumer electronics manufacturer",
		EstablishedYear: 2005,
		EmployeeCount:   "201-500",
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := services.HashPassword("secret123")
	assert.NoError(t, err)
	second, err := services.HashPassword("secret123")
	assert.NoError(t, err)

	// Random salt: same plaintext, different hashes.
	assert.NotEqual(t, first, second)
	assert.True(t, services.VerifyPassword("secret123", first))
	assert.True(t, services.VerifyPassword("secret123", second))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := services.HashPassword("secret123")
	assert.NoError(t, err)

	assert.True(t, services.VerifyPassword("secret123", hash))
	assert.False(t, services.VerifyPassword("wrong", hash))
	// No stored hash can never authenticate, and never panics.
	assert.False(t, services.VerifyPassword("anything", ""))
}

func TestSupplierService_Register(t *testing.T) {
	mockRepo := new(MockSupplierRepo)
	mockPublisher := new(MockPublisher)
	service := services.NewSupplierService(mockRepo, mockPublisher)

	input := validInput()
	mockRepo.On("GetByEmail", input.Email).Return(nil, fmt.Errorf("supplier with email %s: %w", input.Email, models.ErrNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Supplier")).Return(nil).Once()
	mockPublisher.On("PublishSupplierEvent", mock.MatchedBy(func(e events.SupplierEvent) bool {
		return e.Type == events.TypeSupplierRegistered && e.Email == input.Email
	})).Return(nil).Once()

	supplier, err := service.Register(input)
	assert.NoError(t, err)
	assert.Equal(t, "Shenzhen Electronics Co., Ltd.", supplier.CompanyName)
	// The password is stored hashed, never as plaintext.
	assert.NotEqual(t, "secret123", supplier.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(supplier.PasswordHash), []byte("secret123")))
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestSupplierService_Register_NoPassword(t *testing.T) {
	mockRepo := new(MockSupplierRepo)
	service := services.NewSupplierService(mockRepo, nil)

	input := validInput()
	input.Password = ""
	mockRepo.On("GetByEmail", input.Email).Return(nil, models.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Supplier")).Return(nil).Once()

	supplier, err := service.Register(input)
	assert.NoError(t, err)
	assert.False(t, supplier.HasPassword())
	mockRepo.AssertExpectations(t)
}

func TestSupplierService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockSupplierRepo)
	service := services.NewSupplierService(mockRepo, nil)

	input := validInput()
	mockRepo.On("GetByEmail", input.Email).Return(&models.Supplier{ID: "1", Email: input.Email}, nil).Once()

	supplier, err := service.Register(input)
	assert.Nil(t, supplier)
	assert.ErrorIs(t, err, models.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestSupplierService_Register_ValidationReportsEveryField(t *testing.T) {
	mockRepo := new(MockSupplierRepo)
	service := services.NewSupplierService(mockRepo, nil)

	input := validInput()
	input.CompanyName = "   "
	input.ContactPerson = ""
	input.MainProducts = nil
	input.Address.City = ""

	supplier, err := service.Register(input)
	assert.Nil(t, supplier)

	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "companyName")
	assert.Contains(t, verr.Fields, "contactPerson")
	assert.Contains(t, verr.Fields, "mainProducts")
	assert.Contains(t, verr.Fields, "address.city")
	assert.Len(t, verr.Fields, 4)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSupplierService_Register_FieldConstraints(t *testing.T) {
	mockRepo := new(MockSupplierRepo)
	service := services.NewSupplierService(mockRepo, nil)

	cases := []struct {
		name   string
		mutate func(*models.SupplierInput)
		field  string
	}{
		{"bad email", func(in *models.SupplierInput) { in.Email = "not-an-email" }, "email"},
		{"short password", func(in *models.SupplierInput) { in.Password = "abc" }, "password"},
		{"year too early", func(in *models.SupplierInput) { in.EstablishedYear = 1750 }, "establishedYear"},
		{"year in future", func(in *models.SupplierInput) { in.EstablishedYear = 3000 }, "establishedYear"},
		{"unknown bucket", func(in *models.SupplierInput) { in.EmployeeCount = "10-20" }, "employeeCount"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(input)

			_, err := service.Register(input)
			var verr *models.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}
}

func TestSupplierService_Authenticate(t *testing.T) {
	mockRepo := new(MockSupplierRepo)
	service := services.NewSupplierService(mockRepo, nil)

	hash, _ := services.HashPassword("secret123")
	stored := &models.Supplier{ID: "1", Email: "a@x.com", PasswordHash: hash}

	mockRepo.On("GetByEmail", "a@x.com").Return(stored, nil).Once()
	supplier, err := service.Authenticate("a@x.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "1", supplier.ID)

	mockRepo.On("GetByEmail", "a@x.com").Return(stored, nil).Once()
	_, err = service.Authenticate("a@x.com", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	// Unknown email collapses into the same opaque error.
	mockRepo.On("GetByEmail", "missing@x.com").Return(nil, fmt.Errorf("supplier with email missing@x.com: %w", models.ErrNotFound)).Once()
	_, err = service.Authenticate("missing@x.com", "secret123")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	// A supplier created without a password can never log in.
	noPass := &models.Supplier{ID: "2", Email: "b@x.com"}
	mockRepo.On("GetByEmail", "b@x.com").Return(noPass, nil).Once()
	_, err = service.Authenticate("b@x.com", "anything")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestSupplierService_Update_PasswordRehashRules(t *testing.T) {
	mockRepo := new(MockSupplierRepo)
	service := services.NewSupplierService(mockRepo, nil)

	hash, _ := services.HashPassword("secret123")
	stored := validInput().ToSupplier()
	stored.ID = "s-1"
	stored.PasswordHash = hash

	// Echoing the stored hash back through the form must not re-hash.
	mockRepo.On("GetByID", "s-1").Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Supplier")).Return(nil).Once()

	updated, err := service.Update("s-1", &models.SupplierUpdate{Password: &hash})
	assert.NoError(t, err)
	assert.Equal(t, hash, updated.PasswordHash)

	// A genuinely new password is hashed, replacing the old hash.
	newPassword := "another-secret"
	mockRepo.On("GetByID", "s-1").Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Supplier")).Return(nil).Once()

	updated, err = service.Update("s-1", &models.SupplierUpdate{Password: &newPassword})
	assert.NoError(t, err)
	assert.NotEqual(t, hash, updated.PasswordHash)
	assert.True(t, services.VerifyPassword(newPassword, updated.PasswordHash))

	mockRepo.AssertExpectations(t)
}

func TestSupplierService_Update_PartialFields(t *testing.T) {
	mockRepo := new(MockSupplierRepo)
	service := services.NewSupplierService(mockRepo, nil)

	stored := validInput().ToSupplier()
	stored.ID = "s-1"

	newPhone := "+86 755 9999 0000"
	mockRepo.On("GetByID", "s-1").Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Supplier")).Return(nil).Once()

	updated, err := service.Update("s-1", &models.SupplierUpdate{Phone: &newPhone})
	assert.NoError(t, err)
	assert.Equal(t, newPhone, updated.Phone)
	// Untouched fields survive the merge.
	assert.Equal(t, stored.CompanyName, updated.CompanyName)
	assert.Equal(t, stored.Address.Country, updated.Address.Country)
	mockRepo.AssertExpectations(t)
}

func TestSupplierService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockSupplierRepo)
	service := services.NewSupplierService(mockRepo, nil)

	mockRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("supplier with ID missing: %w", models.ErrNotFound)).Once()

	_, err := service.Update("missing", &models.SupplierUpdate{})
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestSupplierService_List_Pagination(t *testing.T) {
	// Use the in-memory repository to exercise real filter/paging.
	repo := repositories.NewMockSupplierRepository()
	service := services.NewSupplierService(repo, nil)

	for i := 0; i < 25; i++ {
		in := validInput()
		in.CompanyName = fmt.Sprintf("Supplier %02d", i)
		in.Email = fmt.Sprintf("supplier%02d@example.com", i)
		supplier := in.ToSupplier()
		assert.NoError(t, repo.Create(supplier))
	}

	suppliers, pagination, err := service.List(models.ListQuery{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, suppliers, 10)
	assert.Equal(t, int64(25), pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)

	// Past the last page: empty result, not an error.
	suppliers, pagination, err = service.List(models.ListQuery{Page: 4, Limit: 10})
	assert.NoError(t, err)
	assert.Empty(t, suppliers)
	assert.Equal(t, 3, pagination.TotalPages)

	// Bad values coerce to the defaults.
	suppliers, pagination, err = service.List(models.ListQuery{Page: -3, Limit: 0})
	assert.NoError(t, err)
	assert.Len(t, suppliers, 10)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 10, pagination.Limit)
}

func TestSupplierService_List_Search(t *testing.T) {
	repo := repositories.NewMockSupplierRepository()
	service := services.NewSupplierService(repo, nil)

	in := validInput()
	assert.NoError(t, repo.Create(in.ToSupplier()))

	other := validInput()
	other.CompanyName = "Hanoi Textiles"
	other.Email = "sales@hanoitex.vn"
	other.MainProducts = []string{"Fabrics"}
	other.Address.Country = "Vietnam"
	other.Address.Province = "Hanoi"
	other.Address.City = "Hanoi"
	assert.NoError(t, repo.Create(other.ToSupplier()))

	suppliers, pagination, err := service.List(models.ListQuery{Search: "tablets"})
	assert.NoError(t, err)
	assert.Len(t, suppliers, 1)
	assert.Equal(t, "Shenzhen Electronics Co., Ltd.", suppliers[0].CompanyName)
	assert.Equal(t, int64(1), pagination.Total)

	// Address fields are searchable too.
	suppliers, _, err = service.List(models.ListQuery{Search: "vietnam"})
	assert.NoError(t, err)
	assert.Len(t, suppliers, 1)
	assert.Equal(t, "Hanoi Textiles", suppliers[0].CompanyName)

	// An empty search matches everything.
	suppliers, _, err = service.List(models.ListQuery{})
	assert.NoError(t, err)
	assert.Len(t, suppliers, 2)
}

func TestSupplierService_Delete(t *testing.T) {
	mockRepo := new(MockSupplierRepo)
	service := services.NewSupplierService(mockRepo, nil)

	mockRepo.On("Delete", "s-1").Return(nil).Once()
	assert.NoError(t, service.Delete("s-1"))

	mockRepo.On("Delete", "missing").Return(fmt.Errorf("supplier with ID missing: %w", models.ErrNotFound)).Once()
	assert.ErrorIs(t, service.Delete("missing"), models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
