package handlers

import (
	"fmt"
	"log"

	"supplierhub/internal/models"
	"supplierhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SupplierHandler handles HTTP requests for the supplier directory.
type SupplierHandler struct {
	service  *services.SupplierService
	validate *validator.Validate
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(service *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the supplier routes with the Fiber app. The
// login route is registered before the :id routes so it wins matching.
func (h *SupplierHandler) RegisterRoutes(router fiber.Router) {
	supplierRoutes := router.Group("/suppliers")
	supplierRoutes.Get("/", h.HandleList)
	supplierRoutes.Post("/", h.HandleRegister)
	supplierRoutes.Put("/login", h.HandleLogin)
	supplierRoutes.Get("/:id", h.HandleGetByID)
	supplierRoutes.Put("/:id", h.HandleUpdate)
	supplierRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList returns a page of suppliers with pagination metadata.
// Non-numeric or negative page/limit values fall back to the defaults.
func (h *SupplierHandler) HandleList(c *fiber.Ctx) error {
	query := models.ListQuery{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}

	suppliers, pagination, err := h.service.List(query)
	if err != nil {
		return respondError(c, err, "Could not retrieve suppliers")
	}
	return c.JSON(fiber.Map{
		"suppliers":  suppliers,
		"pagination": pagination,
	})
}

// HandleRegister creates a new supplier from an untrusted candidate body.
func (h *SupplierHandler) HandleRegister(c *fiber.Ctx) error {
	var input models.SupplierInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing supplier request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	supplier, err := h.service.Register(&input)
	if err != nil {
		return respondError(c, err, "Could not create supplier")
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// HandleGetByID returns a single supplier. A malformed identifier is a
// bad request, a well-formed but unknown one is a not found.
func (h *SupplierHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return respondError(c, fmt.Errorf("supplier ID %s: %w", id, models.ErrInvalidID), "")
	}

	supplier, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err, "Could not retrieve supplier")
	}
	return c.JSON(supplier)
}

// HandleUpdate applies a partial update to a supplier.
func (h *SupplierHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return respondError(c, fmt.Errorf("supplier ID %s: %w", id, models.ErrInvalidID), "")
	}

	var update models.SupplierUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing supplier update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	supplier, err := h.service.Update(id, &update)
	if err != nil {
		return respondError(c, err, "Could not update supplier")
	}
	return c.JSON(supplier)
}

// HandleDelete hard-deletes a supplier.
func (h *SupplierHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return respondError(c, fmt.Errorf("supplier ID %s: %w", id, models.ErrInvalidID), "")
	}

	if err := h.service.Delete(id); err != nil {
		return respondError(c, err, "Could not delete supplier")
	}
	return c.JSON(fiber.Map{
		"message": "Supplier deleted successfully",
	})
}

// LoginRequest represents the request body for supplier login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a supplier by email and password and returns
// the supplier record; the password hash is never serialized.
func (h *SupplierHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email and password are required",
		})
	}

	supplier, err := h.service.Authenticate(req.Email, req.Password)
	if err != nil {
		return respondError(c, err, "Could not authenticate supplier")
	}
	return c.JSON(fiber.Map{
		"message":  "Login successful",
		"supplier": supplier,
	})
}
