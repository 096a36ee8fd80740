package handlers

import (
	"log"

	"supplierhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles back-office operator login.
type AdminHandler struct {
	service *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

// RegisterRoutes registers the admin auth routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Post("/login", h.HandleLogin)
}

// HandleLogin checks the configured operator credentials and returns the
// placeholder admin token.
func (h *AdminHandler) HandleLogin(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing admin login body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err, "Could not authenticate admin")
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}
