package handlers

import (
	"supplierhub/internal/directory"
	"supplierhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DirectoryHandler serves the public directory view: the full supplier
// list fetched once, then filtered, sorted, and paged in memory.
type DirectoryHandler struct {
	service *services.SupplierService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(service *services.SupplierService) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the directory routes with the Fiber app.
func (h *DirectoryHandler) RegisterRoutes(router fiber.Router) {
	directoryRoutes := router.Group("/directory")
	directoryRoutes.Get("/suppliers", h.HandleDirectory)
}

// HandleDirectory returns the visible slice of the directory for the
// requested search term, country filter, sort mode, and page.
func (h *DirectoryHandler) HandleDirectory(c *fiber.Ctx) error {
	suppliers, err := h.service.GetAll()
	if err != nil {
		return respondError(c, err, "Could not retrieve directory")
	}

	search := c.Query("search")
	country := c.Query("country")
	mode := directory.ParseSortMode(c.Query("sort"))
	page := c.QueryInt("page", 1)

	matched := directory.Filter(suppliers, search, country)
	directory.Sort(matched, mode)
	visible, totalPages := directory.Paginate(matched, page, directory.DefaultPageSize)

	return c.JSON(fiber.Map{
		"suppliers":  visible,
		"total":      len(matched),
		"page":       page,
		"totalPages": totalPages,
	})
}
