package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hjnengare/sayso-server/internal/services"
)

type CategoryHandler struct {
	service *services.CategoryService
}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{
		service: services.NewCategoryService(),
	}
}

func SetupCategoryRoutes(router fiber.Router) {
	h := NewCategoryHandler()

	router.Get("/", h.List)
	router.Get("/interests", h.Interests)
}

// List godoc
// @Summary List canonical categories
// @Tags categories
// @Accept json
// @Produce json
// @Success 200 {array} taxonomy.Subcategory
// @Router /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// Interests godoc
// @Summary List top-level interests
// @Tags categories
// @Accept json
// @Produce json
// @Success 200 {array} taxonomy.Interest
// @Router /categories/interests [get]
func (h *CategoryHandler) Interests(c *fiber.Ctx) error {
	return c.JSON(h.service.Interests())
}
