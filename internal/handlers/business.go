package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hjnengare/sayso-server/internal/database"
	"github.com/hjnengare/sayso-server/internal/middleware"
	"github.com/hjnengare/sayso-server/internal/services"
	"gorm.io/gorm"
)

type BusinessHandler struct {
	service *services.BusinessService
}

func NewBusinessHandler(db *database.DB) *BusinessHandler {
	return &BusinessHandler{
		service: services.NewBusinessService(db),
	}
}

func SetupBusinessRoutes(router fiber.Router, db *database.DB) {
	h := NewBusinessHandler(db)

	router.Get("/:id", h.Get)
	router.Get("/:id/similar", h.Similar)
}

// Get godoc
// @Summary Get business by ID
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} services.BusinessResult
// @Failure 404 {object} ErrorResponse
// @Router /businesses/{id} [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid business ID"})
	}

	business, err := h.service.GetByID(c.UserContext(), uint(id), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Business not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load business"})
	}

	return c.JSON(business)
}

// Similar godoc
// @Summary List similar businesses
// @Description Related listings ordered by classification-tier priority
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path int true "Business ID"
// @Param limit query int false "Max results (default 10)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /businesses/{id}/similar [get]
func (h *BusinessHandler) Similar(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid business ID"})
	}
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	businesses, err := h.service.Similar(c.UserContext(), uint(id), limit, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Business not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load similar businesses"})
	}

	return c.JSON(fiber.Map{"businesses": businesses})
}
