package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hjnengare/sayso-server/internal/database"
	"github.com/hjnengare/sayso-server/internal/middleware"
	"github.com/hjnengare/sayso-server/internal/services"
)

type SearchHandler struct {
	service *services.SearchService
}

func NewSearchHandler(db *database.DB) *SearchHandler {
	return &SearchHandler{
		service: services.NewSearchService(db),
	}
}

func SetupSearchRoutes(router fiber.Router, db *database.DB) {
	h := NewSearchHandler(db)

	router.Get("/", h.Search)
}

// Search godoc
// @Summary Search businesses
// @Description Ranked business search with pattern-match fallback
// @Tags search
// @Accept json
// @Produce json
// @Param q query string true "Search query (min 2 characters)"
// @Param limit query int false "Max results (default 20, cap 50)"
// @Param offset query int false "Result offset"
// @Param verified query bool false "Verified businesses only"
// @Param location query string false "Location filter"
// @Success 200 {object} services.SearchResponse
// @Failure 500 {object} ErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	params := services.SearchParams{
		Query:        c.Query("q", c.Query("query")),
		Limit:        limit,
		Offset:       offset,
		VerifiedOnly: c.QueryBool("verified", false),
		Location:     c.Query("location"),
		CallerID:     middleware.UserID(c),
	}

	response, err := h.service.Search(c.UserContext(), params)
	if err != nil {
		// No internal detail leaks past this point
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to search businesses",
		})
	}

	return c.JSON(response)
}
