package players

import (
	"github.com/ThomasBonnelye/invader-comparator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for player lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the player routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/players")
	group.Get("/:uid", h.HandleGetPlayer)
}

// HandleGetPlayer returns the gallery summary for a single player.
// @Summary Get Player Gallery
// @Description Fetch one player's gallery by UID and return its normalized summary.
// @Tags players
// @Accept json
// @Produce json
// @Param uid path string true "Player UID"
// @Success 200 {object} players.Summary "Player Summary"
// @Failure 502 {object} map[string]string "Gallery API failure"
// @Router /players/{uid} [get]
func (h *Handler) HandleGetPlayer(c *fiber.Ctx) error {
	uid := c.Params("uid")
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.GetPlayer(c.Context(), uid)
	if err != nil {
		l.Error("Player lookup failed", zap.String("uid", uid), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}
