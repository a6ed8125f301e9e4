package comparison

import (
	"errors"
	"strings"

	"github.com/ThomasBonnelye/invader-comparator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the comparison routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/comparison")
	group.Get("/", h.HandleCompareAdhoc)
	group.Get("/:account", h.HandleCompareAccount)
}

// HandleCompareAdhoc compares explicit UIDs without touching the registry.
// @Summary Ad hoc comparison
// @Description Compare target players' invader collections against a reference player, all given by UID.
// @Tags comparison
// @Accept json
// @Produce json
// @Param reference query string true "Reference player UID"
// @Param targets query string false "Comma-separated target player UIDs"
// @Param filter query string false "Case-insensitive substring filter applied to the result"
// @Success 200 {object} comparison.Report "Comparison Report"
// @Failure 400 {object} map[string]string "Missing reference UID"
// @Router /comparison [get]
func (h *Handler) HandleCompareAdhoc(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	reference := Normalize(c.Query("reference"))
	if reference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query parameter 'reference' is required",
		})
	}

	var targets []string
	if raw := c.Query("targets"); raw != "" {
		targets = strings.Split(raw, ",")
	}

	report, err := h.service.CompareUIDs(c.Context(), reference, targets)
	if err != nil {
		l.Error("Ad hoc comparison failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	report.Exclusive = Filter(report.Exclusive, c.Query("filter"))
	return c.JSON(report)
}

// HandleCompareAccount compares the UIDs stored in the registry for an account.
// @Summary Registry-driven comparison
// @Description Compare the stored target players against the stored reference player for an account.
// @Tags comparison
// @Accept json
// @Produce json
// @Param account path string true "Account name"
// @Param filter query string false "Case-insensitive substring filter applied to the result"
// @Success 200 {object} comparison.Report "Comparison Report"
// @Failure 404 {object} map[string]string "No reference UID stored for the account"
// @Failure 503 {object} map[string]string "Registry unavailable"
// @Router /comparison/{account} [get]
func (h *Handler) HandleCompareAccount(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	account := c.Params("account")

	if !h.service.HasRegistry() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "uid registry is not available",
		})
	}

	report, err := h.service.CompareAccount(c.Context(), account)
	if err != nil {
		if errors.Is(err, ErrNoReference) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Account comparison failed", zap.String("account", account), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	report.Exclusive = Filter(report.Exclusive, c.Query("filter"))
	return c.JSON(report)
}
