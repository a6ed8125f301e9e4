package registry

import (
	"errors"

	"github.com/ThomasBonnelye/invader-comparator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the UID registry.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the registry routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/registry/:account")
	group.Get("/", h.HandleGet)
	group.Put("/reference", h.HandleSetReference)
	group.Post("/targets", h.HandleAddTarget)
	group.Delete("/targets/:uid", h.HandleRemoveTarget)
}

// uidBody is the request body for mutations.
type uidBody struct {
	UID string `json:"uid"`
}

// HandleGet returns the stored UIDs for an account.
// @Summary Get stored UIDs
// @Description Get the reference UID and target UIDs stored for an account.
// @Tags registry
// @Accept json
// @Produce json
// @Param account path string true "Account name"
// @Success 200 {object} registry.AccountUIDs "Stored UIDs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /registry/{account} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	account := c.Params("account")

	uids, err := h.service.Get(c.Context(), account)
	if err != nil {
		l.Error("Registry lookup failed", zap.String("account", account), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(uids)
}

// HandleSetReference stores the account's reference UID.
// @Summary Set reference UID
// @Description Store the reference player UID for an account, replacing any previous one.
// @Tags registry
// @Accept json
// @Produce json
// @Param account path string true "Account name"
// @Param body body registry.uidBody true "Reference UID"
// @Success 200 {object} registry.AccountUIDs "Updated UIDs"
// @Failure 400 {object} map[string]string "Invalid body or empty UID"
// @Router /registry/{account}/reference [put]
func (h *Handler) HandleSetReference(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	account := c.Params("account")

	var body uidBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.SetReference(c.Context(), account, body.UID); err != nil {
		if errors.Is(err, ErrEmptyUID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Failed to set reference", zap.String("account", account), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return h.HandleGet(c)
}

// HandleAddTarget stores a comparison target UID for the account.
// @Summary Add target UID
// @Description Store a comparison target player UID for an account. Idempotent.
// @Tags registry
// @Accept json
// @Produce json
// @Param account path string true "Account name"
// @Param body body registry.uidBody true "Target UID"
// @Success 201 {object} registry.AccountUIDs "Updated UIDs"
// @Failure 400 {object} map[string]string "Invalid body or empty UID"
// @Router /registry/{account}/targets [post]
func (h *Handler) HandleAddTarget(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	account := c.Params("account")

	var body uidBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.AddTarget(c.Context(), account, body.UID); err != nil {
		if errors.Is(err, ErrEmptyUID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Failed to add target", zap.String("account", account), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Status(fiber.StatusCreated)
	return h.HandleGet(c)
}

// HandleRemoveTarget deletes a stored target UID.
// @Summary Remove target UID
// @Description Delete a stored comparison target UID for an account.
// @Tags registry
// @Accept json
// @Produce json
// @Param account path string true "Account name"
// @Param uid path string true "Target UID"
// @Success 204 "Removed"
// @Failure 404 {object} map[string]string "UID not stored for the account"
// @Router /registry/{account}/targets/{uid} [delete]
func (h *Handler) HandleRemoveTarget(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	account := c.Params("account")
	uid := c.Params("uid")

	if err := h.service.RemoveTarget(c.Context(), account, uid); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Failed to remove target", zap.String("account", account), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
