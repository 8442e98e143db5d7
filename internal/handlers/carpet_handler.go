package handlers

import (
	"carpetstore/internal/dto"
	"carpetstore/internal/mediator"
	"carpetstore/internal/services"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CarpetHandler handles HTTP requests for carpets.
type CarpetHandler struct {
	mediator *mediator.Mediator
	log      *zap.Logger
}

// NewCarpetHandler creates a new CarpetHandler.
func NewCarpetHandler(m *mediator.Mediator, log *zap.Logger) *CarpetHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CarpetHandler{
		mediator: m,
		log:      log.Named("carpets"),
	}
}

// RegisterRoutes registers the carpet routes with the Fiber router.
func (h *CarpetHandler) RegisterRoutes(router fiber.Router) {
	carpetRoutes := router.Group("/carpets")
	carpetRoutes.Get("/", h.HandleGetCarpets)
	carpetRoutes.Get("/:id", h.HandleGetCarpetByID)
	carpetRoutes.Post("/", h.HandleCreateCarpet)
	carpetRoutes.Put("/:id", h.HandleUpdateCarpet)
	carpetRoutes.Delete("/:id", h.HandleDeleteCarpet)
}

// HandleGetCarpets lists every carpet.
func (h *CarpetHandler) HandleGetCarpets(c *fiber.Ctx) error {
	carpets, err := mediator.Send[[]dto.CarpetDto](c.UserContext(), h.mediator, services.ListCarpetsQuery{})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(carpets)
}

// HandleGetCarpetByID retrieves a single carpet.
func (h *CarpetHandler) HandleGetCarpetByID(c *fiber.Ctx) error {
	carpetID := c.Params("id")
	carpet, err := mediator.Send[*dto.CarpetDto](c.UserContext(), h.mediator, services.GetCarpetByIDQuery{ID: carpetID})
	if err != nil {
		return respondError(c, h.log, err)
	}
	if carpet == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Carpet with ID %s not found", carpetID),
		})
	}
	return c.JSON(carpet)
}

// HandleCreateCarpet creates a new carpet.
func (h *CarpetHandler) HandleCreateCarpet(c *fiber.Ctx) error {
	var in dto.CreateCarpetDto
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}

	carpet, err := mediator.Send[*dto.CarpetDto](c.UserContext(), h.mediator, services.CreateCarpetCommand{Carpet: in})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(carpet)
}

// HandleUpdateCarpet replaces an existing carpet. The path id wins over any id in the body.
func (h *CarpetHandler) HandleUpdateCarpet(c *fiber.Ctx) error {
	var in dto.UpdateCarpetDto
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	in.ID = c.Params("id")

	carpet, err := mediator.Send[*dto.CarpetDto](c.UserContext(), h.mediator, services.UpdateCarpetCommand{Carpet: in})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(carpet)
}

// HandleDeleteCarpet deletes a carpet.
func (h *CarpetHandler) HandleDeleteCarpet(c *fiber.Ctx) error {
	carpetID := c.Params("id")
	deleted, err := mediator.Send[bool](c.UserContext(), h.mediator, services.DeleteCarpetCommand{ID: carpetID})
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Carpet with ID %s not found", carpetID),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
