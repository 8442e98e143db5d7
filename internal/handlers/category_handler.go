package handlers

import (
	"carpetstore/internal/dto"
	"carpetstore/internal/mediator"
	"carpetstore/internal/services"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	mediator *mediator.Mediator
	log      *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(m *mediator.Mediator, log *zap.Logger) *CategoryHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CategoryHandler{
		mediator: m,
		log:      log.Named("categories"),
	}
}

// RegisterRoutes registers the category routes with the Fiber router.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// HandleGetCategories lists every category with its carpet count.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := mediator.Send[[]dto.CategoryDto](c.UserContext(), h.mediator, services.ListCategoriesQuery{})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID retrieves a single category.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	category, err := mediator.Send[*dto.CategoryDto](c.UserContext(), h.mediator, services.GetCategoryByIDQuery{ID: categoryID})
	if err != nil {
		return respondError(c, h.log, err)
	}
	if category == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Category with ID %s not found", categoryID),
		})
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryDto
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}

	category, err := mediator.Send[*dto.CategoryDto](c.UserContext(), h.mediator, services.CreateCategoryCommand{Category: in})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory renames or re-describes a category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	var in dto.UpdateCategoryDto
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	in.ID = c.Params("id")

	category, err := mediator.Send[*dto.CategoryDto](c.UserContext(), h.mediator, services.UpdateCategoryCommand{Category: in})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(category)
}

// HandleDeleteCategory deletes an empty category.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	deleted, err := mediator.Send[bool](c.UserContext(), h.mediator, services.DeleteCategoryCommand{ID: categoryID})
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Category with ID %s not found", categoryID),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
