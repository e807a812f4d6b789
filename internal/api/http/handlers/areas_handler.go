package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/flowlytix/distribution-service/internal/api/dto"
	"github.com/flowlytix/distribution-service/internal/auth"
	"github.com/flowlytix/distribution-service/internal/command"
	"github.com/flowlytix/distribution-service/internal/domain"
	"github.com/flowlytix/distribution-service/internal/service"
)

// AreasHandler exposes sales-area endpoints.
type AreasHandler struct {
	areas *service.AreaService
}

// NewAreasHandler constructs handler.
func NewAreasHandler(areas *service.AreaService) *AreasHandler {
	return &AreasHandler{areas: areas}
}

// Create handles POST /areas.
func (h *AreasHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CreateAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	area, err := h.areas.CreateArea(c.Context(), command.CreateAreaCommand{
		AreaName:    req.AreaName,
		CreatedBy:   principal.User.ID,
		Description: req.Description,
		Coordinates: req.Coordinates,
		Boundaries:  req.Boundaries,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"area": dto.NewAreaResponse(area)},
	})
}

// Update handles PATCH /areas/:id.
func (h *AreasHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.UpdateAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	area, err := h.areas.UpdateArea(c.Context(), command.UpdateAreaCommand{
		ID:          c.Params("id"),
		UpdatedBy:   principal.User.ID,
		AreaName:    req.AreaName,
		Description: req.Description,
		Coordinates: req.Coordinates,
		Boundaries:  req.Boundaries,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"area": dto.NewAreaResponse(area)},
	})
}

// Get handles GET /areas/:id.
func (h *AreasHandler) Get(c *fiber.Ctx) error {
	area, err := h.areas.GetArea(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"area": dto.NewAreaResponse(area)},
	})
}

// List handles GET /areas with an optional status filter.
func (h *AreasHandler) List(c *fiber.Ctx) error {
	var status *domain.AreaStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.AreaStatus(raw)
		if !domain.ValidAreaStatus(s) {
			return fiber.NewError(http.StatusBadRequest, "Invalid area status")
		}
		status = &s
	}

	areas, err := h.areas.ListAreas(c.Context(), status)
	if err != nil {
		return err
	}

	resp := make([]dto.AreaResponse, 0, len(areas))
	for _, area := range areas {
		resp = append(resp, dto.NewAreaResponse(area))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"areas": resp}})
}
