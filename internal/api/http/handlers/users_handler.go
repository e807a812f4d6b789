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

// UsersHandler exposes user provisioning endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Create handles POST /users. Requires an admin principal; the command's
// CreatedBy is taken from the caller.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	cmd := command.CreateUserCommand{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      domain.Role(req.Role),
		CreatedBy: principal.User.ID,
	}
	if req.Status != nil {
		status := domain.UserStatus(*req.Status)
		cmd.Status = &status
	}

	user, err := h.users.CreateUser(c.Context(), cmd)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"user": dto.NewUserResponse(user)},
	})
}
