package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/flowlytix/distribution-service/internal/api/dto"
	"github.com/flowlytix/distribution-service/internal/auth"
	"github.com/flowlytix/distribution-service/internal/command"
	"github.com/flowlytix/distribution-service/internal/service"
)

// AuthHandler exposes authentication endpoints.
type AuthHandler struct {
	users *service.UserService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.users.Authenticate(c.Context(), command.AuthenticateUserCommand{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(result.User),
			"auth": dto.AuthResponse{Token: result.Token, ExpiresAt: result.ExpiresAt},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	if err := h.users.Logout(c.Context(), principal.SessionID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ChangePassword handles POST /auth/password/change. The acting user comes
// from the bearer token, not the request body.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	err := h.users.ChangePassword(c.Context(), command.ChangePasswordCommand{
		UserID:          principal.User.ID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ChangedBy:       principal.User.ID,
	})
	if err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
