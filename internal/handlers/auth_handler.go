package handlers

import (
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	users  *services.UserService
	tokens *services.TokenService
}

func NewAuthHandler(users *services.UserService, tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.TokenResponse{Token: token})
}
