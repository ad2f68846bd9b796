package handlers

import (
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register is the public sign-up endpoint; every account it creates is an
// applicant.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.users.Register(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(userResponse(user))
}

func (h *UserHandler) AdminCreate(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.AdminCreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.users.AdminCreate(caller, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(userResponse(user))
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}

	users, err := h.users.List(caller)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userResponse(&users[i]))
	}
	return c.JSON(out)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	user, err := h.users.Get(caller, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(userResponse(user))
}

func (h *UserHandler) AdminUpdate(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.AdminUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.users.AdminUpdate(caller, id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(userResponse(user))
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if err := h.users.Delete(caller, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "User deleted successfully"})
}

func (h *UserHandler) MyProfile(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.users.GetProfile(caller)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(userResponse(user))
}

func (h *UserHandler) UpdateMyProfile(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.users.UpdateProfile(caller, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(userResponse(user))
}

func userResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role.String(),
		Name:      u.Name,
		Surname:   u.Surname,
		Address:   u.Address,
		Birthdate: u.Birthdate,
		Gender:    u.Gender,
		Phone:     u.Phone,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
	}
}
