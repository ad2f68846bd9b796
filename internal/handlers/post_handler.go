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

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	post, err := h.posts.Create(caller, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(postResponse(post))
}

func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post id")
	}

	post, err := h.posts.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(postResponse(post))
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.posts.ListAll()
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, postResponse(&posts[i]))
	}
	return c.JSON(out)
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post id")
	}

	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	post, err := h.posts.Update(caller, id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(postResponse(post))
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post id")
	}

	if err := h.posts.Delete(caller, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Post deleted successfully"})
}

func postResponse(p *models.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:             p.ID,
		Description:    p.Description,
		ImageURL:       p.ImageURL,
		AuthorID:       p.AuthorID,
		AuthorUsername: p.Author.Username,
		AuthorImage:    p.Author.Image,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
