package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/authz"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostService handles the user feed. Image hosting is external; posts
// only carry the resulting URL.
type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

func (s *PostService) Create(caller authz.Caller, req *dto.PostRequest) (*models.Post, error) {
	if err := authz.Evaluate(caller, authz.Check{
		Roles: []models.Role{models.RoleApplicant, models.RoleManager},
	}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := models.Post{
		ID:          uuid.New(),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AuthorID:    caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &post, nil
}

func (s *PostService) Get(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("Author").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostService) ListAll() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Preload("Author").Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) Update(caller authz.Caller, id uuid.UUID, req *dto.PostRequest) (*models.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := authz.Evaluate(caller, authz.Check{
		Roles:               []models.Role{models.RoleApplicant, models.RoleManager, models.RoleAdmin},
		Owner:               &post.AuthorID,
		AdminOverridesOwner: true,
	}); err != nil {
		return nil, err
	}

	post.Description = req.Description
	post.ImageURL = req.ImageURL
	post.UpdatedAt = time.Now().UTC()

	if err := s.db.Save(post).Error; err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

func (s *PostService) Delete(caller authz.Caller, id uuid.UUID) error {
	post, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := authz.Evaluate(caller, authz.Check{
		Roles:               []models.Role{models.RoleApplicant, models.RoleManager, models.RoleAdmin},
		Owner:               &post.AuthorID,
		AdminOverridesOwner: true,
	}); err != nil {
		return err
	}
	return s.db.Delete(&models.Post{}, "id = ?", post.ID).Error
}
