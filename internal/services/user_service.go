package services

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/authz"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService is the credential store: identity, password hash, and role
// live in one record, and all user management goes through it.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Authenticate verifies an (email, password) pair. The caller cannot
// distinguish "no such user" from "wrong password".
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	return &user, nil
}

// Register creates a self-service account. The role is always Applicant;
// elevated roles are assigned only through admin provisioning.
func (s *UserService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if err := s.checkUnique(req.Email, req.Username, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Username:  req.Username,
		Password:  string(hash),
		Role:      models.RoleApplicant,
		Name:      req.Name,
		Surname:   req.Surname,
		Address:   req.Address,
		Birthdate: req.Birthdate,
		Gender:    req.Gender,
		Phone:     req.Phone,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// AdminCreate provisions a user with an explicit role.
func (s *UserService) AdminCreate(caller authz.Caller, req *dto.AdminCreateUserRequest) (*models.User, error) {
	if err := authz.Evaluate(caller, authz.Check{Roles: []models.Role{models.RoleAdmin}}); err != nil {
		return nil, err
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, &apperrors.ValidationError{Fields: map[string]string{"role": "must be one of: Applicant Manager Admin"}}
	}
	if err := s.checkUnique(req.Email, req.Username, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Username:  req.Username,
		Password:  string(hash),
		Role:      role,
		Name:      req.Name,
		Surname:   req.Surname,
		Address:   req.Address,
		Birthdate: req.Birthdate,
		Gender:    req.Gender,
		Phone:     req.Phone,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *UserService) List(caller authz.Caller) ([]models.User, error) {
	if err := authz.Evaluate(caller, authz.Check{Roles: []models.Role{models.RoleAdmin}}); err != nil {
		return nil, err
	}
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(caller authz.Caller, id uuid.UUID) (*models.User, error) {
	if err := authz.Evaluate(caller, authz.Check{Roles: []models.Role{models.RoleAdmin}}); err != nil {
		return nil, err
	}
	return s.find(id)
}

// GetProfile returns the caller's own record; any authenticated role.
func (s *UserService) GetProfile(caller authz.Caller) (*models.User, error) {
	return s.find(caller.ID)
}

// UpdateProfile is the self-service profile update. Role never changes
// here.
func (s *UserService) UpdateProfile(caller authz.Caller, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.find(caller.ID)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(req.Email, req.Username, user.ID); err != nil {
		return nil, err
	}

	user.Email = req.Email
	user.Username = req.Username
	user.Name = req.Name
	user.Surname = req.Surname
	user.Address = req.Address
	user.Birthdate = req.Birthdate
	user.Gender = req.Gender
	user.Phone = req.Phone
	user.Image = req.Image

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// AdminUpdate rewrites a user record, including role assignment.
func (s *UserService) AdminUpdate(caller authz.Caller, id uuid.UUID, req *dto.AdminUpdateUserRequest) (*models.User, error) {
	if err := authz.Evaluate(caller, authz.Check{Roles: []models.Role{models.RoleAdmin}}); err != nil {
		return nil, err
	}

	user, err := s.find(id)
	if err != nil {
		return nil, err
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, &apperrors.ValidationError{Fields: map[string]string{"role": "must be one of: Applicant Manager Admin"}}
	}
	if err := s.checkUnique(req.Email, req.Username, user.ID); err != nil {
		return nil, err
	}

	user.Email = req.Email
	user.Username = req.Username
	user.Role = role
	user.Name = req.Name
	user.Surname = req.Surname
	user.Address = req.Address
	user.Birthdate = req.Birthdate
	user.Gender = req.Gender
	user.Phone = req.Phone

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes a user and everything hanging off them in one
// transaction: owned jobs (with their applications and notification
// links), the user's own applications, notifications, and posts.
func (s *UserService) Delete(caller authz.Caller, id uuid.UUID) error {
	if err := authz.Evaluate(caller, authz.Check{Roles: []models.Role{models.RoleAdmin}}); err != nil {
		return err
	}

	user, err := s.find(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var ownedJobIDs []uuid.UUID
		if err := tx.Model(&models.Job{}).Where("manager_id = ?", user.ID).
			Pluck("id", &ownedJobIDs).Error; err != nil {
			return err
		}
		if len(ownedJobIDs) > 0 {
			if err := tx.Where("job_id IN ?", ownedJobIDs).Delete(&models.JobApplication{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Notification{}).Where("job_id IN ?", ownedJobIDs).
				Update("job_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("manager_id = ?", user.ID).Delete(&models.Job{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("applicant_id = ?", user.ID).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipient_id = ?", user.ID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", user.ID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}

func (s *UserService) find(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// checkUnique rejects an email or username already held by another user.
// The unique indexes remain the backstop under concurrent writes.
func (s *UserService) checkUnique(email, username string, selfID uuid.UUID) error {
	var count int64
	s.db.Model(&models.User{}).Where("email = ? AND id <> ?", email, selfID).Count(&count)
	if count > 0 {
		return apperrors.ErrEmailTaken
	}
	s.db.Model(&models.User{}).Where("username = ? AND id <> ?", username, selfID).Count(&count)
	if count > 0 {
		return apperrors.ErrUsernameTaken
	}
	return nil
}
