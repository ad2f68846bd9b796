package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email           string     `json:"email" validate:"required,email"`
	Password        string     `json:"password" validate:"required,min=6,max=100"`
	ConfirmPassword string     `json:"confirm_password" validate:"required,eqfield=Password"`
	Username        string     `json:"username" validate:"required,min=3,max=50"`
	Name            string     `json:"name" validate:"required,max=50"`
	Surname         string     `json:"surname" validate:"required,max=50"`
	Address         *string    `json:"address" validate:"omitempty,max=100"`
	Birthdate       *time.Time `json:"birthdate"`
	Gender          *string    `json:"gender" validate:"omitempty,max=20"`
	Phone           *string    `json:"phone" validate:"omitempty,max=20"`
}

// AdminCreateUserRequest provisions a user with an explicit role; only
// admins may use it.
type AdminCreateUserRequest struct {
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=6,max=100"`
	Username  string     `json:"username" validate:"required,min=3,max=50"`
	Name      string     `json:"name" validate:"required,max=50"`
	Surname   string     `json:"surname" validate:"required,max=50"`
	Address   *string    `json:"address" validate:"omitempty,max=100"`
	Birthdate *time.Time `json:"birthdate"`
	Gender    *string    `json:"gender" validate:"omitempty,max=20"`
	Phone     *string    `json:"phone" validate:"omitempty,max=20"`
	Role      string     `json:"role" validate:"required,oneof=Applicant Manager Admin"`
}

// UpdateProfileRequest is the self-service profile update; role is never
// part of it.
type UpdateProfileRequest struct {
	Email     string     `json:"email" validate:"required,email"`
	Username  string     `json:"username" validate:"required,min=3,max=50"`
	Name      string     `json:"name" validate:"omitempty,max=50"`
	Surname   string     `json:"surname" validate:"omitempty,max=50"`
	Address   *string    `json:"address" validate:"omitempty,max=100"`
	Birthdate *time.Time `json:"birthdate"`
	Gender    *string    `json:"gender" validate:"omitempty,max=20"`
	Phone     *string    `json:"phone" validate:"omitempty,max=20"`
	Image     *string    `json:"image" validate:"omitempty,max=500"`
}

// AdminUpdateUserRequest additionally allows reassigning the role.
type AdminUpdateUserRequest struct {
	Email     string     `json:"email" validate:"required,email"`
	Username  string     `json:"username" validate:"required,min=3,max=50"`
	Name      string     `json:"name" validate:"omitempty,max=50"`
	Surname   string     `json:"surname" validate:"omitempty,max=50"`
	Address   *string    `json:"address" validate:"omitempty,max=100"`
	Birthdate *time.Time `json:"birthdate"`
	Gender    *string    `json:"gender" validate:"omitempty,max=20"`
	Phone     *string    `json:"phone" validate:"omitempty,max=20"`
	Role      string     `json:"role" validate:"required,oneof=Applicant Manager Admin"`
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	Name      string     `json:"name"`
	Surname   string     `json:"surname"`
	Address   *string    `json:"address"`
	Birthdate *time.Time `json:"birthdate"`
	Gender    *string    `json:"gender"`
	Phone     *string    `json:"phone"`
	Image     *string    `json:"image"`
	CreatedAt time.Time  `json:"created_at"`
}
