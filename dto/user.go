package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/tricyvic/alx-travel-app-0x00/models"
)

// SimpleUser là projection tối thiểu khi lồng user vào listing/booking/review
type SimpleUser struct {
	ID        uuid.UUID `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateUserRequest struct {
	FirstName string `json:"firstName" binding:"required,max=150"`
	LastName  string `json:"lastName" binding:"required,max=150"`
	Email     string `json:"email" binding:"required,email,max=254"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName" binding:"required,max=150"`
	LastName  string `json:"lastName" binding:"required,max=150"`
	Email     string `json:"email" binding:"required,email,max=254"`
}

type PatchUserRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1,max=150"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1,max=150"`
	Email     *string `json:"email" binding:"omitempty,email,max=254"`
	Password  *string `json:"password" binding:"omitempty,min=8,max=72"`
}

type UserQuery struct {
	ListQuery
	Email string `form:"email" binding:"omitempty,email"`
}

func ToSimpleUser(u models.User) SimpleUser {
	return SimpleUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func ToUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
