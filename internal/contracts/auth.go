package contracts

import (
	domainUser "FinMate/internal/domain/user"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

type AuthResponse struct {
	Token string           `json:"token"`
	User  *domainUser.User `json:"user"`
}

type UserResponse struct {
	User *domainUser.User `json:"user"`
}

type UpdateNameRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
