package handler

import (
	"welfare/internal/users/models"
	"welfare/internal/users/service"
	dErrors "welfare/pkg/domain-errors"
	pstrings "welfare/pkg/platform/strings"
	"welfare/pkg/validation"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// Normalize trims the username only; passwords are taken verbatim.
func (r *LoginRequest) Normalize() {
	if r == nil {
		return
	}
	pstrings.TrimSpace(&r.Username)
}

func (r *LoginRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

// UserRequest is the body of POST /users and PUT /users/{id}.
type UserRequest struct {
	Username   string `json:"username" validate:"required,max=64"`
	Password   string `json:"password" validate:"max=72"`
	LastName   string `json:"last_name" validate:"required,max=128"`
	FirstName  string `json:"first_name" validate:"required,max=128"`
	MiddleName string `json:"middle_name" validate:"max=128"`
	Email      string `json:"email" validate:"omitempty,max=255"`
	Phone      string `json:"phone" validate:"max=32"`
	Role       string `json:"role" validate:"required,oneof=admin operator citizen"`
}

func (r *UserRequest) Normalize() {
	if r == nil {
		return
	}
	pstrings.TrimSpace(&r.Username, &r.LastName, &r.FirstName, &r.MiddleName, &r.Email, &r.Phone, &r.Role)
}

func (r *UserRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

func (r *UserRequest) ToCommand() *service.UserCommand {
	return &service.UserCommand{
		Username:   r.Username,
		Password:   r.Password,
		LastName:   r.LastName,
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		Email:      r.Email,
		Phone:      r.Phone,
		Role:       models.Role(r.Role),
	}
}
