package handler

import (
	"time"

	"welfare/internal/users/models"
	"welfare/pkg/validation"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	FullName    string     `json:"full_name"`
	LastName    string     `json:"last_name"`
	FirstName   string     `json:"first_name"`
	MiddleName  string     `json:"middle_name,omitempty"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user"`
}

func toUserResponse(u *models.User) *UserResponse {
	resp := &UserResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		FullName:    u.FullName(),
		LastName:    u.LastName,
		FirstName:   u.FirstName,
		MiddleName:  u.MiddleName,
		Email:       u.Email,
		Role:        string(u.Role),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	if u.Phone != "" {
		resp.Phone = validation.FormatPhone(u.Phone)
	}
	return resp
}

func toUserResponses(us []*models.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, toUserResponse(u))
	}
	return out
}
