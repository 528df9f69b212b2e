package dto

import (
	"time"

	"github.com/spec-kit/account-service/internal/domain"
)

// BaseResponse is the envelope shared by every operation outcome. Callers
// branch on Success plus Message; Status mirrors the HTTP code so services
// stay transport-agnostic. Error carries diagnostic text on failures only.
type BaseResponse struct {
	Status  int    `json:"status,omitempty"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// UserPayload is the outward view of a user. It has no password field at all,
// so a hash can never cross the service boundary by accident.
type UserPayload struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginUserPayload is the login success body: identity plus the bearer token.
type LoginUserPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// UserResponse wraps a single user outcome.
type UserResponse struct {
	BaseResponse
	User *UserPayload `json:"user,omitempty"`
}

// UsersListResponse wraps the list outcome.
type UsersListResponse struct {
	BaseResponse
	Users []UserPayload `json:"users,omitempty"`
}

// LoginResponse wraps the login outcome.
type LoginResponse struct {
	BaseResponse
	User *LoginUserPayload `json:"user,omitempty"`
}

// NewUserPayload redacts a domain user for responses.
func NewUserPayload(u *domain.User) *UserPayload {
	if u == nil {
		return nil
	}
	return &UserPayload{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// OK builds a success envelope.
func OK(status int, message string) BaseResponse {
	return BaseResponse{Status: status, Success: true, Message: message}
}

// Fail builds a failure envelope.
func Fail(status int, message string) BaseResponse {
	return BaseResponse{Status: status, Success: false, Message: message}
}

// Internal builds the fixed internal-error envelope. The diagnostic text is
// the raw error message; callers must never pass anything containing a hash,
// token or password.
func Internal(err error) BaseResponse {
	resp := BaseResponse{Status: 500, Success: false, Message: MsgInternalServerError}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
