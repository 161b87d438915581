// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/sectionconnection/users-api/internal/model"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope wraps every response body.
// Data is omitted only when nil, so an empty list still encodes as [].
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success builds a success envelope carrying data.
func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// SuccessWithMessage builds a success envelope carrying a message and data.
func SuccessWithMessage(message string, data any) Envelope {
	return Envelope{Status: StatusSuccess, Message: message, Data: data}
}

// Error builds an error envelope.
func Error(message string) Envelope {
	return Envelope{Status: StatusError, Message: message}
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a User model to UserResponse DTO.
func ToUserResponse(user *model.User) *UserResponse {
	return &UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserListResponse converts users to a non-nil slice of UserResponse.
func ToUserListResponse(users []*model.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *ToUserResponse(user)
	}
	return responses
}
