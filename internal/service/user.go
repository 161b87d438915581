// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sectionconnection/users-api/internal/metrics"
	"github.com/sectionconnection/users-api/internal/model"
	"github.com/sectionconnection/users-api/internal/repository"
)

// Service errors.
var (
	ErrMissingFields    = errors.New("missing username or email")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrQueryFailed      = errors.New("query failed")
)

// UserRepository is the storage the service needs.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	CreateUser(ctx context.Context, username, email string) (*model.User, error)
}

// CreateUserInput defines input for creating a user.
// Both fields must be non-empty.
type CreateUserInput struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
}

// UserService handles user business logic.
type UserService struct {
	repo     UserRepository
	validate *validator.Validate
	metrics  metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(repo UserRepository, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		metrics:  recorder,
	}
}

// ListUsers returns all users, newest first. The result is never nil on success.
func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, s.classify(metrics.OpListUsers, err)
	}
	if users == nil {
		users = []*model.User{}
	}
	return users, nil
}

// CreateUser validates input and inserts exactly one user.
// Validation runs before the repository is touched.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		s.metrics.IncValidationFailure()
		return nil, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	user, err := s.repo.CreateUser(ctx, input.Username, input.Email)
	if err != nil {
		return nil, s.classify(metrics.OpCreateUser, err)
	}

	s.metrics.IncUserCreated()
	return user, nil
}

// classify maps a repository error to a service error kind, keeping the cause in the chain.
func (s *UserService) classify(op string, err error) error {
	if errors.Is(err, repository.ErrUnavailable) {
		s.metrics.IncStoreFailure(op, metrics.FailureConnection)
		return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
	}
	s.metrics.IncStoreFailure(op, metrics.FailureQuery)
	return fmt.Errorf("%w: %s: %w", ErrQueryFailed, op, err)
}
