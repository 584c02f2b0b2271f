package service

import (
	"context"

	"picnic/internal/picnic/models"
	dErrors "picnic/pkg/domain-errors"
)

// RegisterUser creates a user. Duplicate name and surname pairs are allowed.
func (s *Service) RegisterUser(ctx context.Context, name, surname string, age *int) (*models.User, error) {
	user, err := models.NewUser(name, surname, age)
	if err != nil {
		return nil, toValidation(err)
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	s.logInfo(ctx, "user registered", "user_id", user.ID)
	if s.metrics != nil {
		s.metrics.IncrementUsersRegistered()
	}
	return user, nil
}

// ListUsers returns users in the requested order.
func (s *Service) ListUsers(ctx context.Context, order models.UserOrder) ([]*models.User, error) {
	users, err := s.users.ListUsers(ctx, order)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list users")
	}
	return users, nil
}
