package service

import (
	"context"
	"errors"

	"github.com/weiawesome/wes-io-social/internal/audit"
	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/repository"
	"github.com/weiawesome/wes-io-social/pkg/log"
	"github.com/weiawesome/wes-io-social/pkg/pubsub"
)

// userServiceImpl implements UserService interface.
type userServiceImpl struct {
	users    repository.UserRepository
	activity activity
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, pub pubsub.Publisher) UserService {
	return &userServiceImpl{users: users, activity: newActivity(pub)}
}

// ListUsers returns every user with dependent counts, newest first.
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	l := log.Ctx(ctx)

	users, err := s.users.List(ctx)
	if err != nil {
		l.Error().Err(err).Msg("failed to list users")
		return nil, err
	}

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	counts, err := s.users.Counts(ctx, ids)
	if err != nil {
		l.Error().Err(err).Msg("failed to count user records")
		return nil, err
	}
	for _, u := range users {
		u.Count = counts[u.ID]
	}
	return users, nil
}

// GetUser retrieves a user by ID with dependent counts.
func (s *userServiceImpl) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	l := log.Ctx(ctx)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		l.Error().Err(err).Str(log.FieldUserID, userID).Msg("failed to get user")
		return nil, err
	}

	counts, err := s.users.Counts(ctx, []string{user.ID})
	if err != nil {
		l.Error().Err(err).Str(log.FieldUserID, userID).Msg("failed to count user records")
		return nil, err
	}
	user.Count = counts[user.ID]
	return user, nil
}

// CreateUser creates an account. Email presence is checked before the name.
func (s *userServiceImpl) CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	l := log.Ctx(ctx)

	if req.EmailAddress == "" {
		return nil, missing(FieldEmailAddress)
	}
	if req.FirstName == "" {
		return nil, missing(FieldFirstName)
	}

	user := &domain.User{
		FirstName:    req.FirstName,
		EmailAddress: req.EmailAddress,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		l.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	audit.Log(ctx, audit.ActionCreateUser, user.ID, "user created")
	s.activity.publish(ctx, pubsub.EntityUser, pubsub.EventUserCreated, user.ID, user.ID, user)
	return user, nil
}

// UpdateUser changes the name and/or email of an account. Empty fields are
// left untouched.
func (s *userServiceImpl) UpdateUser(ctx context.Context, userID string, req *domain.UpdateUserRequest) error {
	l := log.Ctx(ctx)

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		l.Error().Err(err).Str(log.FieldUserID, userID).Msg("failed to get user")
		return err
	}

	firstName, email := nonEmpty(req.FirstName), nonEmpty(req.EmailAddress)
	if err := s.users.Update(ctx, userID, firstName, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailExists):
			return ErrEmailExists
		case errors.Is(err, repository.ErrUserNotFound):
			return ErrUserNotFound
		}
		l.Error().Err(err).Str(log.FieldUserID, userID).Msg("failed to update user")
		return err
	}

	audit.Log(ctx, audit.ActionUpdateUser, userID, "user updated")
	s.activity.publish(ctx, pubsub.EntityUser, pubsub.EventUserUpdated, userID, userID, req)
	return nil
}

// DeleteUser removes an account and everything that depends on it.
func (s *userServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	l := log.Ctx(ctx)

	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		l.Error().Err(err).Str(log.FieldUserID, userID).Msg("failed to delete user")
		return err
	}

	audit.Log(ctx, audit.ActionDeleteUser, userID, "user deleted")
	s.activity.publish(ctx, pubsub.EntityUser, pubsub.EventUserDeleted, userID, userID, nil)
	return nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
