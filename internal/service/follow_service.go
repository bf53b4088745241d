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

type followServiceImpl struct {
	follows  repository.FollowRepository
	guard    guard
	activity activity
}

// NewFollowService creates a new follow service.
func NewFollowService(follows repository.FollowRepository, users repository.UserRepository, pub pubsub.Publisher) FollowService {
	return &followServiceImpl{
		follows:  follows,
		guard:    guard{users: users},
		activity: newActivity(pub),
	}
}

// ToggleFollow flips the edge authorID -> userID. The self-follow check runs
// before either user is looked up.
func (s *followServiceImpl) ToggleFollow(ctx context.Context, userID, authorID string) (domain.FollowOutcome, error) {
	l := log.Ctx(ctx)

	if userID == "" || authorID == "" {
		return 0, missing(FieldAuthorID)
	}
	if userID == authorID {
		return 0, ErrSelfFollow
	}
	if _, err := s.guard.user(ctx, userID, ErrUserNotFound); err != nil {
		return 0, err
	}
	if _, err := s.guard.user(ctx, authorID, ErrAuthorNotFound); err != nil {
		return 0, err
	}

	following, err := s.follows.IsFollowing(ctx, authorID, userID)
	if err != nil {
		l.Error().Err(err).Str(log.FieldUserID, userID).Msg("failed to check follow edge")
		return 0, err
	}

	if following {
		// A concurrent unfollow may have removed the edge already; the end
		// state is the same.
		if err := s.follows.Unfollow(ctx, authorID, userID); err != nil && !errors.Is(err, repository.ErrFollowNotFound) {
			l.Error().Err(err).Str(log.FieldUserID, userID).Msg("failed to unfollow")
			return 0, err
		}
		audit.LogTarget(ctx, audit.ActionUnfollowUser, authorID, userID, "user unfollowed")
		s.activity.publish(ctx, pubsub.EntityFollow, pubsub.EventUserUnfollowed, userID, authorID, nil)
		return domain.Unfollowed, nil
	}

	edge, err := s.follows.Follow(ctx, authorID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyFollowing) {
			return 0, ErrAlreadyFollowing
		}
		l.Error().Err(err).Str(log.FieldUserID, userID).Msg("failed to follow")
		return 0, err
	}
	audit.LogTarget(ctx, audit.ActionFollowUser, authorID, userID, "user followed")
	s.activity.publish(ctx, pubsub.EntityFollow, pubsub.EventUserFollowed, userID, authorID, edge)
	return domain.Followed, nil
}

// RemoveFollower lets authorID drop userID from its followers.
func (s *followServiceImpl) RemoveFollower(ctx context.Context, userID, authorID string) error {
	l := log.Ctx(ctx)

	if userID == "" || authorID == "" {
		return missing(FieldAuthorID)
	}
	if userID == authorID {
		return ErrSelfFollow
	}
	if _, err := s.guard.user(ctx, userID, ErrUserNotFound); err != nil {
		return err
	}
	if _, err := s.guard.user(ctx, authorID, ErrAuthorNotFound); err != nil {
		return err
	}

	if err := s.follows.Unfollow(ctx, userID, authorID); err != nil {
		if errors.Is(err, repository.ErrFollowNotFound) {
			return ErrNotFollower
		}
		l.Error().Err(err).Str(log.FieldUserID, userID).Msg("failed to remove follower")
		return err
	}

	audit.LogTarget(ctx, audit.ActionRemoveFollower, authorID, userID, "follower removed")
	s.activity.publish(ctx, pubsub.EntityFollow, pubsub.EventFollowerRemoved, authorID, authorID, &domain.Follow{
		FollowerID:  userID,
		FollowingID: authorID,
	})
	return nil
}

// ListFollowers returns the users following userID.
func (s *followServiceImpl) ListFollowers(ctx context.Context, userID string) ([]*domain.User, error) {
	if _, err := s.guard.user(ctx, userID, ErrUserNotFound); err != nil {
		return nil, err
	}
	users, err := s.follows.ListFollowers(ctx, userID)
	if err != nil {
		l := log.Ctx(ctx)
		l.Error().Err(err).Str(log.FieldUserID, userID).Msg("failed to list followers")
		return nil, err
	}
	return users, nil
}

// ListFollowing returns the users userID follows.
func (s *followServiceImpl) ListFollowing(ctx context.Context, userID string) ([]*domain.User, error) {
	if _, err := s.guard.user(ctx, userID, ErrUserNotFound); err != nil {
		return nil, err
	}
	users, err := s.follows.ListFollowing(ctx, userID)
	if err != nil {
		l := log.Ctx(ctx)
		l.Error().Err(err).Str(log.FieldUserID, userID).Msg("failed to list following")
		return nil, err
	}
	return users, nil
}
