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

type likeServiceImpl struct {
	likes        repository.LikeRepository
	commentLikes repository.CommentLikeRepository
	guard        guard
	activity     activity
}

// NewLikeService creates a new like service.
func NewLikeService(
	likes repository.LikeRepository,
	commentLikes repository.CommentLikeRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
	users repository.UserRepository,
	pub pubsub.Publisher,
) LikeService {
	return &likeServiceImpl{
		likes:        likes,
		commentLikes: commentLikes,
		guard:        guard{users: users, posts: posts, comments: comments},
		activity:     newActivity(pub),
	}
}

// ListPostLikes returns the likes of a post with their authors.
func (s *likeServiceImpl) ListPostLikes(ctx context.Context, postID string) ([]*domain.Like, error) {
	if _, err := s.guard.post(ctx, postID); err != nil {
		return nil, err
	}
	likes, err := s.likes.ListByPost(ctx, postID)
	if err != nil {
		l := log.Ctx(ctx)
		l.Error().Err(err).Str(log.FieldPostID, postID).Msg("failed to list likes")
		return nil, err
	}
	return likes, nil
}

// LikePost records a like. Liking twice is an error, not a toggle.
func (s *likeServiceImpl) LikePost(ctx context.Context, postID, authorID string) error {
	l := log.Ctx(ctx)

	if authorID == "" {
		return missing(FieldAuthorID)
	}
	if _, err := s.guard.post(ctx, postID); err != nil {
		return err
	}
	if _, err := s.guard.user(ctx, authorID, ErrUserNotFound); err != nil {
		return err
	}

	if _, err := s.likes.Find(ctx, postID, authorID); err == nil {
		return ErrAlreadyLiked
	} else if !errors.Is(err, repository.ErrLikeNotFound) {
		l.Error().Err(err).Str(log.FieldPostID, postID).Msg("failed to look up like")
		return err
	}

	like := &domain.Like{PostID: postID, AuthorID: authorID}
	if err := s.likes.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrAlreadyLiked) {
			return ErrAlreadyLiked
		}
		l.Error().Err(err).Str(log.FieldPostID, postID).Msg("failed to like post")
		return err
	}

	audit.LogTarget(ctx, audit.ActionLikePost, authorID, postID, "post liked")
	s.activity.publish(ctx, pubsub.EntityLike, pubsub.EventPostLiked, postID, authorID, like)
	return nil
}

// UnlikePost removes a like. Unliking without a like is an error.
func (s *likeServiceImpl) UnlikePost(ctx context.Context, postID, authorID string) error {
	l := log.Ctx(ctx)

	if authorID == "" {
		return missing(FieldAuthorID)
	}
	if _, err := s.guard.post(ctx, postID); err != nil {
		return err
	}
	if _, err := s.guard.user(ctx, authorID, ErrUserNotFound); err != nil {
		return err
	}

	like, err := s.likes.Find(ctx, postID, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return ErrNotLiked
		}
		l.Error().Err(err).Str(log.FieldPostID, postID).Msg("failed to look up like")
		return err
	}
	if err := s.likes.Delete(ctx, like.ID); err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return ErrNotLiked
		}
		l.Error().Err(err).Str(log.FieldPostID, postID).Msg("failed to unlike post")
		return err
	}

	audit.LogTarget(ctx, audit.ActionUnlikePost, authorID, postID, "post unliked")
	s.activity.publish(ctx, pubsub.EntityLike, pubsub.EventPostUnliked, postID, authorID, like)
	return nil
}

// LikeComment records a like on a comment of postID.
func (s *likeServiceImpl) LikeComment(ctx context.Context, postID, commentID, authorID string) error {
	l := log.Ctx(ctx)

	if authorID == "" {
		return missing(FieldAuthorID)
	}
	if _, err := s.guard.user(ctx, authorID, ErrUserNotFound); err != nil {
		return err
	}
	if _, err := s.guard.commentInPost(ctx, postID, commentID); err != nil {
		return err
	}

	if _, err := s.commentLikes.Find(ctx, commentID, authorID); err == nil {
		return ErrAlreadyLiked
	} else if !errors.Is(err, repository.ErrCommentLikeNotFound) {
		l.Error().Err(err).Str(log.FieldCommentID, commentID).Msg("failed to look up comment like")
		return err
	}

	like := &domain.CommentLike{CommentID: commentID, AuthorID: authorID}
	if err := s.commentLikes.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrCommentAlreadyLiked) {
			return ErrAlreadyLiked
		}
		l.Error().Err(err).Str(log.FieldCommentID, commentID).Msg("failed to like comment")
		return err
	}

	audit.LogTarget(ctx, audit.ActionLikeComment, authorID, commentID, "comment liked")
	s.activity.publish(ctx, pubsub.EntityLike, pubsub.EventCommentLiked, commentID, authorID, like)
	return nil
}

// UnlikeComment removes a like on a comment of postID.
func (s *likeServiceImpl) UnlikeComment(ctx context.Context, postID, commentID, authorID string) error {
	l := log.Ctx(ctx)

	if authorID == "" {
		return missing(FieldAuthorID)
	}
	if _, err := s.guard.user(ctx, authorID, ErrUserNotFound); err != nil {
		return err
	}
	if _, err := s.guard.commentInPost(ctx, postID, commentID); err != nil {
		return err
	}

	like, err := s.commentLikes.Find(ctx, commentID, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentLikeNotFound) {
			return ErrNotLiked
		}
		l.Error().Err(err).Str(log.FieldCommentID, commentID).Msg("failed to look up comment like")
		return err
	}
	if err := s.commentLikes.Delete(ctx, like.ID); err != nil {
		if errors.Is(err, repository.ErrCommentLikeNotFound) {
			return ErrNotLiked
		}
		l.Error().Err(err).Str(log.FieldCommentID, commentID).Msg("failed to unlike comment")
		return err
	}

	audit.LogTarget(ctx, audit.ActionUnlikeComment, authorID, commentID, "comment unliked")
	s.activity.publish(ctx, pubsub.EntityLike, pubsub.EventCommentUnliked, commentID, authorID, like)
	return nil
}
