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

type commentServiceImpl struct {
	comments repository.CommentRepository
	guard    guard
	activity activity
}

// NewCommentService creates a new comment service.
func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	users repository.UserRepository,
	pub pubsub.Publisher,
) CommentService {
	return &commentServiceImpl{
		comments: comments,
		guard:    guard{users: users, posts: posts, comments: comments},
		activity: newActivity(pub),
	}
}

// ListComments returns the comments of a post with authors and like counts,
// newest first.
func (s *commentServiceImpl) ListComments(ctx context.Context, postID string) ([]*domain.Comment, error) {
	l := log.Ctx(ctx)

	if _, err := s.guard.post(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		l.Error().Err(err).Str(log.FieldPostID, postID).Msg("failed to list comments")
		return nil, err
	}

	ids := make([]string, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	counts, err := s.comments.Counts(ctx, ids)
	if err != nil {
		l.Error().Err(err).Str(log.FieldPostID, postID).Msg("failed to count comment likes")
		return nil, err
	}
	for _, c := range comments {
		c.Count = counts[c.ID]
	}
	return comments, nil
}

// CreateComment adds a comment by req.AuthorID to postID.
func (s *commentServiceImpl) CreateComment(ctx context.Context, postID string, req *domain.CommentRequest) (*domain.Comment, error) {
	l := log.Ctx(ctx)

	if req.AuthorID == "" {
		return nil, missing(FieldAuthorID)
	}
	if req.Content == "" {
		return nil, missing(FieldContent)
	}
	author, err := s.guard.user(ctx, req.AuthorID, ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.post(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:   postID,
		AuthorID: author.ID,
		Content:  req.Content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		l.Error().Err(err).Str(log.FieldPostID, postID).Msg("failed to create comment")
		return nil, err
	}
	comment.Author = &domain.Author{ID: author.ID, FirstName: author.FirstName}

	audit.LogTarget(ctx, audit.ActionCreateComment, author.ID, comment.ID, "comment created")
	s.activity.publish(ctx, pubsub.EntityComment, pubsub.EventCommentCreated, comment.ID, author.ID, comment)
	return comment, nil
}

// UpdateComment replaces the content of a comment. Only its author may edit it.
func (s *commentServiceImpl) UpdateComment(ctx context.Context, postID, commentID string, req *domain.CommentRequest) error {
	l := log.Ctx(ctx)

	if req.Content == "" {
		return missing(FieldContent)
	}
	if req.AuthorID == "" {
		return missing(FieldAuthorID)
	}
	comment, err := s.guard.commentInPost(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if err := ownedBy(ctx, pubsub.EntityComment, comment.ID, comment.AuthorID, req.AuthorID); err != nil {
		return err
	}

	if err := s.comments.Update(ctx, commentID, req.Content); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		l.Error().Err(err).Str(log.FieldCommentID, commentID).Msg("failed to update comment")
		return err
	}

	audit.LogTarget(ctx, audit.ActionUpdateComment, req.AuthorID, commentID, "comment updated")
	s.activity.publish(ctx, pubsub.EntityComment, pubsub.EventCommentUpdated, commentID, req.AuthorID, req)
	return nil
}

// DeleteComment removes a comment and its likes. Only its author may delete it.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, postID, commentID, authorID string) error {
	l := log.Ctx(ctx)

	if authorID == "" {
		return missing(FieldAuthorID)
	}
	comment, err := s.guard.commentInPost(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if err := ownedBy(ctx, pubsub.EntityComment, comment.ID, comment.AuthorID, authorID); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		l.Error().Err(err).Str(log.FieldCommentID, commentID).Msg("failed to delete comment")
		return err
	}

	audit.LogTarget(ctx, audit.ActionDeleteComment, authorID, commentID, "comment deleted")
	s.activity.publish(ctx, pubsub.EntityComment, pubsub.EventCommentDeleted, commentID, authorID, nil)
	return nil
}
