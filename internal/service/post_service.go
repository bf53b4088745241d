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

type postServiceImpl struct {
	posts    repository.PostRepository
	guard    guard
	activity activity
}

// NewPostService creates a new post service.
func NewPostService(posts repository.PostRepository, users repository.UserRepository, pub pubsub.Publisher) PostService {
	return &postServiceImpl{
		posts:    posts,
		guard:    guard{users: users, posts: posts},
		activity: newActivity(pub),
	}
}

// ListPosts returns every post with author and counts, newest first.
func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		l := log.Ctx(ctx)
		l.Error().Err(err).Msg("failed to list posts")
		return nil, err
	}
	return s.withCounts(ctx, posts)
}

// GetPost returns one post with author and counts.
func (s *postServiceImpl) GetPost(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := s.guard.post(ctx, postID)
	if err != nil {
		return nil, err
	}
	if _, err := s.withCounts(ctx, []*domain.Post{post}); err != nil {
		return nil, err
	}
	return post, nil
}

// ListUserPosts returns the posts of userID, newest first.
func (s *postServiceImpl) ListUserPosts(ctx context.Context, userID string) ([]*domain.Post, error) {
	if _, err := s.guard.user(ctx, userID, ErrUserNotFound); err != nil {
		return nil, err
	}
	posts, err := s.posts.ListByAuthor(ctx, userID)
	if err != nil {
		l := log.Ctx(ctx)
		l.Error().Err(err).Str(log.FieldUserID, userID).Msg("failed to list user posts")
		return nil, err
	}
	return s.withCounts(ctx, posts)
}

func (s *postServiceImpl) withCounts(ctx context.Context, posts []*domain.Post) ([]*domain.Post, error) {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	counts, err := s.posts.Counts(ctx, ids)
	if err != nil {
		l := log.Ctx(ctx)
		l.Error().Err(err).Msg("failed to count post records")
		return nil, err
	}
	for _, p := range posts {
		p.Count = counts[p.ID]
	}
	return posts, nil
}

// CreatePost creates a post owned by req.AuthorID.
func (s *postServiceImpl) CreatePost(ctx context.Context, req *domain.CreatePostRequest) (*domain.Post, error) {
	l := log.Ctx(ctx)

	if req.Title == "" {
		return nil, missing(FieldTitle)
	}
	if req.AuthorID == "" {
		return nil, missing(FieldAuthorID)
	}
	author, err := s.guard.user(ctx, req.AuthorID, ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: author.ID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		l.Error().Err(err).Str(log.FieldActorID, req.AuthorID).Msg("failed to create post")
		return nil, err
	}
	post.Author = &domain.Author{ID: author.ID, FirstName: author.FirstName}

	audit.LogTarget(ctx, audit.ActionCreatePost, author.ID, post.ID, "post created")
	s.activity.publish(ctx, pubsub.EntityPost, pubsub.EventPostCreated, post.ID, author.ID, post)
	return post, nil
}

// UpdatePost edits a post. Only the stored author may edit it.
func (s *postServiceImpl) UpdatePost(ctx context.Context, postID string, req *domain.UpdatePostRequest) error {
	l := log.Ctx(ctx)

	if req.Title == "" {
		return missing(FieldTitle)
	}
	post, err := s.guard.post(ctx, postID)
	if err != nil {
		return err
	}
	if err := ownedBy(ctx, pubsub.EntityPost, post.ID, post.AuthorID, req.AuthorID); err != nil {
		return err
	}

	if err := s.posts.Update(ctx, postID, req.Title, req.Content); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return ErrPostNotFound
		}
		l.Error().Err(err).Str(log.FieldPostID, postID).Msg("failed to update post")
		return err
	}

	audit.LogTarget(ctx, audit.ActionUpdatePost, req.AuthorID, postID, "post updated")
	s.activity.publish(ctx, pubsub.EntityPost, pubsub.EventPostUpdated, postID, req.AuthorID, req)
	return nil
}

// DeletePost removes a post with its comments and likes. Only the stored
// author may delete it.
func (s *postServiceImpl) DeletePost(ctx context.Context, postID, authorID string) error {
	l := log.Ctx(ctx)

	post, err := s.guard.post(ctx, postID)
	if err != nil {
		return err
	}
	if err := ownedBy(ctx, pubsub.EntityPost, post.ID, post.AuthorID, authorID); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return ErrPostNotFound
		}
		l.Error().Err(err).Str(log.FieldPostID, postID).Msg("failed to delete post")
		return err
	}

	audit.LogTarget(ctx, audit.ActionDeletePost, authorID, postID, "post deleted")
	s.activity.publish(ctx, pubsub.EntityPost, pubsub.EventPostDeleted, postID, authorID, nil)
	return nil
}
