package repository

import (
	"context"
	"errors"

	"github.com/weiawesome/wes-io-social/internal/domain"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("email already exists")
	ErrPostNotFound        = errors.New("post not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrLikeNotFound        = errors.New("like not found")
	ErrAlreadyLiked        = errors.New("already liked")
	ErrCommentLikeNotFound = errors.New("comment like not found")
	ErrCommentAlreadyLiked = errors.New("comment already liked")
	ErrFollowNotFound      = errors.New("follow relationship not found")
	ErrAlreadyFollowing    = errors.New("already following")
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Update changes only the non-nil fields.
	Update(ctx context.Context, id string, firstName, emailAddress *string) error
	// Delete removes the user; dependent rows go with it through ON DELETE CASCADE.
	Delete(ctx context.Context, id string) error
	Counts(ctx context.Context, ids []string) (map[string]*domain.UserCount, error)
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error)
	// Update sets the title, the content when non-nil, and marks the post updated.
	Update(ctx context.Context, id, title string, content *string) error
	Delete(ctx context.Context, id string) error
	Counts(ctx context.Context, ids []string) (map[string]*domain.PostCount, error)
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	Update(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
	Counts(ctx context.Context, ids []string) (map[string]*domain.CommentCount, error)
}

// LikeRepository defines persistence operations for post likes.
type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	Find(ctx context.Context, postID, authorID string) (*domain.Like, error)
	Delete(ctx context.Context, id string) error
	ListByPost(ctx context.Context, postID string) ([]*domain.Like, error)
}

// CommentLikeRepository defines persistence operations for comment likes.
type CommentLikeRepository interface {
	Create(ctx context.Context, like *domain.CommentLike) error
	Find(ctx context.Context, commentID, authorID string) (*domain.CommentLike, error)
	Delete(ctx context.Context, id string) error
}

// FollowRepository defines persistence operations for follow relationships.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID string) (*domain.Follow, error)
	Unfollow(ctx context.Context, followerID, followingID string) error
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
	// ListFollowers returns the users following userID, newest edge first.
	ListFollowers(ctx context.Context, userID string) ([]*domain.User, error)
	// ListFollowing returns the users userID follows, newest edge first.
	ListFollowing(ctx context.Context, userID string) ([]*domain.User, error)
}
