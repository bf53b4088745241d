package service

import (
	"context"

	"github.com/weiawesome/wes-io-social/internal/domain"
)

// UserService defines account operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req *domain.UpdateUserRequest) error
	DeleteUser(ctx context.Context, userID string) error
}

// FollowService defines follow graph operations.
type FollowService interface {
	// ToggleFollow makes authorID follow userID, or unfollow when already following.
	ToggleFollow(ctx context.Context, userID, authorID string) (domain.FollowOutcome, error)
	// RemoveFollower deletes the edge in which userID follows authorID.
	RemoveFollower(ctx context.Context, userID, authorID string) error
	ListFollowers(ctx context.Context, userID string) ([]*domain.User, error)
	ListFollowing(ctx context.Context, userID string) ([]*domain.User, error)
}

// PostService defines post operations.
type PostService interface {
	ListPosts(ctx context.Context) ([]*domain.Post, error)
	GetPost(ctx context.Context, postID string) (*domain.Post, error)
	ListUserPosts(ctx context.Context, userID string) ([]*domain.Post, error)
	CreatePost(ctx context.Context, req *domain.CreatePostRequest) (*domain.Post, error)
	UpdatePost(ctx context.Context, postID string, req *domain.UpdatePostRequest) error
	DeletePost(ctx context.Context, postID, authorID string) error
}

// CommentService defines comment operations.
type CommentService interface {
	ListComments(ctx context.Context, postID string) ([]*domain.Comment, error)
	CreateComment(ctx context.Context, postID string, req *domain.CommentRequest) (*domain.Comment, error)
	UpdateComment(ctx context.Context, postID, commentID string, req *domain.CommentRequest) error
	DeleteComment(ctx context.Context, postID, commentID, authorID string) error
}

// LikeService defines post and comment like operations.
type LikeService interface {
	ListPostLikes(ctx context.Context, postID string) ([]*domain.Like, error)
	LikePost(ctx context.Context, postID, authorID string) error
	UnlikePost(ctx context.Context, postID, authorID string) error
	LikeComment(ctx context.Context, postID, commentID, authorID string) error
	UnlikeComment(ctx context.Context, postID, commentID, authorID string) error
}
