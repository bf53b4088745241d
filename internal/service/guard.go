package service

import (
	"context"
	"errors"

	"github.com/weiawesome/wes-io-social/internal/audit"
	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/repository"
)

// guard resolves the records a mutation depends on and maps repository
// misses onto service errors.
type guard struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
}

// user loads id, returning notFound when it does not exist.
func (g guard) user(ctx context.Context, id string, notFound error) (*domain.User, error) {
	u, err := g.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	return u, nil
}

func (g guard) post(ctx context.Context, id string) (*domain.Post, error) {
	p, err := g.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

// commentInPost loads commentID and checks it belongs to postID.
func (g guard) commentInPost(ctx context.Context, postID, commentID string) (*domain.Comment, error) {
	c, err := g.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if c.PostID != postID {
		return nil, ErrCommentNotInPost
	}
	return c, nil
}

// ownedBy fails with ErrNotOwner unless actorID is the stored owner.
func ownedBy(ctx context.Context, kind, recordID, ownerID, actorID string) error {
	if ownerID == actorID {
		return nil
	}
	audit.LogWithDetail(ctx, audit.ActionOwnershipDenied, actorID, kind+":"+recordID, "mutation rejected: not the owner")
	return ErrNotOwner
}
