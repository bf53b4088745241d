package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/idgen"
)

// GormCommentLikeRepository implements CommentLikeRepository using GORM.
type GormCommentLikeRepository struct {
	db  *gorm.DB
	ids idgen.Generator
}

// NewGormCommentLikeRepository creates a new GORM-based comment like repository.
func NewGormCommentLikeRepository(db *gorm.DB, ids idgen.Generator) *GormCommentLikeRepository {
	return &GormCommentLikeRepository{db: db, ids: ids}
}

// Create records a comment like.
func (r *GormCommentLikeRepository) Create(ctx context.Context, like *domain.CommentLike) error {
	id, err := r.ids.Generate()
	if err != nil {
		return err
	}
	like.ID = id

	model := &domain.CommentLikeModel{ID: like.ID, CommentID: like.CommentID, AuthorID: like.AuthorID}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrCommentAlreadyLiked
		}
		return err
	}

	like.CreatedAt = model.CreatedAt
	return nil
}

// Find returns the like of authorID on commentID.
func (r *GormCommentLikeRepository) Find(ctx context.Context, commentID, authorID string) (*domain.CommentLike, error) {
	var model domain.CommentLikeModel
	err := r.db.WithContext(ctx).
		Where("comment_id = ? AND author_id = ?", commentID, authorID).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCommentLikeNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Delete removes a comment like by id.
func (r *GormCommentLikeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.CommentLikeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentLikeNotFound
	}
	return nil
}

// Ensure interface is satisfied at compile time.
var _ CommentLikeRepository = (*GormCommentLikeRepository)(nil)
