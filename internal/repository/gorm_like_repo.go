package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/idgen"
)

// GormLikeRepository implements LikeRepository using GORM.
type GormLikeRepository struct {
	db  *gorm.DB
	ids idgen.Generator
}

// NewGormLikeRepository creates a new GORM-based post like repository.
func NewGormLikeRepository(db *gorm.DB, ids idgen.Generator) *GormLikeRepository {
	return &GormLikeRepository{db: db, ids: ids}
}

// Create records a like. A second like by the same author on the same post
// violates uidx_like_post_author and returns ErrAlreadyLiked.
func (r *GormLikeRepository) Create(ctx context.Context, like *domain.Like) error {
	id, err := r.ids.Generate()
	if err != nil {
		return err
	}
	like.ID = id

	model := &domain.LikeModel{ID: like.ID, PostID: like.PostID, AuthorID: like.AuthorID}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyLiked
		}
		return err
	}

	like.CreatedAt = model.CreatedAt
	return nil
}

// Find returns the like of authorID on postID.
func (r *GormLikeRepository) Find(ctx context.Context, postID, authorID string) (*domain.Like, error) {
	var model domain.LikeModel
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND author_id = ?", postID, authorID).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrLikeNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Delete removes a like by id.
func (r *GormLikeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.LikeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

// ListByPost returns the likes of a post with their authors, newest first.
func (r *GormLikeRepository) ListByPost(ctx context.Context, postID string) ([]*domain.Like, error) {
	var models []domain.LikeModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order(newestFirst).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	likes := make([]*domain.Like, len(models))
	for i := range models {
		likes[i] = models[i].ToDomain()
	}
	return likes, nil
}

// Ensure interface is satisfied at compile time.
var _ LikeRepository = (*GormLikeRepository)(nil)
