package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/idgen"
)

// GormCommentRepository implements CommentRepository using GORM.
type GormCommentRepository struct {
	db  *gorm.DB
	ids idgen.Generator
}

// NewGormCommentRepository creates a new GORM-based comment repository.
func NewGormCommentRepository(db *gorm.DB, ids idgen.Generator) *GormCommentRepository {
	return &GormCommentRepository{db: db, ids: ids}
}

// Create creates a new comment.
func (r *GormCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	id, err := r.ids.Generate()
	if err != nil {
		return err
	}
	comment.ID = id
	comment.Updated = false

	model := domain.CommentToModel(comment)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return err
	}

	comment.CreatedAt = model.CreatedAt
	comment.UpdatedAt = model.UpdatedAt
	return nil
}

// GetByID retrieves a comment with its author.
func (r *GormCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	var model domain.CommentModel
	err := r.db.WithContext(ctx).Preload("Author").First(&model, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListByPost returns the comments of a post with their authors, newest first.
func (r *GormCommentRepository) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	var models []domain.CommentModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order(newestFirst).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*domain.Comment, len(models))
	for i := range models {
		comments[i] = models[i].ToDomain()
	}
	return comments, nil
}

// Update replaces the content and flags the comment as edited.
func (r *GormCommentRepository) Update(ctx context.Context, id, content string) error {
	result := r.db.WithContext(ctx).Model(&domain.CommentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"content": content,
			"updated": true,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// Delete removes a comment together with its likes.
func (r *GormCommentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.CommentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// Counts returns the like count of each comment in ids.
func (r *GormCommentRepository) Counts(ctx context.Context, ids []string) (map[string]*domain.CommentCount, error) {
	likes, err := countBy(ctx, r.db, &domain.CommentLikeModel{}, "comment_id", ids)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*domain.CommentCount, len(ids))
	for _, id := range ids {
		out[id] = &domain.CommentCount{Likes: likes[id]}
	}
	return out, nil
}

// Ensure interface is satisfied at compile time.
var _ CommentRepository = (*GormCommentRepository)(nil)
