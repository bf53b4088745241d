package repository

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/idgen"
)

// GormPostRepository implements PostRepository using GORM.
type GormPostRepository struct {
	db  *gorm.DB
	ids idgen.Generator
}

// NewGormPostRepository creates a new GORM-based post repository.
func NewGormPostRepository(db *gorm.DB, ids idgen.Generator) *GormPostRepository {
	return &GormPostRepository{db: db, ids: ids}
}

// Create creates a new post.
func (r *GormPostRepository) Create(ctx context.Context, post *domain.Post) error {
	id, err := r.ids.Generate()
	if err != nil {
		return err
	}
	post.ID = id
	post.Updated = false

	model := domain.PostToModel(post)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return err
	}

	post.CreatedAt = model.CreatedAt
	post.UpdatedAt = model.UpdatedAt
	return nil
}

// GetByID retrieves a post with its author.
func (r *GormPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var model domain.PostModel
	err := r.db.WithContext(ctx).Preload("Author").First(&model, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns every post with its author, newest first.
func (r *GormPostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListByAuthor returns the posts of one author, newest first.
func (r *GormPostRepository) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error) {
	return r.find(r.db.WithContext(ctx).Where("author_id = ?", authorID))
}

func (r *GormPostRepository) find(q *gorm.DB) ([]*domain.Post, error) {
	var models []domain.PostModel
	if err := q.Preload("Author").Order(newestFirst).Find(&models).Error; err != nil {
		return nil, err
	}
	posts := make([]*domain.Post, len(models))
	for i := range models {
		posts[i] = models[i].ToDomain()
	}
	return posts, nil
}

// Update sets the title and optionally the content, and flags the post as edited.
func (r *GormPostRepository) Update(ctx context.Context, id, title string, content *string) error {
	updates := map[string]interface{}{
		"title":   title,
		"updated": true,
	}
	if content != nil {
		updates["content"] = *content
	}

	result := r.db.WithContext(ctx).Model(&domain.PostModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// Delete removes a post together with its comments and likes.
func (r *GormPostRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.PostModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// Counts returns the comment and like counts of each post in ids.
func (r *GormPostRepository) Counts(ctx context.Context, ids []string) (map[string]*domain.PostCount, error) {
	var comments, likes map[string]int64

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		comments, err = countBy(gCtx, r.db, &domain.CommentModel{}, "post_id", ids)
		return err
	})
	g.Go(func() (err error) {
		likes, err = countBy(gCtx, r.db, &domain.LikeModel{}, "post_id", ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*domain.PostCount, len(ids))
	for _, id := range ids {
		out[id] = &domain.PostCount{Comments: comments[id], Likes: likes[id]}
	}
	return out, nil
}

// Ensure interface is satisfied at compile time.
var _ PostRepository = (*GormPostRepository)(nil)
