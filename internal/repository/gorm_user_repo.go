package repository

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/idgen"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db  *gorm.DB
	ids idgen.Generator
}

// NewGormUserRepository creates a new GORM-based user repository.
func NewGormUserRepository(db *gorm.DB, ids idgen.Generator) *GormUserRepository {
	return &GormUserRepository{db: db, ids: ids}
}

// Create creates a new user.
func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	id, err := r.ids.Generate()
	if err != nil {
		return err
	}
	user.ID = id

	model := domain.UserToModel(user)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return err
	}

	user.CreatedAt = model.CreatedAt
	return nil
}

// GetByID retrieves a user by ID.
func (r *GormUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var model domain.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns every user, newest first.
func (r *GormUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var models []domain.UserModel
	if err := r.db.WithContext(ctx).Order(newestFirst).Find(&models).Error; err != nil {
		return nil, err
	}
	return usersToDomain(models), nil
}

// Update changes the provided fields of a user.
func (r *GormUserRepository) Update(ctx context.Context, id string, firstName, emailAddress *string) error {
	updates := make(map[string]interface{}, 2)
	if firstName != nil {
		updates["first_name"] = *firstName
	}
	if emailAddress != nil {
		updates["email_address"] = *emailAddress
	}
	if len(updates) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}

	result := r.db.WithContext(ctx).Model(&domain.UserModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ErrEmailExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes a user.
func (r *GormUserRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Counts returns the dependent-record counts of each user in ids. The six
// grouped counts run concurrently.
func (r *GormUserRepository) Counts(ctx context.Context, ids []string) (map[string]*domain.UserCount, error) {
	var posts, comments, likes, commentLikes, followers, following map[string]int64

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		posts, err = countBy(gCtx, r.db, &domain.PostModel{}, "author_id", ids)
		return err
	})
	g.Go(func() (err error) {
		comments, err = countBy(gCtx, r.db, &domain.CommentModel{}, "author_id", ids)
		return err
	})
	g.Go(func() (err error) {
		likes, err = countBy(gCtx, r.db, &domain.LikeModel{}, "author_id", ids)
		return err
	})
	g.Go(func() (err error) {
		commentLikes, err = countBy(gCtx, r.db, &domain.CommentLikeModel{}, "author_id", ids)
		return err
	})
	g.Go(func() (err error) {
		followers, err = countBy(gCtx, r.db, &domain.FollowModel{}, "following_id", ids)
		return err
	})
	g.Go(func() (err error) {
		following, err = countBy(gCtx, r.db, &domain.FollowModel{}, "follower_id", ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*domain.UserCount, len(ids))
	for _, id := range ids {
		out[id] = &domain.UserCount{
			Posts:        posts[id],
			Comments:     comments[id],
			Likes:        likes[id],
			CommentLikes: commentLikes[id],
			Followers:    followers[id],
			Following:    following[id],
		}
	}
	return out, nil
}

func usersToDomain(models []domain.UserModel) []*domain.User {
	users := make([]*domain.User, len(models))
	for i := range models {
		users[i] = models[i].ToDomain()
	}
	return users
}

// Ensure interface is satisfied at compile time.
var _ UserRepository = (*GormUserRepository)(nil)
