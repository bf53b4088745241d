package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/weiawesome/wes-io-social/internal/domain"
)

// GormFollowRepository implements FollowRepository using GORM.
type GormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository creates a new GORM-backed follow repository.
func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

// Follow creates a follow relationship between two users.
func (r *GormFollowRepository) Follow(ctx context.Context, followerID, followingID string) (*domain.Follow, error) {
	model := domain.FollowModel{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyFollowing
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Unfollow removes a follow relationship between two users.
func (r *GormFollowRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&domain.FollowModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

// IsFollowing checks if followerID follows followingID.
func (r *GormFollowRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.FollowModel{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFollowers returns the users following userID.
func (r *GormFollowRepository) ListFollowers(ctx context.Context, userID string) ([]*domain.User, error) {
	return r.listJoined(ctx, "follows.follower_id", "follows.following_id", userID)
}

// ListFollowing returns the users userID follows.
func (r *GormFollowRepository) ListFollowing(ctx context.Context, userID string) ([]*domain.User, error) {
	return r.listJoined(ctx, "follows.following_id", "follows.follower_id", userID)
}

// listJoined selects the users on the joinColumn side of edges whose
// filterColumn equals userID.
func (r *GormFollowRepository) listJoined(ctx context.Context, joinColumn, filterColumn, userID string) ([]*domain.User, error) {
	var models []domain.UserModel
	err := r.db.WithContext(ctx).
		Model(&domain.UserModel{}).
		Select("users.*").
		Joins("JOIN follows ON "+joinColumn+" = users.id").
		Where(filterColumn+" = ?", userID).
		Order("follows.created_at DESC, users.id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return usersToDomain(models), nil
}

// Ensure interface is satisfied at compile time.
var _ FollowRepository = (*GormFollowRepository)(nil)
