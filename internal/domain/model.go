package domain

import (
	"time"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID           string    `gorm:"type:varchar(36);primaryKey"`
	FirstName    string    `gorm:"column:first_name;type:varchar(100);not null"`
	EmailAddress string    `gorm:"column:email_address;type:varchar(255);uniqueIndex;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
}

func (UserModel) TableName() string { return "users" }

// PostModel is the GORM model for the posts table.
type PostModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	AuthorID  string    `gorm:"column:author_id;type:varchar(36);index;not null"`
	Author    UserModel `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Updated   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (PostModel) TableName() string { return "posts" }

// CommentModel is the GORM model for the comments table.
type CommentModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	PostID    string    `gorm:"column:post_id;type:varchar(36);index;not null"`
	Post      PostModel `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	AuthorID  string    `gorm:"column:author_id;type:varchar(36);index;not null"`
	Author    UserModel `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Content   string    `gorm:"type:text;not null"`
	Updated   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (CommentModel) TableName() string { return "comments" }

// LikeModel is the GORM model for the likes table.
// At most one row per (post_id, author_id).
type LikeModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	PostID    string    `gorm:"column:post_id;type:varchar(36);not null;uniqueIndex:uidx_like_post_author"`
	Post      PostModel `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	AuthorID  string    `gorm:"column:author_id;type:varchar(36);not null;uniqueIndex:uidx_like_post_author;index"`
	Author    UserModel `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (LikeModel) TableName() string { return "likes" }

// CommentLikeModel is the GORM model for the comment_likes table.
// At most one row per (comment_id, author_id).
type CommentLikeModel struct {
	ID        string       `gorm:"type:varchar(36);primaryKey"`
	CommentID string       `gorm:"column:comment_id;type:varchar(36);not null;uniqueIndex:uidx_comment_like_author"`
	Comment   CommentModel `gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE"`
	AuthorID  string       `gorm:"column:author_id;type:varchar(36);not null;uniqueIndex:uidx_comment_like_author;index"`
	Author    UserModel    `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time    `gorm:"autoCreateTime"`
}

func (CommentLikeModel) TableName() string { return "comment_likes" }

// FollowModel is the GORM model for the follows table. The composite primary
// key allows one edge per ordered (follower, following) pair.
type FollowModel struct {
	FollowerID  string    `gorm:"column:follower_id;type:varchar(36);primaryKey"`
	Follower    UserModel `gorm:"foreignKey:FollowerID;references:ID;constraint:OnDelete:CASCADE"`
	FollowingID string    `gorm:"column:following_id;type:varchar(36);primaryKey;index"`
	Following   UserModel `gorm:"foreignKey:FollowingID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (FollowModel) TableName() string { return "follows" }

// Models lists every model in migration order (parents before children).
func Models() []interface{} {
	return []interface{}{
		&UserModel{},
		&PostModel{},
		&CommentModel{},
		&LikeModel{},
		&CommentLikeModel{},
		&FollowModel{},
	}
}

// ToDomain converts UserModel to domain User.
func (m *UserModel) ToDomain() *User {
	return &User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		EmailAddress: m.EmailAddress,
		CreatedAt:    m.CreatedAt,
	}
}

// toAuthor returns the embedded author summary, or nil when the relation
// was not preloaded.
func (m *UserModel) toAuthor() *Author {
	if m.ID == "" {
		return nil
	}
	return &Author{ID: m.ID, FirstName: m.FirstName}
}

// UserToModel converts domain User to UserModel.
func UserToModel(u *User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		FirstName:    u.FirstName,
		EmailAddress: u.EmailAddress,
		CreatedAt:    u.CreatedAt,
	}
}

// ToDomain converts PostModel to domain Post.
func (m *PostModel) ToDomain() *Post {
	return &Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		AuthorID:  m.AuthorID,
		Author:    m.Author.toAuthor(),
		Updated:   m.Updated,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PostToModel converts domain Post to PostModel.
func PostToModel(p *Post) *PostModel {
	return &PostModel{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		Updated:   p.Updated,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToDomain converts CommentModel to domain Comment.
func (m *CommentModel) ToDomain() *Comment {
	return &Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Author:    m.Author.toAuthor(),
		Content:   m.Content,
		Updated:   m.Updated,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CommentToModel converts domain Comment to CommentModel.
func CommentToModel(c *Comment) *CommentModel {
	return &CommentModel{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		Updated:   c.Updated,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToDomain converts LikeModel to domain Like.
func (m *LikeModel) ToDomain() *Like {
	return &Like{
		ID:        m.ID,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Author:    m.Author.toAuthor(),
		CreatedAt: m.CreatedAt,
	}
}

// ToDomain converts CommentLikeModel to domain CommentLike.
func (m *CommentLikeModel) ToDomain() *CommentLike {
	return &CommentLike{
		ID:        m.ID,
		CommentID: m.CommentID,
		AuthorID:  m.AuthorID,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomain converts FollowModel to domain Follow.
func (m *FollowModel) ToDomain() *Follow {
	return &Follow{
		FollowerID:  m.FollowerID,
		FollowingID: m.FollowingID,
		CreatedAt:   m.CreatedAt,
	}
}
