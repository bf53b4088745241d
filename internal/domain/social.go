package domain

import "time"

// Author is the public summary of a user embedded in listings.
type Author struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
}

// UserCount holds the number of records that depend on a user.
type UserCount struct {
	Posts        int64 `json:"posts"`
	Comments     int64 `json:"comments"`
	Likes        int64 `json:"likes"`
	CommentLikes int64 `json:"commentLikes"`
	Followers    int64 `json:"followers"`
	Following    int64 `json:"following"`
}

// User represents an account.
type User struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"first_name"`
	EmailAddress string     `json:"email_address"`
	CreatedAt    time.Time  `json:"createdAt"`
	Count        *UserCount `json:"_count,omitempty"`
}

// PostCount holds the number of records that depend on a post.
type PostCount struct {
	Comments int64 `json:"comments"`
	Likes    int64 `json:"likes"`
}

// Post represents a post owned by AuthorID.
type Post struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	AuthorID  string     `json:"authorId"`
	Author    *Author    `json:"author,omitempty"`
	Updated   bool       `json:"updated"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Count     *PostCount `json:"_count,omitempty"`
}

// CommentCount holds the number of records that depend on a comment.
type CommentCount struct {
	Likes int64 `json:"likes"`
}

// Comment represents a comment on PostID owned by AuthorID.
type Comment struct {
	ID        string        `json:"id"`
	PostID    string        `json:"postId"`
	AuthorID  string        `json:"authorId"`
	Author    *Author       `json:"author,omitempty"`
	Content   string        `json:"content"`
	Updated   bool          `json:"updated"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Count     *CommentCount `json:"_count,omitempty"`
}

// Like is a user's like on a post.
type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	AuthorID  string    `json:"authorId"`
	Author    *Author   `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentLike is a user's like on a comment.
type CommentLike struct {
	ID        string    `json:"id"`
	CommentID string    `json:"commentId"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Follow is a directed edge: FollowerID follows FollowingID.
type Follow struct {
	FollowerID  string    `json:"followerId"`
	FollowingID string    `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FollowOutcome reports which direction a follow toggle went.
type FollowOutcome int

const (
	Followed FollowOutcome = iota + 1
	Unfollowed
)

func (o FollowOutcome) String() string {
	switch o {
	case Followed:
		return "followed"
	case Unfollowed:
		return "unfollowed"
	default:
		return "unknown"
	}
}
