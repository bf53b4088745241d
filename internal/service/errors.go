package service

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrAuthorNotFound   = errors.New("author not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrCommentNotInPost = errors.New("comment does not belong to post")
	ErrEmailExists      = errors.New("email already exists")
	ErrNotOwner         = errors.New("actor does not own the resource")
	ErrSelfFollow       = errors.New("user cannot follow or remove themselves")
	ErrNotFollower      = errors.New("user is not a follower")
	ErrAlreadyFollowing = errors.New("already following")
	ErrAlreadyLiked     = errors.New("already liked")
	ErrNotLiked         = errors.New("not liked")
	ErrMissingField     = errors.New("missing required field")
)

// Field names reported by MissingFieldError.
const (
	FieldEmailAddress = "email_address"
	FieldFirstName    = "first_name"
	FieldTitle        = "title"
	FieldContent      = "content"
	FieldAuthorID     = "authorId"
)

// MissingFieldError reports an absent or empty required input. It matches
// ErrMissingField under errors.Is.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string { return e.Field + " is required" }

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

func missing(field string) error { return &MissingFieldError{Field: field} }

// MissingField returns the field named by a MissingFieldError in err's chain.
func MissingField(err error) (string, bool) {
	var mf *MissingFieldError
	if errors.As(err, &mf) {
		return mf.Field, true
	}
	return "", false
}
