package domain

// Request bodies. Identity is the client-supplied authorId; it is compared
// against stored owners but never verified.

// CreateUserRequest represents a create account request.
type CreateUserRequest struct {
	FirstName    string `json:"first_name"`
	EmailAddress string `json:"email_address" binding:"omitempty,email"`
}

// UpdateUserRequest represents an update account request. Nil or empty
// fields are left untouched.
type UpdateUserRequest struct {
	FirstName    *string `json:"first_name"`
	EmailAddress *string `json:"email_address" binding:"omitempty,email"`
}

// CreatePostRequest represents a create post request.
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID string `json:"authorId"`
}

// UpdatePostRequest represents an edit post request. A nil Content keeps
// the stored content.
type UpdatePostRequest struct {
	Title    string  `json:"title"`
	Content  *string `json:"content"`
	AuthorID string  `json:"authorId"`
}

// CommentRequest is the body of comment create and update.
type CommentRequest struct {
	AuthorID string `json:"authorId"`
	Content  string `json:"content"`
}

// ActorRequest carries only the acting user, as used by delete, like and
// follow endpoints.
type ActorRequest struct {
	AuthorID string `json:"authorId"`
}
