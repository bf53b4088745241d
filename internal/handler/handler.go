package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/weiawesome/wes-io-social/internal/service"
	"github.com/weiawesome/wes-io-social/pkg/log"
	"github.com/weiawesome/wes-io-social/pkg/response"
)

const (
	msgInvalidBody  = "Invalid request body"
	msgInvalidEmail = "Invalid email address"
	msgInternal     = "Internal server error"
)

// Handler handles HTTP requests for the social API.
type Handler struct {
	users    service.UserService
	follows  service.FollowService
	posts    service.PostService
	comments service.CommentService
	likes    service.LikeService
}

// NewHandler creates a new HTTP handler.
func NewHandler(
	users service.UserService,
	follows service.FollowService,
	posts service.PostService,
	comments service.CommentService,
	likes service.LikeService,
) *Handler {
	return &Handler{
		users:    users,
		follows:  follows,
		posts:    posts,
		comments: comments,
		likes:    likes,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	r.GET("/users", h.ListUsers)
	u := r.Group("/u", scopeParams)
	{
		u.POST("/create", h.CreateUser)
		u.GET("/:userId", h.GetUser)
		u.PUT("/:userId/update", h.UpdateUser)
		u.DELETE("/:userId/delete", h.DeleteUser)
		u.GET("/:userId/posts", h.ListUserPosts)
		u.GET("/:userId/followers", h.ListFollowers)
		u.GET("/:userId/following", h.ListFollowing)
		u.PUT("/:userId/follow", h.ToggleFollow)
		u.DELETE("/:userId/follower/remove", h.RemoveFollower)
	}

	r.GET("/posts", h.ListPosts)
	p := r.Group("/post", scopeParams)
	{
		p.POST("/create", h.CreatePost)
		p.GET("/:postId", h.GetPost)
		p.PUT("/:postId/update", h.UpdatePost)
		p.DELETE("/:postId/delete", h.DeletePost)

		p.GET("/:postId/comments", h.ListComments)
		p.POST("/:postId/comment/create", h.CreateComment)
		p.PUT("/:postId/comment/:commentId/update", h.UpdateComment)
		p.DELETE("/:postId/comment/:commentId/delete", h.DeleteComment)

		p.GET("/:postId/likes", h.ListPostLikes)
		p.PUT("/:postId/like", h.LikePost)
		p.PUT("/:postId/unlike", h.UnlikePost)
		p.PUT("/:postId/comment/:commentId/like", h.LikeComment)
		p.PUT("/:postId/comment/:commentId/unlike", h.UnlikeComment)
	}
}

// pathFields names the log field for each route parameter.
var pathFields = map[string]string{
	"userId":    log.FieldUserID,
	"postId":    log.FieldPostID,
	"commentId": log.FieldCommentID,
}

// scopeParams tags the request logger with the ids in the path.
func scopeParams(c *gin.Context) {
	ctx := c.Request.Context()
	for _, p := range c.Params {
		if field, ok := pathFields[p.Key]; ok {
			ctx = log.WithStr(ctx, field, p.Value)
		}
	}
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bind decodes the JSON body into req. An empty body leaves req zeroed.
// It writes the 400 response itself and returns false on failure.
func bind(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	l := log.Ctx(c.Request.Context())
	l.Warn().Err(err).Msg("invalid request body")

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 && ve[0].Tag() == "email" {
		response.BadRequest(c, msgInvalidEmail)
		return false
	}
	response.BadRequest(c, msgInvalidBody)
	return false
}

// errorCase maps a service error onto one response.
type errorCase struct {
	match   func(error) bool
	status  int
	message string
}

func on(target error, status int, message string) errorCase {
	return errorCase{
		match:   func(err error) bool { return errors.Is(err, target) },
		status:  status,
		message: message,
	}
}

// onMissing matches a MissingFieldError for one of fields, or for any field
// when none are given.
func onMissing(status int, message string, fields ...string) errorCase {
	return errorCase{
		match: func(err error) bool {
			field, ok := service.MissingField(err)
			if !ok {
				return false
			}
			if len(fields) == 0 {
				return true
			}
			for _, f := range fields {
				if f == field {
					return true
				}
			}
			return false
		},
		status:  status,
		message: message,
	}
}

func respond(c *gin.Context, status int, message string) {
	switch status {
	case http.StatusBadRequest:
		response.BadRequest(c, message)
	case http.StatusUnauthorized:
		response.Unauthorized(c, message)
	case http.StatusNotFound:
		response.NotFound(c, message)
	default:
		response.Error(c, status, message)
	}
}

// fail writes the first matching case, or a 500 for anything unexpected.
func fail(c *gin.Context, err error, cases ...errorCase) {
	for _, ec := range cases {
		if ec.match(err) {
			respond(c, ec.status, ec.message)
			return
		}
	}

	l := log.Ctx(c.Request.Context())
	l.Error().Err(err).Msg("request failed")
	response.InternalError(c, msgInternal)
}
