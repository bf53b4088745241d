package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/service"
	"github.com/weiawesome/wes-io-social/pkg/log"
	"github.com/weiawesome/wes-io-social/pkg/response"
)

// ListPosts returns every post.
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, posts)
}

// GetPost returns one post.
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.posts.GetPost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		fail(c, err, on(service.ErrPostNotFound, http.StatusNotFound, "Post not found!"))
		return
	}
	response.Data(c, post)
}

// ListUserPosts returns the posts written by :userId.
func (h *Handler) ListUserPosts(c *gin.Context) {
	posts, err := h.posts.ListUserPosts(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err, on(service.ErrUserNotFound, http.StatusNotFound, "User not found!"))
		return
	}
	response.Data(c, posts)
}

// CreatePost handles post creation.
func (h *Handler) CreatePost(c *gin.Context) {
	var req domain.CreatePostRequest
	if !bind(c, &req) {
		return
	}
	log.SetActor(c, req.AuthorID)

	if _, err := h.posts.CreatePost(c.Request.Context(), &req); err != nil {
		fail(c, err,
			onMissing(http.StatusBadRequest, "Title and authorId are required!"),
			on(service.ErrUserNotFound, http.StatusNotFound, "User not found!"),
		)
		return
	}
	response.Created(c, "Post created successfully!")
}

// UpdatePost handles post edits by the owner.
func (h *Handler) UpdatePost(c *gin.Context) {
	var req domain.UpdatePostRequest
	if !bind(c, &req) {
		return
	}
	log.SetActor(c, req.AuthorID)

	if err := h.posts.UpdatePost(c.Request.Context(), c.Param("postId"), &req); err != nil {
		fail(c, err,
			onMissing(http.StatusBadRequest, "Title is required!"),
			on(service.ErrPostNotFound, http.StatusNotFound, "Post not found!"),
			on(service.ErrNotOwner, http.StatusUnauthorized, "You are not authorized to update this post!"),
		)
		return
	}
	response.OK(c, "Post updated successfully!")
}

// DeletePost handles post removal by the owner.
func (h *Handler) DeletePost(c *gin.Context) {
	var req domain.ActorRequest
	if !bind(c, &req) {
		return
	}
	log.SetActor(c, req.AuthorID)

	if err := h.posts.DeletePost(c.Request.Context(), c.Param("postId"), req.AuthorID); err != nil {
		fail(c, err,
			on(service.ErrPostNotFound, http.StatusNotFound, "Post not found!"),
			on(service.ErrNotOwner, http.StatusUnauthorized, "You are not authorized to delete this post!"),
		)
		return
	}
	response.OK(c, "Post deleted successfully!")
}
