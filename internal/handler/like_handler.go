package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/service"
	"github.com/weiawesome/wes-io-social/pkg/log"
	"github.com/weiawesome/wes-io-social/pkg/response"
)

var postLikeCases = []errorCase{
	onMissing(http.StatusBadRequest, "Author ID is required"),
	on(service.ErrPostNotFound, http.StatusNotFound, "Post not found"),
	on(service.ErrUserNotFound, http.StatusNotFound, "User not found"),
	on(service.ErrAlreadyLiked, http.StatusBadRequest, "Post already liked"),
	on(service.ErrNotLiked, http.StatusBadRequest, "Post not liked yet"),
}

var commentLikeCases = []errorCase{
	onMissing(http.StatusBadRequest, "Author ID is required"),
	on(service.ErrUserNotFound, http.StatusBadRequest, "User not found"),
	on(service.ErrCommentNotFound, http.StatusBadRequest, "Comment not found"),
	on(service.ErrCommentNotInPost, http.StatusBadRequest, "Comment not found in this post"),
	on(service.ErrAlreadyLiked, http.StatusBadRequest, "Comment already liked"),
	on(service.ErrNotLiked, http.StatusBadRequest, "Comment not liked yet"),
}

// ListPostLikes returns the likes of :postId.
func (h *Handler) ListPostLikes(c *gin.Context) {
	likes, err := h.likes.ListPostLikes(c.Request.Context(), c.Param("postId"))
	if err != nil {
		fail(c, err, on(service.ErrPostNotFound, http.StatusNotFound, "Post not found"))
		return
	}
	response.Data(c, likes)
}

// LikePost records a like by authorId.
func (h *Handler) LikePost(c *gin.Context) {
	var req domain.ActorRequest
	if !bind(c, &req) {
		return
	}
	log.SetActor(c, req.AuthorID)

	if err := h.likes.LikePost(c.Request.Context(), c.Param("postId"), req.AuthorID); err != nil {
		fail(c, err, postLikeCases...)
		return
	}
	response.OK(c, "Post liked")
}

// UnlikePost removes a like by authorId.
func (h *Handler) UnlikePost(c *gin.Context) {
	var req domain.ActorRequest
	if !bind(c, &req) {
		return
	}
	log.SetActor(c, req.AuthorID)

	if err := h.likes.UnlikePost(c.Request.Context(), c.Param("postId"), req.AuthorID); err != nil {
		fail(c, err, postLikeCases...)
		return
	}
	response.OK(c, "Post unliked")
}

// LikeComment records a comment like by authorId.
func (h *Handler) LikeComment(c *gin.Context) {
	var req domain.ActorRequest
	if !bind(c, &req) {
		return
	}
	log.SetActor(c, req.AuthorID)

	err := h.likes.LikeComment(c.Request.Context(), c.Param("postId"), c.Param("commentId"), req.AuthorID)
	if err != nil {
		fail(c, err, commentLikeCases...)
		return
	}
	response.OK(c, "Comment liked")
}

// UnlikeComment removes a comment like by authorId.
func (h *Handler) UnlikeComment(c *gin.Context) {
	var req domain.ActorRequest
	if !bind(c, &req) {
		return
	}
	log.SetActor(c, req.AuthorID)

	err := h.likes.UnlikeComment(c.Request.Context(), c.Param("postId"), c.Param("commentId"), req.AuthorID)
	if err != nil {
		fail(c, err, commentLikeCases...)
		return
	}
	response.OK(c, "Comment unliked")
}
