package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/service"
	"github.com/weiawesome/wes-io-social/pkg/log"
	"github.com/weiawesome/wes-io-social/pkg/response"
)

var commentLookupCases = []errorCase{
	onMissing(http.StatusBadRequest, "Author ID is required", service.FieldAuthorID),
	onMissing(http.StatusBadRequest, "Content is required", service.FieldContent),
	on(service.ErrUserNotFound, http.StatusBadRequest, "User not found"),
	on(service.ErrPostNotFound, http.StatusBadRequest, "Post not found"),
	on(service.ErrCommentNotFound, http.StatusBadRequest, "Comment not found"),
	on(service.ErrCommentNotInPost, http.StatusBadRequest, "Comment not found in this post"),
}

// ListComments returns the comments of :postId.
func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.comments.ListComments(c.Request.Context(), c.Param("postId"))
	if err != nil {
		fail(c, err, on(service.ErrPostNotFound, http.StatusBadRequest, "Post not found"))
		return
	}
	response.Data(c, comments)
}

// CreateComment adds a comment to :postId.
func (h *Handler) CreateComment(c *gin.Context) {
	var req domain.CommentRequest
	if !bind(c, &req) {
		return
	}
	log.SetActor(c, req.AuthorID)

	if _, err := h.comments.CreateComment(c.Request.Context(), c.Param("postId"), &req); err != nil {
		fail(c, err, commentLookupCases...)
		return
	}
	response.Created(c, "Comment created")
}

// UpdateComment edits a comment owned by authorId.
func (h *Handler) UpdateComment(c *gin.Context) {
	var req domain.CommentRequest
	if !bind(c, &req) {
		return
	}
	log.SetActor(c, req.AuthorID)

	err := h.comments.UpdateComment(c.Request.Context(), c.Param("postId"), c.Param("commentId"), &req)
	if err != nil {
		fail(c, err, append(commentLookupCases,
			on(service.ErrNotOwner, http.StatusUnauthorized, "You can't update this comment"))...)
		return
	}
	response.OK(c, "Comment updated")
}

// DeleteComment removes a comment owned by authorId.
func (h *Handler) DeleteComment(c *gin.Context) {
	var req domain.ActorRequest
	if !bind(c, &req) {
		return
	}
	log.SetActor(c, req.AuthorID)

	err := h.comments.DeleteComment(c.Request.Context(), c.Param("postId"), c.Param("commentId"), req.AuthorID)
	if err != nil {
		fail(c, err, append(commentLookupCases,
			on(service.ErrNotOwner, http.StatusUnauthorized, "You can't delete this comment"))...)
		return
	}
	response.OK(c, "Comment deleted")
}
