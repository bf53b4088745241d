package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/service"
	"github.com/weiawesome/wes-io-social/pkg/log"
	"github.com/weiawesome/wes-io-social/pkg/response"
)

// ToggleFollow makes authorId follow :userId, or unfollow if it already does.
func (h *Handler) ToggleFollow(c *gin.Context) {
	var req domain.ActorRequest
	if !bind(c, &req) {
		return
	}
	log.SetActor(c, req.AuthorID)

	outcome, err := h.follows.ToggleFollow(c.Request.Context(), c.Param("userId"), req.AuthorID)
	if err != nil {
		fail(c, err,
			onMissing(http.StatusBadRequest, "Missing parameters"),
			on(service.ErrSelfFollow, http.StatusBadRequest, "You can't follow yourself"),
			on(service.ErrUserNotFound, http.StatusNotFound, "User not found"),
			on(service.ErrAuthorNotFound, http.StatusNotFound, "Author not found"),
			on(service.ErrAlreadyFollowing, http.StatusBadRequest, "User already followed"),
		)
		return
	}

	if outcome == domain.Unfollowed {
		response.OK(c, "User unfollowed")
		return
	}
	response.OK(c, "User followed")
}

// RemoveFollower lets authorId drop :userId from its followers.
func (h *Handler) RemoveFollower(c *gin.Context) {
	var req domain.ActorRequest
	if !bind(c, &req) {
		return
	}
	log.SetActor(c, req.AuthorID)

	if err := h.follows.RemoveFollower(c.Request.Context(), c.Param("userId"), req.AuthorID); err != nil {
		fail(c, err,
			onMissing(http.StatusBadRequest, "Missing parameters"),
			on(service.ErrSelfFollow, http.StatusBadRequest, "You can't remove yourself"),
			on(service.ErrUserNotFound, http.StatusNotFound, "User not found"),
			on(service.ErrAuthorNotFound, http.StatusNotFound, "Author not found"),
			on(service.ErrNotFollower, http.StatusNotFound, "User is not following you"),
		)
		return
	}
	response.OK(c, "Follower removed")
}

// ListFollowers returns the users following :userId.
func (h *Handler) ListFollowers(c *gin.Context) {
	users, err := h.follows.ListFollowers(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err, on(service.ErrUserNotFound, http.StatusNotFound, "User not found"))
		return
	}
	response.Data(c, users)
}

// ListFollowing returns the users :userId follows.
func (h *Handler) ListFollowing(c *gin.Context) {
	users, err := h.follows.ListFollowing(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err, on(service.ErrUserNotFound, http.StatusNotFound, "User not found"))
		return
	}
	response.Data(c, users)
}
