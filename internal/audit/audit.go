package audit

import (
	"context"

	"github.com/weiawesome/wes-io-social/pkg/log"
)

// Audit actions.
const (
	ActionCreateUser      = "user.create"
	ActionUpdateUser      = "user.update"
	ActionDeleteUser      = "user.delete"
	ActionFollowUser      = "user.follow"
	ActionUnfollowUser    = "user.unfollow"
	ActionRemoveFollower  = "user.remove_follower"
	ActionCreatePost      = "post.create"
	ActionUpdatePost      = "post.update"
	ActionDeletePost      = "post.delete"
	ActionLikePost        = "post.like"
	ActionUnlikePost      = "post.unlike"
	ActionCreateComment   = "comment.create"
	ActionUpdateComment   = "comment.update"
	ActionDeleteComment   = "comment.delete"
	ActionLikeComment     = "comment.like"
	ActionUnlikeComment   = "comment.unlike"
	ActionOwnershipDenied = "ownership.denied"
)

// Field constants for audit entries.
const (
	FieldAction = "action"
	FieldDetail = "detail"
)

// Log emits a structured audit log entry via the context logger.
func Log(ctx context.Context, action string, actorID string, msg string) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Str(log.FieldActorID, actorID).
		Msg(msg)
}

// LogTarget emits an audit log entry naming the record acted upon.
func LogTarget(ctx context.Context, action string, actorID string, targetID string, msg string) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Str(log.FieldActorID, actorID).
		Str(log.FieldTargetID, targetID).
		Msg(msg)
}

// LogWithDetail emits an audit log with extra detail field.
func LogWithDetail(ctx context.Context, action string, actorID string, detail string, msg string) {
	l := log.Ctx(ctx)
	l.Warn().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Str(log.FieldActorID, actorID).
		Str(FieldDetail, detail).
		Msg(msg)
}
