package pubsub

import (
	"fmt"
	"strings"
)

// Channel naming for activity events: activity:{entity}.
const channelPrefix = "activity"

// Entities that own an activity channel.
const (
	EntityUser    = "user"
	EntityPost    = "post"
	EntityComment = "comment"
	EntityLike    = "like"
	EntityFollow  = "follow"
)

// Event types.
const (
	EventUserCreated     = "user.created"
	EventUserUpdated     = "user.updated"
	EventUserDeleted     = "user.deleted"
	EventPostCreated     = "post.created"
	EventPostUpdated     = "post.updated"
	EventPostDeleted     = "post.deleted"
	EventCommentCreated  = "comment.created"
	EventCommentUpdated  = "comment.updated"
	EventCommentDeleted  = "comment.deleted"
	EventPostLiked       = "post.liked"
	EventPostUnliked     = "post.unliked"
	EventCommentLiked    = "comment.liked"
	EventCommentUnliked  = "comment.unliked"
	EventUserFollowed    = "user.followed"
	EventUserUnfollowed  = "user.unfollowed"
	EventFollowerRemoved = "follower.removed"
)

// ActivityEntities lists every entity with an activity channel.
var ActivityEntities = []string{EntityUser, EntityPost, EntityComment, EntityLike, EntityFollow}

// ActivityChannel returns the channel name for an entity's activity events.
func ActivityChannel(entity string) string {
	return fmt.Sprintf("%s:%s", channelPrefix, entity)
}

// channelToTopic converts a Redis-style channel to a Kafka topic.
//
//	"activity:post" → "activity-post"
func channelToTopic(channel string) (string, error) {
	parts := strings.Split(channel, ":")
	if len(parts) != 2 || parts[0] != channelPrefix || parts[1] == "" {
		return "", fmt.Errorf("invalid channel format: %s", channel)
	}
	return parts[0] + "-" + parts[1], nil
}
