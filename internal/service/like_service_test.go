package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/wes-io-social/pkg/pubsub"
)

func TestLikePostIsStrict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.user(t, "Ana", "ana@example.com")
	p := f.post(t, ana.ID, "hello")

	assert.ErrorIs(t, f.likes.LikePost(ctx, p.ID, ""), ErrMissingField)
	assert.ErrorIs(t, f.likes.LikePost(ctx, "missing", ana.ID), ErrPostNotFound)
	assert.ErrorIs(t, f.likes.LikePost(ctx, p.ID, "ghost"), ErrUserNotFound)

	require.NoError(t, f.likes.LikePost(ctx, p.ID, ana.ID))
	assert.ErrorIs(t, f.likes.LikePost(ctx, p.ID, ana.ID), ErrAlreadyLiked)

	likes, err := f.likes.ListPostLikes(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, ana.ID, likes[0].Author.ID)

	require.NoError(t, f.likes.UnlikePost(ctx, p.ID, ana.ID))
	assert.ErrorIs(t, f.likes.UnlikePost(ctx, p.ID, ana.ID), ErrNotLiked)

	likes, err = f.likes.ListPostLikes(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, likes)

	_, err = f.likes.ListPostLikes(ctx, "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)

	assert.Contains(t, f.pub.types(), pubsub.EventPostLiked)
	assert.Contains(t, f.pub.types(), pubsub.EventPostUnliked)
}

func TestLikeCommentIsStrict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.user(t, "Ana", "ana@example.com")
	p := f.post(t, ana.ID, "hello")
	other := f.post(t, ana.ID, "other")
	c := f.comment(t, p.ID, ana.ID, "hi")

	assert.ErrorIs(t, f.likes.LikeComment(ctx, p.ID, c.ID, ""), ErrMissingField)
	assert.ErrorIs(t, f.likes.LikeComment(ctx, p.ID, c.ID, "ghost"), ErrUserNotFound)
	assert.ErrorIs(t, f.likes.LikeComment(ctx, p.ID, "missing", ana.ID), ErrCommentNotFound)
	assert.ErrorIs(t, f.likes.LikeComment(ctx, other.ID, c.ID, ana.ID), ErrCommentNotInPost)

	require.NoError(t, f.likes.LikeComment(ctx, p.ID, c.ID, ana.ID))
	assert.ErrorIs(t, f.likes.LikeComment(ctx, p.ID, c.ID, ana.ID), ErrAlreadyLiked)

	require.NoError(t, f.likes.UnlikeComment(ctx, p.ID, c.ID, ana.ID))
	assert.ErrorIs(t, f.likes.UnlikeComment(ctx, p.ID, c.ID, ana.ID), ErrNotLiked)
	assert.ErrorIs(t, f.likes.UnlikeComment(ctx, other.ID, c.ID, ana.ID), ErrCommentNotInPost)
}
