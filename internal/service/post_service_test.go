package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/pkg/pubsub"
)

func TestCreatePost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.user(t, "Ana", "ana@example.com")

	_, err := f.posts.CreatePost(ctx, &domain.CreatePostRequest{AuthorID: ana.ID})
	assert.ErrorIs(t, err, ErrMissingField)
	_, err = f.posts.CreatePost(ctx, &domain.CreatePostRequest{Title: "t"})
	assert.ErrorIs(t, err, ErrMissingField)
	_, err = f.posts.CreatePost(ctx, &domain.CreatePostRequest{Title: "t", AuthorID: "ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	p := f.post(t, ana.ID, "hello")
	assert.False(t, p.Updated)
	assert.Equal(t, "", p.Content)
	require.NotNil(t, p.Author)
	assert.Equal(t, "Ana", p.Author.FirstName)
	assert.Contains(t, f.pub.types(), pubsub.EventPostCreated)
}

func TestUpdatePostOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1 := f.user(t, "One", "one@example.com")
	u2 := f.user(t, "Two", "two@example.com")
	p := f.post(t, u1.ID, "hello")

	err := f.posts.UpdatePost(ctx, p.ID, &domain.UpdatePostRequest{Title: "x", AuthorID: u2.ID})
	assert.ErrorIs(t, err, ErrNotOwner)

	got, err := f.posts.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Title)
	assert.False(t, got.Updated)

	assert.ErrorIs(t, f.posts.UpdatePost(ctx, p.ID, &domain.UpdatePostRequest{AuthorID: u1.ID}), ErrMissingField)
	assert.ErrorIs(t, f.posts.UpdatePost(ctx, "missing", &domain.UpdatePostRequest{Title: "x", AuthorID: u1.ID}), ErrPostNotFound)

	content := "body"
	require.NoError(t, f.posts.UpdatePost(ctx, p.ID, &domain.UpdatePostRequest{Title: "new", Content: &content, AuthorID: u1.ID}))
	got, err = f.posts.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "body", got.Content)
	assert.True(t, got.Updated)
}

func TestDeletePost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1 := f.user(t, "One", "one@example.com")
	u2 := f.user(t, "Two", "two@example.com")
	p := f.post(t, u1.ID, "hello")
	c := f.comment(t, p.ID, u2.ID, "hi")
	require.NoError(t, f.likes.LikePost(ctx, p.ID, u2.ID))

	assert.ErrorIs(t, f.posts.DeletePost(ctx, p.ID, u2.ID), ErrNotOwner)
	assert.ErrorIs(t, f.posts.DeletePost(ctx, p.ID, ""), ErrNotOwner)
	assert.ErrorIs(t, f.posts.DeletePost(ctx, "missing", u1.ID), ErrPostNotFound)

	require.NoError(t, f.posts.DeletePost(ctx, p.ID, u1.ID))
	_, err := f.posts.GetPost(ctx, p.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	err = f.likes.LikeComment(ctx, p.ID, c.ID, u1.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	got, err := f.users.GetUser(ctx, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Count.Likes)
	assert.Equal(t, int64(0), got.Count.Comments)
}

func TestPostListingsCarryCounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.user(t, "Ana", "ana@example.com")
	ben := f.user(t, "Ben", "ben@example.com")
	p := f.post(t, ana.ID, "hello")
	f.post(t, ben.ID, "other")
	f.comment(t, p.ID, ben.ID, "hi")
	require.NoError(t, f.likes.LikePost(ctx, p.ID, ben.ID))

	got, err := f.posts.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PostCount{Comments: 1, Likes: 1}, *got.Count)

	all, err := f.posts.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, post := range all {
		assert.NotNil(t, post.Count)
		assert.NotNil(t, post.Author)
	}

	mine, err := f.posts.ListUserPosts(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, p.ID, mine[0].ID)

	_, err = f.posts.ListUserPosts(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
