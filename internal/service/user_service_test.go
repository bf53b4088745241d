package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/pkg/pubsub"
)

func TestCreateUserValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.CreateUser(ctx, &domain.CreateUserRequest{})
	field, _ := MissingField(err)
	assert.Equal(t, FieldEmailAddress, field)

	_, err = f.users.CreateUser(ctx, &domain.CreateUserRequest{EmailAddress: "a@example.com"})
	field, _ = MissingField(err)
	assert.Equal(t, FieldFirstName, field)

	f.user(t, "Ana", "a@example.com")
	_, err = f.users.CreateUser(ctx, &domain.CreateUserRequest{FirstName: "Other", EmailAddress: "a@example.com"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestCreateUserPublishes(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "Ana", "ana@example.com")

	require.Len(t, f.pub.events, 1)
	assert.Equal(t, pubsub.EventUserCreated, f.pub.events[0].Type)
	assert.Equal(t, u.ID, f.pub.events[0].SubjectID)
	assert.Equal(t, "activity:user", f.pub.channels[0])

	var payload domain.User
	require.NoError(t, f.pub.events[0].UnmarshalPayload(&payload))
	assert.Equal(t, "ana@example.com", payload.EmailAddress)
}

func TestGetUserWithCounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.user(t, "Ana", "ana@example.com")
	ben := f.user(t, "Ben", "ben@example.com")
	p := f.post(t, ana.ID, "hello")
	f.comment(t, p.ID, ben.ID, "hi")
	_, err := f.follows.ToggleFollow(ctx, ana.ID, ben.ID)
	require.NoError(t, err)

	got, err := f.users.GetUser(ctx, ana.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Count)
	assert.Equal(t, int64(1), got.Count.Posts)
	assert.Equal(t, int64(1), got.Count.Followers)

	list, err := f.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, u := range list {
		require.NotNil(t, u.Count)
		if u.ID == ben.ID {
			assert.Equal(t, int64(1), u.Count.Comments)
			assert.Equal(t, int64(1), u.Count.Following)
		}
	}

	_, err = f.users.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.user(t, "Ana", "ana@example.com")
	f.user(t, "Ben", "ben@example.com")

	name := "Anna"
	empty := ""
	require.NoError(t, f.users.UpdateUser(ctx, ana.ID, &domain.UpdateUserRequest{FirstName: &name, EmailAddress: &empty}))

	got, err := f.users.GetUser(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.FirstName)
	assert.Equal(t, "ana@example.com", got.EmailAddress)

	taken := "ben@example.com"
	err = f.users.UpdateUser(ctx, ana.ID, &domain.UpdateUserRequest{EmailAddress: &taken})
	assert.ErrorIs(t, err, ErrEmailExists)

	assert.NoError(t, f.users.UpdateUser(ctx, ana.ID, &domain.UpdateUserRequest{}))
	assert.ErrorIs(t, f.users.UpdateUser(ctx, "missing", &domain.UpdateUserRequest{FirstName: &name}), ErrUserNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.user(t, "Ana", "ana@example.com")
	ben := f.user(t, "Ben", "ben@example.com")
	p := f.post(t, ana.ID, "hello")
	f.comment(t, p.ID, ben.ID, "hi")

	require.NoError(t, f.users.DeleteUser(ctx, ana.ID))

	_, err := f.posts.GetPost(ctx, p.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	got, err := f.users.GetUser(ctx, ben.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Count.Comments)

	assert.ErrorIs(t, f.users.DeleteUser(ctx, ana.ID), ErrUserNotFound)
	assert.Contains(t, f.pub.types(), pubsub.EventUserDeleted)
}
