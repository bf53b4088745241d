package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/idgen"
	"github.com/weiawesome/wes-io-social/internal/repository"
	"github.com/weiawesome/wes-io-social/internal/service"
	"github.com/weiawesome/wes-io-social/internal/testdb"
	"github.com/weiawesome/wes-io-social/pkg/log"
	"github.com/weiawesome/wes-io-social/pkg/pubsub"
	"github.com/weiawesome/wes-io-social/pkg/response"
)

type testServer struct {
	t      *testing.T
	engine *gin.Engine
}

type testRepos struct {
	users        repository.UserRepository
	posts        repository.PostRepository
	comments     repository.CommentRepository
	likes        repository.LikeRepository
	commentLikes repository.CommentLikeRepository
	follows      repository.FollowRepository
}

func newTestServer(t *testing.T, wrap ...func(*testRepos)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.New(t)
	ids, err := idgen.New(idgen.Config{})
	require.NoError(t, err)

	r := &testRepos{
		users:        repository.NewGormUserRepository(db, ids),
		posts:        repository.NewGormPostRepository(db, ids),
		comments:     repository.NewGormCommentRepository(db, ids),
		likes:        repository.NewGormLikeRepository(db, ids),
		commentLikes: repository.NewGormCommentLikeRepository(db, ids),
		follows:      repository.NewGormFollowRepository(db),
	}
	for _, w := range wrap {
		w(r)
	}
	pub := pubsub.NopPublisher{}

	h := NewHandler(
		service.NewUserService(r.users, pub),
		service.NewFollowService(r.follows, r.users, pub),
		service.NewPostService(r.posts, r.users, pub),
		service.NewCommentService(r.comments, r.posts, r.users, pub),
		service.NewLikeService(r.likes, r.commentLikes, r.posts, r.comments, r.users, pub),
	)

	engine := gin.New()
	engine.Use(log.GinMiddleware(zerolog.Nop()))
	h.RegisterRoutes(engine)
	return &testServer{t: t, engine: engine}
}

func (s *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(s.t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// expect asserts status and envelope message.
func (s *testServer) expect(w *httptest.ResponseRecorder, status int, message string) {
	s.t.Helper()
	assert.Equal(s.t, status, w.Code, w.Body.String())
	var resp response.Response
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.t, message, resp.Message)
	assert.Equal(s.t, status < 300, resp.Success)
}

func (s *testServer) createUser(name, email string) string {
	s.t.Helper()
	s.expect(s.do(http.MethodPost, "/u/create", gin.H{"first_name": name, "email_address": email}), http.StatusCreated, "User created")

	var users []domain.User
	w := s.do(http.MethodGet, "/users", nil)
	require.Equal(s.t, http.StatusOK, w.Code)
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &users))
	for _, u := range users {
		if u.EmailAddress == email {
			return u.ID
		}
	}
	s.t.Fatalf("user %s not listed", email)
	return ""
}

func (s *testServer) createPost(authorID, title string) string {
	s.t.Helper()
	s.expect(s.do(http.MethodPost, "/post/create", gin.H{"title": title, "authorId": authorID}), http.StatusCreated, "Post created successfully!")

	var posts []domain.Post
	w := s.do(http.MethodGet, "/u/"+authorID+"/posts", nil)
	require.Equal(s.t, http.StatusOK, w.Code)
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &posts))
	for _, p := range posts {
		if p.Title == title {
			return p.ID
		}
	}
	s.t.Fatalf("post %s not listed", title)
	return ""
}

func (s *testServer) createComment(postID, authorID, content string) string {
	s.t.Helper()
	s.expect(s.do(http.MethodPost, "/post/"+postID+"/comment/create", gin.H{"authorId": authorID, "content": content}), http.StatusCreated, "Comment created")

	var comments []domain.Comment
	w := s.do(http.MethodGet, "/post/"+postID+"/comments", nil)
	require.Equal(s.t, http.StatusOK, w.Code)
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &comments))
	for _, c := range comments {
		if c.Content == content {
			return c.ID
		}
	}
	s.t.Fatalf("comment %s not listed", content)
	return ""
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestEndToEndScenario(t *testing.T) {
	s := newTestServer(t)

	u1 := s.createUser("One", "a@x.com")
	s.expect(s.do(http.MethodPost, "/u/create", gin.H{"first_name": "Two", "email_address": "a@x.com"}), http.StatusBadRequest, "Email already exists")
	u2 := s.createUser("Two", "b@x.com")

	postID := s.createPost(u1, "hello")
	s.expect(s.do(http.MethodPut, "/post/"+postID+"/update", gin.H{"title": "hijack", "authorId": u2}), http.StatusUnauthorized, "You are not authorized to update this post!")

	var post domain.Post
	w := s.do(http.MethodGet, "/post/"+postID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, "hello", post.Title)
	assert.False(t, post.Updated)

	s.expect(s.do(http.MethodPut, "/u/"+u1+"/follow", gin.H{"authorId": u2}), http.StatusOK, "User followed")
	s.expect(s.do(http.MethodPut, "/u/"+u1+"/follow", gin.H{"authorId": u2}), http.StatusOK, "User unfollowed")
}

func TestCreateUserValidation(t *testing.T) {
	s := newTestServer(t)

	s.expect(s.do(http.MethodPost, "/u/create", gin.H{"first_name": "Ana"}), http.StatusBadRequest, "Email are required")
	s.expect(s.do(http.MethodPost, "/u/create", gin.H{"email_address": "ana@x.com"}), http.StatusBadRequest, "First name are required")
	s.expect(s.do(http.MethodPost, "/u/create", gin.H{"first_name": "Ana", "email_address": "nope"}), http.StatusBadRequest, "Invalid email address")
	s.expect(s.do(http.MethodPost, "/u/create", "{not json"), http.StatusBadRequest, "Invalid request body")
	s.expect(s.do(http.MethodPost, "/u/create", nil), http.StatusBadRequest, "Email are required")
}

func TestUserReadUpdateDelete(t *testing.T) {
	s := newTestServer(t)
	id := s.createUser("Ana", "ana@x.com")
	s.createUser("Ben", "ben@x.com")

	var user map[string]interface{}
	w := s.do(http.MethodGet, "/u/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "Ana", user["first_name"])
	assert.Contains(t, user, "_count")

	s.expect(s.do(http.MethodGet, "/u/missing", nil), http.StatusBadRequest, "User not found")

	s.expect(s.do(http.MethodPut, "/u/"+id+"/update", gin.H{"first_name": "Anna"}), http.StatusOK, "User updated")
	s.expect(s.do(http.MethodPut, "/u/"+id+"/update", gin.H{"email_address": "ben@x.com"}), http.StatusBadRequest, "Email already exists")
	s.expect(s.do(http.MethodPut, "/u/"+id+"/update", gin.H{"email_address": "bad"}), http.StatusBadRequest, "Invalid email address")
	s.expect(s.do(http.MethodPut, "/u/missing/update", gin.H{"first_name": "X"}), http.StatusBadRequest, "User not found")

	s.expect(s.do(http.MethodDelete, "/u/"+id+"/delete", nil), http.StatusOK, "User deleted")
	s.expect(s.do(http.MethodDelete, "/u/"+id+"/delete", nil), http.StatusBadRequest, "User not found")
}

func TestFollowEndpoints(t *testing.T) {
	s := newTestServer(t)
	u1 := s.createUser("One", "one@x.com")
	u2 := s.createUser("Two", "two@x.com")

	s.expect(s.do(http.MethodPut, "/u/"+u1+"/follow", nil), http.StatusBadRequest, "Missing parameters")
	s.expect(s.do(http.MethodPut, "/u/ghost/follow", gin.H{"authorId": "ghost"}), http.StatusBadRequest, "You can't follow yourself")
	s.expect(s.do(http.MethodPut, "/u/ghost/follow", gin.H{"authorId": u1}), http.StatusNotFound, "User not found")
	s.expect(s.do(http.MethodPut, "/u/"+u1+"/follow", gin.H{"authorId": "ghost"}), http.StatusNotFound, "Author not found")

	// u2 follows u1.
	s.expect(s.do(http.MethodPut, "/u/"+u1+"/follow", gin.H{"authorId": u2}), http.StatusOK, "User followed")

	var followers []domain.User
	w := s.do(http.MethodGet, "/u/"+u1+"/followers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &followers))
	require.Len(t, followers, 1)
	assert.Equal(t, u2, followers[0].ID)

	var following []domain.User
	w = s.do(http.MethodGet, "/u/"+u2+"/following", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &following))
	require.Len(t, following, 1)
	assert.Equal(t, u1, following[0].ID)

	s.expect(s.do(http.MethodGet, "/u/ghost/followers", nil), http.StatusNotFound, "User not found")
	s.expect(s.do(http.MethodGet, "/u/ghost/following", nil), http.StatusNotFound, "User not found")

	// u1 drops follower u2.
	s.expect(s.do(http.MethodDelete, "/u/"+u1+"/follower/remove", gin.H{"authorId": u2}), http.StatusNotFound, "User is not following you")
	s.expect(s.do(http.MethodDelete, "/u/"+u2+"/follower/remove", gin.H{"authorId": u2}), http.StatusBadRequest, "You can't remove yourself")
	s.expect(s.do(http.MethodDelete, "/u/"+u2+"/follower/remove", nil), http.StatusBadRequest, "Missing parameters")
	s.expect(s.do(http.MethodDelete, "/u/"+u2+"/follower/remove", gin.H{"authorId": u1}), http.StatusOK, "Follower removed")
}

func TestPostEndpoints(t *testing.T) {
	s := newTestServer(t)
	u1 := s.createUser("One", "one@x.com")
	u2 := s.createUser("Two", "two@x.com")

	s.expect(s.do(http.MethodPost, "/post/create", gin.H{"authorId": u1}), http.StatusBadRequest, "Title and authorId are required!")
	s.expect(s.do(http.MethodPost, "/post/create", gin.H{"title": "t"}), http.StatusBadRequest, "Title and authorId are required!")
	s.expect(s.do(http.MethodPost, "/post/create", gin.H{"title": "t", "authorId": "ghost"}), http.StatusNotFound, "User not found!")

	postID := s.createPost(u1, "hello")

	s.expect(s.do(http.MethodPut, "/post/"+postID+"/update", gin.H{"authorId": u1}), http.StatusBadRequest, "Title is required!")
	s.expect(s.do(http.MethodPut, "/post/missing/update", gin.H{"title": "x", "authorId": u1}), http.StatusNotFound, "Post not found!")
	s.expect(s.do(http.MethodPut, "/post/"+postID+"/update", gin.H{"title": "new", "content": "body", "authorId": u1}), http.StatusOK, "Post updated successfully!")

	var post map[string]interface{}
	w := s.do(http.MethodGet, "/post/"+postID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, "new", post["title"])
	assert.Equal(t, "body", post["content"])
	assert.Equal(t, true, post["updated"])
	assert.Equal(t, u1, post["authorId"])
	assert.Equal(t, map[string]interface{}{"comments": float64(0), "likes": float64(0)}, post["_count"])

	var all []map[string]interface{}
	w = s.do(http.MethodGet, "/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Contains(t, all[0], "author")

	s.expect(s.do(http.MethodGet, "/post/missing", nil), http.StatusNotFound, "Post not found!")
	s.expect(s.do(http.MethodGet, "/u/ghost/posts", nil), http.StatusNotFound, "User not found!")

	s.expect(s.do(http.MethodDelete, "/post/"+postID+"/delete", gin.H{"authorId": u2}), http.StatusUnauthorized, "You are not authorized to delete this post!")
	s.expect(s.do(http.MethodDelete, "/post/"+postID+"/delete", gin.H{"authorId": u1}), http.StatusOK, "Post deleted successfully!")
	s.expect(s.do(http.MethodDelete, "/post/"+postID+"/delete", gin.H{"authorId": u1}), http.StatusNotFound, "Post not found!")
}

func TestCommentEndpoints(t *testing.T) {
	s := newTestServer(t)
	u1 := s.createUser("One", "one@x.com")
	u2 := s.createUser("Two", "two@x.com")
	postID := s.createPost(u1, "hello")
	otherID := s.createPost(u1, "other")
	base := "/post/" + postID + "/comment/"

	s.expect(s.do(http.MethodPost, base+"create", gin.H{"content": "hi"}), http.StatusBadRequest, "Author ID is required")
	s.expect(s.do(http.MethodPost, base+"create", gin.H{"authorId": u2}), http.StatusBadRequest, "Content is required")
	s.expect(s.do(http.MethodPost, base+"create", gin.H{"authorId": "ghost", "content": "hi"}), http.StatusBadRequest, "User not found")
	s.expect(s.do(http.MethodPost, "/post/missing/comment/create", gin.H{"authorId": u2, "content": "hi"}), http.StatusBadRequest, "Post not found")

	commentID := s.createComment(postID, u2, "hi")

	s.expect(s.do(http.MethodPut, base+commentID+"/update", gin.H{"authorId": u2}), http.StatusBadRequest, "Content is required")
	s.expect(s.do(http.MethodPut, base+commentID+"/update", gin.H{"content": "x"}), http.StatusBadRequest, "Author ID is required")
	s.expect(s.do(http.MethodPut, base+"missing/update", gin.H{"authorId": u2, "content": "x"}), http.StatusBadRequest, "Comment not found")
	s.expect(s.do(http.MethodPut, "/post/"+otherID+"/comment/"+commentID+"/update", gin.H{"authorId": u2, "content": "x"}), http.StatusBadRequest, "Comment not found in this post")
	s.expect(s.do(http.MethodPut, base+commentID+"/update", gin.H{"authorId": u1, "content": "x"}), http.StatusUnauthorized, "You can't update this comment")
	s.expect(s.do(http.MethodPut, base+commentID+"/update", gin.H{"authorId": u2, "content": "edited"}), http.StatusOK, "Comment updated")

	var comments []map[string]interface{}
	w := s.do(http.MethodGet, "/post/"+postID+"/comments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "edited", comments[0]["content"])
	assert.Equal(t, true, comments[0]["updated"])
	assert.Equal(t, postID, comments[0]["postId"])
	s.expect(s.do(http.MethodGet, "/post/missing/comments", nil), http.StatusBadRequest, "Post not found")

	s.expect(s.do(http.MethodDelete, base+commentID+"/delete", nil), http.StatusBadRequest, "Author ID is required")
	s.expect(s.do(http.MethodDelete, base+commentID+"/delete", gin.H{"authorId": u1}), http.StatusUnauthorized, "You can't delete this comment")
	s.expect(s.do(http.MethodDelete, base+commentID+"/delete", gin.H{"authorId": u2}), http.StatusOK, "Comment deleted")
	s.expect(s.do(http.MethodDelete, base+commentID+"/delete", gin.H{"authorId": u2}), http.StatusBadRequest, "Comment not found")
}

func TestLikeEndpoints(t *testing.T) {
	s := newTestServer(t)
	u1 := s.createUser("One", "one@x.com")
	postID := s.createPost(u1, "hello")
	otherID := s.createPost(u1, "other")
	commentID := s.createComment(postID, u1, "hi")

	s.expect(s.do(http.MethodPut, "/post/"+postID+"/like", nil), http.StatusBadRequest, "Author ID is required")
	s.expect(s.do(http.MethodPut, "/post/missing/like", gin.H{"authorId": u1}), http.StatusNotFound, "Post not found")
	s.expect(s.do(http.MethodPut, "/post/"+postID+"/like", gin.H{"authorId": "ghost"}), http.StatusNotFound, "User not found")
	s.expect(s.do(http.MethodPut, "/post/"+postID+"/unlike", gin.H{"authorId": u1}), http.StatusBadRequest, "Post not liked yet")
	s.expect(s.do(http.MethodPut, "/post/"+postID+"/like", gin.H{"authorId": u1}), http.StatusOK, "Post liked")
	s.expect(s.do(http.MethodPut, "/post/"+postID+"/like", gin.H{"authorId": u1}), http.StatusBadRequest, "Post already liked")

	var likes []map[string]interface{}
	w := s.do(http.MethodGet, "/post/"+postID+"/likes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &likes))
	require.Len(t, likes, 1)
	assert.Equal(t, map[string]interface{}{"id": u1, "first_name": "One"}, likes[0]["author"])
	s.expect(s.do(http.MethodGet, "/post/missing/likes", nil), http.StatusNotFound, "Post not found")

	s.expect(s.do(http.MethodPut, "/post/"+postID+"/unlike", gin.H{"authorId": u1}), http.StatusOK, "Post unliked")

	base := "/post/" + postID + "/comment/" + commentID
	s.expect(s.do(http.MethodPut, base+"/like", nil), http.StatusBadRequest, "Author ID is required")
	s.expect(s.do(http.MethodPut, base+"/like", gin.H{"authorId": "ghost"}), http.StatusBadRequest, "User not found")
	s.expect(s.do(http.MethodPut, "/post/"+postID+"/comment/missing/like", gin.H{"authorId": u1}), http.StatusBadRequest, "Comment not found")
	s.expect(s.do(http.MethodPut, "/post/"+otherID+"/comment/"+commentID+"/like", gin.H{"authorId": u1}), http.StatusBadRequest, "Comment not found in this post")
	s.expect(s.do(http.MethodPut, base+"/unlike", gin.H{"authorId": u1}), http.StatusBadRequest, "Comment not liked yet")
	s.expect(s.do(http.MethodPut, base+"/like", gin.H{"authorId": u1}), http.StatusOK, "Comment liked")
	s.expect(s.do(http.MethodPut, base+"/like", gin.H{"authorId": u1}), http.StatusBadRequest, "Comment already liked")
	s.expect(s.do(http.MethodPut, base+"/unlike", gin.H{"authorId": u1}), http.StatusOK, "Comment unliked")
}

func TestMalformedBody(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodPut, "/post/x/like", `{"authorId": 42}`)
	s.expect(w, http.StatusBadRequest, "Invalid request body")
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
}

// staleFollows never sees an existing edge, like a request racing an
// identical one.
type staleFollows struct{ repository.FollowRepository }

func (staleFollows) IsFollowing(context.Context, string, string) (bool, error) { return false, nil }

type staleLikes struct{ repository.LikeRepository }

func (staleLikes) Find(context.Context, string, string) (*domain.Like, error) {
	return nil, repository.ErrLikeNotFound
}

func TestDuplicateEdgesRejectedByConstraint(t *testing.T) {
	s := newTestServer(t, func(r *testRepos) {
		r.follows = staleFollows{r.follows}
		r.likes = staleLikes{r.likes}
	})
	u1 := s.createUser("One", "one@example.com")
	u2 := s.createUser("Two", "two@example.com")
	postID := s.createPost(u2, "hello")

	follow := gin.H{"authorId": u1}
	s.expect(s.do(http.MethodPut, "/u/"+u2+"/follow", follow), http.StatusOK, "User followed")
	s.expect(s.do(http.MethodPut, "/u/"+u2+"/follow", follow), http.StatusBadRequest, "User already followed")

	like := gin.H{"authorId": u1}
	s.expect(s.do(http.MethodPut, "/post/"+postID+"/like", like), http.StatusOK, "Post liked")
	s.expect(s.do(http.MethodPut, "/post/"+postID+"/like", like), http.StatusBadRequest, "Post already liked")
}
