package memstore

import (
	"errors"
	"testing"

	"github.com/katelinlis/SocialHub/internal/app/model"
	"github.com/katelinlis/SocialHub/internal/app/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_Create(t *testing.T) {
	s := testStore(t)

	post := s.Post().Create("hello", []string{}, nil)

	assert.Equal(t, "id-1", post.ID)
	assert.Equal(t, CurrentUserID, post.User.ID)
	assert.Equal(t, "hello", post.Content)
	assert.Nil(t, post.Images)
	assert.Nil(t, post.Files)
	assert.Zero(t, post.Likes)
	assert.False(t, post.LikedByUser)
	assert.NotNil(t, post.Comments)
	assert.Empty(t, post.Comments)
	assert.Equal(t, []string{"id-1", "1", "2", "3"}, postIDs(s))
}

func TestPostRepository_CreateKeepsAttachments(t *testing.T) {
	s := testStore(t)
	images := []string{"a.png"}
	files := []model.FileAttachment{{Name: "a.pdf", Type: "application/pdf", URL: "https://example.com/a.pdf"}}

	post := s.Post().Create("x", images, files)
	images[0] = "mutated"

	assert.Equal(t, []string{"a.png"}, post.Images)
	assert.Equal(t, files, post.Files)
	assert.Equal(t, []string{"a.png"}, s.Feed().Posts[0].Images)
}

func TestPostRepository_FeedStaysNewestFirst(t *testing.T) {
	s := testStore(t)

	first := s.Post().Create("first", nil, nil)
	_, err := s.Post().Update("2", model.UpdatePostRequest{Content: model.Some("edited")})
	require.NoError(t, err)
	second := s.Post().Create("second", nil, nil)
	_, err = s.Post().Update(first.ID, model.UpdatePostRequest{Images: model.Some([]string{"a.png"})})
	require.NoError(t, err)
	third := s.Post().Create("third", nil, nil)

	assert.Equal(t, []string{third.ID, second.ID, first.ID, "1", "2", "3"}, postIDs(s))
	assertNewestFirst(t, s)
}

func TestPostRepository_ToggleLike(t *testing.T) {
	s := testStore(t)

	post, err := s.Post().ToggleLike("1")
	require.NoError(t, err)
	assert.Equal(t, 43, post.Likes)
	assert.True(t, post.LikedByUser)

	post, err = s.Post().ToggleLike("1")
	require.NoError(t, err)
	assert.Equal(t, 42, post.Likes)
	assert.False(t, post.LikedByUser)

	post, err = s.Post().ToggleLike("2")
	require.NoError(t, err)
	assert.Equal(t, 27, post.Likes)
	assert.False(t, post.LikedByUser)

	post, err = s.Post().ToggleLike("2")
	require.NoError(t, err)
	assert.Equal(t, 28, post.Likes)
	assert.True(t, post.LikedByUser)
}

func TestPostRepository_ToggleLikeFloorsAtZero(t *testing.T) {
	s := testStore(t)
	p, _ := s.posts.Get("3")
	p.Likes = 0
	p.LikedByUser = true

	post, err := s.Post().ToggleLike("3")
	require.NoError(t, err)
	assert.Zero(t, post.Likes)
	assert.False(t, post.LikedByUser)
}

func TestPostRepository_ToggleLikeNotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.Post().ToggleLike("nope")
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.EqualError(t, err, "post nope not found")
}

func TestPostRepository_CommentAndLike(t *testing.T) {
	s := testStore(t)

	post, err := s.Post().AddComment("1", "nice")
	require.NoError(t, err)
	require.Len(t, post.Comments, 2)
	added := post.Comments[1]
	assert.Equal(t, CurrentUserID, added.User.ID)
	assert.Equal(t, "nice", added.Content)
	assert.Zero(t, added.Likes)

	post, err = s.Post().LikeComment("1", added.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, post.Comments[1].Likes)
	assert.Equal(t, 5, post.Comments[0].Likes)
	assert.Equal(t, 42, post.Likes)

	post, err = s.Post().LikeComment("1", added.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, post.Comments[1].Likes)
}

func TestPostRepository_CommentsKeepInsertionOrder(t *testing.T) {
	s := testStore(t)

	_, err := s.Post().AddComment("2", "same")
	require.NoError(t, err)
	post, err := s.Post().AddComment("2", "same")
	require.NoError(t, err)

	require.Len(t, post.Comments, 2)
	assert.Equal(t, "id-1", post.Comments[0].ID)
	assert.Equal(t, "id-2", post.Comments[1].ID)
}

func TestPostRepository_CommentNotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.Post().AddComment("nope", "x")
	assert.True(t, errors.Is(err, store.ErrNotFound))

	_, err = s.Post().LikeComment("nope", "c1")
	assert.EqualError(t, err, "post nope not found")

	// c2 lives on post 3, comment ids are scoped to their post
	_, err = s.Post().LikeComment("1", "c2")
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.EqualError(t, err, "comment c2 not found in post 1")
}

func TestPostRepository_UpdateTriState(t *testing.T) {
	s := testStore(t)

	post, err := s.Post().Update("1", model.UpdatePostRequest{Images: model.Some([]string{})})
	require.NoError(t, err)
	assert.Nil(t, post.Images)
	assert.Equal(t, "Właśnie ukończyłam świetny projekt! Współpraca z zespołem była niesamowita. 🚀", post.Content)

	post, err = s.Post().Update("1", model.UpdatePostRequest{Content: model.Some("x")})
	require.NoError(t, err)
	assert.Equal(t, "x", post.Content)
	assert.Nil(t, post.Images)

	post, err = s.Post().Update("2", model.UpdatePostRequest{Content: model.Some("")})
	require.NoError(t, err)
	assert.Equal(t, "", post.Content)
	assert.Len(t, post.Images, 1)
	assert.Len(t, post.Files, 1)

	post, err = s.Post().Update("2", model.UpdatePostRequest{
		Images: model.Some([]string{"b.png", "c.png"}),
		Files:  model.Some([]model.FileAttachmentRequest{}),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.png", "c.png"}, post.Images)
	assert.Nil(t, post.Files)
}

func TestPostRepository_UpdateNotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.Post().Update("nope", model.UpdatePostRequest{Content: model.Some("x")})
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestPostRepository_Delete(t *testing.T) {
	s := testStore(t)

	s.Post().Delete("nope")
	assert.Equal(t, []string{"1", "2", "3"}, postIDs(s))

	s.Post().Delete("2")
	assert.Equal(t, []string{"1", "3"}, postIDs(s))

	_, err := s.Post().AddComment("2", "x")
	assert.True(t, errors.Is(err, store.ErrNotFound))
	_, err = s.Post().ToggleLike("2")
	assert.True(t, errors.Is(err, store.ErrNotFound))
	_, err = s.Post().Update("2", model.UpdatePostRequest{})
	assert.True(t, errors.Is(err, store.ErrNotFound))

	s.Post().Delete("2")
	assert.Equal(t, []string{"1", "3"}, postIDs(s))
}
