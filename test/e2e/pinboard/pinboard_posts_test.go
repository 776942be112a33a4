package pinboard_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
	"github.com/stretchr/testify/require"
)

// TestPostLifecycle walks a post through create, read, edit and delete.
func TestPostLifecycle(t *testing.T) {
	client := setupPinboardContainer(t)
	ctx := t.Context()

	ann := registerAndLogin(t, client, "ann")

	id, err := ann.CreatePost(ctx, pinsdk.PostRequest{Title: "Hello", Body: "First post"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	post, err := ann.GetPost(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Hello", post.Title)
	require.Equal(t, "ann", post.Author.Username)
	require.True(t, post.IsOwner, "author should own the post")

	anon, err := client.GetPost(ctx, id)
	require.NoError(t, err)
	require.False(t, anon.IsOwner, "anonymous viewers never own a post")

	require.NoError(t, ann.UpdatePost(ctx, id, pinsdk.PostRequest{Title: "Hello again", Body: "Edited"}))

	post, err = client.GetPost(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Hello again", post.Title)
	require.Equal(t, "Edited", post.Body)

	require.NoError(t, ann.DeletePost(ctx, id))

	_, err = client.GetPost(ctx, id)
	require.True(t, errors.Is(err, pinsdk.ErrNotFound), "deleted post should be gone, got %v", err)
}

// TestPostValidation verifies every failing rule is reported.
func TestPostValidation(t *testing.T) {
	client := setupPinboardContainer(t)

	ann := registerAndLogin(t, client, "ann")

	_, err := ann.CreatePost(t.Context(), pinsdk.PostRequest{})
	apiErr := assertAPIError(t, err, http.StatusBadRequest)
	require.Equal(t, pinsdk.ErrorCodeValidationFailed, apiErr.Code)
	require.Equal(t, []string{"You must provide a title.", "You must provide post content."}, apiErr.Reasons)
}

// TestOnlyOwnerCanModify verifies another user cannot edit or delete a post.
func TestOnlyOwnerCanModify(t *testing.T) {
	client := setupPinboardContainer(t)
	ctx := t.Context()

	ann := registerAndLogin(t, client, "ann")
	bob := registerAndLogin(t, client, "bob")

	id, err := ann.CreatePost(ctx, pinsdk.PostRequest{Title: "Mine", Body: "Hands off"})
	require.NoError(t, err)

	err = bob.UpdatePost(ctx, id, pinsdk.PostRequest{Title: "Yours", Body: "Not anymore"})
	require.True(t, errors.Is(err, pinsdk.ErrPermissionDenied), "got %v", err)

	err = bob.DeletePost(ctx, id)
	require.True(t, errors.Is(err, pinsdk.ErrPermissionDenied), "got %v", err)

	post, err := client.GetPost(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Mine", post.Title)
}

// TestSearchAndAuthorListing verifies full-text search and per-author lists.
func TestSearchAndAuthorListing(t *testing.T) {
	client := setupPinboardContainer(t)
	ctx := t.Context()

	ann := registerAndLogin(t, client, "ann")
	bob := registerAndLogin(t, client, "bob")

	_, err := ann.CreatePost(ctx, pinsdk.PostRequest{Title: "Garden", Body: "Growing tomatoes this year"})
	require.NoError(t, err)
	_, err = bob.CreatePost(ctx, pinsdk.PostRequest{Title: "Kitchen", Body: "Baking bread"})
	require.NoError(t, err)

	results, err := client.SearchPosts(ctx, "tomatoes")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Garden", results[0].Title)

	results, err = client.SearchPosts(ctx, "   ")
	require.NoError(t, err)
	require.Empty(t, results, "blank search yields nothing")

	posts, err := client.ListUserPosts(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "Kitchen", posts[0].Title)
}
