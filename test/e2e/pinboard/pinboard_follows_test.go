package pinboard_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
	"github.com/stretchr/testify/require"
)

// TestFollowGraph follows and unfollows, checking profiles and lists.
func TestFollowGraph(t *testing.T) {
	client := setupPinboardContainer(t)
	ctx := t.Context()

	ann := registerAndLogin(t, client, "ann")
	_ = registerAndLogin(t, client, "bob")

	require.NoError(t, ann.Follow(ctx, "bob"))

	profile, err := ann.GetProfile(ctx, "bob")
	require.NoError(t, err)
	require.True(t, profile.IsFollowing)
	require.False(t, profile.IsSelf)
	require.Equal(t, 1, profile.Counts.Followers)

	followers, err := client.ListFollowers(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, []string{"ann"}, usernames(followers))

	following, err := client.ListFollowing(ctx, "ann")
	require.NoError(t, err)
	require.Equal(t, []string{"bob"}, usernames(following))

	err = ann.Follow(ctx, "bob")
	apiErr := assertAPIError(t, err, http.StatusBadRequest)
	require.Equal(t, []string{"You are already following this user"}, apiErr.Reasons)

	require.NoError(t, ann.Unfollow(ctx, "bob"))

	profile, err = ann.GetProfile(ctx, "bob")
	require.NoError(t, err)
	require.False(t, profile.IsFollowing)
	require.Equal(t, 0, profile.Counts.Followers)
}

// TestCannotFollowSelf verifies self-follow is refused.
func TestCannotFollowSelf(t *testing.T) {
	client := setupPinboardContainer(t)

	ann := registerAndLogin(t, client, "ann")

	err := ann.Follow(t.Context(), "ann")
	apiErr := assertAPIError(t, err, http.StatusBadRequest)
	require.Contains(t, apiErr.Reasons, "You cannot follow yourself")

	profile, err := ann.GetProfile(t.Context(), "ann")
	require.NoError(t, err)
	require.True(t, profile.IsSelf)
}

func usernames(summaries []pinsdk.ProfileSummary) []string {
	out := make([]string, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.Username)
	}
	return out
}
