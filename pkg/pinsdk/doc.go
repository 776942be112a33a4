/*
Package pinsdk is a client SDK for the pinboard HTTP API.

# Client vs Session

A Client performs anonymous calls (health, registration, login and every
read endpoint). A Session carries a bearer token and performs the calls
that act on behalf of a user:

	client := pinsdk.NewClient("http://localhost:8080")

	_, err := client.Register(ctx, pinsdk.RegisterRequest{
		Username: "ann",
		Email:    "ann@example.com",
		Password: "correct-horse",
	})

	session, err := client.Authenticate(ctx, "ann", "correct-horse")
	id, err := session.CreatePost(ctx, pinsdk.PostRequest{Title: "Hello", Body: "First post"})
	err = session.Follow(ctx, "bob")

Reads made through a Session compute ownership and follow state for the
caller, so PostResponse.IsOwner and ProfileResponse.IsFollowing are only
meaningful there.

# Errors

Failed calls return an *APIError carrying the HTTP status, a stable code and
the user-facing reasons reported by the server. Compare against the
predefined errors with errors.Is:

	if errors.Is(err, pinsdk.ErrValidation) {
		var apiErr *pinsdk.APIError
		errors.As(err, &apiErr)
		for _, reason := range apiErr.Reasons {
			fmt.Println(reason)
		}
	}

# Persisting sessions

Access tokens can be stored and resumed with Client.NewSessionFromToken.
Tokens are not refreshed; log in again once Session.Expired reports true.
*/
package pinsdk
