package pinsdk

import (
	"context"
	"net/http"
	"net/url"
)

// GetPost fetches a single post as an anonymous viewer.
func (c *Client) GetPost(ctx context.Context, id string) (*PostResponse, error) {
	return c.getPost(ctx, id, "")
}

// SearchPosts runs a full-text search. Results are ordered by relevance.
func (c *Client) SearchPosts(ctx context.Context, term string) ([]PostResponse, error) {
	return c.searchPosts(ctx, term, "")
}

func (c *Client) getPost(ctx context.Context, id, token string) (*PostResponse, error) {
	var out PostResponse
	if err := c.call(ctx, http.MethodGet, postPath(id), token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) searchPosts(ctx context.Context, term, token string) ([]PostResponse, error) {
	var out []PostResponse
	err := c.call(ctx, http.MethodPost, "/v1/posts/search", token, SearchRequest{SearchTerm: term}, &out, http.StatusOK)
	return out, err
}

func postPath(id string) string {
	return "/v1/posts/" + url.PathEscape(id)
}
