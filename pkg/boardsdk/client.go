// Package boardsdk is a small Go client for the Driftboard API. It covers
// the authentication endpoints plus authenticated resource calls, carrying
// the bearer token on every request once signed in.
package boardsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a Driftboard server. The zero value is not usable; call
// NewClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Token returns the bearer token captured by the last successful
// authentication call, or the empty string.
func (c *Client) Token() string { return c.token }

// SetToken installs a previously obtained token, e.g. one persisted from an
// earlier session.
func (c *Client) SetToken(token string) { c.token = token }

// SignUp registers a new member account and stores its token on the client.
func (c *Client) SignUp(ctx context.Context, username, password string) (AuthResponse, error) {
	return c.authCall(ctx, "/auth/signup", map[string]string{
		"username": username,
		"password": password,
	})
}

// SignIn authenticates an existing account and stores its token.
func (c *Client) SignIn(ctx context.Context, username, password string) (AuthResponse, error) {
	return c.authCall(ctx, "/auth/signin", map[string]string{
		"username": username,
		"password": password,
	})
}

// SignInDemo provisions a throwaway account with the given role, "member"
// or "admin", and stores its token.
func (c *Client) SignInDemo(ctx context.Context, role string) (AuthResponse, error) {
	path := "/auth/signin/demo-user"
	if role == "admin" {
		path = "/auth/signin/demo-admin"
	}
	return c.authCall(ctx, path, nil)
}

// SignOut tells the server the session is over and drops the local token.
func (c *Client) SignOut(ctx context.Context) error {
	var resp StatusResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signout", nil, &resp); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// CurrentUser fetches the account behind the client's token.
func (c *Client) CurrentUser(ctx context.Context) (UserResponse, error) {
	var resp UserResponse
	err := c.do(ctx, http.MethodGet, "/users/current", nil, &resp)
	return resp, err
}

// ListBoards returns every board.
func (c *Client) ListBoards(ctx context.Context) ([]BoardResponse, error) {
	var resp []BoardResponse
	err := c.do(ctx, http.MethodGet, "/boards", nil, &resp)
	return resp, err
}

// ListPosts returns posts, optionally filtered to one board.
func (c *Client) ListPosts(ctx context.Context, boardID string) ([]PostResponse, error) {
	path := "/posts"
	if boardID != "" {
		path += "?board_id=" + url.QueryEscape(boardID)
	}
	var resp []PostResponse
	err := c.do(ctx, http.MethodGet, path, nil, &resp)
	return resp, err
}

// CreatePost publishes a post authored by the signed-in account.
func (c *Client) CreatePost(ctx context.Context, boardID, authorID, title, body string) (PostResponse, error) {
	var resp PostResponse
	err := c.do(ctx, http.MethodPost, "/posts", map[string]string{
		"board_id":  boardID,
		"author_id": authorID,
		"title":     title,
		"body":      body,
	}, &resp)
	return resp, err
}

// ListComments returns the comments under a post, oldest first.
func (c *Client) ListComments(ctx context.Context, postID string) ([]CommentResponse, error) {
	var resp []CommentResponse
	err := c.do(ctx, http.MethodGet, "/comments?post_id="+url.QueryEscape(postID), nil, &resp)
	return resp, err
}

// CreateComment adds a comment authored by the signed-in account.
func (c *Client) CreateComment(ctx context.Context, postID, authorID, body string) (CommentResponse, error) {
	var resp CommentResponse
	err := c.do(ctx, http.MethodPost, "/comments", map[string]string{
		"post_id":   postID,
		"author_id": authorID,
		"body":      body,
	}, &resp)
	return resp, err
}

func (c *Client) authCall(ctx context.Context, path string, body map[string]string) (AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return AuthResponse{}, err
	}
	c.token = resp.Token
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var apiErr ErrorResponse
		_ = json.NewDecoder(res.Body).Decode(&apiErr)
		return &APIError{
			StatusCode:  res.StatusCode,
			Code:        apiErr.Error,
			Description: apiErr.ErrorDescription,
		}
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
