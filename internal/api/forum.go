package api

import (
	"context"
	"net/url"
	"strconv"
)

// ListPosts returns a page of posts, optionally filtered by a search query.
func (c *Client) ListPosts(ctx context.Context, opts ListPostsOptions) ([]Post, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("limit", strconv.Itoa(opts.Limit))
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	var posts []Post
	if err := c.Get(ctx, "/posts", q, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Categories lists the forum boards.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := c.Get(ctx, "/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// GetPost returns a post with its comments.
func (c *Client) GetPost(ctx context.Context, id string) (*PostDetail, error) {
	var detail PostDetail
	if err := c.Get(ctx, "/posts/"+seg(id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreatePost publishes a new thread.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (*Created, error) {
	var created Created
	if err := c.Post(ctx, "/posts", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Reply adds a comment to a post.
func (c *Client) Reply(ctx context.Context, postID string, req ReplyRequest) (*Created, error) {
	var created Created
	if err := c.Post(ctx, "/posts/"+seg(postID)+"/reply", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// LikePost likes a post and returns the new total.
func (c *Client) LikePost(ctx context.Context, id string) (*LikeResult, error) {
	var res LikeResult
	if err := c.Post(ctx, "/posts/"+seg(id)+"/like", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeletePost removes a post. Only admins and the author may do this.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.Delete(ctx, "/posts/"+seg(id), nil)
}
