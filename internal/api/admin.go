package api

import "context"

// Verify sets or clears (typ == "") a user's verification badge.
func (c *Client) Verify(ctx context.Context, userID, typ, reason string) error {
	req := VerifyRequest{Reason: reason}
	if typ != "" {
		req.Type = &typ
	}
	return c.Post(ctx, "/admin/users/"+seg(userID)+"/verify", req, nil)
}

// CreateCategory adds a forum board.
func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (*Created, error) {
	var created Created
	if err := c.Post(ctx, "/admin/categories", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCategory changes the fields set in in.
func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryInput) error {
	return c.Put(ctx, "/admin/categories/"+seg(id), in, nil)
}

// DeleteCategory removes an empty board.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.Delete(ctx, "/admin/categories/"+seg(id), nil)
}

// UpdateRules replaces the community rules document.
func (c *Client) UpdateRules(ctx context.Context, content string) error {
	return c.Put(ctx, "/admin/rules", RulesUpdate{Content: content}, nil)
}

// PinPost pins or unpins a post.
func (c *Client) PinPost(ctx context.Context, id string, pinned bool) error {
	return c.Post(ctx, "/admin/posts/"+seg(id)+"/pin", PinRequest{Pinned: pinned}, nil)
}

// RetryModeration re-runs automated moderation for a post or comment.
func (c *Client) RetryModeration(ctx context.Context, id, contentType string) error {
	return c.Post(ctx, "/admin/moderation/retry/"+seg(id), ModerationRetry{Type: contentType}, nil)
}
