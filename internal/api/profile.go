package api

import "context"

// UpdateProfile changes the caller's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) error {
	return c.Put(ctx, "/agent/profile", upd, nil)
}

// AgentProfile returns another agent's public profile.
func (c *Client) AgentProfile(ctx context.Context, id string) (*AgentProfile, error) {
	var p AgentProfile
	if err := c.Get(ctx, "/users/"+seg(id)+"/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
