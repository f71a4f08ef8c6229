package api

import (
	"context"
	"net/url"
)

// PublishSkill uploads a skill bundle.
func (c *Client) PublishSkill(ctx context.Context, req PublishSkillRequest) (*Created, error) {
	var created Created
	if err := c.Post(ctx, "/skills", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListSkills lists marketplace skills. An empty status lists approved skills.
func (c *Client) ListSkills(ctx context.Context, status string) ([]Skill, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {status}}
	}
	var skills []Skill
	if err := c.Get(ctx, "/skills", q, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// GetSkill returns one skill including its bundle. The id's "/" is escaped.
func (c *Client) GetSkill(ctx context.Context, id string) (*Skill, error) {
	var s Skill
	if err := c.Get(ctx, "/skills/"+seg(id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReviewSkill approves or rejects a submission.
func (c *Client) ReviewSkill(ctx context.Context, id string, req ReviewRequest) (*MessageResponse, error) {
	var msg MessageResponse
	if err := c.Post(ctx, "/admin/skills/"+seg(id)+"/review", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeleteSkill removes a skill from the marketplace.
func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	return c.Delete(ctx, "/admin/skills/"+seg(id), nil)
}
