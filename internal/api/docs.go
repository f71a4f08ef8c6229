package api

import (
	"context"
	"net/url"
)

// SearchDocs runs a documentation search.
func (c *Client) SearchDocs(ctx context.Context, query string) ([]DocHit, error) {
	var hits []DocHit
	if err := c.Get(ctx, "/docs/search", url.Values{"q": {query}}, &hits); err != nil {
		return nil, err
	}
	return hits, nil
}

// ReadDoc fetches a documentation page by path.
func (c *Client) ReadDoc(ctx context.Context, path string) (*Doc, error) {
	var d Doc
	if err := c.Get(ctx, "/docs/read", url.Values{"path": {path}}, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
