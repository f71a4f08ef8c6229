package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

// recorded captures what the fake server saw.
type recorded struct {
	Method string
	Path   string // escaped path
	Query  string
	Header http.Header
	Body   map[string]any
}

func newTestServer(t *testing.T, status int, response string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.EscapedPath()
		rec.Query = r.URL.RawQuery
		rec.Header = r.Header.Clone()
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			if err := json.Unmarshal(data, &rec.Body); err != nil {
				t.Errorf("request body is not a JSON object: %s", data)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestClientHeaders(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"id":"alice","nickname":"Alice"}`)
	c := New(srv.URL+"/api/", "tok", WithUserAgent("claw/test"))

	user, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user.ID != "alice" || user.Nickname != "Alice" {
		t.Errorf("user = %+v", user)
	}
	if rec.Path != "/api/me" {
		t.Errorf("path = %s, want /api/me", rec.Path)
	}
	if got := rec.Header.Get("Authorization"); got != "Bearer tok" {
		t.Errorf("Authorization = %q", got)
	}
	if got := rec.Header.Get("User-Agent"); got != "claw/test" {
		t.Errorf("User-Agent = %q", got)
	}
	if rec.Header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID should be set")
	}
}

func TestClientNoTokenNoAuthHeader(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `[]`)
	c := New(srv.URL, "")

	if _, err := c.Categories(context.Background()); err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if _, ok := rec.Header["Authorization"]; ok {
		t.Error("Authorization header must be absent without a token")
	}
}

func TestAPIErrorFormatting(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"error field", http.StatusForbidden, `{"error":"Insufficient score"}`, "Error 403: Insufficient score"},
		{"status text", http.StatusNotFound, `not json`, "Error 404: Not Found"},
		{"empty error field", http.StatusInternalServerError, `{"error":""}`, "Error 500: Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)
			err := New(srv.URL, "").DeletePost(context.Background(), "1")
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
			if StatusCode(err) != tt.status {
				t.Errorf("StatusCode = %d, want %d", StatusCode(err), tt.status)
			}
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url, "").Me(context.Background())
	if !clawerrors.HasCode(err, clawerrors.CodeAPITransport) {
		t.Fatalf("error = %v, want transport error", err)
	}
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := New(srv.URL, "", WithTimeout(50*time.Millisecond)).Me(context.Background())
	if !clawerrors.HasCode(err, clawerrors.CodeAPITransport) {
		t.Fatalf("error = %v, want transport error on timeout", err)
	}
}

func TestBodyTooLarge(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{}`)
	big := strings.Repeat("x", MaxRequestBody)

	_, err := New(srv.URL, "t").CreatePost(context.Background(), CreatePostRequest{Title: "t", Content: big})
	if !clawerrors.HasCode(err, clawerrors.CodeAPIBodyTooLarge) {
		t.Fatalf("error = %v, want body too large", err)
	}
	if rec.Method != "" {
		t.Error("oversized request must not be sent")
	}
}

func TestDecodeError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"post": 12}`)
	_, err := New(srv.URL, "").GetPost(context.Background(), "1")
	if !clawerrors.HasCode(err, clawerrors.CodeAPIDecode) {
		t.Fatalf("error = %v, want decode error", err)
	}
}

func TestEndpoints(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name       string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
		wantQuery  string
		wantBody   map[string]any
	}{
		{
			name: "list posts with search",
			call: func(c *Client) error {
				_, err := c.ListPosts(ctx, ListPostsOptions{Page: 2, Limit: 5, Search: "a b"})
				return err
			},
			wantMethod: "GET", wantPath: "/posts", wantQuery: "limit=5&page=2&search=a+b",
		},
		{
			name: "create post",
			call: func(c *Client) error {
				_, err := c.CreatePost(ctx, CreatePostRequest{CategoryID: "3", Title: "T", Content: "C"})
				return err
			},
			wantMethod: "POST", wantPath: "/posts",
			wantBody: map[string]any{"category_id": float64(3), "title": "T", "content": "C"},
		},
		{
			name: "reply",
			call: func(c *Client) error {
				_, err := c.Reply(ctx, "9", ReplyRequest{Content: "hi", ReplyToUserID: "bob"})
				return err
			},
			wantMethod: "POST", wantPath: "/posts/9/reply",
			wantBody: map[string]any{"content": "hi", "reply_to_user_id": "bob"},
		},
		{
			name:       "get skill escapes slash",
			call:       func(c *Client) error { _, err := c.GetSkill(ctx, "official/weather"); return err },
			wantMethod: "GET", wantPath: "/skills/official%2Fweather",
		},
		{
			name:       "pending skills",
			call:       func(c *Client) error { _, err := c.ListSkills(ctx, "pending"); return err },
			wantMethod: "GET", wantPath: "/skills", wantQuery: "status=pending",
		},
		{
			name: "review skill",
			call: func(c *Client) error {
				_, err := c.ReviewSkill(ctx, "alice/tool", ReviewRequest{Action: "reject", Note: "spam"})
				return err
			},
			wantMethod: "POST", wantPath: "/admin/skills/alice%2Ftool/review",
			wantBody: map[string]any{"action": "reject", "note": "spam"},
		},
		{
			name:       "unread inbox",
			call:       func(c *Client) error { _, err := c.ListInbox(ctx, false); return err },
			wantMethod: "GET", wantPath: "/inbox", wantQuery: "status=unread",
		},
		{
			name:       "all inbox",
			call:       func(c *Client) error { _, err := c.ListInbox(ctx, true); return err },
			wantMethod: "GET", wantPath: "/inbox", wantQuery: "status=",
		},
		{
			name:       "recent inbox",
			call:       func(c *Client) error { _, err := c.RecentInbox(ctx); return err },
			wantMethod: "GET", wantPath: "/inbox", wantQuery: "all=true&limit=100",
		},
		{
			name:       "verify none sends null",
			call:       func(c *Client) error { return c.Verify(ctx, "bob", "", "") },
			wantMethod: "POST", wantPath: "/admin/users/bob/verify",
			wantBody: map[string]any{"type": nil},
		},
		{
			name:       "verify expert",
			call:       func(c *Client) error { return c.Verify(ctx, "bob", "expert", "knows Go") },
			wantMethod: "POST", wantPath: "/admin/users/bob/verify",
			wantBody: map[string]any{"type": "expert", "reason": "knows Go"},
		},
		{
			name: "update category sends only set fields",
			call: func(c *Client) error {
				score := 0
				return c.UpdateCategory(ctx, "4", CategoryInput{MinScore: &score})
			},
			wantMethod: "PUT", wantPath: "/admin/categories/4",
			wantBody: map[string]any{"min_score": float64(0)},
		},
		{
			name:       "unpin",
			call:       func(c *Client) error { return c.PinPost(ctx, "7", false) },
			wantMethod: "POST", wantPath: "/admin/posts/7/pin",
			wantBody: map[string]any{"pinned": false},
		},
		{
			name:       "moderation retry",
			call:       func(c *Client) error { return c.RetryModeration(ctx, "5", "comment") },
			wantMethod: "POST", wantPath: "/admin/moderation/retry/5",
			wantBody: map[string]any{"type": "comment"},
		},
		{
			name:       "doc search",
			call:       func(c *Client) error { _, err := c.SearchDocs(ctx, "install skill"); return err },
			wantMethod: "GET", wantPath: "/docs/search", wantQuery: "q=install+skill",
		},
		{
			name:       "doc read",
			call:       func(c *Client) error { _, err := c.ReadDoc(ctx, "guide/intro.md"); return err },
			wantMethod: "GET", wantPath: "/docs/read", wantQuery: "path=guide%2Fintro.md",
		},
		{
			name:       "profile update omits empty",
			call:       func(c *Client) error { return c.UpdateProfile(ctx, ProfileUpdate{Bio: "new"}) },
			wantMethod: "PUT", wantPath: "/agent/profile",
			wantBody: map[string]any{"bio": "new"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, rec := newTestServer(t, http.StatusOK, `null`)
			if err := tt.call(New(srv.URL, "t")); err != nil {
				t.Fatalf("call: %v", err)
			}
			if rec.Method != tt.wantMethod {
				t.Errorf("method = %s, want %s", rec.Method, tt.wantMethod)
			}
			if rec.Path != tt.wantPath {
				t.Errorf("path = %s, want %s", rec.Path, tt.wantPath)
			}
			if rec.Query != tt.wantQuery {
				t.Errorf("query = %s, want %s", rec.Query, tt.wantQuery)
			}
			if diff := cmp.Diff(tt.wantBody, rec.Body); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSkillFlexibleFields(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"string encoded", `{"id":"a/b","files":"{\"run.sh\":\"echo hi\"}","metadata":"{\"clawdbot\":{\"emoji\":\"🦀\"}}"}`},
		{"inline", `{"id":"a/b","files":{"run.sh":"echo hi"},"metadata":{"clawdbot":{"emoji":"🦀"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Skill
			if err := json.Unmarshal([]byte(tt.json), &s); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if diff := cmp.Diff(map[string]string{"run.sh": "echo hi"}, s.FileMap()); diff != "" {
				t.Errorf("FileMap mismatch (-want +got):\n%s", diff)
			}
			meta := s.MetadataMap()
			claw, _ := meta["clawdbot"].(map[string]any)
			if claw["emoji"] != "🦀" {
				t.Errorf("metadata = %v", meta)
			}
		})
	}
}

func TestSkillMalformedBundle(t *testing.T) {
	var s Skill
	if err := json.Unmarshal([]byte(`{"files":"not json","metadata":""}`), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(s.FileMap()) != 0 {
		t.Error("malformed files should decode to an empty map")
	}
	if s.MetadataMap() != nil {
		t.Error("empty metadata should decode to nil")
	}
}

func TestIDAndTimestamp(t *testing.T) {
	var n Notification
	data := `{"id":12,"type":"reply","is_read":0,"related_post_id":"34","created_at":"2025-03-01 08:30:00"}`
	if err := json.Unmarshal([]byte(data), &n); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if n.ID != "12" || n.RelatedPostID != "34" {
		t.Errorf("ids = %q, %q", n.ID, n.RelatedPostID)
	}
	if n.IsRead {
		t.Error("is_read 0 should be false")
	}
	if !n.CreatedAt.Valid() || n.CreatedAt.Time.Hour() != 8 {
		t.Errorf("CreatedAt = %+v", n.CreatedAt)
	}

	var ts Timestamp
	json.Unmarshal([]byte(`"yesterday"`), &ts)
	if ts.Valid() || ts.Local() != "yesterday" {
		t.Errorf("unparseable timestamp should keep raw text, got %+v", ts)
	}
}

func TestBoolFlags(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"1"`, true},
		{`"true"`, true},
		{`"0"`, false},
		{`null`, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var posts []Post
			data := `[{"id":1,"title":"Welcome","author_name":"admin","is_pinned":` + tt.raw + `}]`
			if err := json.Unmarshal([]byte(data), &posts); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if bool(posts[0].IsPinned) != tt.want {
				t.Errorf("IsPinned = %v, want %v", posts[0].IsPinned, tt.want)
			}

			var n Notification
			if err := json.Unmarshal([]byte(`{"id":2,"is_read":`+tt.raw+`}`), &n); err != nil {
				t.Fatalf("Unmarshal notification: %v", err)
			}
			if bool(n.IsRead) != tt.want {
				t.Errorf("IsRead = %v, want %v", n.IsRead, tt.want)
			}
		})
	}

	var p Post
	if err := json.Unmarshal([]byte(`{"is_pinned":"yes"}`), &p); err == nil {
		t.Error("expected error for a non-boolean is_pinned")
	}
	out, err := json.Marshal(Bool(true))
	if err != nil || string(out) != "true" {
		t.Errorf("Marshal = %s, %v", out, err)
	}
}

func TestFindComment(t *testing.T) {
	d := PostDetail{Comments: []Comment{{ID: "1"}, {ID: "22", AuthorID: "bob"}}}
	c, ok := d.FindComment("22")
	if !ok || c.AuthorID != "bob" {
		t.Errorf("FindComment(22) = %+v, %v", c, ok)
	}
	if _, ok := d.FindComment("3"); ok {
		t.Error("FindComment(3) should miss")
	}
}
