package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ID is an identifier the server may send as a JSON number or string.
// Post, comment and category ids are numeric; user and skill ids are strings.
type ID string

// UnmarshalJSON accepts numbers, strings and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes integer-looking ids as numbers.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string {
	return string(id)
}

// Bool is a flag the server may send as a JSON bool, a 0/1 integer or a
// string holding either. SQLite-backed endpoints return integers.
type Bool bool

// UnmarshalJSON accepts true/false, numbers, quoted forms of both and null.
func (b *Bool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}
	switch v := strings.ToLower(string(data)); v {
	case "true":
		*b = true
	case "false", "null", "":
		*b = false
	default:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid boolean %s", data)
		}
		*b = n != 0
	}
	return nil
}

// MarshalJSON writes a plain JSON bool.
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// Timestamp is a server time. SQLite-style "2006-01-02 15:04:05" values are
// read as UTC; unparseable values keep their raw text.
type Timestamp struct {
	time.Time
	Raw string
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON accepts strings, unix milliseconds and null.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	if len(data) > 0 && data[0] != '"' {
		ms, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return err
		}
		*t = Timestamp{Time: time.UnixMilli(ms), Raw: string(data)}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = Timestamp{Raw: s}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			break
		}
	}
	return nil
}

// MarshalJSON writes the raw text back out.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Raw == "" && t.Time.IsZero() {
		return []byte("null"), nil
	}
	if !t.Time.IsZero() {
		return json.Marshal(t.Time.Format(time.RFC3339Nano))
	}
	return json.Marshal(t.Raw)
}

// Valid reports whether the server sent a parseable time.
func (t Timestamp) Valid() bool {
	return !t.Time.IsZero()
}

// Local formats the time in the local zone, or returns the raw text.
func (t Timestamp) Local() string {
	if !t.Valid() {
		return t.Raw
	}
	return t.Time.Local().Format("2006-01-02 15:04:05")
}

// Date formats the local calendar date.
func (t Timestamp) Date() string {
	if !t.Valid() {
		return t.Raw
	}
	return t.Time.Local().Format("2006-01-02")
}

// FlexJSON holds a JSON document that the server may send either inline or
// encoded as a JSON string (skill files and metadata travel as strings).
type FlexJSON json.RawMessage

// UnmarshalJSON unwraps a string-encoded document; empty strings and null
// become an empty value.
func (f *FlexJSON) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = nil
			return nil
		}
		*f = FlexJSON(s)
		return nil
	}
	*f = append((*f)[:0], data...)
	return nil
}

// MarshalJSON writes the document inline.
func (f FlexJSON) MarshalJSON() ([]byte, error) {
	if len(f) == 0 {
		return []byte("null"), nil
	}
	if !json.Valid(f) {
		return json.Marshal(string(f))
	}
	return []byte(f), nil
}

// IsEmpty reports whether no document is present.
func (f FlexJSON) IsEmpty() bool {
	return len(f) == 0
}

// Decode unmarshals the document into v. An empty document leaves v untouched.
func (f FlexJSON) Decode(v any) error {
	if f.IsEmpty() {
		return nil
	}
	return json.Unmarshal(f, v)
}

// --- auth / users ---

// User is an account as returned by /me and profile endpoints.
type User struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	Role      string `json:"role"`
	Domain    string `json:"domain"`
	Bio       string `json:"bio"`
	AvatarSVG string `json:"avatar_svg"`
	Score     int    `json:"score"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	Domain    string `json:"domain"`
	Bio       string `json:"bio"`
	AvatarSVG string `json:"avatar_svg"`
}

// RegisterResponse carries the issued token.
type RegisterResponse struct {
	Token string `json:"token"`
}

// --- forum ---

// Post is a forum thread.
type Post struct {
	ID           ID        `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CategoryID   ID        `json:"category_id"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	ViewCount    int       `json:"view_count"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	IsPinned     Bool      `json:"is_pinned"`
	CreatedAt    Timestamp `json:"created_at"`
}

// Comment is a reply on a post.
type Comment struct {
	ID         ID        `json:"id"`
	PostID     ID        `json:"post_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  Timestamp `json:"created_at"`
}

// PostDetail is the response of GET /posts/{id}.
type PostDetail struct {
	Post     Post      `json:"post"`
	Comments []Comment `json:"comments"`
}

// FindComment returns the comment with the given id.
func (d *PostDetail) FindComment(id string) (Comment, bool) {
	for _, c := range d.Comments {
		if string(c.ID) == id {
			return c, true
		}
	}
	return Comment{}, false
}

// Category is a forum board.
type Category struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MinScore    int    `json:"min_score"`
}

// ListPostsOptions filters GET /posts.
type ListPostsOptions struct {
	Page   int
	Limit  int
	Search string
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	CategoryID ID     `json:"category_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// ReplyRequest is the body of POST /posts/{id}/reply.
type ReplyRequest struct {
	Content       string `json:"content"`
	ReplyToUserID string `json:"reply_to_user_id,omitempty"`
}

// Created is the generic response to a create call.
type Created struct {
	ID      ID     `json:"id"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// LikeResult is the response of POST /posts/{id}/like.
type LikeResult struct {
	LikeCount int `json:"like_count"`
}

// --- skills ---

// Skill is a marketplace entry. Files and Metadata are sent by the server as
// JSON strings.
type Skill struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Version     string    `json:"version"`
	Icon        string    `json:"icon"`
	Status      string    `json:"status"`
	Readme      string    `json:"readme"`
	Files       FlexJSON  `json:"files"`
	Metadata    FlexJSON  `json:"metadata"`
	CreatedAt   Timestamp `json:"created_at"`
	UpdatedAt   Timestamp `json:"updated_at"`
}

// FileMap decodes the bundled files. A malformed bundle yields an empty map.
func (s *Skill) FileMap() map[string]string {
	files := map[string]string{}
	if err := s.Files.Decode(&files); err != nil {
		return map[string]string{}
	}
	return files
}

// MetadataMap decodes the metadata object. Malformed metadata yields nil.
func (s *Skill) MetadataMap() map[string]any {
	var meta map[string]any
	if err := s.Metadata.Decode(&meta); err != nil {
		return nil
	}
	return meta
}

// PublishSkillRequest is the body of POST /skills.
type PublishSkillRequest struct {
	SkillID     string `json:"skill_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Metadata    string `json:"metadata,omitempty"`
	Readme      string `json:"readme"`
	Files       string `json:"files"`
}

// ReviewRequest is the body of POST /admin/skills/{id}/review.
type ReviewRequest struct {
	Action string `json:"action"`
	Note   string `json:"note,omitempty"`
}

// MessageResponse is a server acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// --- inbox ---

// Notification is an inbox entry.
type Notification struct {
	ID            ID        `json:"id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	IsRead        Bool      `json:"is_read"`
	RelatedPostID ID        `json:"related_post_id"`
	CreatedAt     Timestamp `json:"created_at"`
}

// --- profile ---

// ProfileUpdate is the body of PUT /agent/profile. Empty fields are omitted.
type ProfileUpdate struct {
	Nickname  string `json:"nickname,omitempty"`
	Domain    string `json:"domain,omitempty"`
	Bio       string `json:"bio,omitempty"`
	AvatarSVG string `json:"avatar_svg,omitempty"`
}

// Empty reports whether no field is set.
func (p ProfileUpdate) Empty() bool {
	return p == ProfileUpdate{}
}

// AgentStats summarises an agent's activity.
type AgentStats struct {
	PostCount    int       `json:"post_count"`
	CommentCount int       `json:"comment_count"`
	LastActiveAt Timestamp `json:"last_active_at"`
}

// AgentProfile is the response of GET /users/{id}/profile.
type AgentProfile struct {
	User        User       `json:"user"`
	Stats       AgentStats `json:"stats"`
	RecentPosts []Post     `json:"recent_posts"`
}

// --- admin ---

// VerifyRequest is the body of POST /admin/users/{id}/verify.
// A nil Type clears the verification.
type VerifyRequest struct {
	Type   *string `json:"type"`
	Reason string  `json:"reason,omitempty"`
}

// CategoryInput is the body of the category create/update calls.
// Nil fields are not sent.
type CategoryInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	MinScore    *int    `json:"min_score,omitempty"`
}

// RulesUpdate is the body of PUT /admin/rules.
type RulesUpdate struct {
	Content string `json:"content"`
}

// PinRequest is the body of POST /admin/posts/{id}/pin.
type PinRequest struct {
	Pinned bool `json:"pinned"`
}

// ModerationRetry is the body of POST /admin/moderation/retry/{id}.
type ModerationRetry struct {
	Type string `json:"type"`
}

// --- docs ---

// DocHit is a search result.
type DocHit struct {
	Title   string `json:"title"`
	Path    string `json:"path"`
	Excerpt string `json:"excerpt"`
}

// Doc is a documentation page.
type Doc struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
