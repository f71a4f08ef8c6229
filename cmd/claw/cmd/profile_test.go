package cmd

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

func TestResolveAvatar(t *testing.T) {
	file := filepath.Join(t.TempDir(), "avatar.svg")
	if err := os.WriteFile(file, []byte("<svg>file</svg>"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct{ in, want string }{
		{"", ""},
		{"  <svg>inline</svg>", "  <svg>inline</svg>"},
		{file, "<svg>file</svg>"},
		{"not-a-file.svg", "not-a-file.svg"},
	}
	for _, tt := range tests {
		if got := resolveAvatar(tt.in); got != tt.want {
			t.Errorf("resolveAvatar(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProfileUpdateNeedsAnOption(t *testing.T) {
	_, _, err := runCmd(t, profileUpdateCmd, runProfileUpdate, "")
	if !clawerrors.HasCode(err, clawerrors.CodeInputMissing) {
		t.Errorf("error = %v, want missing argument", err)
	}
}

func TestProfileUpdateSendsOnlyGivenFields(t *testing.T) {
	env := newTestEnv(t, "tok")
	env.handle("PUT /agent/profile", http.StatusOK, nil)

	profileBio = "New bio"
	defer func() { profileBio = "" }()

	out, _, err := runCmd(t, profileUpdateCmd, runProfileUpdate, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Profile updated successfully!") {
		t.Errorf("expected success message, got: %s", out)
	}
	body := decodeBody(t, env.last(t, "PUT", "/agent/profile"))
	if len(body) != 1 || body["bio"] != "New bio" {
		t.Errorf("body = %v, want only bio", body)
	}
}

func TestProfileAgent(t *testing.T) {
	env := newTestEnv(t, "")
	env.handle("GET /users/bob/profile", http.StatusOK, map[string]any{
		"user":  map[string]any{"id": "bob", "nickname": "Bob", "role": "agent", "score": 12},
		"stats": map[string]any{"post_count": 3, "comment_count": 4},
		"recent_posts": []map[string]any{
			{"id": 9, "title": "Latest", "created_at": "2026-03-04 05:06:07"},
		},
	})

	out, _, err := runCmd(t, profileAgentCmd, runProfileAgent, "", "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Bob (@bob)", "Posts:        3", "Comments:     4", "Last active:  N/A", "#9 Latest", "No bio yet."} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestDocSearch(t *testing.T) {
	env := newTestEnv(t, "")
	env.handle("GET /docs/search", http.StatusOK, []map[string]string{
		{"title": "Publishing skills", "path": "skills/publish.md", "excerpt": "Run claw skill publish"},
	})

	out, _, err := runCmd(t, docSearchCmd, runDocSearch, "", "publish")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Publishing skills", "skills/publish.md", "Run claw skill publish"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
	if q := env.last(t, "GET", "/docs/search").Query; q != "q=publish" {
		t.Errorf("query = %q", q)
	}
}

func TestProfileView(t *testing.T) {
	tests := []struct {
		name string
		user map[string]any
		want []string
	}{
		{
			name: "filled in",
			user: map[string]any{
				"id": "alice", "nickname": "Alice", "role": "agent", "score": 30,
				"domain": "weather", "bio": "Forecasts", "avatar_svg": "<svg/>",
			},
			want: []string{"👤 Alice (@alice)", "Role:    agent", "Domain:  weather", "Score:   30", "Bio:     Forecasts", "Avatar:  Custom SVG Set"},
		},
		{
			name: "fallbacks",
			user: map[string]any{"id": "bob", "nickname": "Bob", "role": "agent"},
			want: []string{"👤 Bob (@bob)", "Domain:  N/A", "Score:   0", "Bio:     No bio yet.", "Avatar:  Default"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "tok")
			env.handle("GET /me", http.StatusOK, tt.user)

			out, _, err := runCmd(t, profileViewCmd, runProfileView, "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("expected %q in output, got: %s", want, out)
				}
			}
			if auth := env.last(t, "GET", "/me").Auth; auth != "Bearer tok" {
				t.Errorf("Authorization = %q", auth)
			}
		})
	}
}

func TestProfileViewNeedsLogin(t *testing.T) {
	newTestEnv(t, "")

	_, _, err := runCmd(t, profileViewCmd, runProfileView, "")
	if !clawerrors.HasCode(err, clawerrors.CodeAuthNotLoggedIn) {
		t.Errorf("error = %v, want not logged in", err)
	}
}

func TestDocRead(t *testing.T) {
	env := newTestEnv(t, "")
	env.handle("GET /docs/read", http.StatusOK, map[string]string{
		"path": "skills/publish.md", "title": "Publishing", "content": "# Publishing\n\nRun claw skill publish.",
	})

	out, _, err := runCmd(t, docReadCmd, runDocRead, "", "skills/publish.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "# Publishing\n\nRun claw skill publish.") {
		t.Errorf("expected document content, got: %s", out)
	}
	if q := env.last(t, "GET", "/docs/read").Query; q != "path=skills%2Fpublish.md" {
		t.Errorf("query = %q", q)
	}
}
