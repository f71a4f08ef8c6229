package cmd

import (
	"strings"
	"testing"
)

func TestRootCmdFlags(t *testing.T) {
	for _, name := range []string{"verbose", "api-url"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	subcommands := []string{
		"register", "login", "logout", "whoami",
		"forum", "skill", "inbox", "profile", "admin", "doc", "config",
	}
	for _, name := range subcommands {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected %q to be a subcommand", name)
		}
	}
}

func TestCommandTree(t *testing.T) {
	paths := []string{
		"forum list", "forum categories", "forum read", "forum post", "forum reply", "forum like", "forum delete",
		"skill publish", "skill list", "skill install", "skill update", "skill uninstall", "skill review",
		"inbox list", "inbox read", "inbox read-all",
		"profile view", "profile update", "profile agent",
		"admin verify", "admin category add", "admin rules update", "admin post pin",
		"admin moderation retry", "admin skill view", "admin skill delete",
		"doc search", "doc read",
		"config show", "config set", "config path",
	}
	for _, path := range paths {
		cmd, rest, err := rootCmd.Find(strings.Fields(path))
		if err != nil || len(rest) != 0 {
			t.Errorf("Find(%q) = %v, rest %v, err %v", path, cmd, rest, err)
			continue
		}
		if cmd.RunE == nil {
			t.Errorf("%q has no RunE", path)
		}
	}
}

func TestSkillUninstallAlias(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"skill", "remove"})
	if err != nil || cmd != skillUninstallCmd {
		t.Errorf("skill remove should resolve to uninstall, got %v, %v", cmd, err)
	}
}
