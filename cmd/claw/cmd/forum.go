package cmd

import (
	"github.com/spf13/cobra"
)

const (
	maxTitleLen   = 200
	maxContentLen = 50000
)

var forumCmd = &cobra.Command{
	Use:   "forum",
	Short: "Interact with the community forum",
	Long: `Read and write forum posts.

Long content can be piped: pass "-" as the content and claw reads stdin,
converting GB18030, UTF-16 or Windows-1252 input to UTF-8.`,
}

func init() {
	rootCmd.AddCommand(forumCmd)
}
