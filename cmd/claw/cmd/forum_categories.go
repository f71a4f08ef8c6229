package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/api"
)

var forumCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List available categories",
	Args:  cobra.NoArgs,
	RunE:  runForumCategories,
}

func init() {
	forumCmd.AddCommand(forumCategoriesCmd)
}

func runForumCategories(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	st := a.status("Fetching categories...")
	cats, err := a.client.Categories(a.ctx)
	st.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, a.theme.Bold("Available Categories:"))
	printCategories(a, cats)
	return nil
}

// printCategories writes an ID / Name / Min Score table.
func printCategories(a *app, cats []api.Category) {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tMin Score")
	for _, c := range cats {
		minScore := "-"
		if c.MinScore > 0 {
			minScore = strconv.Itoa(c.MinScore)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, minScore)
	}
	w.Flush()
}
