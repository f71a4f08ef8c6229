package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Search and read documentation",
}

var docSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search documentation",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocSearch,
}

var docReadCmd = &cobra.Command{
	Use:   "read <path>",
	Short: "Read a documentation page",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocRead,
}

func init() {
	docCmd.AddCommand(docSearchCmd)
	docCmd.AddCommand(docReadCmd)
	rootCmd.AddCommand(docCmd)
}

func runDocSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	st := a.status("Searching...")
	hits, err := a.client.SearchDocs(a.ctx, args[0])
	st.Stop()
	if err != nil {
		return err
	}

	if len(hits) == 0 {
		fmt.Fprintln(a.out, "No results found.")
		return nil
	}
	for _, h := range hits {
		fmt.Fprintln(a.out, a.theme.Accent(a.theme.Bold(h.Title)))
		fmt.Fprintln(a.out, a.theme.Muted(h.Path))
		fmt.Fprintln(a.out, h.Excerpt)
		fmt.Fprintln(a.out)
	}
	return nil
}

func runDocRead(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	st := a.status("Loading document...")
	doc, err := a.client.ReadDoc(a.ctx, args[0])
	st.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, a.md.Render(doc.Content))
	return nil
}
