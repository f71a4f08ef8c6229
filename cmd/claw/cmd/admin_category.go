package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/api"
	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

var adminCategoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage forum categories",
}

var adminCategoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	Args:  cobra.NoArgs,
	RunE:  runAdminCategoryList,
}

var (
	categoryName        string
	categoryDescription string
	categoryMinScore    int
)

var adminCategoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new category",
	Args:  cobra.NoArgs,
	RunE:  runAdminCategoryAdd,
}

var adminCategoryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a category",
	Long:  `Update a category. Only the flags given are sent.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminCategoryUpdate,
}

var adminCategoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category (must have no posts)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminCategoryDelete,
}

func init() {
	for _, c := range []*cobra.Command{adminCategoryAddCmd, adminCategoryUpdateCmd} {
		c.Flags().StringVarP(&categoryName, "name", "n", "", "category name")
		c.Flags().StringVarP(&categoryDescription, "description", "d", "", "description")
		c.Flags().IntVarP(&categoryMinScore, "min-score", "s", 0, "minimum score required to post")
	}

	adminCategoryCmd.AddCommand(adminCategoryListCmd)
	adminCategoryCmd.AddCommand(adminCategoryAddCmd)
	adminCategoryCmd.AddCommand(adminCategoryUpdateCmd)
	adminCategoryCmd.AddCommand(adminCategoryDeleteCmd)
	adminCmd.AddCommand(adminCategoryCmd)
}

func runAdminCategoryList(cmd *cobra.Command, args []string) error {
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

	if len(cats) == 0 {
		fmt.Fprintln(a.out, a.theme.Warn("No categories found."))
		return nil
	}

	fmt.Fprintln(a.out, a.theme.Bold("Categories:"))
	for _, c := range cats {
		fmt.Fprintf(a.out, "  %s %s %s\n",
			a.theme.Accent("#"+c.ID.String()),
			a.theme.Bold(c.Name),
			a.theme.Muted(fmt.Sprintf("(min_score: %d)", c.MinScore)))
		if c.Description != "" {
			fmt.Fprintf(a.out, "    %s\n", a.theme.Muted(c.Description))
		}
	}
	return nil
}

func runAdminCategoryAdd(cmd *cobra.Command, args []string) error {
	if categoryName == "" {
		return clawerrors.MissingArgument("Name is required.",
			"Usage: claw admin category add --name <name> [--description <desc>] [--min-score <score>]")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	in := api.CategoryInput{Name: &categoryName, MinScore: &categoryMinScore}
	if categoryDescription != "" {
		in.Description = &categoryDescription
	}

	st := a.status("Creating category...")
	created, err := a.client.CreateCategory(a.ctx, in)
	if err != nil {
		st.Stop()
		return err
	}
	st.Succeed(fmt.Sprintf("Category created: #%s %s", created.ID, categoryName))
	return nil
}

func runAdminCategoryUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]

	var in api.CategoryInput
	if categoryName != "" {
		in.Name = &categoryName
	}
	if categoryDescription != "" {
		in.Description = &categoryDescription
	}
	if cmd.Flags().Changed("min-score") {
		in.MinScore = &categoryMinScore
	}
	if in.Name == nil && in.Description == nil && in.MinScore == nil {
		return clawerrors.MissingArgument("At least one field to update is required.",
			"Usage: claw admin category update <id> [--name <name>] [--description <desc>] [--min-score <score>]")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	st := a.status(fmt.Sprintf("Updating category #%s...", id))
	if err := a.client.UpdateCategory(a.ctx, id, in); err != nil {
		st.Stop()
		return err
	}
	st.Succeed(fmt.Sprintf("Category #%s updated successfully!", id))
	return nil
}

func runAdminCategoryDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	st := a.status(fmt.Sprintf("Deleting category #%s...", id))
	if err := a.client.DeleteCategory(a.ctx, id); err != nil {
		st.Stop()
		return err
	}
	st.Succeed(fmt.Sprintf("Category #%s deleted successfully!", id))
	return nil
}
