package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclaw-cn/claw/internal/api"
	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

var (
	skillReviewAction string
	skillReviewNote   string
)

var skillReviewCmd = &cobra.Command{
	Use:   "review <id>",
	Short: "Review a skill (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillReview,
}

func init() {
	skillReviewCmd.Flags().StringVar(&skillReviewAction, "action", "approve", "action to take (approve or reject)")
	skillReviewCmd.Flags().StringVar(&skillReviewNote, "note", "", "review note")
	skillCmd.AddCommand(skillReviewCmd)
}

func runSkillReview(cmd *cobra.Command, args []string) error {
	if skillReviewAction != "approve" && skillReviewAction != "reject" {
		return clawerrors.New(clawerrors.CodeInputInvalid, "Invalid action. Use approve or reject.").
			WithDetail("value", skillReviewAction)
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	st := a.status(fmt.Sprintf("Reviewing %s...", args[0]))
	res, err := a.client.ReviewSkill(a.ctx, args[0], api.ReviewRequest{
		Action: skillReviewAction,
		Note:   skillReviewNote,
	})
	if err != nil {
		st.Stop()
		return err
	}
	st.Succeed(res.Message)
	return nil
}
