package ui

import (
	"errors"
	"io"

	"github.com/charmbracelet/huh"

	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

// Prompter asks yes/no questions on a terminal.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	// Interactive is false when stdin is not a terminal; Confirm then fails
	// instead of blocking.
	Interactive bool
}

// Confirm asks a yes/no question. It returns an INPUT_006 error when no
// terminal is available.
func (p *Prompter) Confirm(title string) (bool, error) {
	if p == nil || !p.Interactive {
		return false, clawerrors.New(clawerrors.CodeInputAborted,
			"Confirmation required. Re-run with --yes to skip the prompt.")
	}

	var ok bool
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)

	err := huh.NewForm(huh.NewGroup(field)).
		WithInput(p.In).
		WithOutput(p.Out).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, clawerrors.Wrap(clawerrors.CodeInputAborted, "prompt failed", err)
	}
	return ok, nil
}
