package main

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/arca/pkg/style"
	"github.com/arthur-debert/arca/pkg/types"
)

// ptermPrompter asks the replace-or-cancel question interactively in
// the terminal. Declining is the default, so an accidental enter never
// discards anything.
type ptermPrompter struct{}

func (ptermPrompter) Confirm(_ context.Context, req types.ConfirmationRequest) (types.Decision, error) {
	pterm.Println(style.Muted(req.Title))

	confirmed, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		WithConfirmText(req.YesLabel).
		WithRejectText(req.NoLabel).
		Show(req.Message)
	if err != nil {
		return types.DecisionCancel, err
	}
	if confirmed {
		return types.DecisionReplace, nil
	}
	return types.DecisionCancel, nil
}

// terminalNotifier prints fire-and-forget messages with pterm's info
// prefix.
type terminalNotifier struct{}

func (terminalNotifier) Notify(message string) {
	fmt.Printf("%s %s\n", pterm.Info.Prefix.Text, message)
}
