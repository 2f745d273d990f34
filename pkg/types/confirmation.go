package types

import "context"

// Decision is a user's answer to a conflict confirmation.
type Decision int

const (
	// DecisionCancel leaves everything untouched. A dismissed or
	// failed prompt also counts as cancel.
	DecisionCancel Decision = iota

	// DecisionReplace discards the existing destination item and
	// retries the move.
	DecisionReplace
)

// ConfirmationRequest describes a binary decision to put in front of
// the user before a destructive step.
type ConfirmationRequest struct {
	// Title is a brief, user-friendly title for the prompt
	Title string

	// Message describes what will happen
	Message string

	// YesLabel and NoLabel name the two choices
	YesLabel string
	NoLabel  string
}

// Prompter surfaces confirmation requests to the user. Confirm blocks
// until the user decides or ctx is done.
type Prompter interface {
	Confirm(ctx context.Context, req ConfirmationRequest) (Decision, error)
}

// Notifier delivers fire-and-forget user-visible messages. Never used
// for control flow.
type Notifier interface {
	Notify(message string)
}

// NopNotifier discards all messages.
type NopNotifier struct{}

func (NopNotifier) Notify(string) {}

// StaticPrompter always answers with a fixed decision, without user
// interaction. Used for --force and non-interactive sweeps.
type StaticPrompter struct {
	Decision Decision
}

func (p StaticPrompter) Confirm(_ context.Context, _ ConfirmationRequest) (Decision, error) {
	return p.Decision, nil
}
