package archive

import (
	"context"
	"fmt"

	"github.com/arthur-debert/arca/pkg/errors"
	"github.com/arthur-debert/arca/pkg/types"
)

// resolveConflict checks whether dest is already occupied and, if so,
// puts a replace-or-cancel decision in front of the user. Replace
// trashes the existing item so the move can proceed; cancel (or a
// dismissed prompt) leaves everything untouched.
//
// Returns (true, nil) when the move may proceed.
func (o *Orchestrator) resolveConflict(ctx context.Context, dest string) (bool, error) {
	existing, err := o.vault.FindItem(dest)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrStorageFailure, "failed to check destination %s", dest)
	}
	if existing == nil {
		return true, nil
	}

	decision, err := o.prompter.Confirm(ctx, types.ConfirmationRequest{
		Title:    "Destination already exists",
		Message:  fmt.Sprintf("%s already exists. Replace it?", dest),
		YesLabel: "Replace",
		NoLabel:  "Cancel",
	})
	if err != nil {
		o.logger.Warn().Err(err).Str("dest", dest).Msg("confirmation prompt failed, treating as cancel")
		return false, nil
	}
	if decision != types.DecisionReplace {
		o.logger.Debug().Str("dest", dest).Msg("user declined to replace existing item")
		return false, nil
	}

	if err := o.vault.Trash(*existing); err != nil {
		return false, errors.Wrapf(err, errors.ErrTrashFailed, "failed to discard existing item at %s", dest)
	}
	o.logger.Info().Str("dest", dest).Msg("existing item discarded before move")
	return true, nil
}
