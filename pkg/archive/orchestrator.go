// Package archive coordinates single-file, multi-file and rule-driven
// archive operations: destination mapping, conflict resolution, the
// move itself, and per-file result reporting.
package archive

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/arca/pkg/errors"
	"github.com/arthur-debert/arca/pkg/logging"
	"github.com/arthur-debert/arca/pkg/paths"
	"github.com/arthur-debert/arca/pkg/rules"
	"github.com/arthur-debert/arca/pkg/settings"
	"github.com/arthur-debert/arca/pkg/types"
)

// Orchestrator wires the path mapper, conflict resolver and vault
// capabilities into the archive operations. Items are always processed
// strictly in sequence: conflict resolution suspends on user input,
// and concurrent moves into one destination would race.
type Orchestrator struct {
	vault    types.Vault
	prompter types.Prompter
	notifier types.Notifier
	store    *settings.Store
	logger   zerolog.Logger
}

// New creates an orchestrator. A nil notifier is replaced with a no-op.
func New(vault types.Vault, prompter types.Prompter, notifier types.Notifier, store *settings.Store) *Orchestrator {
	if notifier == nil {
		notifier = types.NopNotifier{}
	}
	return &Orchestrator{
		vault:    vault,
		prompter: prompter,
		notifier: notifier,
		store:    store,
		logger:   logging.GetLogger("archive"),
	}
}

// Archive moves item under the archive root, preserving its folder
// structure. Already-archived items fail fast without touching
// storage.
func (o *Orchestrator) Archive(ctx context.Context, item types.Item) types.ArchiveResult {
	root := o.store.Snapshot().ArchiveFolder
	path := paths.Normalize(item.Path)

	if paths.IsArchived(path, root) {
		return types.Fail("already archived")
	}

	dest := paths.ArchivePath(path, root)
	return o.move(ctx, item, dest, "archived %s")
}

// Unarchive moves an archived item back to its original location.
// Items outside the archive fail fast without touching storage.
func (o *Orchestrator) Unarchive(ctx context.Context, item types.Item) types.ArchiveResult {
	root := o.store.Snapshot().ArchiveFolder
	path := paths.Normalize(item.Path)

	if !paths.IsArchived(path, root) {
		return types.Fail("not archived")
	}

	dest := paths.OriginalPath(path, root)
	if dest == "" {
		return types.Fail("cannot unarchive the archive folder itself")
	}
	return o.move(ctx, item, dest, "unarchived %s")
}

// ArchiveAll archives each item independently: one item's failure does
// not block the rest. Returns the success count and per-item results.
func (o *Orchestrator) ArchiveAll(ctx context.Context, items []types.Item) (int, []types.ArchiveResult) {
	return o.each(items, func(item types.Item) types.ArchiveResult {
		return o.Archive(ctx, item)
	})
}

// UnarchiveAll is the batch counterpart of Unarchive.
func (o *Orchestrator) UnarchiveAll(ctx context.Context, items []types.Item) (int, []types.ArchiveResult) {
	return o.each(items, func(item types.Item) types.ArchiveResult {
		return o.Unarchive(ctx, item)
	})
}

// RunSweep evaluates every enabled rule against its folder and
// archives the matches. Each rule reads a consistent settings snapshot
// taken at sweep start; a rule whose folder is missing contributes
// nothing. Returns the total number of files archived.
func (o *Orchestrator) RunSweep(ctx context.Context) int {
	snap := o.store.Snapshot()
	engine := rules.NewEngine(o.vault, snap.ArchiveFolder)

	total := 0
	for _, rule := range snap.AutoArchiveRules {
		if !rule.Enabled {
			continue
		}
		for _, match := range engine.Matches(rule) {
			res := o.Archive(ctx, match)
			if res.Success {
				total++
			} else {
				o.logger.Debug().
					Str("file", match.Path).
					Str("rule", rule.ID).
					Str("message", res.Message).
					Msg("sweep skipped file")
			}
		}
	}

	o.logger.Info().Int("archived", total).Msg("auto-archive sweep finished")
	if total > 0 {
		o.notifier.Notify(plural(total, "auto-archived %d file", "auto-archived %d files"))
	}
	return total
}

// move performs one confirmed move: resolve any destination conflict,
// ensure the destination folder exists, then ask the vault to move.
func (o *Orchestrator) move(ctx context.Context, item types.Item, dest string, successFormat string) types.ArchiveResult {
	proceed, err := o.resolveConflict(ctx, dest)
	if err != nil {
		o.logger.Error().Err(err).Str("dest", dest).Msg("conflict resolution failed")
		return types.Fail("%v", err)
	}
	if !proceed {
		return types.Fail("operation cancelled")
	}

	if err := o.ensureFolder(paths.Parent(dest)); err != nil {
		return types.Fail("%v", err)
	}

	if err := o.vault.Move(item, dest); err != nil {
		wrapped := errors.Wrapf(err, errors.ErrMoveFailed, "failed to move %s to %s", item.Path, dest)
		o.logger.Error().Err(wrapped).Msg("move failed")
		return types.Fail("%v", wrapped)
	}

	o.logger.Info().Str("from", item.Path).Str("to", dest).Msg("item moved")
	return types.Succeed(successFormat, item.Name)
}

// ensureFolder creates folder when absent. An empty folder means the
// vault root, which always exists.
func (o *Orchestrator) ensureFolder(folder string) error {
	if folder == "" {
		return nil
	}
	existing, err := o.vault.FindFolder(folder)
	if err != nil {
		return errors.Wrapf(err, errors.ErrStorageFailure, "failed to look up folder %s", folder)
	}
	if existing != nil {
		return nil
	}
	if err := o.vault.CreateFolder(folder); err != nil {
		return errors.Wrapf(err, errors.ErrFolderCreate, "failed to create folder %s", folder)
	}
	return nil
}

// each applies op to every item in order, one completing before the
// next begins.
func (o *Orchestrator) each(items []types.Item, op func(types.Item) types.ArchiveResult) (int, []types.ArchiveResult) {
	results := make([]types.ArchiveResult, 0, len(items))
	succeeded := 0
	for _, item := range items {
		res := op(item)
		if res.Success {
			succeeded++
		}
		results = append(results, res)
	}
	return succeeded, results
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf(singular, n)
	}
	return fmt.Sprintf(pluralForm, n)
}
