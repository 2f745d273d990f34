package rules

import (
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/arca/pkg/logging"
	"github.com/arthur-debert/arca/pkg/paths"
	"github.com/arthur-debert/arca/pkg/types"
)

// Engine evaluates auto-archive rules against vault files.
type Engine struct {
	vault       types.Vault
	archiveRoot string
	now         func() time.Time
	logger      zerolog.Logger
}

// NewEngine creates a rule engine reading candidates from vault.
// archiveRoot is the configured archive folder; files already under it
// are never matched.
func NewEngine(vault types.Vault, archiveRoot string) *Engine {
	return &Engine{
		vault:       vault,
		archiveRoot: archiveRoot,
		now:         time.Now,
		logger:      logging.GetLogger("rules.engine"),
	}
}

// WithClock replaces the engine's time source. Used in tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Matches returns the files the rule selects for archiving: the direct
// child files of the rule's folder that satisfy its conditions. A
// missing folder contributes zero candidates, without error.
func (e *Engine) Matches(rule Rule) []types.Item {
	folder, err := e.vault.FindFolder(rule.FolderPath)
	if err != nil {
		e.logger.Warn().Err(err).Str("folder", rule.FolderPath).Msg("failed to look up rule folder")
		return nil
	}
	if folder == nil {
		e.logger.Debug().Str("folder", rule.FolderPath).Msg("rule folder does not exist, skipping")
		return nil
	}

	children, err := e.vault.ListChildren(folder.Path)
	if err != nil {
		e.logger.Warn().Err(err).Str("folder", folder.Path).Msg("failed to list rule folder")
		return nil
	}

	var matched []types.Item
	for _, child := range children {
		if child.IsDir {
			continue
		}
		if e.EvaluateRule(child, rule) {
			matched = append(matched, child)
		}
	}

	e.logger.Debug().
		Str("rule", rule.ID).
		Str("folder", rule.FolderPath).
		Int("candidates", len(children)).
		Int("matched", len(matched)).
		Msg("evaluated rule")

	return matched
}

// EvaluateRule reports whether file satisfies the rule. Files already
// under the archive root never match, and neither does a rule with an
// empty condition list. AND and OR both short-circuit.
func (e *Engine) EvaluateRule(file types.Item, rule Rule) bool {
	if paths.IsArchived(file.Path, e.archiveRoot) {
		return false
	}
	if len(rule.Conditions) == 0 {
		return false
	}

	if rule.LogicOperator == LogicOr {
		for _, cond := range rule.Conditions {
			if e.EvaluateCondition(file, cond) {
				return true
			}
		}
		return false
	}

	// AND is the default, matching settings loaded from older versions
	for _, cond := range rule.Conditions {
		if !e.EvaluateCondition(file, cond) {
			return false
		}
	}
	return true
}

// EvaluateCondition reports whether file satisfies a single condition.
// Invalid condition values degrade to false rather than erroring, so
// one bad condition cannot take down a sweep.
func (e *Engine) EvaluateCondition(file types.Item, cond Condition) bool {
	switch cond.Type {
	case ConditionFileAge:
		return e.matchFileAge(file, cond.Value)
	case ConditionRegexPattern:
		return e.matchPattern(file, cond.Value)
	default:
		e.logger.Warn().Str("type", string(cond.Type)).Msg("unknown condition type")
		return false
	}
}

// matchFileAge is true when the file is at least value days old.
// Fractional file ages are compared against the integer threshold.
func (e *Engine) matchFileAge(file types.Item, value string) bool {
	days, err := strconv.Atoi(value)
	if err != nil || days < 0 {
		e.logger.Error().
			Str("value", value).
			Str("file", file.Path).
			Msg("invalid file age condition value")
		return false
	}

	info, err := e.vault.Stat(file.Path)
	if err != nil {
		e.logger.Warn().Err(err).Str("file", file.Path).Msg("failed to stat file for age condition")
		return false
	}

	ageDays := e.now().Sub(info.ModTime()).Hours() / 24
	return ageDays >= float64(days)
}

// matchPattern is true when the file's basename matches value compiled
// as a regular expression. Invalid patterns are logged and never match.
func (e *Engine) matchPattern(file types.Item, value string) bool {
	re, err := regexp.Compile(value)
	if err != nil {
		e.logger.Error().
			Err(err).
			Str("pattern", value).
			Str("file", file.Name).
			Msg("invalid regex pattern in condition")
		return false
	}
	return re.MatchString(file.Name)
}
