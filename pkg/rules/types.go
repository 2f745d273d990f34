package rules

import (
	"github.com/google/uuid"
)

// ConditionType identifies the predicate a condition evaluates.
type ConditionType string

const (
	// ConditionFileAge matches files whose age in days is at least the
	// condition value (a non-negative integer).
	ConditionFileAge ConditionType = "fileAge"

	// ConditionRegexPattern matches files whose basename matches the
	// condition value compiled as a regular expression.
	ConditionRegexPattern ConditionType = "regexPattern"
)

// LogicOperator combines a rule's conditions.
type LogicOperator string

const (
	LogicAnd LogicOperator = "AND"
	LogicOr  LogicOperator = "OR"
)

// Condition is a single predicate evaluated against a candidate file.
// An invalid value (non-numeric age, broken pattern) degrades the
// condition to never-matching; it never fails rule evaluation.
type Condition struct {
	Type  ConditionType `koanf:"type" toml:"type" yaml:"type"`
	Value string        `koanf:"value" toml:"value" yaml:"value"`
}

// Rule is a folder-scoped, condition-gated policy for automatic
// archiving. Conditions are ordered; LogicOperator decides whether all
// or any must match. A rule with zero conditions never matches.
type Rule struct {
	ID            string        `koanf:"id" toml:"id" yaml:"id"`
	Enabled       bool          `koanf:"enabled" toml:"enabled" yaml:"enabled"`
	FolderPath    string        `koanf:"folder_path" toml:"folder_path" yaml:"folder_path"`
	Conditions    []Condition   `koanf:"conditions" toml:"conditions" yaml:"conditions"`
	LogicOperator LogicOperator `koanf:"logic_operator" toml:"logic_operator" yaml:"logic_operator"`
}

// NewRule creates an enabled rule for folderPath with a generated
// unique id and no conditions.
func NewRule(folderPath string) Rule {
	return Rule{
		ID:            uuid.NewString(),
		Enabled:       true,
		FolderPath:    folderPath,
		LogicOperator: LogicAnd,
	}
}

// Clone returns a deep copy of the rule, so per-sweep snapshots are
// isolated from settings mutations.
func (r Rule) Clone() Rule {
	out := r
	if r.Conditions != nil {
		out.Conditions = make([]Condition, len(r.Conditions))
		copy(out.Conditions, r.Conditions)
	}
	return out
}
