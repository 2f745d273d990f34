package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/arca/pkg/rules"
	"github.com/arthur-debert/arca/pkg/testutil"
	"github.com/arthur-debert/arca/pkg/vaultfs"
)

var now = time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

func newEngine(t *testing.T) (*rules.Engine, *testutilVault) {
	t.Helper()
	v := testutil.NewMemVault()
	engine := rules.NewEngine(v, "Archive").WithClock(func() time.Time { return now })
	return engine, &testutilVault{t: t, v: v}
}

// testutilVault bundles the vault with its testing.T for seeding.
type testutilVault struct {
	t *testing.T
	v *vaultfs.VaultFS
}

func (tv *testutilVault) file(path string, ageDays float64) {
	modTime := now.Add(-time.Duration(ageDays * 24 * float64(time.Hour)))
	testutil.WriteFileAged(tv.t, tv.v, path, "x", modTime)
}

func TestEvaluateCondition_FileAge(t *testing.T) {
	tests := []struct {
		name    string
		ageDays float64
		value   string
		matches bool
	}{
		{name: "older than threshold", ageDays: 10, value: "7", matches: true},
		{name: "exactly at threshold", ageDays: 7, value: "7", matches: true},
		{name: "younger than threshold", ageDays: 3, value: "7", matches: false},
		{name: "fractional age below threshold", ageDays: 6.5, value: "7", matches: false},
		{name: "zero threshold matches everything", ageDays: 0.1, value: "0", matches: true},
		{name: "non-numeric value never matches", ageDays: 100, value: "abc", matches: false},
		{name: "empty value never matches", ageDays: 100, value: "", matches: false},
		{name: "negative value never matches", ageDays: 100, value: "-1", matches: false},
		{name: "float value never matches", ageDays: 100, value: "7.5", matches: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, tv := newEngine(t)
			tv.file("Inbox/note.md", tt.ageDays)

			cond := rules.Condition{Type: rules.ConditionFileAge, Value: tt.value}
			got := engine.EvaluateCondition(testutil.Item("Inbox/note.md"), cond)
			assert.Equal(t, tt.matches, got)
		})
	}
}

func TestEvaluateCondition_RegexPattern(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		pattern  string
		matches  bool
	}{
		{name: "matching pattern", fileName: "daily-2026.md", pattern: `^daily-`, matches: true},
		{name: "non-matching pattern", fileName: "todo.md", pattern: `^daily-`, matches: false},
		{name: "extension match", fileName: "scratch.txt", pattern: `\.txt$`, matches: true},
		{name: "invalid pattern never matches", fileName: "anything.md", pattern: `([`, matches: false},
		{name: "empty pattern matches all", fileName: "a.md", pattern: ``, matches: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, tv := newEngine(t)
			tv.file("Inbox/"+tt.fileName, 1)

			cond := rules.Condition{Type: rules.ConditionRegexPattern, Value: tt.pattern}
			got := engine.EvaluateCondition(testutil.Item("Inbox/"+tt.fileName), cond)
			assert.Equal(t, tt.matches, got)
		})
	}
}

func TestEvaluateRule_EmptyConditionsNeverMatch(t *testing.T) {
	for _, op := range []rules.LogicOperator{rules.LogicAnd, rules.LogicOr} {
		engine, tv := newEngine(t)
		tv.file("Inbox/old.md", 100)

		rule := rules.NewRule("Inbox")
		rule.LogicOperator = op
		assert.False(t, engine.EvaluateRule(testutil.Item("Inbox/old.md"), rule), "operator %s", op)
	}
}

func TestEvaluateRule_ArchivedFilesNeverMatch(t *testing.T) {
	engine, tv := newEngine(t)
	tv.file("Archive/Inbox/old.md", 100)

	rule := rules.NewRule("Archive/Inbox")
	rule.Conditions = []rules.Condition{{Type: rules.ConditionFileAge, Value: "0"}}
	assert.False(t, engine.EvaluateRule(testutil.Item("Archive/Inbox/old.md"), rule))
}

func TestEvaluateRule_Logic(t *testing.T) {
	old := rules.Condition{Type: rules.ConditionFileAge, Value: "7"}
	daily := rules.Condition{Type: rules.ConditionRegexPattern, Value: `^daily-`}

	tests := []struct {
		name       string
		path       string
		ageDays    float64
		operator   rules.LogicOperator
		conditions []rules.Condition
		matches    bool
	}{
		{name: "AND all match", path: "Inbox/daily-1.md", ageDays: 10, operator: rules.LogicAnd, conditions: []rules.Condition{old, daily}, matches: true},
		{name: "AND one fails", path: "Inbox/daily-1.md", ageDays: 3, operator: rules.LogicAnd, conditions: []rules.Condition{old, daily}, matches: false},
		{name: "AND other fails", path: "Inbox/todo.md", ageDays: 10, operator: rules.LogicAnd, conditions: []rules.Condition{old, daily}, matches: false},
		{name: "OR one matches", path: "Inbox/daily-1.md", ageDays: 3, operator: rules.LogicOr, conditions: []rules.Condition{old, daily}, matches: true},
		{name: "OR other matches", path: "Inbox/todo.md", ageDays: 10, operator: rules.LogicOr, conditions: []rules.Condition{old, daily}, matches: true},
		{name: "OR none match", path: "Inbox/todo.md", ageDays: 3, operator: rules.LogicOr, conditions: []rules.Condition{old, daily}, matches: false},
		{name: "AND invalid condition fails the rule", path: "Inbox/daily-1.md", ageDays: 10, operator: rules.LogicAnd, conditions: []rules.Condition{{Type: rules.ConditionFileAge, Value: "abc"}, daily}, matches: false},
		{name: "OR invalid condition is ignored when another matches", path: "Inbox/daily-1.md", ageDays: 10, operator: rules.LogicOr, conditions: []rules.Condition{{Type: rules.ConditionRegexPattern, Value: `([`}, daily}, matches: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, tv := newEngine(t)
			tv.file(tt.path, tt.ageDays)

			rule := rules.NewRule("Inbox")
			rule.Conditions = tt.conditions
			rule.LogicOperator = tt.operator
			assert.Equal(t, tt.matches, engine.EvaluateRule(testutil.Item(tt.path), rule))
		})
	}
}

func TestMatches_DirectChildrenOnly(t *testing.T) {
	engine, tv := newEngine(t)
	tv.file("Inbox/old.md", 30)
	tv.file("Inbox/new.md", 1)
	tv.file("Inbox/Sub/old-nested.md", 30)

	rule := rules.NewRule("Inbox")
	rule.Conditions = []rules.Condition{{Type: rules.ConditionFileAge, Value: "7"}}

	matched := engine.Matches(rule)
	require.Len(t, matched, 1)
	assert.Equal(t, "Inbox/old.md", matched[0].Path)
}

func TestMatches_MissingFolderYieldsNothing(t *testing.T) {
	engine, _ := newEngine(t)

	rule := rules.NewRule("DoesNotExist")
	rule.Conditions = []rules.Condition{{Type: rules.ConditionFileAge, Value: "0"}}
	assert.Empty(t, engine.Matches(rule))
}

func TestMatches_SkipsFolders(t *testing.T) {
	engine, tv := newEngine(t)
	tv.file("Inbox/old.md", 30)
	testutil.MkDir(t, tv.v, "Inbox/Sub")

	rule := rules.NewRule("Inbox")
	rule.Conditions = []rules.Condition{{Type: rules.ConditionRegexPattern, Value: `.*`}}

	matched := engine.Matches(rule)
	require.Len(t, matched, 1)
	assert.Equal(t, "Inbox/old.md", matched[0].Path)
	assert.Equal(t, "old.md", matched[0].Name)
}

func TestNewRule(t *testing.T) {
	r1 := rules.NewRule("Inbox")
	r2 := rules.NewRule("Inbox")
	assert.NotEmpty(t, r1.ID)
	assert.NotEqual(t, r1.ID, r2.ID, "rule ids must be unique")
	assert.True(t, r1.Enabled)
	assert.Equal(t, rules.LogicAnd, r1.LogicOperator)
}
