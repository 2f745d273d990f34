package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/arca/pkg/errors"
	"github.com/arthur-debert/arca/pkg/rules"
	"github.com/arthur-debert/arca/pkg/style"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage auto-archive rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all auto-archive rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}

		snap := a.store.Snapshot()
		if len(snap.AutoArchiveRules) == 0 {
			fmt.Println("no rules configured")
			return nil
		}
		for _, r := range snap.AutoArchiveRules {
			state := style.Success("enabled")
			if !r.Enabled {
				state = style.Muted("disabled")
			}
			fmt.Printf("%s  %s  %s  %s\n", r.ID, state, style.Path(r.FolderPath), describeConditions(r))
		}
		return nil
	},
}

var (
	ruleOlderThan string
	rulePattern   string
	ruleAnyOf     bool
)

var rulesAddCmd = &cobra.Command{
	Use:   "add <folder>",
	Short: "Add an auto-archive rule for a folder",
	Long: `Add a rule archiving direct-child files of a folder. Conditions come
from the flags; with both --older-than and --pattern the rule requires
all of them unless --any is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}

		rule := rules.NewRule(args[0])
		if ruleOlderThan != "" {
			rule.Conditions = append(rule.Conditions, rules.Condition{Type: rules.ConditionFileAge, Value: ruleOlderThan})
		}
		if rulePattern != "" {
			rule.Conditions = append(rule.Conditions, rules.Condition{Type: rules.ConditionRegexPattern, Value: rulePattern})
		}
		if ruleAnyOf {
			rule.LogicOperator = rules.LogicOr
		}
		if len(rule.Conditions) == 0 {
			return errors.New(errors.ErrInvalidInput, "a rule needs at least one of --older-than or --pattern")
		}

		if err := a.store.AddRule(rule); err != nil {
			return err
		}
		fmt.Printf("added rule %s\n", rule.ID)
		return nil
	},
}

var rulesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an auto-archive rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		if err := a.store.RemoveRule(args[0]); err != nil {
			return err
		}
		fmt.Printf("removed rule %s\n", args[0])
		return nil
	},
}

var rulesEnableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Enable an auto-archive rule",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setRuleEnabled(args[0], true) },
}

var rulesDisableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Disable an auto-archive rule",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setRuleEnabled(args[0], false) },
}

func setRuleEnabled(id string, enabled bool) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	if err := a.store.SetRuleEnabled(id, enabled); err != nil {
		return err
	}
	state := "enabled"
	if !enabled {
		state = "disabled"
	}
	fmt.Printf("rule %s %s\n", id, state)
	return nil
}

func describeConditions(r rules.Rule) string {
	if len(r.Conditions) == 0 {
		return "(no conditions, never matches)"
	}
	parts := make([]string, 0, len(r.Conditions))
	for _, c := range r.Conditions {
		switch c.Type {
		case rules.ConditionFileAge:
			parts = append(parts, fmt.Sprintf("older than %s days", c.Value))
		case rules.ConditionRegexPattern:
			parts = append(parts, fmt.Sprintf("name matches /%s/", c.Value))
		default:
			parts = append(parts, string(c.Type))
		}
	}
	sep := " and "
	if r.LogicOperator == rules.LogicOr {
		sep = " or "
	}
	return strings.Join(parts, sep)
}

func init() {
	rulesAddCmd.Flags().StringVar(&ruleOlderThan, "older-than", "", "Match files at least this many days old")
	rulesAddCmd.Flags().StringVar(&rulePattern, "pattern", "", "Match file names against this regular expression")
	rulesAddCmd.Flags().BoolVar(&ruleAnyOf, "any", false, "Match when any condition holds instead of all")

	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesAddCmd)
	rulesCmd.AddCommand(rulesRmCmd)
	rulesCmd.AddCommand(rulesEnableCmd)
	rulesCmd.AddCommand(rulesDisableCmd)
}
