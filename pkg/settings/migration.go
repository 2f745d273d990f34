package settings

import "github.com/arthur-debert/arca/pkg/rules"

// currentVersion is bumped whenever the settings schema changes in a
// way that needs an upgrade step on load.
const currentVersion = 2

// migrate upgrades a settings record loaded from an older version.
// Returns true when anything changed.
//
// Version 1 -> 2: rules written before logic operators existed carry
// no logic_operator; they combined conditions with AND, so that is
// what they get.
func migrate(s *Settings) bool {
	changed := false

	for i := range s.AutoArchiveRules {
		if s.AutoArchiveRules[i].LogicOperator == "" {
			s.AutoArchiveRules[i].LogicOperator = rules.LogicAnd
			changed = true
		}
	}

	if s.Version < currentVersion {
		s.Version = currentVersion
		changed = true
	}

	return changed
}
