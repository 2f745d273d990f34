// Package settings loads and persists the archiver configuration:
// archive folder, auto-archive rules and sweep frequency.
//
// Loading is layered with koanf: embedded defaults first, then the
// user's settings file (TOML or YAML, picked by extension). Every
// mutation is validated and written back immediately.
package settings

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	koanftoml "github.com/knadh/koanf/parsers/toml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/arca/pkg/errors"
	"github.com/arthur-debert/arca/pkg/logging"
	"github.com/arthur-debert/arca/pkg/paths"
	"github.com/arthur-debert/arca/pkg/rules"
)

// Settings is the persisted configuration record.
type Settings struct {
	Version              int          `koanf:"version" toml:"version" yaml:"version"`
	ArchiveFolder        string       `koanf:"archive_folder" toml:"archive_folder" yaml:"archive_folder"`
	AutoArchiveRules     []rules.Rule `koanf:"auto_archive_rules" toml:"auto_archive_rules" yaml:"auto_archive_rules"`
	AutoArchiveFrequency int          `koanf:"auto_archive_frequency" toml:"auto_archive_frequency" yaml:"auto_archive_frequency"`
}

// Defaults returns the built-in settings values.
func Defaults() Settings {
	return Settings{
		Version:              currentVersion,
		ArchiveFolder:        "Archive",
		AutoArchiveFrequency: 60,
	}
}

// Clone returns a deep copy, so callers can hold a consistent snapshot
// while the settings surface keeps mutating.
func (s Settings) Clone() Settings {
	out := s
	if s.AutoArchiveRules != nil {
		out.AutoArchiveRules = make([]rules.Rule, len(s.AutoArchiveRules))
		for i, r := range s.AutoArchiveRules {
			out.AutoArchiveRules[i] = r.Clone()
		}
	}
	return out
}

// DefaultPath returns the settings file location under the XDG config
// directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "arca", "settings.toml")
}

// Store owns the process-wide settings: loads them at startup merged
// over defaults, hands out snapshots, and persists every mutation.
type Store struct {
	path    string
	mu      sync.RWMutex
	current Settings
	logger  zerolog.Logger
}

// NewStore creates a store persisting to path. Call Load before use.
func NewStore(path string) *Store {
	return &Store{
		path:    path,
		current: Defaults(),
		logger:  logging.GetLogger("settings"),
	}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file merged over embedded defaults. A
// missing file is not an error; defaults apply. Loaded values go
// through the version migration and validation.
func (s *Store) Load() error {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, koanftoml.Parser()); err != nil {
		return errors.Wrap(err, errors.ErrSettingsLoad, "failed to load default settings")
	}

	// 2. User settings file, when present
	if _, err := os.Stat(s.path); err == nil {
		if err := k.Load(file.Provider(s.path), parserFor(s.path)); err != nil {
			return errors.Wrapf(err, errors.ErrSettingsLoad, "failed to load settings from %s", s.path)
		}
	}

	loaded := Defaults()
	if err := k.Unmarshal("", &loaded); err != nil {
		return errors.Wrap(err, errors.ErrSettingsLoad, "failed to parse settings")
	}

	if migrated := migrate(&loaded); migrated {
		s.logger.Info().Int("version", loaded.Version).Msg("migrated settings to current version")
	}

	if err := paths.ValidateArchiveRoot(loaded.ArchiveFolder); err != nil {
		s.logger.Warn().
			Err(err).
			Str("archive_folder", loaded.ArchiveFolder).
			Msg("invalid archive folder in settings, keeping default")
		loaded.ArchiveFolder = Defaults().ArchiveFolder
	}
	if loaded.AutoArchiveFrequency <= 0 {
		loaded.AutoArchiveFrequency = Defaults().AutoArchiveFrequency
	}

	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()

	s.logger.Debug().
		Str("path", s.path).
		Str("archive_folder", loaded.ArchiveFolder).
		Int("rules", len(loaded.AutoArchiveRules)).
		Int("frequency", loaded.AutoArchiveFrequency).
		Msg("settings loaded")

	return nil
}

// Snapshot returns a deep copy of the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// SetArchiveFolder validates and persists a new archive root. An
// invalid value is rejected and the prior value retained.
func (s *Store) SetArchiveFolder(root string) error {
	if err := paths.ValidateArchiveRoot(root); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.ArchiveFolder = paths.Normalize(root)
	return s.save()
}

// SetFrequency persists a new sweep frequency in minutes.
func (s *Store) SetFrequency(minutes int) error {
	if minutes <= 0 {
		return errors.Newf(errors.ErrInvalidInput, "frequency must be a positive number of minutes, got %d", minutes)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.AutoArchiveFrequency = minutes
	return s.save()
}

// AddRule appends a rule and persists.
func (s *Store) AddRule(r rules.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.AutoArchiveRules = append(s.current.AutoArchiveRules, r.Clone())
	return s.save()
}

// RemoveRule deletes the rule with the given id and persists.
func (s *Store) RemoveRule(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.current.AutoArchiveRules {
		if r.ID == id {
			s.current.AutoArchiveRules = append(s.current.AutoArchiveRules[:i], s.current.AutoArchiveRules[i+1:]...)
			return s.save()
		}
	}
	return errors.Newf(errors.ErrRuleNotFound, "no rule with id %s", id)
}

// SetRuleEnabled flips a rule's enabled flag and persists.
func (s *Store) SetRuleEnabled(id string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.current.AutoArchiveRules {
		if s.current.AutoArchiveRules[i].ID == id {
			s.current.AutoArchiveRules[i].Enabled = enabled
			return s.save()
		}
	}
	return errors.Newf(errors.ErrRuleNotFound, "no rule with id %s", id)
}

// UpdateRule replaces the stored rule with the same id and persists.
func (s *Store) UpdateRule(r rules.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.current.AutoArchiveRules {
		if s.current.AutoArchiveRules[i].ID == r.ID {
			s.current.AutoArchiveRules[i] = r.Clone()
			return s.save()
		}
	}
	return errors.Newf(errors.ErrRuleNotFound, "no rule with id %s", r.ID)
}

// save writes the current settings to disk. Callers hold the lock.
func (s *Store) save() error {
	data, err := marshalFor(s.path, s.current)
	if err != nil {
		return errors.Wrap(err, errors.ErrSettingsSave, "failed to encode settings")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrSettingsSave, "failed to create settings directory")
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrSettingsSave, "failed to write settings to %s", s.path)
	}

	s.logger.Debug().Str("path", s.path).Msg("settings saved")
	return nil
}

// parserFor picks the koanf parser matching the file extension.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return koanfyaml.Parser()
	default:
		return koanftoml.Parser()
	}
}

// marshalFor encodes settings in the format matching the extension.
func marshalFor(path string, s Settings) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Marshal(s)
	default:
		return gotoml.Marshal(s)
	}
}
