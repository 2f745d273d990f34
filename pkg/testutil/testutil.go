// Package testutil provides test doubles and vault seeding helpers.
package testutil

import (
	"context"
	pathpkg "path"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/arca/pkg/settings"
	"github.com/arthur-debert/arca/pkg/types"
	"github.com/arthur-debert/arca/pkg/vaultfs"
)

// VaultRoot is where test vaults are mounted in the in-memory fs.
const VaultRoot = "/vault"

// NewMemVault returns a vault backed by an in-memory filesystem.
func NewMemVault() *vaultfs.VaultFS {
	return vaultfs.New(afero.NewMemMapFs(), VaultRoot)
}

// NewStore creates a settings store persisting into a temp directory,
// loaded with defaults.
func NewStore(t *testing.T) *settings.Store {
	t.Helper()
	store := settings.NewStore(t.TempDir() + "/settings.toml")
	require.NoError(t, store.Load())
	return store
}

// WriteFile seeds a file into the vault, creating parent folders.
func WriteFile(t *testing.T, v *vaultfs.VaultFS, path, content string) {
	t.Helper()
	abs := pathpkg.Join(VaultRoot, path)
	require.NoError(t, v.Fs().MkdirAll(pathpkg.Dir(abs), 0755))
	require.NoError(t, afero.WriteFile(v.Fs(), abs, []byte(content), 0644))
}

// WriteFileAged seeds a file with a specific modification time.
func WriteFileAged(t *testing.T, v *vaultfs.VaultFS, path, content string, modTime time.Time) {
	t.Helper()
	WriteFile(t, v, path, content)
	require.NoError(t, v.Fs().Chtimes(pathpkg.Join(VaultRoot, path), modTime, modTime))
}

// MkDir seeds a folder into the vault.
func MkDir(t *testing.T, v *vaultfs.VaultFS, path string) {
	t.Helper()
	require.NoError(t, v.Fs().MkdirAll(pathpkg.Join(VaultRoot, path), 0755))
}

// Exists reports whether the vault holds an item at path.
func Exists(t *testing.T, v *vaultfs.VaultFS, path string) bool {
	t.Helper()
	item, err := v.FindItem(path)
	require.NoError(t, err)
	return item != nil
}

// Item builds a file item with the basename derived from path.
func Item(path string) types.Item {
	return types.Item{Path: path, Name: pathpkg.Base(path)}
}

// ScriptedPrompter answers confirmation requests from a fixed queue of
// decisions, recording every request it sees. An exhausted queue
// answers cancel.
type ScriptedPrompter struct {
	Decisions []types.Decision
	Requests  []types.ConfirmationRequest
}

func (p *ScriptedPrompter) Confirm(_ context.Context, req types.ConfirmationRequest) (types.Decision, error) {
	p.Requests = append(p.Requests, req)
	if len(p.Decisions) == 0 {
		return types.DecisionCancel, nil
	}
	d := p.Decisions[0]
	p.Decisions = p.Decisions[1:]
	return d, nil
}

// RecordingNotifier captures notification messages.
type RecordingNotifier struct {
	Messages []string
}

func (n *RecordingNotifier) Notify(message string) {
	n.Messages = append(n.Messages, message)
}
