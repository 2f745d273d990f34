// Package vaultfs provides an afero-backed implementation of the
// types.Vault interface, rooted at a directory on disk. Tests run the
// same implementation on afero.NewMemMapFs.
package vaultfs

import (
	"fmt"
	"io/fs"
	"os"
	pathpkg "path"

	"github.com/spf13/afero"

	"github.com/arthur-debert/arca/pkg/paths"
	"github.com/arthur-debert/arca/pkg/types"
)

// TrashFolder is where replaced items are parked inside the vault
// instead of being unlinked. Acts as the host trash mechanism.
const TrashFolder = ".trash"

// VaultFS implements types.Vault on top of an afero filesystem.
type VaultFS struct {
	fs   afero.Fs
	root string
}

// New creates a vault over fsys rooted at root. Vault paths are
// relative to root and forward-slash separated.
func New(fsys afero.Fs, root string) *VaultFS {
	return &VaultFS{fs: fsys, root: root}
}

// NewOS creates a vault over the OS filesystem rooted at root.
func NewOS(root string) *VaultFS {
	return New(afero.NewOsFs(), root)
}

// Fs exposes the underlying afero filesystem, for test seeding.
func (v *VaultFS) Fs() afero.Fs {
	return v.fs
}

func (v *VaultFS) abs(p string) string {
	return pathpkg.Join(v.root, paths.Normalize(p))
}

// Stat returns file metadata for the item at path.
func (v *VaultFS) Stat(path string) (fs.FileInfo, error) {
	return v.fs.Stat(v.abs(path))
}

// FindItem returns the item at path, or (nil, nil) when absent.
func (v *VaultFS) FindItem(path string) (*types.Item, error) {
	path = paths.Normalize(path)
	info, err := v.fs.Stat(v.abs(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return &types.Item{Path: path, Name: paths.Base(path), IsDir: info.IsDir()}, nil
}

// FindFolder returns the folder at path, or (nil, nil) when path does
// not exist or is a file.
func (v *VaultFS) FindFolder(path string) (*types.Item, error) {
	item, err := v.FindItem(path)
	if err != nil || item == nil {
		return nil, err
	}
	if !item.IsDir {
		return nil, nil
	}
	return item, nil
}

// ListChildren returns the direct children of the folder at path.
func (v *VaultFS) ListChildren(path string) ([]types.Item, error) {
	path = paths.Normalize(path)
	entries, err := afero.ReadDir(v.fs, v.abs(path))
	if err != nil {
		return nil, err
	}

	items := make([]types.Item, 0, len(entries))
	for _, entry := range entries {
		childPath := entry.Name()
		if path != "" {
			childPath = path + "/" + entry.Name()
		}
		items = append(items, types.Item{
			Path:  childPath,
			Name:  entry.Name(),
			IsDir: entry.IsDir(),
		})
	}
	return items, nil
}

// CreateFolder creates the folder at path, including missing parents.
func (v *VaultFS) CreateFolder(path string) error {
	return v.fs.MkdirAll(v.abs(path), 0755)
}

// Move relocates item to destPath. The destination's parent folder
// must already exist.
func (v *VaultFS) Move(item types.Item, destPath string) error {
	return v.fs.Rename(v.abs(item.Path), v.abs(destPath))
}

// Trash moves item into the vault's trash folder, preserving its path
// under it. An occupied trash slot gets a numeric suffix rather than
// being overwritten.
func (v *VaultFS) Trash(item types.Item) error {
	trashPath := TrashFolder + "/" + paths.Normalize(item.Path)

	if err := v.fs.MkdirAll(v.abs(paths.Parent(trashPath)), 0755); err != nil {
		return err
	}

	candidate := trashPath
	for i := 1; ; i++ {
		if _, err := v.fs.Stat(v.abs(candidate)); os.IsNotExist(err) {
			break
		}
		candidate = fmt.Sprintf("%s.%d", trashPath, i)
	}

	return v.fs.Rename(v.abs(item.Path), v.abs(candidate))
}
