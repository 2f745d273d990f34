package types

import (
	"io/fs"
)

// Item is a file or folder inside the vault, identified by its
// normalized path (forward slashes, no leading "./", no trailing slash).
type Item struct {
	Path  string
	Name  string
	IsDir bool
}

// Vault is the storage interface required for archive operations.
// Implementations are provided by the host; the core only reads paths
// and issues move requests through it.
type Vault interface {
	// Stat returns file metadata, used for age evaluation.
	Stat(path string) (fs.FileInfo, error)

	// FindItem returns the item at path, or (nil, nil) when nothing
	// exists there.
	FindItem(path string) (*Item, error)

	// FindFolder returns the folder at path, or (nil, nil) when the
	// path does not exist or is not a folder.
	FindFolder(path string) (*Item, error)

	// ListChildren returns the direct children of the folder at path.
	ListChildren(path string) ([]Item, error)

	// CreateFolder creates the folder at path, including any missing
	// parents. Callers check existence first.
	CreateFolder(path string) error

	// Move relocates item to destPath.
	Move(item Item, destPath string) error

	// Trash discards item. The host may soft-delete; from this core's
	// perspective the item is gone.
	Trash(item Item) error
}
