// Package paths computes archive and unarchive destination paths.
//
// All functions are pure: they operate on normalized, forward-slash,
// vault-relative paths and never touch storage. The archive mapping
// nests the entire original path under the archive root, so the
// original folder structure is preserved and recoverable.
package paths

import (
	"strings"

	"github.com/arthur-debert/arca/pkg/errors"
)

// Normalize canonicalizes a vault-relative path: forward slashes only,
// no leading "./", no duplicate separators, no trailing separator.
func Normalize(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")

	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}

	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}

	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")

	if path == "." {
		return ""
	}
	return path
}

// ValidateArchiveRoot checks that root is usable as an archive folder
// name: non-empty after normalization, no leading dot, no colon.
func ValidateArchiveRoot(root string) error {
	root = Normalize(root)
	if root == "" {
		return errors.New(errors.ErrInvalidArchiveRoot, "archive folder must not be empty")
	}
	if strings.HasPrefix(root, ".") {
		return errors.Newf(errors.ErrInvalidArchiveRoot, "archive folder must not start with a dot: %s", root)
	}
	if strings.Contains(root, ":") {
		return errors.Newf(errors.ErrInvalidArchiveRoot, "archive folder must not contain a colon: %s", root)
	}
	return nil
}

// IsArchived reports whether path lives under the archive root.
//
// The comparison is segment-aware: "Archive2/a.md" is not archived
// under root "Archive", even though "Archive" is a string prefix.
func IsArchived(path, root string) bool {
	path = Normalize(path)
	root = Normalize(root)
	if root == "" {
		return false
	}
	return path == root || strings.HasPrefix(path, root+"/")
}

// ArchivePath maps an original path to its archive destination: the
// entire original path, leading folders included, nested under root.
func ArchivePath(path, root string) string {
	return Normalize(root) + "/" + Normalize(path)
}

// OriginalPath strips the archive root prefix from an archived path,
// recovering the original location. Paths outside the archive are
// returned unchanged.
func OriginalPath(path, root string) string {
	path = Normalize(path)
	root = Normalize(root)
	if !IsArchived(path, root) {
		return path
	}
	if path == root {
		return ""
	}
	return path[len(root)+1:]
}

// Parent returns the folder portion of a normalized path, or "" for a
// top-level path.
func Parent(path string) string {
	path = Normalize(path)
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}
	return path[:idx]
}

// Base returns the last segment of a normalized path.
func Base(path string) string {
	path = Normalize(path)
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return path
	}
	return path[idx+1:]
}
