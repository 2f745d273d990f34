package vaultfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/arca/pkg/testutil"
	"github.com/arthur-debert/arca/pkg/vaultfs"
)

func TestFindItem(t *testing.T) {
	v := testutil.NewMemVault()
	testutil.WriteFile(t, v, "Notes/todo.md", "x")

	item, err := v.FindItem("Notes/todo.md")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Notes/todo.md", item.Path)
	assert.Equal(t, "todo.md", item.Name)
	assert.False(t, item.IsDir)

	missing, err := v.FindItem("Notes/nope.md")
	require.NoError(t, err)
	assert.Nil(t, missing, "absent item is (nil, nil), not an error")
}

func TestFindFolder(t *testing.T) {
	v := testutil.NewMemVault()
	testutil.WriteFile(t, v, "Notes/todo.md", "x")

	folder, err := v.FindFolder("Notes")
	require.NoError(t, err)
	require.NotNil(t, folder)
	assert.True(t, folder.IsDir)

	notFolder, err := v.FindFolder("Notes/todo.md")
	require.NoError(t, err)
	assert.Nil(t, notFolder, "a file is not a folder")

	missing, err := v.FindFolder("Nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListChildren(t *testing.T) {
	v := testutil.NewMemVault()
	testutil.WriteFile(t, v, "Inbox/a.md", "a")
	testutil.WriteFile(t, v, "Inbox/b.md", "b")
	testutil.WriteFile(t, v, "Inbox/Sub/c.md", "c")

	children, err := v.ListChildren("Inbox")
	require.NoError(t, err)
	require.Len(t, children, 3)

	byName := map[string]bool{}
	for _, child := range children {
		byName[child.Name] = child.IsDir
		assert.Equal(t, "Inbox/"+child.Name, child.Path)
	}
	assert.False(t, byName["a.md"])
	assert.False(t, byName["b.md"])
	assert.True(t, byName["Sub"])
}

func TestMoveAndCreateFolder(t *testing.T) {
	v := testutil.NewMemVault()
	testutil.WriteFile(t, v, "a.md", "x")

	require.NoError(t, v.CreateFolder("Archive/Deep"))
	item, err := v.FindItem("a.md")
	require.NoError(t, err)
	require.NotNil(t, item)

	require.NoError(t, v.Move(*item, "Archive/Deep/a.md"))
	assert.True(t, testutil.Exists(t, v, "Archive/Deep/a.md"))
	assert.False(t, testutil.Exists(t, v, "a.md"))
}

func TestTrash(t *testing.T) {
	v := testutil.NewMemVault()
	testutil.WriteFile(t, v, "Archive/a.md", "old")

	item, err := v.FindItem("Archive/a.md")
	require.NoError(t, err)
	require.NotNil(t, item)

	require.NoError(t, v.Trash(*item))
	assert.False(t, testutil.Exists(t, v, "Archive/a.md"))
	assert.True(t, testutil.Exists(t, v, vaultfs.TrashFolder+"/Archive/a.md"))
}

func TestTrash_OccupiedSlotGetsSuffix(t *testing.T) {
	v := testutil.NewMemVault()
	testutil.WriteFile(t, v, "Archive/a.md", "first")
	testutil.WriteFile(t, v, vaultfs.TrashFolder+"/Archive/a.md", "earlier")

	item, err := v.FindItem("Archive/a.md")
	require.NoError(t, err)
	require.NotNil(t, item)

	require.NoError(t, v.Trash(*item))
	assert.True(t, testutil.Exists(t, v, vaultfs.TrashFolder+"/Archive/a.md"))
	assert.True(t, testutil.Exists(t, v, vaultfs.TrashFolder+"/Archive/a.md.1"))
}
