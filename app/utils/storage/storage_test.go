package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveProductImage(t *testing.T) {
	disk := NewDisk(t.TempDir())

	rel, err := disk.SaveProductImage("prod-1", "My Photo.JPG", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rel, "product_images/prod-1/my-photo-"), rel)
	assert.True(t, strings.HasSuffix(rel, ".jpg"), rel)

	data, err := os.ReadFile(filepath.Join(disk.Root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestSaveProductImageCollisions(t *testing.T) {
	disk := NewDisk(t.TempDir())

	first, err := disk.SaveProductImage("prod-1", "photo.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := disk.SaveProductImage("prod-1", "photo.png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRemove(t *testing.T) {
	disk := NewDisk(t.TempDir())

	rel, err := disk.SaveProductImage("prod-1", "photo.png", strings.NewReader("a"))
	require.NoError(t, err)

	require.NoError(t, disk.Remove(rel))
	_, statErr := os.Stat(filepath.Join(disk.Root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(statErr))

	// Removing an already-gone file is not an error.
	assert.NoError(t, disk.Remove(rel))

	assert.Error(t, disk.Remove("../outside.png"))
	assert.Error(t, disk.Remove("/etc/passwd"))
}
