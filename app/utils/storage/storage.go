package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Disk stores uploaded product images under a media root on the local
// filesystem. Rows in the database keep the media-relative path.
type Disk struct {
	Root string
}

func NewDisk(root string) *Disk {
	return &Disk{Root: root}
}

// SaveProductImage writes an uploaded file under
// <root>/product_images/<productID>/ and returns its media-relative path.
// The stored filename is slugified and suffixed so repeated uploads of the
// same file never collide.
func (d *Disk) SaveProductImage(productID, filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	base := slug.Make(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if base == "" {
		base = "image"
	}

	rel := filepath.Join("product_images", productID, fmt.Sprintf("%s-%s%s", base, uuid.NewString()[:8], ext))
	full := filepath.Join(d.Root, rel)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	dst, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return filepath.ToSlash(rel), nil
}

// Remove deletes a stored image by its media-relative path. Paths escaping
// the media root are rejected.
func (d *Disk) Remove(rel string) error {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid media path: %s", rel)
	}
	err := os.Remove(filepath.Join(d.Root, clean))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
