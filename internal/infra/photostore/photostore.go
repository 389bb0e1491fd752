package photostore

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const thumbMax = 256

// Store keeps employee photos on disk as webp thumbnails. Only the
// file name is persisted on the employee row.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create photo dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save decodes the uploaded image, scales it down to at most
// thumbMax px on its longer side and writes it under a random name.
func (s *Store) Save(r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	thumb := scaleDown(src)

	name := uuid.NewString() + ".webp"
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := webp.Encode(f, thumb, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode photo: %w", err)
	}

	return name, nil
}

// Remove deletes a stored photo. A missing file is not an error.
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= thumbMax && h <= thumbMax {
		return src
	}

	if w >= h {
		h = h * thumbMax / w
		w = thumbMax
	} else {
		w = w * thumbMax / h
		h = thumbMax
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
