package photostore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FS stores blobs as files in a single directory.
type FS struct {
	root *os.Root
}

var _ Store = (*FS)(nil)

// NewFS opens dir, creating it when missing.
func NewFS(dir string) (*FS, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("could not create photo dir: %w", err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("could not open photo dir: %w", err)
	}

	return &FS{root: root}, nil
}

// Close releases the directory handle.
func (s *FS) Close() error {
	return s.root.Close() //nolint: wrapcheck
}

func validKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) || filepath.Base(key) != key {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return nil
}

func (s *FS) Put(ctx context.Context, key string, r io.Reader) error {
	if err := validKey(key); err != nil {
		return err
	}

	tmp := key + ".part"
	f, err := s.root.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return fmt.Errorf("could not create photo file: %w", err)
	}

	if _, err := io.Copy(f, contextReader{ctx: ctx, r: r}); err != nil {
		_ = f.Close()
		_ = s.root.Remove(tmp)

		return fmt.Errorf("could not write photo file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = s.root.Remove(tmp)

		return fmt.Errorf("could not close photo file: %w", err)
	}

	if err := s.root.Rename(tmp, key); err != nil {
		_ = s.root.Remove(tmp)

		return fmt.Errorf("could not move photo file: %w", err)
	}

	return nil
}

func (s *FS) Open(_ context.Context, key string) (io.ReadCloser, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}

	f, err := s.root.Open(key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not open photo file: %w", err)
	}

	return f, nil
}

func (s *FS) Delete(_ context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}

	if err := s.root.Remove(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not remove photo file: %w", err)
	}

	return nil
}

// contextReader stops copying once ctx is done.
type contextReader struct {
	ctx context.Context //nolint: containedctx
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err //nolint: wrapcheck
	}

	return c.r.Read(p) //nolint: wrapcheck
}
