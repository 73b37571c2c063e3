// Package disk stores uploaded media files in a local directory and serves
// them back under a public URL prefix.
package disk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"escrow-marketplace/internal/metadata"
	"escrow-marketplace/pkg/log"
)

type Config struct {
	Dir string
	// PublicURL is the externally reachable base, e.g. http://localhost:8080.
	PublicURL string
	MaxBytes  int64
}

type store struct {
	dir       string
	publicURL string
	maxBytes  int64
	l         log.Logger
}

// New creates the directory if needed and returns a Store backed by it.
func New(cfg Config, l log.Logger) (metadata.Store, error) {
	if cfg.Dir == "" {
		return nil, errors.New("disk: directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("disk: create %s: %w", cfg.Dir, err)
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = metadata.DefaultMaxBytes
	}
	return &store{
		dir:       cfg.Dir,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		maxBytes:  maxBytes,
		l:         l,
	}, nil
}

func (s *store) Put(ctx context.Context, input metadata.PutInput) (metadata.Object, error) {
	if err := metadata.Validate(input, s.maxBytes); err != nil {
		return metadata.Object{}, err
	}

	name := uuid.NewString() + metadata.Extension(input.Filename)

	// Write under a temporary name so a reader never sees a partial file.
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		s.l.Errorf(ctx, "metadata/disk.Put CreateTemp: %v", err)
		return metadata.Object{}, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(input.Data); err != nil {
		tmp.Close()
		s.l.Errorf(ctx, "metadata/disk.Put Write: %v", err)
		return metadata.Object{}, err
	}
	if err := tmp.Close(); err != nil {
		s.l.Errorf(ctx, "metadata/disk.Put Close: %v", err)
		return metadata.Object{}, err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		s.l.Errorf(ctx, "metadata/disk.Put Rename: %v", err)
		return metadata.Object{}, err
	}

	return metadata.Object{Name: name, URL: s.publicURL + "/uploads/" + name}, nil
}

func (s *store) Get(ctx context.Context, name string) ([]byte, error) {
	if !metadata.ValidName(name) {
		return nil, metadata.ErrInvalidName
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, metadata.ErrObjectNotFound
		}
		s.l.Errorf(ctx, "metadata/disk.Get: %v", err)
		return nil, err
	}
	return data, nil
}
