// Package fs implements a blob Store on the local filesystem.
package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"annotkit/internal/blob/core"
)

// Store maps keys to relative file paths under root. Writes go through a
// temp file in the target directory and are renamed into place, so a
// reader never sees a half-written blob and an existing one is replaced.
type Store struct {
	root string
}

// New returns a filesystem-backed store rooted at root. Nothing is created
// until the first Put; an existing root must be a directory.
func New(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("empty filesystem root")
	}
	fi, err := os.Stat(root)
	switch {
	case err == nil && !fi.IsDir():
		return nil, errors.Errorf("destination %s is not a directory", root)
	case err != nil && !os.IsNotExist(err):
		return nil, errors.Wrapf(err, "stat destination %s", root)
	}
	return &Store{root: root}, nil
}

func (s *Store) Driver() core.Driver { return core.DriverFilesystem }

// Root is the directory blobs live under.
func (s *Store) Root() string { return s.root }

// sanitizeKey ensures key doesn't escape root and forbids path traversal and absolute paths.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errors.New("empty key")
	}
	if strings.HasPrefix(key, "/") {
		return "", errors.Errorf("invalid absolute key %q", key)
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", errors.Errorf("invalid key %q contains '..'", key)
		}
	}
	return filepath.FromSlash(path.Clean(key)), nil
}

func (s *Store) pathFor(key string) (string, error) {
	k, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, k), nil
}

// Location is the file path key is stored at.
func (s *Store) Location(key string) string {
	p, err := s.pathFor(key)
	if err != nil {
		return filepath.Join(s.root, filepath.FromSlash(key))
	}
	return p
}

func (s *Store) Put(ctx context.Context, key string, r io.Reader, opts core.PutOptions) (core.Info, error) {
	dataPath, err := s.pathFor(key)
	if err != nil {
		return core.Info{}, err
	}
	if err := ctx.Err(); err != nil {
		return core.Info{}, err
	}
	dir := filepath.Dir(dataPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return core.Info{}, errors.Wrapf(err, "create %s", dir)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return core.Info{}, errors.Wrap(err, "create temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	h := sha256.New()
	size, err := io.Copy(io.MultiWriter(tmp, h), r)
	if err != nil {
		_ = tmp.Close()
		return core.Info{}, errors.Wrapf(err, "write %s", key)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return core.Info{}, errors.Wrapf(err, "sync %s", key)
	}
	if err := tmp.Close(); err != nil {
		return core.Info{}, errors.Wrapf(err, "close %s", key)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return core.Info{}, errors.Wrapf(err, "chmod %s", key)
	}
	if err := os.Rename(tmp.Name(), dataPath); err != nil {
		return core.Info{}, errors.Wrapf(err, "rename into %s", dataPath)
	}
	fi, err := os.Stat(dataPath)
	if err != nil {
		return core.Info{}, errors.Wrapf(err, "stat %s", dataPath)
	}
	sum := hex.EncodeToString(h.Sum(nil))
	return core.Info{
		Key:          key,
		Size:         size,
		ContentType:  opts.ContentType,
		ETag:         sum,
		SHA256:       sum,
		Metadata:     cloneMetadata(opts.Metadata),
		LastModified: fi.ModTime().UTC(),
	}, nil
}

func (s *Store) Get(ctx context.Context, key string) (core.Info, io.ReadCloser, error) {
	info, err := s.Head(ctx, key)
	if err != nil {
		return core.Info{}, nil, err
	}
	p, _ := s.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		return core.Info{}, nil, err
	}
	return info, f, nil
}

func (s *Store) Head(_ context.Context, key string) (core.Info, error) {
	p, err := s.pathFor(key)
	if err != nil {
		return core.Info{}, err
	}
	fi, err := os.Stat(p)
	if err != nil {
		return core.Info{}, err
	}
	if !fi.Mode().IsRegular() {
		return core.Info{}, errors.Errorf("blob %s is not a regular file", key)
	}
	return core.Info{Key: key, Size: fi.Size(), LastModified: fi.ModTime().UTC()}, nil
}

func cloneMetadata(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
