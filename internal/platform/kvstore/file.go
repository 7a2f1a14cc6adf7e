package kvstore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"
)

const fileExt = ".json"

// File persists one file per key under a root directory, the closest
// server-side analogue to browser local storage. Writes go through a temp
// file and rename so a crashed write never leaves a torn value behind.
type File struct {
	mu   sync.RWMutex
	root string
}

func NewFile(root string) (*File, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, crerr.New("kvstore root dir is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, crerr.Wrapf(err, "create kvstore root %s", root)
	}

	return &File{root: root}, nil
}

func (f *File) Get(key string) ([]byte, bool, error) {
	path, err := f.path(key)
	if err != nil {
		return nil, false, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	value, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, crerr.Wrapf(err, "read key %s", key)
	}

	return value, true, nil
}

func (f *File) Set(key string, value []byte) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return crerr.Wrapf(err, "write key %s", key)
	}
	if err := os.Rename(tmp, path); err != nil {
		return crerr.Wrapf(err, "commit key %s", key)
	}

	return nil
}

func (f *File) Delete(key string) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return crerr.Wrapf(err, "delete key %s", key)
	}
	return nil
}

func (f *File) Keys() ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, crerr.Wrapf(err, "list kvstore root %s", f.root)
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		out = append(out, strings.TrimSuffix(name, fileExt))
	}
	return out, nil
}

func (f *File) Close() error {
	return nil
}

func (f *File) path(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", crerr.New("key is required")
	}
	// Keys are internal collection names; anything path-like is a bug.
	if strings.ContainsAny(key, `/\.`) {
		return "", crerr.Newf("invalid key %q", key)
	}
	return filepath.Join(f.root, key+fileExt), nil
}
