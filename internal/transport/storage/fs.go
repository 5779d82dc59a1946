package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	dirPerm  = 0o750
	filePerm = 0o640
)

// FS хранит объекты в локальной директории. Используется, когда Supabase не настроен.
type FS struct {
	root       string
	publicBase string
}

// NewFS root директория объектов, publicBase префикс публичных ссылок (например /uploads).
func NewFS(root, publicBase string) (*FS, error) {
	if err := os.MkdirAll(root, dirPerm); err != nil {
		return nil, errors.Wrap(err, "create storage dir")
	}
	return &FS{root: root, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

func (f *FS) Upload(_ context.Context, path string, data []byte, _ string) (string, error) {
	full, err := f.resolve(path)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(filepath.Dir(full), dirPerm); err != nil {
		return "", errors.Wrapf(err, "upload %s", path)
	}
	file, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return "", errors.Wrapf(err, "upload %s", path)
	}
	if _, err = file.Write(data); err != nil {
		_ = file.Close()
		_ = os.Remove(full)
		return "", errors.Wrapf(err, "upload %s", path)
	}
	if err = file.Close(); err != nil {
		return "", errors.Wrapf(err, "upload %s", path)
	}
	return f.publicBase + filepath.ToSlash(filepath.Clean("/"+path)), nil
}

func (f *FS) Delete(_ context.Context, path string) error {
	full, err := f.resolve(path)
	if err != nil {
		return err
	}
	if err = os.Remove(full); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "delete %s", path)
	}
	return nil
}

// resolve путь внутри root. Выход за пределы root запрещен.
func (f *FS) resolve(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	if clean == "/" {
		return "", errors.Errorf("invalid object path %q", path)
	}
	return filepath.Join(f.root, clean), nil
}
