package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage keeps uploads on the local filesystem below root and serves
// them under baseURL.
type LocalStorage struct {
	root    string
	baseURL string
}

func NewLocalStorage(root, baseURL string) *LocalStorage {
	return &LocalStorage{root: root, baseURL: baseURL}
}

func (l *LocalStorage) resolve(objectKey string) (string, error) {
	clean := path.Clean("/" + objectKey)
	if clean == "/" || clean != "/"+objectKey {
		return "", ErrInvalidObjectKey
	}
	return filepath.Join(l.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

func (l *LocalStorage) UploadFile(ctx context.Context, objectKey string, file *multipart.FileHeader, _ string) error {
	dst, err := l.resolve(objectKey)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}

func (l *LocalStorage) DeleteFile(_ context.Context, objectKey string) error {
	p, err := l.resolve(objectKey)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (l *LocalStorage) GetPublicLinkKey(objectKey string) string {
	return strings.TrimSuffix(l.baseURL, "/") + "/" + objectKey
}
