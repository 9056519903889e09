package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// LocalPhotoStore writes uploaded photos under Dir and returns the public
// path persisted on the user row.
type LocalPhotoStore struct {
	Dir          string
	PublicPrefix string
	MaxSize      int64
	AllowedExt   map[string]struct{}
}

func NewLocalPhotoStore(dir string, maxSize int64, allowedExtensions []string) *LocalPhotoStore {
	allowed := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	return &LocalPhotoStore{
		Dir:          dir,
		PublicPrefix: "imagenes/perfiles",
		MaxSize:      maxSize,
		AllowedExt:   allowed,
	}
}

func (s *LocalPhotoStore) Save(userID uint, file *multipart.FileHeader) (string, error) {
	if s.MaxSize > 0 && file.Size > s.MaxSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if _, ok := s.AllowedExt[ext]; !ok {
		return "", ErrFileType
	}

	name := fmt.Sprintf("user_%d_%s", userID, sanitizeFilename(file.Filename))
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(s.PublicPrefix, name)), nil
}

// sanitizeFilename strips any path component and replaces every character
// outside [a-zA-Z0-9._-] so the name is safe on disk and in a URL.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var builder strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			builder.WriteRune(r)
		default:
			builder.WriteByte('_')
		}
	}
	return builder.String()
}
