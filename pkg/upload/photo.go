package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned for uploads that are not JPEG or PNG images.
var ErrUnsupportedType = errors.New("only JPEG and PNG images are allowed")

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// PhotoStore saves uploaded photos on local disk and hands back a public reference.
type PhotoStore struct {
	Dir       string
	URLPrefix string
}

func NewPhotoStore(dir string) *PhotoStore {
	return &PhotoStore{Dir: dir, URLPrefix: "/uploads/"}
}

// Save writes the file under a random name and returns its reference, e.g. /uploads/<uuid>.jpg.
func (s *PhotoStore) Save(file multipart.File) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	ext, ok := extensions[http.DetectContentType(head[:n])]
	if !ok {
		return "", ErrUnsupportedType
	}

	if err := os.MkdirAll(s.Dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	fileName := uuid.NewString() + ext
	savePath := filepath.Join(s.Dir, fileName)
	out, err := os.Create(savePath)
	if err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	_, err = out.Write(head[:n])
	if err == nil {
		_, err = io.Copy(out, file)
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(savePath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return s.URLPrefix + fileName, nil
}

// Remove deletes a photo previously returned by Save. References outside URLPrefix and
// files that are already gone are ignored.
func (s *PhotoStore) Remove(ref string) error {
	if !strings.HasPrefix(ref, s.URLPrefix) {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(ref, s.URLPrefix))
	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove photo: %w", err)
	}
	return nil
}
