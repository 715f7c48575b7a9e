package filestorage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type FileStorageInterface interface {
	// Save stores file under prefix/<date>/<date>-<uuid><ext> and returns the relative path.
	Save(file io.Reader, originalFileName string, prefix string) (filePath string, err error)
	// SaveAs stores file at the exact relative name, replacing any previous file.
	SaveAs(file io.Reader, relativePath string) (filePath string, err error)
	Exists(relativePath string) bool
	List(prefix string, ext string) ([]string, error)
	Open(relativePath string) (*os.File, error)
	Delete(filePath string) error
	// URL returns the public path under which the file is served.
	URL(relativePath string) string
	// Path resolves relativePath under the storage root. Paths that escape it fail with ErrOutsideRoot.
	Path(relativePath string) (string, error)
}

var ErrOutsideRoot = errors.New("la ruta queda fuera del directorio de archivos")

type LocalFileStorage struct {
	basePath  string
	urlPrefix string
}

func NewLocalFileStorage(basePath string, urlPrefix string) (*LocalFileStorage, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0o755); err != nil {
			return nil, fmt.Errorf("no se pudo crear el directorio: %w", err)
		}
	}
	return &LocalFileStorage{basePath: basePath, urlPrefix: "/" + strings.Trim(urlPrefix, "/")}, nil
}

func (s *LocalFileStorage) Save(file io.Reader, originalFileName string, prefix string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFileName))
	uniqueFileName := fmt.Sprintf("%s-%s%s", time.Now().Format("2006-01-02"), uuid.New().String(), ext)
	datePath := time.Now().Format("2006/01/02")

	return s.SaveAs(file, filepath.Join(prefix, datePath, uniqueFileName))
}

func (s *LocalFileStorage) SaveAs(file io.Reader, relativePath string) (string, error) {
	fullPath, err := s.Path(relativePath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return "", err
	}

	return filepath.ToSlash(relativePath), nil
}

func (s *LocalFileStorage) Exists(relativePath string) bool {
	fullPath, err := s.Path(relativePath)
	if err != nil {
		return false
	}
	info, err := os.Stat(fullPath)
	return err == nil && !info.IsDir()
}

// List returns the names of files directly under prefix with the given extension.
// A missing directory is reported as os.ErrNotExist.
func (s *LocalFileStorage) List(prefix string, ext string) ([]string, error) {
	dir, err := s.Path(prefix)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (s *LocalFileStorage) Open(relativePath string) (*os.File, error) {
	fullPath, err := s.Path(relativePath)
	if err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

// Delete accepts either a relative path or the public URL returned by URL.
func (s *LocalFileStorage) Delete(fileURL string) error {
	relativePath := strings.TrimPrefix(fileURL, s.urlPrefix+"/")
	fullPath, err := s.Path(relativePath)
	if err != nil {
		return err
	}

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(fullPath)
}

func (s *LocalFileStorage) URL(relativePath string) string {
	return s.urlPrefix + "/" + filepath.ToSlash(relativePath)
}

func (s *LocalFileStorage) Path(relativePath string) (string, error) {
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(relativePath))
	rel, err := filepath.Rel(filepath.Clean(s.basePath), fullPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, relativePath)
	}
	return fullPath, nil
}
