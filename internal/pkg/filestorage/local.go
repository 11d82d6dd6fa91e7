package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/emre/staffhub/internal/pkg/logger"
)

// LocalStorage handles saving uploaded files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // base URL prepended to returned file paths
	now      func() time.Time
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
// baseURL is optional; if provided, it is used to build servable URLs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
		now:      time.Now,
	}, nil
}

// SaveFile saves an uploaded file into the subdirectory for its field and
// returns the stored relative path. Filenames are prefixed with the upload
// timestamp in milliseconds so repeated uploads of the same file never collide.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader == nil {
		return "", nil // no file uploaded
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := filepath.Join(ls.basePath, subDir)
	if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	uniqueName := strconv.FormatInt(ls.now().UnixMilli(), 10) + "-" + sanitizeFilename(fileHeader.Filename)
	dstPath := filepath.Join(fullDirPath, uniqueName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	storedPath := filepath.ToSlash(filepath.Join(subDir, uniqueName))
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedPath).Msg("File saved")
	return storedPath, nil
}

// FileURL converts a stored relative path into a servable URL.
// Empty paths stay empty so absent uploads round-trip as null.
func (ls *LocalStorage) FileURL(storedPath string) string {
	if storedPath == "" {
		return ""
	}
	if ls.baseURL == "" {
		return "/uploads/" + strings.TrimLeft(storedPath, "/")
	}
	return strings.TrimRight(ls.baseURL, "/") + "/" + strings.TrimLeft(storedPath, "/")
}

// DeleteFile removes a stored file. Missing files are treated as already
// deleted so the operation is idempotent.
func (ls *LocalStorage) DeleteFile(storedPath string) error {
	if storedPath == "" {
		return nil
	}

	cleaned := filepath.Clean(storedPath)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return fmt.Errorf("invalid file path: %s", storedPath)
	}

	physicalPath := filepath.Join(ls.basePath, cleaned)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// sanitizeFilename strips path separators from a client-supplied filename.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == string(filepath.Separator) {
		return "file"
	}
	return name
}
