package filestorage

import (
	"mime/multipart"
)

// Subdirectories for uploaded files, keyed by form field.
const (
	ResumeDir       = "resumes"
	ProfileImageDir = "profile_images"
)

// FileStorage defines the interface for upload storage operations
type FileStorage interface {
	// SaveFile stores an uploaded file under the given subdirectory and
	// returns the stored relative path
	SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error)

	// FileURL converts a stored relative path into a servable URL
	FileURL(storedPath string) string

	// DeleteFile removes a stored file
	DeleteFile(storedPath string) error
}
