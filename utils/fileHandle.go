package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// MaxCurriculumFileSize is the upload size ceiling (50 MiB).
const MaxCurriculumFileSize = 50 * 1024 * 1024

// dangerousExtensions are executable-like extensions rejected on upload.
var dangerousExtensions = map[string]bool{
	".exe": true,
	".bat": true,
	".cmd": true,
	".scr": true,
	".pif": true,
}

// UploadValidationError describes why an uploaded file was rejected.
type UploadValidationError struct {
	Reason  string // "TooLarge" or "DisallowedType"
	Message string
}

func (e *UploadValidationError) Error() string { return e.Message }

// ValidateCurriculumFile rejects uploads exceeding the size ceiling or
// carrying a denylisted extension. Pure; called before anything is persisted.
func ValidateCurriculumFile(filename string, size int64) error {
	if size > MaxCurriculumFileSize {
		return &UploadValidationError{
			Reason:  "TooLarge",
			Message: "File size cannot exceed 50MB.",
		}
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if dangerousExtensions[ext] {
		return &UploadValidationError{
			Reason:  "DisallowedType",
			Message: "This file type is not allowed for security reasons.",
		}
	}
	return nil
}

// BuildCurriculumPath derives the storage path for an uploaded curriculum
// file: curriculum_files/<slug>/<slugified-base>_<unix><ext>. The timestamp
// component keeps re-uploads of the same filename from colliding.
func BuildCurriculumPath(courseSlug, originalFilename string, now time.Time) string {
	ext := path.Ext(originalFilename)
	base := strings.TrimSuffix(originalFilename, ext)
	return fmt.Sprintf("curriculum_files/%s/%s_%d%s", courseSlug, Slugify(base), now.Unix(), ext)
}

// SaveCurriculumFile writes an uploaded file under mediaRoot at the path
// produced by BuildCurriculumPath and returns that relative path.
func SaveCurriculumFile(file *multipart.FileHeader, mediaRoot, courseSlug string, now time.Time) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	relPath := BuildCurriculumPath(courseSlug, file.Filename, now)
	absPath := filepath.Join(mediaRoot, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", err
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return relPath, nil
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with the largest unit in B/KB/MB/GB,
// rounded to two decimals with trailing-zero trimming down to one decimal:
// 1536 -> "1.5 KB", 1073741824 -> "1.0 GB". Zero is the special case "0 B".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	idx := 0
	value := float64(bytes)
	for value >= 1024 && idx < len(sizeUnits)-1 {
		value /= 1024
		idx++
	}
	s := fmt.Sprintf("%.2f", value)
	s = strings.TrimSuffix(s, "0")
	return s + " " + sizeUnits[idx]
}
