package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/GundlapalliLokeswarRaju/bigclasses/models"
)

var (
	// ErrNoFileAttached means the course exists but carries no curriculum file.
	ErrNoFileAttached = errors.New("no curriculum file attached")
	// ErrFileMissing means metadata references a file the storage no longer has.
	ErrFileMissing = errors.New("curriculum file missing on storage")
)

// CurriculumFileInfo is the read-only description of a course's curriculum file.
type CurriculumFileInfo struct {
	HasFile           bool       `json:"has_file"`
	FileName          string     `json:"file_name,omitempty"`
	FileExtension     string     `json:"file_extension,omitempty"`
	FileSize          string     `json:"file_size,omitempty"`
	DownloadAvailable bool       `json:"download_available"`
	DownloadURL       string     `json:"download_url,omitempty"`
	UploadedAt        *time.Time `json:"uploaded_at,omitempty"`
}

// CurriculumPath resolves the absolute on-disk location of a course's file.
func CurriculumPath(course *models.Course, mediaRoot string) string {
	if course.CurriculumFile == nil {
		return ""
	}
	return filepath.Join(mediaRoot, filepath.FromSlash(course.CurriculumFile.StoragePath))
}

// DescribeCurriculum resolves existence, display name, extension and
// formatted size of a course's curriculum file. The storage backend is the
// source of truth for the byte count; when the backing file is gone the
// metadata size is reported and download is flagged unavailable.
func DescribeCurriculum(course *models.Course, mediaRoot string) CurriculumFileInfo {
	if course.CurriculumFile == nil {
		return CurriculumFileInfo{HasFile: false}
	}

	size := course.CurriculumFile.Size
	downloadable := true
	if stat, err := os.Stat(CurriculumPath(course, mediaRoot)); err == nil {
		size = stat.Size()
	} else {
		downloadable = false
	}

	uploaded := course.CurriculumFile.UploadedAt
	return CurriculumFileInfo{
		HasFile:           true,
		FileName:          course.CurriculumFilename(),
		FileExtension:     course.CurriculumFile.Extension,
		FileSize:          FormatFileSize(size),
		DownloadAvailable: downloadable,
		DownloadURL:       DownloadURL(course.ID),
		UploadedAt:        &uploaded,
	}
}

// DownloadURL builds the public download path for a course id.
func DownloadURL(courseID uint) string {
	return "/api/courses/" + strconv.FormatUint(uint64(courseID), 10) + "/download-curriculum/"
}

// OpenCurriculum checks attachment and storage presence, then opens the
// backing file. The caller owns the returned handle.
func OpenCurriculum(course *models.Course, mediaRoot string) (*os.File, os.FileInfo, error) {
	if course.CurriculumFile == nil {
		return nil, nil, ErrNoFileAttached
	}

	absPath := CurriculumPath(course, mediaRoot)
	stat, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrFileMissing
		}
		return nil, nil, err
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, nil, err
	}
	return f, stat, nil
}
