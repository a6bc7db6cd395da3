package models

import (
	"time"

	"gorm.io/gorm"
)

// Course represents a catalog course with its optional curriculum file
type Course struct {
	gorm.Model
	Title            string  `json:"title"`
	Slug             string  `json:"slug" gorm:"uniqueIndex;not null"`
	Description      string  `json:"description"`
	Image            string  `json:"image"` // URL of the course image
	StudentsEnrolled uint    `json:"students_enrolled" gorm:"default:0"`
	Duration         string  `json:"duration"`
	Level            string  `json:"level"`
	Rating           float64 `json:"rating" gorm:"default:0"`
	ModulesCount     uint    `json:"modules_count" gorm:"default:0"`

	// FileUploadedAt is set when a curriculum file is attached and cleared
	// when it is detached.
	FileUploadedAt *time.Time `json:"file_uploaded_at"`

	CurriculumFile *CurriculumFile `json:"curriculum_file" gorm:"constraint:OnDelete:CASCADE"`
	Overview       *Overview       `json:"overview" gorm:"constraint:OnDelete:CASCADE"`
	Highlights     []Highlight     `json:"highlights" gorm:"constraint:OnDelete:CASCADE"`
	Curriculum     []Module        `json:"curriculum" gorm:"constraint:OnDelete:CASCADE"`
}

// CurriculumFile holds the storage metadata of a course's uploaded curriculum.
// The file bytes themselves live on disk under the media root.
type CurriculumFile struct {
	gorm.Model
	CourseID     uint      `json:"course_id" gorm:"uniqueIndex;not null"`
	StoragePath  string    `json:"storage_path"`  // relative to the media root
	OriginalName string    `json:"original_name"` // filename as uploaded
	Extension    string    `json:"extension"`     // lowercase, dot-prefixed
	Size         int64     `json:"size"`          // bytes at upload time
	UploadedAt   time.Time `json:"uploaded_at"`
}

// HasCurriculumFile reports whether a curriculum file is attached
func (c *Course) HasCurriculumFile() bool {
	return c.CurriculumFile != nil
}

// CurriculumFilename returns the human-readable download name,
// e.g. "Python Programming_Curriculum.pdf"
func (c *Course) CurriculumFilename() string {
	if c.CurriculumFile == nil {
		return ""
	}
	return c.Title + "_Curriculum" + c.CurriculumFile.Extension
}
