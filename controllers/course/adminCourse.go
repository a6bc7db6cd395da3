package controllers

import (
	"errors"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/GundlapalliLokeswarRaju/bigclasses/middleware"
	"github.com/GundlapalliLokeswarRaju/bigclasses/models"
	"github.com/GundlapalliLokeswarRaju/bigclasses/utils"
	courseValidator "github.com/GundlapalliLokeswarRaju/bigclasses/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCourse creates a catalog course, bootstrapping the slug from the
// title when none was supplied.
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	slug := strings.TrimSpace(reqData.Slug)
	if slug == "" {
		slug = utils.CourseSlug(reqData.Title, time.Now())
	}

	course := models.Course{
		Title:            strings.TrimSpace(reqData.Title),
		Slug:             slug,
		Description:      reqData.Description,
		Image:            reqData.Image,
		StudentsEnrolled: reqData.StudentsEnrolled,
		Duration:         reqData.Duration,
		Level:            reqData.Level,
		Rating:           reqData.Rating,
		ModulesCount:     reqData.ModulesCount,
	}

	if err := ctrl.DB.Create(&course).Error; err != nil {
		log.Printf("Failed to create course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UploadCurriculum validates and stores a curriculum file for a course,
// replacing any prior reference. Old files stay on disk under their
// timestamped paths, so a re-upload never overwrites history.
func (ctrl *CourseController) UploadCurriculum(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.DB.Preload("CurriculumFile").First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	fileHeader, err := c.FormFile("curriculum_file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Curriculum file is required!", nil)
	}

	if err := utils.ValidateCurriculumFile(fileHeader.Filename, fileHeader.Size); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	now := time.Now()
	relPath, err := utils.SaveCurriculumFile(fileHeader, ctrl.Cfg.MediaRoot, course.Slug, now)
	if err != nil {
		log.Printf("Failed to store curriculum for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store curriculum file!", nil)
	}

	curriculum := models.CurriculumFile{
		CourseID:     course.ID,
		StoragePath:  relPath,
		OriginalName: fileHeader.Filename,
		Extension:    strings.ToLower(filepath.Ext(fileHeader.Filename)),
		Size:         fileHeader.Size,
		UploadedAt:   now,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// Hard delete: the unique index on course_id must free up for the
		// replacement row.
		if course.CurriculumFile != nil {
			if err := tx.Unscoped().Delete(course.CurriculumFile).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(&curriculum).Error; err != nil {
			return err
		}
		return tx.Model(&course).Update("file_uploaded_at", now).Error
	})
	if err != nil {
		log.Printf("Failed to save curriculum metadata for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save curriculum file!", nil)
	}

	course.CurriculumFile = &curriculum
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Curriculum file uploaded successfully!",
		utils.DescribeCurriculum(&course, ctrl.Cfg.MediaRoot))
}

// RemoveCurriculum detaches the curriculum file reference and clears the
// upload timestamp. The stored file itself is left in place.
func (ctrl *CourseController) RemoveCurriculum(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.DB.Preload("CurriculumFile").First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	if course.CurriculumFile == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No curriculum file available for this course!", nil)
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(course.CurriculumFile).Error; err != nil {
			return err
		}
		return tx.Model(&course).Update("file_uploaded_at", nil).Error
	})
	if err != nil {
		log.Printf("Failed to detach curriculum for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove curriculum file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Curriculum file removed successfully!", nil)
}
