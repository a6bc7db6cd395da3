package controllers

import (
	"errors"
	"log"
	"mime"
	"strconv"

	"github.com/GundlapalliLokeswarRaju/bigclasses/middleware"
	"github.com/GundlapalliLokeswarRaju/bigclasses/models"
	"github.com/GundlapalliLokeswarRaju/bigclasses/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCurriculumInfo returns the file metadata block for one course.
func (ctrl *CourseController) GetCurriculumInfo(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.DB.Preload("CurriculumFile").First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	info := utils.DescribeCurriculum(&course, ctrl.Cfg.MediaRoot)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Curriculum info fetched successfully!", info)
}

// DownloadCurriculum streams the curriculum file as a binary attachment under
// its human-readable display name. Read-only and safe to call repeatedly.
func (ctrl *CourseController) DownloadCurriculum(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.DB.Preload("CurriculumFile").First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	f, stat, err := utils.OpenCurriculum(&course, ctrl.Cfg.MediaRoot)
	switch {
	case errors.Is(err, utils.ErrNoFileAttached):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No curriculum file available for this course!", nil)
	case errors.Is(err, utils.ErrFileMissing):
		// Metadata says the file exists but storage disagrees.
		log.Printf("Storage drift on course %d: %s", course.ID, course.CurriculumFile.StoragePath)
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Curriculum file is missing from storage!", nil)
	case err != nil:
		log.Printf("Failed to open curriculum for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read curriculum file!", nil)
	}
	// Fiber closes the stream after the response is sent.

	contentType := mime.TypeByExtension(course.CurriculumFile.Extension)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentLength, strconv.FormatInt(stat.Size(), 10))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+course.CurriculumFilename()+`"`)
	return c.SendStream(f, int(stat.Size()))
}
