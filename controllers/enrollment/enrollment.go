package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/GundlapalliLokeswarRaju/bigclasses/config"
	"github.com/GundlapalliLokeswarRaju/bigclasses/middleware"
	"github.com/GundlapalliLokeswarRaju/bigclasses/models"
	"github.com/GundlapalliLokeswarRaju/bigclasses/utils"
	enrollmentValidator "github.com/GundlapalliLokeswarRaju/bigclasses/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentController records enrollment submissions and fans out
// best-effort notifications after the durable write.
type EnrollmentController struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Recorder *utils.SheetRecorder
	Notifier *utils.EnrollmentNotifier
}

func NewEnrollmentController(db *gorm.DB, cfg *config.Config) *EnrollmentController {
	return &EnrollmentController{
		DB:       db,
		Cfg:      cfg,
		Recorder: utils.NewSheetRecorder(cfg.MediaRoot),
		Notifier: &utils.EnrollmentNotifier{
			Webhook: utils.NewWebhookClient(cfg.EnrollmentWebhookURL,
				time.Duration(cfg.EnrollmentWebhookTimeout)*time.Second),
			Mailer:   utils.NewSMTPMailer(cfg),
			OpsEmail: cfg.OpsEmail,
		},
	}
}

// Enroll handles a public enrollment submission. The enrollment is
// successful once the spreadsheet row is written; webhook and email
// outcomes never change the response.
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := ctrl.DB.First(&course, reqData.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	entry := &utils.EnrollmentEntry{
		Timestamp:   time.Now(),
		Name:        reqData.Name,
		Email:       reqData.Email,
		Phone:       reqData.Phone,
		CourseID:    course.ID,
		CourseTitle: course.Title,
		ExtraInfo:   reqData.ExtraInfo,
		Reference:   uuid.NewString(),
	}

	if err := ctrl.Recorder.Record(entry); err != nil {
		log.Printf("Enrollment record failed for %s: %v", entry.Reference, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Enrollment failed!", nil)
	}

	// Notifications run after the durable write, off the request path.
	go ctrl.Notifier.Notify(entry)

	row := entry.Row()
	data := fiber.Map{
		"reference": entry.Reference,
	}
	for i, header := range utils.SheetHeaders {
		data[header] = row[i]
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment successful", data)
}

// xlsxContentType is the registered type for .xlsx workbooks.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DownloadSheet serves the enrollment workbook as an attachment (admin
// surface). Exports under the sheet lock, so in-flight writes never yield
// a torn download.
func (ctrl *EnrollmentController) DownloadSheet(c *fiber.Ctx) error {
	data, err := ctrl.Recorder.Export()
	switch {
	case errors.Is(err, utils.ErrNoEnrollments):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No enrollments recorded yet!", nil)
	case err != nil:
		log.Printf("Enrollment sheet export failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export enrollments!", nil)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(data)))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="enrollments.xlsx"`)
	return c.Send(data)
}
