package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/GundlapalliLokeswarRaju/bigclasses/config"
	controllers "github.com/GundlapalliLokeswarRaju/bigclasses/controllers/course"
	"github.com/GundlapalliLokeswarRaju/bigclasses/database"
	"github.com/GundlapalliLokeswarRaju/bigclasses/models"
	"github.com/GundlapalliLokeswarRaju/bigclasses/routers/courseRoutes"
	"github.com/GundlapalliLokeswarRaju/bigclasses/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{MediaRoot: t.TempDir()}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app, controllers.NewCourseController(db, cfg))
	return app, db, cfg
}

// seedCourse creates a course, optionally with a curriculum file of the
// given size written to the media root.
func seedCourse(t *testing.T, db *gorm.DB, cfg *config.Config, title string, fileName string, fileSize int64) *models.Course {
	t.Helper()

	course := models.Course{
		Title:            title,
		Slug:             utils.Slugify(title),
		Description:      "test course",
		StudentsEnrolled: 100,
		Duration:         "8 weeks",
		Level:            "Beginner",
		Rating:           4.5,
		ModulesCount:     5,
	}
	require.NoError(t, db.Create(&course).Error)

	if fileName != "" {
		now := time.Now()
		relPath := utils.BuildCurriculumPath(course.Slug, fileName, now)
		absPath := filepath.Join(cfg.MediaRoot, filepath.FromSlash(relPath))
		require.NoError(t, os.MkdirAll(filepath.Dir(absPath), 0755))
		require.NoError(t, os.WriteFile(absPath, make([]byte, fileSize), 0644))

		cf := models.CurriculumFile{
			CourseID:     course.ID,
			StoragePath:  relPath,
			OriginalName: fileName,
			Extension:    strings.ToLower(filepath.Ext(fileName)),
			Size:         fileSize,
			UploadedAt:   now,
		}
		require.NoError(t, db.Create(&cf).Error)
		require.NoError(t, db.Model(&course).Update("file_uploaded_at", now).Error)
		course.CurriculumFile = &cf
	}
	return &course
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var env envelope
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(body) > 0 && json.Valid(body) {
		require.NoError(t, json.Unmarshal(body, &env))
	}
	return resp, env
}

func TestGetAllCourses(t *testing.T) {
	app, db, cfg := setupApp(t)
	seedCourse(t, db, cfg, "Python Programming", "syllabus.PDF", 1024)
	seedCourse(t, db, cfg, "Machine Learning", "", 0)

	resp, env := doRequest(t, app, httptest.NewRequest("GET", "/api/courses/", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	var items []controllers.CourseListItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)
	byTitle := map[string]controllers.CourseListItem{}
	for _, item := range items {
		byTitle[item.Title] = item
	}
	assert.True(t, byTitle["Python Programming"].HasCurriculum)
	assert.False(t, byTitle["Machine Learning"].HasCurriculum)
}

func TestGetCourseDetails(t *testing.T) {
	app, db, cfg := setupApp(t)
	course := seedCourse(t, db, cfg, "Python Programming", "", 0)
	require.NoError(t, db.Create(&models.Highlight{CourseID: course.ID, Point: "Learn Python fundamentals", IsBullet: true}).Error)
	require.NoError(t, db.Create(&models.Highlight{CourseID: course.ID, Point: "Placement assistance", IsBullet: false}).Error)

	resp, env := doRequest(t, app, httptest.NewRequest("GET", "/api/courses/1/", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var detail controllers.CourseDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "Python Programming", detail.Title)
	assert.Equal(t, []string{"Learn Python fundamentals"}, detail.Highlights.KeyTopics)
	assert.Equal(t, []string{"Placement assistance"}, detail.Highlights.Features)
	// No overview record: the N/A fallback applies to exactly that absence
	assert.Equal(t, "N/A", detail.Overview.AvgPackage)
	assert.False(t, detail.CurriculumFileInfo.HasFile)
}

func TestGetCourseDetailsNotFound(t *testing.T) {
	app, _, _ := setupApp(t)
	resp, env := doRequest(t, app, httptest.NewRequest("GET", "/api/courses/99/", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestCurriculumInfoScenario(t *testing.T) {
	app, db, cfg := setupApp(t)
	seedCourse(t, db, cfg, "Python Programming", "syllabus.PDF", 2*1024*1024)

	resp, env := doRequest(t, app, httptest.NewRequest("GET", "/api/courses/1/curriculum-info/", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var info utils.CurriculumFileInfo
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.True(t, info.HasFile)
	assert.Equal(t, ".pdf", info.FileExtension)
	assert.Equal(t, "2.0 MB", info.FileSize)
	assert.Equal(t, "Python Programming_Curriculum.pdf", info.FileName)
	assert.True(t, info.DownloadAvailable)
}

func TestDownloadCurriculum(t *testing.T) {
	app, db, cfg := setupApp(t)
	seedCourse(t, db, cfg, "Python Programming", "syllabus.PDF", 2048)

	resp, _ := doRequest(t, app, httptest.NewRequest("GET", "/api/courses/1/download-curriculum/", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "2048", resp.Header.Get(fiber.HeaderContentLength))
	assert.Equal(t, `attachment; filename="Python Programming_Curriculum.pdf"`,
		resp.Header.Get(fiber.HeaderContentDisposition))
}

func TestDownloadCurriculumNoFileAttached(t *testing.T) {
	app, db, cfg := setupApp(t)
	seedCourse(t, db, cfg, "Machine Learning", "", 0)

	resp, env := doRequest(t, app, httptest.NewRequest("GET", "/api/courses/1/download-curriculum/", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No curriculum file available for this course!", env.Message)
}

func TestDownloadCurriculumStorageDrift(t *testing.T) {
	app, db, cfg := setupApp(t)
	course := seedCourse(t, db, cfg, "Deep Learning", "notes.pdf", 1024)

	// Remove the backing file out-of-band: metadata now disagrees with storage
	require.NoError(t, os.Remove(utils.CurriculumPath(course, cfg.MediaRoot)))

	resp, env := doRequest(t, app, httptest.NewRequest("GET", "/api/courses/1/download-curriculum/", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Curriculum file is missing from storage!", env.Message)
}

func TestUploadCurriculumRejectsDangerousExtension(t *testing.T) {
	app, db, cfg := setupApp(t)
	seedCourse(t, db, cfg, "Python Programming", "", 0)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("curriculum_file", "malware.exe")
	require.NoError(t, err)
	_, err = part.Write([]byte("MZ"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/courses/1/curriculum/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, env := doRequest(t, app, req)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "This file type is not allowed for security reasons.", env.Message)
}

func TestUploadAndRemoveCurriculum(t *testing.T) {
	app, db, cfg := setupApp(t)
	seedCourse(t, db, cfg, "Python Programming", "", 0)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("curriculum_file", "Course Outline.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 test"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/courses/1/curriculum/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, env := doRequest(t, app, req)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var info utils.CurriculumFileInfo
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.True(t, info.HasFile)
	assert.Equal(t, ".pdf", info.FileExtension)

	var course models.Course
	require.NoError(t, db.Preload("CurriculumFile").First(&course, 1).Error)
	require.NotNil(t, course.CurriculumFile)
	assert.NotNil(t, course.FileUploadedAt)
	assert.FileExists(t, utils.CurriculumPath(&course, cfg.MediaRoot))

	// Detach clears the reference and the upload timestamp
	resp, _ = doRequest(t, app, httptest.NewRequest("DELETE", "/api/courses/1/curriculum/", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.Preload("CurriculumFile").First(&course, 1).Error)
	assert.Nil(t, course.CurriculumFile)
	assert.Nil(t, course.FileUploadedAt)
}

func TestCreateCourseGeneratesSlug(t *testing.T) {
	app, db, _ := setupApp(t)

	body, _ := json.Marshal(map[string]interface{}{
		"title":       "Data Engineering",
		"description": "Pipelines and warehousing",
	})
	req := httptest.NewRequest("POST", "/api/courses/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := doRequest(t, app, req)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var course models.Course
	require.NoError(t, db.First(&course).Error)
	assert.Contains(t, course.Slug, "data-engineering-")
}
