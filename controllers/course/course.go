package controllers

import (
	"errors"
	"strconv"

	"github.com/GundlapalliLokeswarRaju/bigclasses/config"
	"github.com/GundlapalliLokeswarRaju/bigclasses/middleware"
	"github.com/GundlapalliLokeswarRaju/bigclasses/models"
	"github.com/GundlapalliLokeswarRaju/bigclasses/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CourseController serves the public course catalog endpoints.
type CourseController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCourseController(db *gorm.DB, cfg *config.Config) *CourseController {
	return &CourseController{DB: db, Cfg: cfg}
}

// CourseListItem is the list-view shape of a course.
type CourseListItem struct {
	ID               uint    `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Image            string  `json:"image"`
	StudentsEnrolled uint    `json:"students_enrolled"`
	Duration         string  `json:"duration"`
	Level            string  `json:"level"`
	Rating           float64 `json:"rating"`
	ModulesCount     uint    `json:"modules_count"`
	HasCurriculum    bool    `json:"has_curriculum_file"`
}

// HighlightsBlock summarizes a course for the detail header.
type HighlightsBlock struct {
	Title            string   `json:"title"`
	KeyTopics        []string `json:"key_topics"`
	Features         []string `json:"features"`
	StudentsEnrolled string   `json:"students_enrolled"`
	Rating           string   `json:"rating"`
	Duration         string   `json:"duration"`
	ImageURL         string   `json:"image_url"`
}

// SalaryInsights nests the min/avg/max salary strings.
type SalaryInsights struct {
	Min string `json:"min"`
	Avg string `json:"avg"`
	Max string `json:"max"`
}

// OverviewBlock carries the placement statistics of a course.
type OverviewBlock struct {
	AvgPackage            string         `json:"avg_package"`
	AvgHike               string         `json:"avg_hike"`
	SuccessfulTransitions string         `json:"successful_transitions"`
	SalaryInsights        SalaryInsights `json:"salary_insights"`
	ManagerPriority       string         `json:"manager_priority_percentage"`
}

// ModuleBlock is one curriculum module with its topic titles.
type ModuleBlock struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
}

// CourseDetail is the full detail-view shape of a course.
type CourseDetail struct {
	ID                 uint                     `json:"id"`
	Title              string                   `json:"title"`
	Highlights         HighlightsBlock          `json:"highlights"`
	Overview           OverviewBlock            `json:"overview"`
	Curriculum         []ModuleBlock            `json:"curriculum"`
	CurriculumFileInfo utils.CurriculumFileInfo `json:"curriculum_file_info"`
}

// GetAllCourses lists the catalog.
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := ctrl.DB.Preload("CurriculumFile").Order("created_at asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	items := make([]CourseListItem, 0, len(courses))
	for _, course := range courses {
		items = append(items, CourseListItem{
			ID:               course.ID,
			Title:            course.Title,
			Description:      course.Description,
			Image:            course.Image,
			StudentsEnrolled: course.StudentsEnrolled,
			Duration:         course.Duration,
			Level:            course.Level,
			Rating:           course.Rating,
			ModulesCount:     course.ModulesCount,
			HasCurriculum:    course.HasCurriculumFile(),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", items)
}

// GetCourseDetails returns the nested detail view of one course.
func (ctrl *CourseController) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	err := ctrl.DB.
		Preload("CurriculumFile").
		Preload("Overview").
		Preload("Highlights").
		Preload("Curriculum").
		Preload("Curriculum.Topics").
		First(&course, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	detail := CourseDetail{
		ID:                 course.ID,
		Title:              course.Title,
		Highlights:         buildHighlights(&course),
		Overview:           buildOverview(course.Overview),
		Curriculum:         buildCurriculum(course.Curriculum),
		CurriculumFileInfo: utils.DescribeCurriculum(&course, ctrl.Cfg.MediaRoot),
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", detail)
}

func buildHighlights(course *models.Course) HighlightsBlock {
	keyTopics := []string{}
	features := []string{}
	for _, h := range course.Highlights {
		if h.IsBullet {
			keyTopics = append(keyTopics, h.Point)
		} else {
			features = append(features, h.Point)
		}
	}
	return HighlightsBlock{
		Title:            course.Title,
		KeyTopics:        keyTopics,
		Features:         features,
		StudentsEnrolled: strconv.FormatUint(uint64(course.StudentsEnrolled), 10),
		Rating:           strconv.FormatFloat(course.Rating, 'f', -1, 64),
		Duration:         course.Duration,
		ImageURL:         course.Image,
	}
}

// buildOverview falls back to N/A only when the overview record is absent,
// not on arbitrary failures.
func buildOverview(overview *models.Overview) OverviewBlock {
	if overview == nil {
		return OverviewBlock{
			AvgPackage:            "N/A",
			AvgHike:               "N/A",
			SuccessfulTransitions: "N/A",
			SalaryInsights:        SalaryInsights{Min: "N/A", Avg: "N/A", Max: "N/A"},
			ManagerPriority:       "N/A",
		}
	}
	return OverviewBlock{
		AvgPackage:            overview.AveragePackage,
		AvgHike:               overview.AverageHike,
		SuccessfulTransitions: overview.Transitions,
		SalaryInsights: SalaryInsights{
			Min: overview.SalaryMin,
			Avg: overview.SalaryAvg,
			Max: overview.SalaryMax,
		},
		ManagerPriority: overview.PriorityPercentage,
	}
}

func buildCurriculum(modules []models.Module) []ModuleBlock {
	blocks := make([]ModuleBlock, 0, len(modules))
	for _, m := range modules {
		topics := make([]string, 0, len(m.Topics))
		for _, t := range m.Topics {
			topics = append(topics, t.Title)
		}
		blocks = append(blocks, ModuleBlock{
			Title:       m.Title,
			Description: m.Description,
			Topics:      topics,
		})
	}
	return blocks
}
