package courseRoutes

import (
	controllers "github.com/GundlapalliLokeswarRaju/bigclasses/controllers/course"
	validators "github.com/GundlapalliLokeswarRaju/bigclasses/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the course catalog and curriculum file routes
func SetupCourseRoutes(app *fiber.App, ctrl *controllers.CourseController) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/", ctrl.GetAllCourses)
	courseGroup.Get("/:id/", validators.CourseID(), ctrl.GetCourseDetails)
	courseGroup.Get("/:id/curriculum-info/", validators.CourseID(), ctrl.GetCurriculumInfo)
	courseGroup.Get("/:id/download-curriculum/", validators.CourseID(), ctrl.DownloadCurriculum)

	// Admin surface (no authentication by design)
	courseGroup.Post("/", validators.CreateCourse(), ctrl.CreateCourse)
	courseGroup.Post("/:id/curriculum/", validators.CourseID(), ctrl.UploadCurriculum)
	courseGroup.Delete("/:id/curriculum/", validators.CourseID(), ctrl.RemoveCurriculum)
}
