package enrollmentRoutes

import (
	controllers "github.com/GundlapalliLokeswarRaju/bigclasses/controllers/enrollment"
	validators "github.com/GundlapalliLokeswarRaju/bigclasses/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes registers the public enrollment route and the
// admin workbook download (no authentication by design)
func SetupEnrollmentRoutes(app *fiber.App, ctrl *controllers.EnrollmentController) {
	app.Post("/api/enroll/", validators.Enroll(), ctrl.Enroll)
	app.Get("/api/enroll/download/", ctrl.DownloadSheet)
}
