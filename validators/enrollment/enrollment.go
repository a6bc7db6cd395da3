package enrollmentValidator

import (
	"github.com/GundlapalliLokeswarRaju/bigclasses/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// EnrollRequest is the public enrollment submission payload.
type EnrollRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=7,max=15"`
	CourseID  uint   `json:"course_id" validate:"required"`
	ExtraInfo string `json:"extra_info"`
}

var validate = validator.New()

// Enroll validates the enrollment body and stores the parsed request.
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Name is required!"
				case "Email":
					errors["email"] = "A valid email is required!"
				case "Phone":
					errors["phone"] = "A valid phone number is required!"
				case "CourseID":
					errors["course_id"] = "Course ID is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}
