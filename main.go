package main

import (
	"log"

	"github.com/GundlapalliLokeswarRaju/bigclasses/config"
	"github.com/GundlapalliLokeswarRaju/bigclasses/database"

	courseControllers "github.com/GundlapalliLokeswarRaju/bigclasses/controllers/course"
	enrollmentControllers "github.com/GundlapalliLokeswarRaju/bigclasses/controllers/enrollment"
	courseRoutes "github.com/GundlapalliLokeswarRaju/bigclasses/routers/courseRoutes"
	enrollmentRoutes "github.com/GundlapalliLokeswarRaju/bigclasses/routers/enrollmentRoutes"
	"github.com/GundlapalliLokeswarRaju/bigclasses/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded media (course images, curriculum files) directly
	app.Static("/media", cfg.MediaRoot)

	courseCtrl := courseControllers.NewCourseController(db, cfg)
	enrollmentCtrl := enrollmentControllers.NewEnrollmentController(db, cfg)

	courseRoutes.SetupCourseRoutes(app, courseCtrl)
	enrollmentRoutes.SetupEnrollmentRoutes(app, enrollmentCtrl)

	if _, err := utils.StartCurriculumAudit(db, cfg.MediaRoot, cfg.CurriculumAuditCron); err != nil {
		log.Printf("Failed to start curriculum audit scheduler: %v", err)
	}

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
