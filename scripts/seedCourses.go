package main

import (
	"log"

	"github.com/GundlapalliLokeswarRaju/bigclasses/config"
	"github.com/GundlapalliLokeswarRaju/bigclasses/database"
	"github.com/GundlapalliLokeswarRaju/bigclasses/models"
)

type seedModule struct {
	Title       string
	Description string
	Topics      []string
}

type seedCourse struct {
	Course     models.Course
	Overview   models.Overview
	Highlights []models.Highlight
	Modules    []seedModule
}

var sampleCourses = []seedCourse{
	{
		Course: models.Course{
			Title:            "Python Programming",
			Slug:             "python-programming",
			Description:      "Learn the core concepts and algorithms behind machine learning with hands-on projects.",
			Image:            "https://example.com/python.jpg",
			StudentsEnrolled: 2345,
			Duration:         "8 weeks",
			Level:            "Beginner",
			Rating:           4.9,
			ModulesCount:     12,
		},
		Overview: models.Overview{
			AveragePackage:     "₹12.5L",
			AverageHike:        "150%",
			Transitions:        "500+",
			SalaryMin:          "8L",
			SalaryAvg:          "12.5L",
			SalaryMax:          "25L",
			PriorityPercentage: "89%",
		},
		Highlights: []models.Highlight{
			{Point: "Learn Python fundamentals", IsBullet: true},
			{Point: "Build real-world projects", IsBullet: true},
			{Point: "Industry best practices", IsBullet: false},
		},
		Modules: []seedModule{
			{
				Title:       "Python Basics",
				Description: "Fundamental Python concepts",
				Topics:      []string{"Variables", "Data Types", "Control Flow"},
			},
			{
				Title:       "Advanced Python",
				Description: "Advanced Python features",
				Topics:      []string{"OOP", "Decorators", "Generators"},
			},
		},
	},
	{
		Course: models.Course{
			Title:            "Machine Learning",
			Slug:             "machine-learning",
			Description:      "Build solid foundations in machine learning with practical use cases and algorithms.",
			Image:            "https://example.com/ml.jpg",
			StudentsEnrolled: 3100,
			Duration:         "10 weeks",
			Level:            "Intermediate",
			Rating:           4.8,
			ModulesCount:     14,
		},
		Overview: models.Overview{
			AveragePackage:     "₹15L",
			AverageHike:        "170%",
			Transitions:        "650+",
			SalaryMin:          "10L",
			SalaryAvg:          "15L",
			SalaryMax:          "30L",
			PriorityPercentage: "92%",
		},
		Highlights: []models.Highlight{
			{Point: "Supervised and unsupervised learning", IsBullet: true},
			{Point: "Hands-on model building", IsBullet: true},
			{Point: "Placement assistance", IsBullet: false},
		},
		Modules: []seedModule{
			{
				Title:       "ML Foundations",
				Description: "Core machine learning concepts",
				Topics:      []string{"Regression", "Classification", "Evaluation"},
			},
		},
	},
	{
		Course: models.Course{
			Title:            "Deep Learning",
			Slug:             "deep-learning",
			Description:      "Explore neural networks, CNNs, RNNs, and advanced architectures like Transformers.",
			Image:            "https://example.com/dl.jpg",
			StudentsEnrolled: 2850,
			Duration:         "9 weeks",
			Level:            "Intermediate",
			Rating:           4.7,
			ModulesCount:     13,
		},
		Overview: models.Overview{
			AveragePackage:     "₹18L",
			AverageHike:        "180%",
			Transitions:        "400+",
			SalaryMin:          "12L",
			SalaryAvg:          "18L",
			SalaryMax:          "35L",
			PriorityPercentage: "90%",
		},
		Highlights: []models.Highlight{
			{Point: "Neural networks from scratch", IsBullet: true},
			{Point: "CNNs, RNNs and Transformers", IsBullet: true},
			{Point: "GPU-backed labs", IsBullet: false},
		},
		Modules: []seedModule{
			{
				Title:       "Neural Network Basics",
				Description: "Perceptrons to backpropagation",
				Topics:      []string{"Perceptrons", "Activation Functions", "Backpropagation"},
			},
		},
	},
}

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	inserted := 0
	skipped := 0

	for _, seed := range sampleCourses {
		// Upsert by slug: existing courses are left untouched
		var existing models.Course
		if err := db.Where("slug = ?", seed.Course.Slug).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		course := seed.Course
		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to create course %q: %v", course.Title, err)
		}

		overview := seed.Overview
		overview.CourseID = course.ID
		if err := db.Create(&overview).Error; err != nil {
			log.Fatalf("Failed to create overview for %q: %v", course.Title, err)
		}

		for _, h := range seed.Highlights {
			h.CourseID = course.ID
			if err := db.Create(&h).Error; err != nil {
				log.Fatalf("Failed to create highlight for %q: %v", course.Title, err)
			}
		}

		for _, m := range seed.Modules {
			module := models.Module{
				CourseID:    course.ID,
				Title:       m.Title,
				Description: m.Description,
			}
			if err := db.Create(&module).Error; err != nil {
				log.Fatalf("Failed to create module for %q: %v", course.Title, err)
			}
			for _, t := range m.Topics {
				if err := db.Create(&models.Topic{ModuleID: module.ID, Title: t}).Error; err != nil {
					log.Fatalf("Failed to create topic for %q: %v", course.Title, err)
				}
			}
		}

		inserted++
	}

	log.Printf("Sample courses populated: %d inserted, %d already present", inserted, skipped)
}
