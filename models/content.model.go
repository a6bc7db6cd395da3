package models

import "gorm.io/gorm"

// Overview holds a course's salary and placement statistics
type Overview struct {
	gorm.Model
	CourseID           uint   `json:"course_id" gorm:"uniqueIndex;not null"`
	AveragePackage     string `json:"average_package"`
	AverageHike        string `json:"average_hike"`
	Transitions        string `json:"transitions"`
	SalaryMin          string `json:"salary_min"`
	SalaryAvg          string `json:"salary_avg"`
	SalaryMax          string `json:"salary_max"`
	PriorityPercentage string `json:"priority_percentage"`
}

// Highlight is a single bullet point or feature line of a course
type Highlight struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Point    string `json:"point"`
	IsBullet bool   `json:"is_bullet" gorm:"default:true"`
}

// Module is a curriculum section of a course
type Module struct {
	gorm.Model
	CourseID    uint    `json:"course_id" gorm:"index;not null"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Topics      []Topic `json:"topics" gorm:"constraint:OnDelete:CASCADE"`
}

// Topic is a single entry within a curriculum module
type Topic struct {
	gorm.Model
	ModuleID uint   `json:"module_id" gorm:"index;not null"`
	Title    string `json:"title"`
}
