package utils

import (
	"log"
	"os"
	"time"

	"github.com/GundlapalliLokeswarRaju/bigclasses/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logAudit logs audit events with timestamp
func logAudit(message string) {
	log.Printf("[CURRICULUM-AUDIT %s] %s", time.Now().Format(time.RFC3339), message)
}

// AuditCurriculumFiles walks every course with a curriculum file reference
// and reports storage drift: metadata pointing at a file the media root no
// longer holds. Read-only; drift is surfaced in the logs, never repaired.
func AuditCurriculumFiles(db *gorm.DB, mediaRoot string) int {
	var courses []models.Course
	if err := db.Preload("CurriculumFile").
		Joins("JOIN curriculum_files ON curriculum_files.course_id = courses.id").
		Find(&courses).Error; err != nil {
		logAudit("Error fetching courses with curriculum files: " + err.Error())
		return 0
	}

	drifted := 0
	for _, course := range courses {
		if course.CurriculumFile == nil {
			continue
		}
		if _, err := os.Stat(CurriculumPath(&course, mediaRoot)); os.IsNotExist(err) {
			drifted++
			logAudit("Storage drift: course \"" + course.Title + "\" references missing file " +
				course.CurriculumFile.StoragePath)
		}
	}

	if drifted == 0 {
		logAudit("Audit completed, no drift detected")
	}
	return drifted
}

// StartCurriculumAudit schedules the drift audit on the configured cron spec
// and returns the running scheduler.
func StartCurriculumAudit(db *gorm.DB, mediaRoot, cronSpec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(cronSpec, func() {
		AuditCurriculumFiles(db, mediaRoot)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logAudit("Scheduler started with spec: " + cronSpec)
	return c, nil
}
