package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/authz"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. TranslateError is
// on, as in production, so duplicate-key violations surface as
// gorm.ErrDuplicatedKey.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.JobApplication{},
		&models.Notification{},
		&models.Post{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()

	userSeq++
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Username: fmt.Sprintf("user%d", userSeq),
		Password: string(hash),
		Role:     role,
		Name:     "Test",
		Surname:  "User",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}

func callerFor(u *models.User) authz.Caller {
	return authz.Caller{ID: u.ID, Role: u.Role, Email: u.Email, Username: u.Username}
}

func seedJob(t *testing.T, db *gorm.DB, manager *models.User, deadline time.Time) *models.Job {
	t.Helper()

	job := models.Job{
		ID:                  uuid.New(),
		Title:               "Backend Engineer",
		Description:         "Build and run the job board backend.",
		Location:            "Berlin",
		EmploymentType:      "Full-time",
		CompanyName:         "Acme GmbH",
		PostedDate:          time.Now().UTC(),
		ApplicationDeadline: deadline,
		ManagerID:           manager.ID,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("failed to seed job: %v", err)
	}
	return &job
}
