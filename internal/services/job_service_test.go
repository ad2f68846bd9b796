package services

import (
	"errors"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/google/uuid"
)

func jobRequest() *dto.JobRequest {
	return &dto.JobRequest{
		Title:               "Platform Engineer",
		Description:         "Run the platform.",
		Location:            "Remote",
		EmploymentType:      "Full-time",
		CompanyName:         "Acme GmbH",
		ApplicationDeadline: time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestCreateJobRequiresManager(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	applicant := seedUser(t, db, models.RoleApplicant)
	if _, err := svc.Create(callerFor(applicant), jobRequest()); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("create as applicant: got %v, want ErrForbidden", err)
	}

	manager := seedUser(t, db, models.RoleManager)
	job, err := svc.Create(callerFor(manager), jobRequest())
	if err != nil {
		t.Fatalf("create as manager failed: %v", err)
	}
	if job.ManagerID != manager.ID {
		t.Errorf("job owner = %s, want %s", job.ManagerID, manager.ID)
	}
	if job.PostedDate.IsZero() {
		t.Error("posted date not stamped")
	}
}

func TestUpdateJobOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	owner := seedUser(t, db, models.RoleManager)
	job := seedJob(t, db, owner, time.Now().Add(24*time.Hour))

	req := jobRequest()
	req.Title = "Senior Platform Engineer"

	// Another manager must not touch it.
	rival := seedUser(t, db, models.RoleManager)
	if _, err := svc.Update(callerFor(rival), job.ID, req); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("update by non-owner: got %v, want ErrForbidden", err)
	}

	// The owner may.
	updated, err := svc.Update(callerFor(owner), job.ID, req)
	if err != nil {
		t.Fatalf("update by owner failed: %v", err)
	}
	if updated.Title != "Senior Platform Engineer" {
		t.Errorf("title = %q after update", updated.Title)
	}

	// So may an admin, regardless of ownership.
	admin := seedUser(t, db, models.RoleAdmin)
	if _, err := svc.Update(callerFor(admin), job.ID, jobRequest()); err != nil {
		t.Fatalf("update by admin failed: %v", err)
	}
}

func TestUpdateMissingJobIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	manager := seedUser(t, db, models.RoleManager)

	if _, err := svc.Update(callerFor(manager), uuid.New(), jobRequest()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("update missing job: got %v, want ErrNotFound", err)
	}
}

func TestDeleteJobCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	owner := seedUser(t, db, models.RoleManager)
	applicant := seedUser(t, db, models.RoleApplicant)
	job := seedJob(t, db, owner, time.Now().Add(24*time.Hour))

	application := models.JobApplication{
		ID: uuid.New(), JobID: job.ID, ApplicantID: applicant.ID,
		ApplicationDate: time.Now().UTC(), Status: models.ApplicationStatusPending,
	}
	if err := db.Create(&application).Error; err != nil {
		t.Fatalf("seed application failed: %v", err)
	}
	notification := models.Notification{
		ID: uuid.New(), RecipientID: applicant.ID, JobID: &job.ID,
		Message: "confirmation", Type: models.NotificationTypeJobApplicationConfirmation,
	}
	if err := db.Create(&notification).Error; err != nil {
		t.Fatalf("seed notification failed: %v", err)
	}

	// A manager who does not own the job is refused.
	rival := seedUser(t, db, models.RoleManager)
	if err := svc.Delete(callerFor(rival), job.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("delete by non-owner: got %v, want ErrForbidden", err)
	}

	// An admin succeeds despite not owning it.
	admin := seedUser(t, db, models.RoleAdmin)
	if err := svc.Delete(callerFor(admin), job.ID); err != nil {
		t.Fatalf("delete by admin failed: %v", err)
	}

	var jobCount, appCount int64
	db.Model(&models.Job{}).Where("id = ?", job.ID).Count(&jobCount)
	db.Model(&models.JobApplication{}).Where("job_id = ?", job.ID).Count(&appCount)
	if jobCount != 0 || appCount != 0 {
		t.Fatalf("after delete: %d jobs, %d applications, want 0 and 0", jobCount, appCount)
	}

	// The notification survives with its job link cleared.
	var kept models.Notification
	if err := db.First(&kept, "id = ?", notification.ID).Error; err != nil {
		t.Fatalf("notification was deleted with the job: %v", err)
	}
	if kept.JobID != nil {
		t.Errorf("notification job id = %v, want nil", kept.JobID)
	}
}

func TestListByManagerScopesToCaller(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	m1 := seedUser(t, db, models.RoleManager)
	m2 := seedUser(t, db, models.RoleManager)
	seedJob(t, db, m1, time.Now().Add(24*time.Hour))
	seedJob(t, db, m1, time.Now().Add(48*time.Hour))
	seedJob(t, db, m2, time.Now().Add(24*time.Hour))

	jobs, err := svc.ListByManager(callerFor(m1))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("listed %d jobs, want 2", len(jobs))
	}
	for _, j := range jobs {
		if j.ManagerID != m1.ID {
			t.Errorf("listed foreign job %s", j.ID)
		}
	}

	applicant := seedUser(t, db, models.RoleApplicant)
	if _, err := svc.ListByManager(callerFor(applicant)); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("list as applicant: got %v, want ErrForbidden", err)
	}
}

func TestGetMissingJobIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	if _, err := svc.Get(uuid.New()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("get missing job: got %v, want ErrNotFound", err)
	}
}
