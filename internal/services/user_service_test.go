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

func registerRequest(email, username string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:           email,
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
		Username:        username,
		Name:            "Ada",
		Surname:         "L",
	}
}

func TestRegisterAlwaysAssignsApplicant(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register(registerRequest("ada@example.com", "ada"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != models.RoleApplicant {
		t.Errorf("role = %s, want Applicant", user.Role)
	}
	if user.Password == "correct-horse" {
		t.Error("password stored in plaintext")
	}

	// The stored hash verifies through the normal login path.
	if _, err := svc.Authenticate("ada@example.com", "correct-horse"); err != nil {
		t.Fatalf("authenticate after register failed: %v", err)
	}
}

func TestRegisterUniqueness(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	if _, err := svc.Register(registerRequest("ada@example.com", "ada")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Register(registerRequest("ada@example.com", "ada2"))
	if !errors.Is(err, apperrors.ErrEmailTaken) {
		t.Fatalf("duplicate email: got %v, want ErrEmailTaken", err)
	}
	_, err = svc.Register(registerRequest("ada2@example.com", "ada"))
	if !errors.Is(err, apperrors.ErrUsernameTaken) {
		t.Fatalf("duplicate username: got %v, want ErrUsernameTaken", err)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	if _, err := svc.Register(registerRequest("ada@example.com", "ada")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Authenticate("ada@example.com", "wrong"); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("wrong password: got %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "correct-horse"); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("unknown email: got %v, want ErrUnauthenticated", err)
	}
}

func TestAdminCreateSetsExplicitRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	admin := seedUser(t, db, models.RoleAdmin)
	req := &dto.AdminCreateUserRequest{
		Email:    "boss@example.com",
		Password: "correct-horse",
		Username: "boss",
		Name:     "Boss",
		Surname:  "B",
		Role:     "Manager",
	}

	user, err := svc.AdminCreate(callerFor(admin), req)
	if err != nil {
		t.Fatalf("admin create failed: %v", err)
	}
	if user.Role != models.RoleManager {
		t.Errorf("role = %s, want Manager", user.Role)
	}

	// Non-admins cannot provision users.
	manager := seedUser(t, db, models.RoleManager)
	req.Email, req.Username = "x@example.com", "x"
	if _, err := svc.AdminCreate(callerFor(manager), req); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("admin create by manager: got %v, want ErrForbidden", err)
	}
}

func TestAdminUpdateReassignsRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	admin := seedUser(t, db, models.RoleAdmin)
	target := seedUser(t, db, models.RoleApplicant)

	req := &dto.AdminUpdateUserRequest{
		Email:    target.Email,
		Username: target.Username,
		Name:     target.Name,
		Surname:  target.Surname,
		Role:     "Manager",
	}
	updated, err := svc.AdminUpdate(callerFor(admin), target.ID, req)
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.Role != models.RoleManager {
		t.Errorf("role = %s, want Manager", updated.Role)
	}

	if _, err := svc.AdminUpdate(callerFor(admin), uuid.New(), req); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("admin update missing user: got %v, want ErrNotFound", err)
	}
}

func TestUpdateProfileKeepsRoleAndChecksUniqueness(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user := seedUser(t, db, models.RoleManager)
	other := seedUser(t, db, models.RoleApplicant)

	req := &dto.UpdateProfileRequest{
		Email:    user.Email,
		Username: "renamed",
		Name:     "New",
		Surname:  "Name",
	}
	updated, err := svc.UpdateProfile(callerFor(user), req)
	if err != nil {
		t.Fatalf("profile update failed: %v", err)
	}
	if updated.Username != "renamed" || updated.Role != models.RoleManager {
		t.Errorf("after update: username=%q role=%s", updated.Username, updated.Role)
	}

	req.Email = other.Email
	if _, err := svc.UpdateProfile(callerFor(user), req); !errors.Is(err, apperrors.ErrEmailTaken) {
		t.Fatalf("profile update to taken email: got %v, want ErrEmailTaken", err)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	admin := seedUser(t, db, models.RoleAdmin)
	manager := seedUser(t, db, models.RoleManager)
	applicant := seedUser(t, db, models.RoleApplicant)

	job := seedJob(t, db, manager, time.Now().Add(24*time.Hour))
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

	// Only admins may delete users.
	if err := users.Delete(callerFor(manager), applicant.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("delete by manager: got %v, want ErrForbidden", err)
	}

	// Deleting the manager removes their job and everything under it.
	if err := users.Delete(callerFor(admin), manager.ID); err != nil {
		t.Fatalf("delete manager failed: %v", err)
	}

	var jobCount, appCount int64
	db.Model(&models.Job{}).Count(&jobCount)
	db.Model(&models.JobApplication{}).Count(&appCount)
	if jobCount != 0 || appCount != 0 {
		t.Fatalf("after manager delete: %d jobs, %d applications, want 0 and 0", jobCount, appCount)
	}

	// The applicant's notification survives with the job link cleared.
	var kept models.Notification
	if err := db.First(&kept, "id = ?", notification.ID).Error; err != nil {
		t.Fatalf("notification lost on manager delete: %v", err)
	}
	if kept.JobID != nil {
		t.Errorf("notification job id = %v, want nil", kept.JobID)
	}

	// Deleting the applicant removes their notifications too.
	if err := users.Delete(callerFor(admin), applicant.ID); err != nil {
		t.Fatalf("delete applicant failed: %v", err)
	}
	var noteCount int64
	db.Model(&models.Notification{}).Count(&noteCount)
	if noteCount != 0 {
		t.Fatalf("after applicant delete: %d notifications, want 0", noteCount)
	}

	if err := users.Delete(callerFor(admin), uuid.New()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("delete missing user: got %v, want ErrNotFound", err)
	}
}
