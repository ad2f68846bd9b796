package services

import (
	"errors"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/google/uuid"
)

func TestListForUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)

	user := seedUser(t, db, models.RoleApplicant)
	other := seedUser(t, db, models.RoleApplicant)

	base := time.Now().UTC().Add(-time.Hour)
	for i, recipient := range []uuid.UUID{user.ID, user.ID, other.ID} {
		n := models.Notification{
			ID:          uuid.New(),
			RecipientID: recipient,
			Message:     "message",
			Type:        models.NotificationTypeJobApplicationConfirmation,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&n).Error; err != nil {
			t.Fatalf("seed notification failed: %v", err)
		}
	}

	notifications, err := svc.ListForUser(callerFor(user))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("listed %d notifications, want 2", len(notifications))
	}
	if notifications[0].CreatedAt.Before(notifications[1].CreatedAt) {
		t.Error("notifications not ordered newest first")
	}
}

func TestMarkReadOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)

	owner := seedUser(t, db, models.RoleApplicant)
	stranger := seedUser(t, db, models.RoleApplicant)
	admin := seedUser(t, db, models.RoleAdmin)

	n := models.Notification{
		ID:          uuid.New(),
		RecipientID: owner.ID,
		Message:     "message",
		Type:        models.NotificationTypeJobApplicationConfirmation,
	}
	if err := db.Create(&n).Error; err != nil {
		t.Fatalf("seed notification failed: %v", err)
	}

	if err := svc.MarkRead(callerFor(stranger), n.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("mark-read by stranger: got %v, want ErrForbidden", err)
	}

	// No admin bypass for notifications.
	if err := svc.MarkRead(callerFor(admin), n.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("mark-read by admin: got %v, want ErrForbidden", err)
	}

	if err := svc.MarkRead(callerFor(owner), n.ID); err != nil {
		t.Fatalf("mark-read by owner failed: %v", err)
	}

	var stored models.Notification
	if err := db.First(&stored, "id = ?", n.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !stored.IsRead {
		t.Fatal("notification still unread")
	}

	// Marking an already-read notification is a success, not an error.
	if err := svc.MarkRead(callerFor(owner), n.ID); err != nil {
		t.Fatalf("second mark-read failed: %v", err)
	}
}

func TestMarkReadMissingIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	user := seedUser(t, db, models.RoleApplicant)

	if err := svc.MarkRead(callerFor(user), uuid.New()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("mark-read missing: got %v, want ErrNotFound", err)
	}
}
