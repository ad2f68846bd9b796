package services

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/authz"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService reads and mutates per-user notifications.
// Notifications are strictly owner-scoped: there is no admin bypass.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// ListForUser returns the caller's notifications, newest first. The
// related job is loaded when it still exists.
func (s *NotificationService) ListForUser(caller authz.Caller) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Preload("Job").
		Where("recipient_id = ?", caller.ID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags a notification as read. Only the recipient may do this —
// deliberately no admin override. Re-marking an already-read notification
// is a no-op success.
func (s *NotificationService) MarkRead(caller authz.Caller, id uuid.UUID) error {
	var notification models.Notification
	if err := s.db.First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	if err := authz.Evaluate(caller, authz.Check{
		Owner:               &notification.RecipientID,
		AdminOverridesOwner: false,
	}); err != nil {
		return err
	}

	if notification.IsRead {
		return nil
	}
	if err := s.db.Model(&notification).Update("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
