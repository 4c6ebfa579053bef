package store

import (
	"context"
	"log"

	"github.com/google/uuid"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/mapper"
)

// raiseNotificationLocked inserts and appends a notification. Failures are
// logged and swallowed: notifications are advisory side effects, never a
// reason to fail the operation that raised them.
func (s *Store) raiseNotificationLocked(ctx context.Context, n domain.Notification) {
	stored, err := s.gw.Notifications.Insert(ctx, mapper.NotificationToRow(n))
	if err != nil {
		log.Printf("failed to store notification for candidate %s: %v", n.CandidateName, err)
		return
	}
	s.notifications = append(s.notifications, mapper.NotificationFromRow(stored))
}

func (s *Store) sendDuplicateAlert(name, nationalID, previousDate string) {
	if s.mail == nil {
		return
	}
	if err := s.mail.SendDuplicateRejectionAlert(name, nationalID, previousDate); err != nil {
		log.Printf("failed to send duplicate rejection alert for %s: %v", name, err)
	}
}

// MarkNotificationRead flags a notification as read. Notifications are
// never auto-deleted; read state is the only mutation they support.
func (s *Store) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.ErrNotAuthenticated
	}

	idx := -1
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &domain.NotFoundError{Entity: "notification", ID: id.String()}
	}
	if s.notifications[idx].IsRead {
		return nil
	}

	updated := s.notifications[idx]
	updated.IsRead = true

	stored, err := s.gw.Notifications.Update(ctx, id, mapper.NotificationToRow(updated))
	if err != nil {
		return err
	}
	s.notifications[idx] = mapper.NotificationFromRow(stored)
	return nil
}

func (s *Store) UnreadNotifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Notification
	for _, n := range s.notifications {
		if !n.IsRead {
			out = append(out, n)
		}
	}
	return out
}
