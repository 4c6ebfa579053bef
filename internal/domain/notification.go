package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID            uuid.UUID        `json:"id"`
	Type          NotificationType `json:"type"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	CandidateID   uuid.UUID        `json:"candidate_id"`
	CandidateName string           `json:"candidate_name"`
	IsRead        bool             `json:"is_read"`
	CreatedAt     time.Time        `json:"created_at"`
}

type NotificationType string

const (
	NotifDuplicateRejection NotificationType = "duplicate_rejection"
	NotifNewCandidate       NotificationType = "new_candidate"
	NotifDecisionMade       NotificationType = "decision_made"
)
