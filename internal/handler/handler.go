package handler

import (
	"candidate-tracker/internal/media"
	"candidate-tracker/internal/store"
)

type Handlers struct {
	Auth           *AuthHandler
	Candidate      *CandidateHandler
	SavedCandidate *SavedCandidateHandler
	Interview      *InterviewHandler
	Notification   *NotificationHandler
	User           *UserHandler
	Import         *ImportHandler
	Dashboard      *DashboardHandler
}

func NewHandlers(st *store.Store, uploader *media.Uploader) *Handlers {
	return &Handlers{
		Auth:           NewAuthHandler(st),
		Candidate:      NewCandidateHandler(st),
		SavedCandidate: NewSavedCandidateHandler(st),
		Interview:      NewInterviewHandler(st),
		Notification:   NewNotificationHandler(st),
		User:           NewUserHandler(st),
		Import:         NewImportHandler(st, uploader),
		Dashboard:      NewDashboardHandler(st),
	}
}
