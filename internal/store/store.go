// Package store holds the process-wide application state: the operator
// session, the in-memory entity collections, and derived statistics. The
// remote store behind the gateway is the source of truth; every mutation
// writes through to it first and touches memory only after the remote
// write succeeds, so a gateway failure never leaves partial local state.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"candidate-tracker/internal/config"
	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/gateway"
	"candidate-tracker/internal/mailer"
	"candidate-tracker/internal/mapper"
)

const dateLayout = "2006-01-02"

// Store is constructed once per process (or per test) with explicit
// dependencies; there are no package-level singletons. The mutex is held
// across the write-through call, which serializes mutations and keeps the
// check-then-write sections atomic within this process. Races with other
// processes on the same backend are reconciled by RemoveDuplicates.
type Store struct {
	mu       sync.Mutex
	gw       *gateway.Gateways
	sessions SessionStore
	mail     mailer.Service
	cfg      *config.Config

	current       *domain.User
	users         []domain.User
	candidates    []domain.Candidate
	saved         []domain.SavedCandidate
	interviews    []domain.Interview
	notifications []domain.Notification
	stats         domain.DashboardStats
}

func New(gw *gateway.Gateways, sessions SessionStore, mail mailer.Service, cfg *config.Config) *Store {
	return &Store{
		gw:       gw,
		sessions: sessions,
		mail:     mail,
		cfg:      cfg,
	}
}

// Load cold-starts every collection from the gateway and recomputes the
// derived statistics.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	userRows, err := s.gw.Users.SelectAll(ctx)
	if err != nil {
		return err
	}
	candidateRows, err := s.gw.Candidates.SelectAll(ctx)
	if err != nil {
		return err
	}
	savedRows, err := s.gw.SavedCandidates.SelectAll(ctx)
	if err != nil {
		return err
	}
	interviewRows, err := s.gw.Interviews.SelectAll(ctx)
	if err != nil {
		return err
	}
	notificationRows, err := s.gw.Notifications.SelectAll(ctx)
	if err != nil {
		return err
	}

	s.users = make([]domain.User, 0, len(userRows))
	for _, r := range userRows {
		s.users = append(s.users, mapper.UserFromRow(r))
	}
	s.candidates = make([]domain.Candidate, 0, len(candidateRows))
	for _, r := range candidateRows {
		s.candidates = append(s.candidates, mapper.CandidateFromRow(r))
	}
	s.saved = make([]domain.SavedCandidate, 0, len(savedRows))
	for _, r := range savedRows {
		s.saved = append(s.saved, mapper.SavedCandidateFromRow(r))
	}
	s.interviews = make([]domain.Interview, 0, len(interviewRows))
	for _, r := range interviewRows {
		s.interviews = append(s.interviews, mapper.InterviewFromRow(r))
	}
	s.notifications = make([]domain.Notification, 0, len(notificationRows))
	for _, r := range notificationRows {
		s.notifications = append(s.notifications, mapper.NotificationFromRow(r))
	}

	s.recomputeStatsLocked()
	return nil
}

func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) Candidates() []domain.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

func (s *Store) SavedCandidates() []domain.SavedCandidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SavedCandidate, len(s.saved))
	copy(out, s.saved)
	return out
}

func (s *Store) Interviews() []domain.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Interview, len(s.interviews))
	copy(out, s.interviews)
	return out
}

func (s *Store) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Store) Stats() domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// requireRoleLocked enforces the role matrix: no session is a failure, and
// a session outside the operation's role set gets a typed PermissionError
// rather than a silent no-op.
func (s *Store) requireRoleLocked(op string, roles ...domain.Role) error {
	if s.current == nil {
		return domain.ErrNotAuthenticated
	}
	if !s.current.HasAnyRole(roles...) {
		return &domain.PermissionError{Op: op, Role: s.current.Role}
	}
	return nil
}

func (s *Store) recomputeStatsLocked() {
	stats := domain.DashboardStats{
		TotalCandidates: len(s.candidates),
	}
	for _, i := range s.interviews {
		switch i.Status {
		case domain.InterviewScheduled:
			stats.PendingInterviews++
		case domain.InterviewCompleted:
			stats.CompletedInterviews++
		}
	}
	for _, rec := range s.saved {
		switch rec.FinalResult {
		case domain.FinalAccepted:
			stats.HiredCandidates++
		case domain.FinalRejected:
			stats.RejectedCandidates++
		}
	}
	s.stats = stats
}

// Keyed lookups. findArchivedLocked is the shared probe over the archive's
// natural key used by decision saving, the rejection-history check, and
// bulk import's duplicate check.

func (s *Store) findArchivedLocked(nationalID string) int {
	for i := range s.saved {
		if s.saved[i].NationalID == nationalID {
			return i
		}
	}
	return -1
}

func (s *Store) findArchivedRejectedLocked(nationalID string) int {
	for i := range s.saved {
		if s.saved[i].NationalID == nationalID && s.saved[i].FinalResult == domain.FinalRejected {
			return i
		}
	}
	return -1
}

func (s *Store) findCandidateLocked(id uuid.UUID) int {
	for i := range s.candidates {
		if s.candidates[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findCandidateByNationalIDLocked(nationalID string) int {
	for i := range s.candidates {
		if s.candidates[i].NationalID == nationalID {
			return i
		}
	}
	return -1
}

func (s *Store) findSavedByIDLocked(id uuid.UUID) int {
	for i := range s.saved {
		if s.saved[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findInterviewLocked(id uuid.UUID) int {
	for i := range s.interviews {
		if s.interviews[i].ID == id {
			return i
		}
	}
	return -1
}

func now() time.Time {
	return time.Now().UTC()
}
