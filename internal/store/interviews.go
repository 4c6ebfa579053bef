package store

import (
	"context"

	"github.com/google/uuid"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/mapper"
)

func (s *Store) AddInterview(ctx context.Context, input domain.CreateInterviewInput) (*domain.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked("schedule interviews", domain.RoleManager, domain.RoleAdmin); err != nil {
		return nil, err
	}

	ts := now()
	iv := domain.Interview{
		ID:            uuid.New(),
		CandidateID:   input.CandidateID,
		CandidateName: input.CandidateName,
		Position:      input.Position,
		Date:          input.Date,
		Time:          input.Time,
		Status:        domain.InterviewScheduled,
		Notes:         input.Notes,
		Interviewer:   s.current.Name,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}

	stored, err := s.gw.Interviews.Insert(ctx, mapper.InterviewToRow(iv))
	if err != nil {
		return nil, err
	}
	created := mapper.InterviewFromRow(stored)
	s.interviews = append(s.interviews, created)
	s.recomputeStatsLocked()
	return &created, nil
}

func (s *Store) UpdateInterview(ctx context.Context, id uuid.UUID, input domain.UpdateInterviewInput) (*domain.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked("update interviews", domain.RoleManager, domain.RoleAdmin); err != nil {
		return nil, err
	}

	idx := s.findInterviewLocked(id)
	if idx < 0 {
		return nil, &domain.NotFoundError{Entity: "interview", ID: id.String()}
	}

	updated := s.interviews[idx]
	if input.Position != nil {
		updated.Position = *input.Position
	}
	if input.Date != nil {
		updated.Date = *input.Date
	}
	if input.Time != nil {
		updated.Time = *input.Time
	}
	if input.Status != nil {
		updated.Status = *input.Status
	}
	if input.Notes != nil {
		updated.Notes = *input.Notes
	}
	updated.UpdatedAt = now()

	stored, err := s.gw.Interviews.Update(ctx, id, mapper.InterviewToRow(updated))
	if err != nil {
		return nil, err
	}
	s.interviews[idx] = mapper.InterviewFromRow(stored)
	s.recomputeStatsLocked()
	out := s.interviews[idx]
	return &out, nil
}

func (s *Store) DeleteInterview(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRoleLocked("delete interviews", domain.RoleAdmin); err != nil {
		return err
	}

	idx := s.findInterviewLocked(id)
	if idx < 0 {
		return &domain.NotFoundError{Entity: "interview", ID: id.String()}
	}

	if err := s.gw.Interviews.Delete(ctx, id); err != nil {
		return err
	}
	s.interviews = append(s.interviews[:idx], s.interviews[idx+1:]...)
	s.recomputeStatsLocked()
	return nil
}
