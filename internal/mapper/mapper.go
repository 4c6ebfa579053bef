// Package mapper translates between the gateway's wire rows and the domain
// entities. Every pair is a total, lossless field renaming plus
// null-to-absent coercion; no validation, no defaulting. Business logic
// never sees a wire column name.
package mapper

import (
	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/gateway"
)

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func UserFromRow(r gateway.UserRow) domain.User {
	return domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         domain.Role(r.Role),
		Department:   r.Department,
		CreatedAt:    r.CreatedAt,
	}
}

func UserToRow(u domain.User) gateway.UserRow {
	return gateway.UserRow{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Department:   u.Department,
		CreatedAt:    u.CreatedAt,
	}
}

func CandidateFromRow(r gateway.CandidateRow) domain.Candidate {
	return domain.Candidate{
		ID:                    r.ID,
		Name:                  r.Name,
		NationalID:            r.NationalID,
		BirthDate:             r.BirthDate,
		Region:                r.Region,
		Qualification:         r.Qualification,
		MaritalStatus:         domain.MaritalStatus(r.MaritalStatus),
		Company:               r.Company,
		Position:              optional(r.Position),
		OfferDate:             r.OfferDate,
		OfferResult:           domain.OfferResult(r.OfferResult),
		Status:                domain.CandidateStatus(r.Status),
		Notes:                 optional(r.Notes),
		CreatedBy:             r.CreatedBy,
		IsRejectedBefore:      r.IsRejectedBefore,
		PreviousRejectionDate: optional(r.PreviousRejectionDate),
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

func CandidateToRow(c domain.Candidate) gateway.CandidateRow {
	return gateway.CandidateRow{
		ID:                    c.ID,
		Name:                  c.Name,
		NationalID:            c.NationalID,
		BirthDate:             c.BirthDate,
		Region:                c.Region,
		Qualification:         c.Qualification,
		MaritalStatus:         string(c.MaritalStatus),
		Company:               c.Company,
		Position:              nullable(c.Position),
		OfferDate:             c.OfferDate,
		OfferResult:           string(c.OfferResult),
		Status:                string(c.Status),
		Notes:                 nullable(c.Notes),
		CreatedBy:             c.CreatedBy,
		IsRejectedBefore:      c.IsRejectedBefore,
		PreviousRejectionDate: nullable(c.PreviousRejectionDate),
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

func SavedCandidateFromRow(r gateway.SavedCandidateRow) domain.SavedCandidate {
	return domain.SavedCandidate{
		ID:                    r.ID,
		Name:                  r.Name,
		NationalID:            r.NationalID,
		BirthDate:             r.BirthDate,
		Region:                r.Region,
		Qualification:         r.Qualification,
		MaritalStatus:         domain.MaritalStatus(r.MaritalStatus),
		Company:               r.Company,
		Position:              optional(r.Position),
		OfferDate:             r.OfferDate,
		FinalResult:           domain.FinalResult(r.FinalResult),
		DecisionDate:          r.DecisionDate,
		DecisionBy:            r.DecisionBy,
		Notes:                 optional(r.Notes),
		WorkShift:             domain.WorkShift(optional(r.WorkShift)),
		ExclusionReason:       optional(r.ExclusionReason),
		ResignationReason:     optional(r.ResignationReason),
		IsRejectedBefore:      r.IsRejectedBefore,
		PreviousRejectionDate: optional(r.PreviousRejectionDate),
		CreatedAt:             r.CreatedAt,
	}
}

func SavedCandidateToRow(s domain.SavedCandidate) gateway.SavedCandidateRow {
	return gateway.SavedCandidateRow{
		ID:                    s.ID,
		Name:                  s.Name,
		NationalID:            s.NationalID,
		BirthDate:             s.BirthDate,
		Region:                s.Region,
		Qualification:         s.Qualification,
		MaritalStatus:         string(s.MaritalStatus),
		Company:               s.Company,
		Position:              nullable(s.Position),
		OfferDate:             s.OfferDate,
		FinalResult:           string(s.FinalResult),
		DecisionDate:          s.DecisionDate,
		DecisionBy:            s.DecisionBy,
		Notes:                 nullable(s.Notes),
		WorkShift:             nullable(string(s.WorkShift)),
		ExclusionReason:       nullable(s.ExclusionReason),
		ResignationReason:     nullable(s.ResignationReason),
		IsRejectedBefore:      s.IsRejectedBefore,
		PreviousRejectionDate: nullable(s.PreviousRejectionDate),
		CreatedAt:             s.CreatedAt,
	}
}

func InterviewFromRow(r gateway.InterviewRow) domain.Interview {
	return domain.Interview{
		ID:            r.ID,
		CandidateID:   r.CandidateID,
		CandidateName: r.CandidateName,
		Position:      r.Position,
		Date:          r.Date,
		Time:          r.Time,
		Status:        domain.InterviewStatus(r.Status),
		Notes:         optional(r.Notes),
		Interviewer:   r.Interviewer,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func InterviewToRow(i domain.Interview) gateway.InterviewRow {
	return gateway.InterviewRow{
		ID:            i.ID,
		CandidateID:   i.CandidateID,
		CandidateName: i.CandidateName,
		Position:      i.Position,
		Date:          i.Date,
		Time:          i.Time,
		Status:        string(i.Status),
		Notes:         nullable(i.Notes),
		Interviewer:   i.Interviewer,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func NotificationFromRow(r gateway.NotificationRow) domain.Notification {
	return domain.Notification{
		ID:            r.ID,
		Type:          domain.NotificationType(r.Type),
		Title:         r.Title,
		Message:       r.Message,
		CandidateID:   r.CandidateID,
		CandidateName: r.CandidateName,
		IsRead:        r.IsRead,
		CreatedAt:     r.CreatedAt,
	}
}

func NotificationToRow(n domain.Notification) gateway.NotificationRow {
	return gateway.NotificationRow{
		ID:            n.ID,
		Type:          string(n.Type),
		Title:         n.Title,
		Message:       n.Message,
		CandidateID:   n.CandidateID,
		CandidateName: n.CandidateName,
		IsRead:        n.IsRead,
		CreatedAt:     n.CreatedAt,
	}
}
