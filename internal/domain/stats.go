package domain

// DashboardStats is derived state, recomputed from the collections that
// feed it whenever one of them changes.
type DashboardStats struct {
	TotalCandidates     int `json:"total_candidates"`
	PendingInterviews   int `json:"pending_interviews"`
	CompletedInterviews int `json:"completed_interviews"`
	HiredCandidates     int `json:"hired_candidates"`
	RejectedCandidates  int `json:"rejected_candidates"`
}

// BulkResult reports the outcome of a bulk import: per-row failures are
// collected, not fatal.
type BulkResult struct {
	SuccessCount int      `json:"success_count"`
	FailedCount  int      `json:"failed_count"`
	Errors       []string `json:"errors"`
}
