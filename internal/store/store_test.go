package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"candidate-tracker/internal/config"
	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/gateway"
	"candidate-tracker/internal/mailer"
	"candidate-tracker/internal/store"
)

const testPassword = "password123"

// fakeTable is an in-memory stand-in for one gateway collection. The err
// fields inject failures to exercise write-through rollback behavior.
type fakeTable[R any] struct {
	rows []R
	id   func(R) uuid.UUID

	insertErr     error
	updateErr     error
	deleteErr     error
	deleteManyErr error
}

func (f *fakeTable[R]) Insert(_ context.Context, row R) (R, error) {
	if f.insertErr != nil {
		var zero R
		return zero, f.insertErr
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeTable[R]) Update(_ context.Context, id uuid.UUID, row R) (R, error) {
	if f.updateErr != nil {
		var zero R
		return zero, f.updateErr
	}
	for i := range f.rows {
		if f.id(f.rows[i]) == id {
			f.rows[i] = row
			return row, nil
		}
	}
	var zero R
	return zero, &domain.NotFoundError{Entity: "row", ID: id.String()}
}

func (f *fakeTable[R]) Delete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.rows {
		if f.id(f.rows[i]) == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return &domain.NotFoundError{Entity: "row", ID: id.String()}
}

func (f *fakeTable[R]) DeleteMany(_ context.Context, ids []uuid.UUID) error {
	if f.deleteManyErr != nil {
		return f.deleteManyErr
	}
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := f.rows[:0]
	for _, row := range f.rows {
		if !drop[f.id(row)] {
			kept = append(kept, row)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeTable[R]) SelectAll(_ context.Context) ([]R, error) {
	out := make([]R, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

type fakeBackend struct {
	users         *fakeTable[gateway.UserRow]
	candidates    *fakeTable[gateway.CandidateRow]
	saved         *fakeTable[gateway.SavedCandidateRow]
	interviews    *fakeTable[gateway.InterviewRow]
	notifications *fakeTable[gateway.NotificationRow]
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		users:         &fakeTable[gateway.UserRow]{id: func(r gateway.UserRow) uuid.UUID { return r.ID }},
		candidates:    &fakeTable[gateway.CandidateRow]{id: func(r gateway.CandidateRow) uuid.UUID { return r.ID }},
		saved:         &fakeTable[gateway.SavedCandidateRow]{id: func(r gateway.SavedCandidateRow) uuid.UUID { return r.ID }},
		interviews:    &fakeTable[gateway.InterviewRow]{id: func(r gateway.InterviewRow) uuid.UUID { return r.ID }},
		notifications: &fakeTable[gateway.NotificationRow]{id: func(r gateway.NotificationRow) uuid.UUID { return r.ID }},
	}
}

func (f *fakeBackend) gateways() *gateway.Gateways {
	return &gateway.Gateways{
		Users:           f.users,
		Candidates:      f.candidates,
		SavedCandidates: f.saved,
		Interviews:      f.interviews,
		Notifications:   f.notifications,
	}
}

func (f *fakeBackend) seedUser(name, email string, role domain.Role) uuid.UUID {
	hash, _ := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	id := uuid.New()
	f.users.rows = append(f.users.rows, gateway.UserRow{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(role),
		Department:   "Recruitment",
		CreatedAt:    time.Now().UTC(),
	})
	return id
}

func (f *fakeBackend) seedArchived(nationalID string, result domain.FinalResult, decisionDate, createdAt time.Time) uuid.UUID {
	id := uuid.New()
	f.saved.rows = append(f.saved.rows, gateway.SavedCandidateRow{
		ID:            id,
		Name:          "Archived " + nationalID,
		NationalID:    nationalID,
		BirthDate:     "1990-01-01",
		Region:        "North",
		Qualification: "Diploma",
		MaritalStatus: string(domain.MaritalSingle),
		Company:       "Acme",
		OfferDate:     "2024-01-01",
		FinalResult:   string(result),
		DecisionDate:  decisionDate,
		DecisionBy:    "Seeder",
		CreatedAt:     createdAt,
	})
	return id
}

type fakeSessions struct {
	current  *domain.User
	remember map[string]uuid.UUID

	saveErr error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{remember: make(map[string]uuid.UUID)}
}

func (f *fakeSessions) SaveCurrentUser(_ context.Context, u *domain.User) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *u
	f.current = &copied
	return nil
}

func (f *fakeSessions) LoadCurrentUser(_ context.Context) (*domain.User, error) {
	if f.current == nil {
		return nil, nil
	}
	copied := *f.current
	return &copied, nil
}

func (f *fakeSessions) ClearCurrentUser(_ context.Context) error {
	f.current = nil
	return nil
}

func (f *fakeSessions) SaveRememberToken(_ context.Context, token string, userID uuid.UUID) error {
	f.remember[token] = userID
	return nil
}

func (f *fakeSessions) LookupRememberToken(_ context.Context, token string) (uuid.UUID, error) {
	return f.remember[token], nil
}

func (f *fakeSessions) DeleteRememberToken(_ context.Context, token string) error {
	delete(f.remember, token)
	return nil
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendDuplicateRejectionAlert(candidateName, nationalID, previousDate string) error {
	args := m.Called(candidateName, nationalID, previousDate)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
	}
}

// newTestStore loads a store over the fake backend with the three standard
// operators seeded.
func newTestStore(t *testing.T, backend *fakeBackend, mail *mockMailer) (*store.Store, *fakeSessions) {
	t.Helper()

	backend.seedUser("Eli Employee", "employee@example.com", domain.RoleEmployee)
	backend.seedUser("Mara Manager", "manager@example.com", domain.RoleManager)
	backend.seedUser("Ada Admin", "admin@example.com", domain.RoleAdmin)

	sessions := newFakeSessions()
	var svc mailer.Service
	if mail != nil {
		svc = mail
	}
	st := store.New(backend.gateways(), sessions, svc, testConfig())
	require.NoError(t, st.Load(context.Background()))
	return st, sessions
}

func loginAs(t *testing.T, st *store.Store, email string) *domain.User {
	t.Helper()
	u, _, err := st.Login(context.Background(), domain.LoginInput{Email: email, Password: testPassword})
	require.NoError(t, err)
	return u
}

func candidateInput(nationalID string) domain.CreateCandidateInput {
	return domain.CreateCandidateInput{
		Name:          "Jordan Reyes",
		NationalID:    nationalID,
		BirthDate:     "1992-03-14",
		Region:        "North",
		Qualification: "Bachelor",
		MaritalStatus: domain.MaritalSingle,
		Company:       "Acme",
		Position:      "Technician",
		OfferDate:     "2024-05-01",
	}
}

func TestLoadComputesStats(t *testing.T) {
	backend := newFakeBackend()
	backend.seedArchived("1001", domain.FinalAccepted, time.Now().UTC(), time.Now().UTC())
	backend.seedArchived("1002", domain.FinalRejected, time.Now().UTC(), time.Now().UTC())
	backend.seedArchived("1003", domain.FinalExcluded, time.Now().UTC(), time.Now().UTC())

	st, _ := newTestStore(t, backend, nil)

	stats := st.Stats()
	assert.Equal(t, 0, stats.TotalCandidates)
	assert.Equal(t, 1, stats.HiredCandidates)
	assert.Equal(t, 1, stats.RejectedCandidates)
}

func TestAccessorsReturnCopies(t *testing.T) {
	backend := newFakeBackend()
	st, _ := newTestStore(t, backend, nil)
	loginAs(t, st, "admin@example.com")

	_, err := st.AddCandidate(context.Background(), candidateInput("5001"))
	require.NoError(t, err)

	snapshot := st.Candidates()
	require.Len(t, snapshot, 1)
	snapshot[0].Name = "mutated"

	assert.Equal(t, "Jordan Reyes", st.Candidates()[0].Name)
}
