package participants

import (
	"context"
	"errors"
	"testing"

	"github.com/bkuzmin/participant-registry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository for testing.
type mockRepository struct {
	records    map[string]*domain.Participant
	createErr  error
	listErr    error
	updateCall int
	deleteCall int
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		records: make(map[string]*domain.Participant),
	}
}

func (m *mockRepository) Create(_ context.Context, p *domain.Participant) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.records[p.Email]; ok {
		return ErrDuplicateEmail
	}
	m.records[p.Email] = p
	return nil
}

func (m *mockRepository) List(_ context.Context) ([]domain.Participant, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]domain.Participant, 0, len(m.records))
	for _, p := range m.records {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockRepository) ListSummaries(_ context.Context) ([]domain.ParticipantSummary, error) {
	result := make([]domain.ParticipantSummary, 0, len(m.records))
	for _, p := range m.records {
		result = append(result, domain.ParticipantSummary{
			Firstname: p.Firstname,
			Lastname:  p.Lastname,
			Email:     p.Email,
		})
	}
	return result, nil
}

func (m *mockRepository) GetDetails(_ context.Context, email string) (*domain.ParticipantDetails, error) {
	p, ok := m.records[email]
	if !ok {
		return nil, ErrParticipantNotFound
	}
	return &domain.ParticipantDetails{Firstname: p.Firstname, Lastname: p.Lastname, Dob: p.Dob}, nil
}

func (m *mockRepository) GetWork(_ context.Context, email string) (*domain.WorkDetails, error) {
	p, ok := m.records[email]
	if !ok {
		return nil, ErrParticipantNotFound
	}
	return &domain.WorkDetails{CompanyName: p.CompanyName, Salary: p.Salary, Currency: p.Currency}, nil
}

func (m *mockRepository) GetHome(_ context.Context, email string) (*domain.HomeDetails, error) {
	p, ok := m.records[email]
	if !ok {
		return nil, ErrParticipantNotFound
	}
	return &domain.HomeDetails{Country: p.Country, City: p.City}, nil
}

func (m *mockRepository) Update(_ context.Context, p *domain.Participant) error {
	m.updateCall++
	if _, ok := m.records[p.Email]; !ok {
		return ErrParticipantNotFound
	}
	m.records[p.Email] = p
	return nil
}

func (m *mockRepository) Delete(_ context.Context, email string) error {
	m.deleteCall++
	if _, ok := m.records[email]; !ok {
		return ErrParticipantNotFound
	}
	delete(m.records, email)
	return nil
}

func testParticipant(email string) *domain.Participant {
	return &domain.Participant{
		Email:       email,
		Firstname:   "A",
		Lastname:    "B",
		Dob:         "1990-01-01",
		CompanyName: "X",
		Salary:      1000,
		Currency:    "USD",
		Country:     "C",
		City:        "D",
	}
}

func TestService_Create_Duplicate(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testParticipant("a@b.com")))

	err := svc.Create(ctx, testParticipant("a@b.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// First record unaffected
	details, err := svc.GetDetails(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "A", details.Firstname)
}

func TestService_Update_EmailMismatch(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testParticipant("a@b.com")))

	err := svc.Update(ctx, "a@b.com", testParticipant("other@b.com"))
	assert.ErrorIs(t, err, ErrEmailMismatch)
	assert.Zero(t, repo.updateCall, "mismatch must be rejected before storage")
}

func TestService_Update_NotFound(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	err := svc.Update(context.Background(), "missing@b.com", testParticipant("missing@b.com"))
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestService_Update_ReplacesAllFields(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testParticipant("a@b.com")))

	updated := testParticipant("a@b.com")
	updated.Firstname = "Anna"
	updated.Salary = -250
	require.NoError(t, svc.Update(ctx, "a@b.com", updated))

	work, err := svc.GetWork(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, float64(-250), work.Salary)

	details, err := svc.GetDetails(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Anna", details.Firstname)
}

func TestService_Delete_ThenGetNotFound(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testParticipant("a@b.com")))
	require.NoError(t, svc.Delete(ctx, "a@b.com"))

	_, err := svc.GetDetails(ctx, "a@b.com")
	assert.ErrorIs(t, err, ErrParticipantNotFound)

	err = svc.Delete(ctx, "a@b.com")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestService_Create_StorageError(t *testing.T) {
	repo := newMockRepository()
	repo.createErr = errors.New("connection refused")
	svc := NewService(repo)

	err := svc.Create(context.Background(), testParticipant("a@b.com"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
}
