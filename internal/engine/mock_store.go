package engine

import (
	"context"
	"time"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
)

// MockStore is a test implementation of the service.Store interface. It
// keeps its own record set so tests can observe what a confirmed server
// mutation would have produced, and can be primed with errors to simulate
// transport or authorization failures.
type MockStore struct {
	ListErr   error
	CreateErr error
	DeleteErr error
	Clock     func() time.Time
	Records   []model.Registration

	ListCalls   int
	CreateCalls int
	DeleteCalls int

	nextID int64
}

// NewMockStore creates a mock store seeded with the given records. Records
// are expected newest first, matching the backing store contract.
func NewMockStore(records ...model.Registration) *MockStore {
	m := &MockStore{
		Records: records,
		Clock:   time.Now,
	}
	for _, r := range records {
		if r.ID > m.nextID {
			m.nextID = r.ID
		}
	}
	return m
}

// ListRegistrations returns a copy of the seeded records or the primed error.
func (m *MockStore) ListRegistrations(_ context.Context) ([]model.Registration, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	out := make([]model.Registration, len(m.Records))
	copy(out, m.Records)
	return out, nil
}

// CreateRegistration assigns the next id and a server-side timestamp, keeps
// the record, and returns the stored copy.
func (m *MockStore) CreateRegistration(_ context.Context, input model.RegistrationInput) (*model.Registration, error) {
	m.CreateCalls++
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	m.nextID++
	stored := model.Registration{
		ID:        m.nextID,
		Name:      input.Name,
		Email:     input.Email,
		Category:  input.Category,
		Company:   input.Company,
		Phone:     input.Phone,
		CreatedAt: m.Clock(),
	}
	m.Records = append([]model.Registration{stored}, m.Records...)
	return &stored, nil
}

// DeleteRegistration removes the record when present. Deleting an unknown
// id succeeds silently, matching the remote store's behavior.
func (m *MockStore) DeleteRegistration(_ context.Context, id int64) error {
	m.DeleteCalls++
	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	for i, r := range m.Records {
		if r.ID == id {
			m.Records = append(m.Records[:i:i], m.Records[i+1:]...)
			break
		}
	}
	return nil
}

// Close implements service.Store.
func (m *MockStore) Close() error {
	return nil
}
