package service

import (
	"context"
	"sync"

	"cbmpe-api/internal/model"
)

// memUserStore is an in-memory UserStore that enforces email uniqueness
// atomically, mirroring the unique index the real store relies on.
type memUserStore struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]model.User{}}
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (m *memUserStore) FindByID(_ context.Context, id string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (m *memUserStore) Create(_ context.Context, u model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return model.ErrEmailTaken
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *memUserStore) Update(_ context.Context, u model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return model.ErrUserNotFound
	}
	for id, existing := range m.users {
		if id != u.ID && existing.Email == u.Email {
			return model.ErrEmailTaken
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *memUserStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return model.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memUserStore) List(_ context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

// raceUserStore simulates the registration race: the pre-check sees no
// account, but the insert loses to a concurrent writer at the unique index.
type raceUserStore struct {
	*memUserStore
}

func (r *raceUserStore) FindByEmail(context.Context, string) (model.User, error) {
	return model.User{}, model.ErrUserNotFound
}

func (r *raceUserStore) Create(context.Context, model.User) error {
	return model.ErrEmailTaken
}

type memOccurrenceStore struct {
	mu          sync.Mutex
	occurrences map[string]model.OccurrenceWithReporter
	reporter    model.UserSummary
}

func newMemOccurrenceStore(reporter model.UserSummary) *memOccurrenceStore {
	return &memOccurrenceStore{
		occurrences: map[string]model.OccurrenceWithReporter{},
		reporter:    reporter,
	}
}

func (m *memOccurrenceStore) Create(_ context.Context, o model.Occurrence) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.occurrences[o.ID] = model.OccurrenceWithReporter{Occurrence: o, Reporter: m.reporter}
	return nil
}

func (m *memOccurrenceStore) FindByID(_ context.Context, id string) (model.OccurrenceWithReporter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.occurrences[id]
	if !ok {
		return model.OccurrenceWithReporter{}, model.ErrOccurrenceNotFound
	}
	return o, nil
}

func (m *memOccurrenceStore) List(_ context.Context) ([]model.OccurrenceWithReporter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.OccurrenceWithReporter, 0, len(m.occurrences))
	for _, o := range m.occurrences {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOccurrenceStore) Update(_ context.Context, o model.Occurrence) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.occurrences[o.ID]
	if !ok {
		return model.ErrOccurrenceNotFound
	}
	existing.Occurrence = o
	m.occurrences[o.ID] = existing
	return nil
}

func (m *memOccurrenceStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.occurrences[id]; !ok {
		return model.ErrOccurrenceNotFound
	}
	delete(m.occurrences, id)
	return nil
}

func (m *memOccurrenceStore) Exists(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.occurrences[id]
	return ok, nil
}

type memSignatureStore struct {
	mu         sync.Mutex
	signatures map[string]model.SignatureWithOccurrence
	occurrence model.OccurrenceSummary
}

func newMemSignatureStore(occurrence model.OccurrenceSummary) *memSignatureStore {
	return &memSignatureStore{
		signatures: map[string]model.SignatureWithOccurrence{},
		occurrence: occurrence,
	}
}

func (m *memSignatureStore) Create(_ context.Context, s model.Signature) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signatures[s.ID] = model.SignatureWithOccurrence{Signature: s, Occurrence: m.occurrence}
	return nil
}

func (m *memSignatureStore) FindByID(_ context.Context, id string) (model.SignatureWithOccurrence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.signatures[id]
	if !ok {
		return model.SignatureWithOccurrence{}, model.ErrSignatureNotFound
	}
	return s, nil
}

func (m *memSignatureStore) List(_ context.Context) ([]model.SignatureWithOccurrence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.SignatureWithOccurrence, 0, len(m.signatures))
	for _, s := range m.signatures {
		out = append(out, s)
	}
	return out, nil
}

func (m *memSignatureStore) ListByOccurrence(_ context.Context, occurrenceID string) ([]model.SignatureWithOccurrence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.SignatureWithOccurrence, 0)
	for _, s := range m.signatures {
		if s.OccurrenceID == occurrenceID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSignatureStore) Update(_ context.Context, s model.Signature) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.signatures[s.ID]
	if !ok {
		return model.ErrSignatureNotFound
	}
	existing.Signature = s
	m.signatures[s.ID] = existing
	return nil
}

func (m *memSignatureStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.signatures[id]; !ok {
		return model.ErrSignatureNotFound
	}
	delete(m.signatures, id)
	return nil
}
