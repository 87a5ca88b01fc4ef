package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cbmpe-api/internal/auth"
	"cbmpe-api/internal/config"
	"cbmpe-api/internal/handler"
	"cbmpe-api/internal/middleware"
	"cbmpe-api/internal/model"
	"cbmpe-api/internal/router"
	"cbmpe-api/internal/service"
	"cbmpe-api/internal/validation"
)

// The stores below are in-memory stand-ins for the pgx repositories, with
// the same error semantics (email uniqueness, not-found sentinels).

type userStore struct {
	mu    sync.Mutex
	users map[string]model.User
}

func (s *userStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *userStore) FindByID(_ context.Context, id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (s *userStore) Create(_ context.Context, u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return model.ErrEmailTaken
		}
	}
	s.users[u.ID] = u
	return nil
}

func (s *userStore) Update(_ context.Context, u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return model.ErrUserNotFound
	}
	s.users[u.ID] = u
	return nil
}

func (s *userStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return model.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *userStore) List(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

type occurrenceStore struct {
	mu          sync.Mutex
	users       *userStore
	occurrences map[string]model.Occurrence
}

func (s *occurrenceStore) Create(_ context.Context, o model.Occurrence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.occurrences[o.ID] = o
	return nil
}

func (s *occurrenceStore) FindByID(ctx context.Context, id string) (model.OccurrenceWithReporter, error) {
	s.mu.Lock()
	o, ok := s.occurrences[id]
	s.mu.Unlock()
	if !ok {
		return model.OccurrenceWithReporter{}, model.ErrOccurrenceNotFound
	}

	reporter, err := s.users.FindByID(ctx, o.UserID)
	if err != nil {
		return model.OccurrenceWithReporter{}, err
	}
	return model.OccurrenceWithReporter{Occurrence: o, Reporter: reporter.Summary()}, nil
}

func (s *occurrenceStore) List(ctx context.Context) ([]model.OccurrenceWithReporter, error) {
	s.mu.Lock()
	ids := make([]string, 0, len(s.occurrences))
	for id := range s.occurrences {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	out := make([]model.OccurrenceWithReporter, 0, len(ids))
	for _, id := range ids {
		o, err := s.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *occurrenceStore) Update(_ context.Context, o model.Occurrence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.occurrences[o.ID]; !ok {
		return model.ErrOccurrenceNotFound
	}
	s.occurrences[o.ID] = o
	return nil
}

func (s *occurrenceStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.occurrences[id]; !ok {
		return model.ErrOccurrenceNotFound
	}
	delete(s.occurrences, id)
	return nil
}

func (s *occurrenceStore) Exists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.occurrences[id]
	return ok, nil
}

type signatureStore struct {
	mu          sync.Mutex
	occurrences *occurrenceStore
	signatures  map[string]model.Signature
}

func (s *signatureStore) Create(_ context.Context, sig model.Signature) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signatures[sig.ID] = sig
	return nil
}

func (s *signatureStore) FindByID(ctx context.Context, id string) (model.SignatureWithOccurrence, error) {
	s.mu.Lock()
	sig, ok := s.signatures[id]
	s.mu.Unlock()
	if !ok {
		return model.SignatureWithOccurrence{}, model.ErrSignatureNotFound
	}

	occurrence, err := s.occurrences.FindByID(ctx, sig.OccurrenceID)
	if err != nil {
		return model.SignatureWithOccurrence{}, err
	}
	return model.SignatureWithOccurrence{Signature: sig, Occurrence: occurrence.Summary()}, nil
}

func (s *signatureStore) List(ctx context.Context) ([]model.SignatureWithOccurrence, error) {
	s.mu.Lock()
	ids := make([]string, 0, len(s.signatures))
	for id := range s.signatures {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	out := make([]model.SignatureWithOccurrence, 0, len(ids))
	for _, id := range ids {
		sig, err := s.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, sig)
	}
	return out, nil
}

func (s *signatureStore) ListByOccurrence(ctx context.Context, occurrenceID string) ([]model.SignatureWithOccurrence, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.SignatureWithOccurrence, 0)
	for _, sig := range all {
		if sig.OccurrenceID == occurrenceID {
			out = append(out, sig)
		}
	}
	return out, nil
}

func (s *signatureStore) Update(_ context.Context, sig model.Signature) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.signatures[sig.ID]; !ok {
		return model.ErrSignatureNotFound
	}
	s.signatures[sig.ID] = sig
	return nil
}

func (s *signatureStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.signatures[id]; !ok {
		return model.ErrSignatureNotFound
	}
	delete(s.signatures, id)
	return nil
}

// newTestServer wires the real router, middleware, services and validator
// over the in-memory stores.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	users := &userStore{users: map[string]model.User{}}
	occurrences := &occurrenceStore{users: users, occurrences: map[string]model.Occurrence{}}
	signatures := &signatureStore{occurrences: occurrences, signatures: map[string]model.Signature{}}

	hasher := auth.NewPasswordHasher(4)
	codec := auth.NewTokenCodec("test-secret", 24*time.Hour)
	validator := validation.New()

	cfg := &config.Config{
		ServerPort:       "3000",
		RequestTimeout:   30 * time.Second,
		JWTSecret:        "test-secret",
		JWTTTL:           24 * time.Hour,
		BcryptCost:       4,
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
	}

	authService := service.NewAuthService(users, hasher, codec)
	appRouter := router.New(cfg, middleware.NewAuthMiddleware(codec), router.Handlers{
		Auth:       handler.NewAuthHandler(authService, validator),
		User:       handler.NewUserHandler(service.NewUserService(users, hasher), validator),
		Occurrence: handler.NewOccurrenceHandler(service.NewOccurrenceService(occurrences), validator),
		Signature:  handler.NewSignatureHandler(service.NewSignatureService(signatures, occurrences), validator),
	})

	server := httptest.NewServer(appRouter)
	t.Cleanup(server.Close)
	return server
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *model.APIError `json:"error"`
}

func doJSON(t *testing.T, method, url, token string, payload any) (int, envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func registerPayload() map[string]string {
	return map[string]string{
		"nome":    "Rafael Monteiro da Silva",
		"email":   "rafael.monteiro@cbmpe.gov.br",
		"patente": "Soldado",
		"unidade": "CBMPE - Quartel do Derby",
		"senha":   "Teste123456",
	}
}
