package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/calebfernandez/levelup/internal/models"
	"github.com/calebfernandez/levelup/internal/store"
	"github.com/calebfernandez/levelup/internal/utils"
)

// In-memory store fakes so handler behavior is tested without a database.

type fakeUserStore struct {
	nextID int
	users  map[int]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int]*models.User)}
}

func (s *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeUserStore) GetUserByID(_ context.Context, id int) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) UpdateDetails(_ context.Context, id int, req models.UpdateDetailsRequest) error {
	user, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Height != nil {
		user.Height = req.Height
	}
	if req.Weight != nil {
		user.Weight = req.Weight
	}
	if req.BodyType != nil {
		user.BodyType = req.BodyType
	}
	return nil
}

func (s *fakeUserStore) UpdatePassword(_ context.Context, id int, passwordHash string) error {
	user, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (s *fakeUserStore) UpdateSessionToken(_ context.Context, id int, token *string) error {
	user, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	user.SessionToken = token
	return nil
}

func (s *fakeUserStore) DeleteUser(_ context.Context, id int) error {
	if _, ok := s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type fakeLogStore struct {
	nextID int
	logs   []models.Log
}

func (s *fakeLogStore) CreateLog(_ context.Context, log *models.Log) error {
	s.nextID++
	log.ID = s.nextID
	log.DateLogged = time.Now()
	s.logs = append(s.logs, *log)
	return nil
}

func (s *fakeLogStore) ListLogsByUser(_ context.Context, userID int) ([]models.Log, error) {
	var result []models.Log
	for _, log := range s.logs {
		if log.UserID == userID {
			result = append(result, log)
		}
	}
	return result, nil
}

type fakePlanStore struct {
	nextID int
	plans  []models.Plan
	now    func() time.Time
}

func (s *fakePlanStore) CreatePlan(_ context.Context, plan *models.Plan) error {
	s.nextID++
	plan.ID = s.nextID
	if s.now != nil {
		plan.DateCreated = s.now()
	} else {
		plan.DateCreated = time.Now()
	}
	s.plans = append(s.plans, *plan)
	return nil
}

func (s *fakePlanStore) ListPlansByUser(_ context.Context, userID int) ([]models.Plan, error) {
	var result []models.Plan
	for _, plan := range s.plans {
		if plan.UserID == userID {
			result = append(result, plan)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].DateCreated.Equal(result[j].DateCreated) {
			return result[i].DateCreated.After(result[j].DateCreated)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

type fakeMailer struct {
	sent []sentEmail
	err  error
}

type sentEmail struct {
	to    string
	token string
}

func (m *fakeMailer) SendResetEmail(to, token string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentEmail{to: to, token: token})
	return nil
}

// Compile-time interface checks for the fakes.
var (
	_ store.UserStore = (*fakeUserStore)(nil)
	_ store.LogStore  = (*fakeLogStore)(nil)
	_ store.PlanStore = (*fakePlanStore)(nil)
	_ ResetMailer     = (*fakeMailer)(nil)
)

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// authedRequest attaches JWT claims to the request context the way
// JWTMiddleware does for a logged-in caller.
func authedRequest(t *testing.T, method, target string, payload interface{}, userID int) *http.Request {
	t.Helper()
	req := jsonRequest(t, method, target, payload)
	ctx := context.WithValue(req.Context(), userClaimsKey, &utils.Claims{UserID: userID})
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}
