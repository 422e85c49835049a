package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"brewhub/internal/auth"
	"brewhub/internal/ratelimiter"
	"brewhub/internal/store"

	"go.uber.org/zap"
)

// --- fakes ---

type fakeUsersStore struct {
	users map[string]*store.User
}

func newFakeUsersStore() *fakeUsersStore {
	return &fakeUsersStore{users: make(map[string]*store.User)}
}

func (f *fakeUsersStore) Create(_ context.Context, user *store.User) error {
	if _, ok := f.users[user.Email]; ok {
		return store.ErrDuplicateEmail
	}
	user.ID = int64(len(f.users) + 1)
	user.CreatedAt = time.Now()
	f.users[user.Email] = user
	return nil
}

func (f *fakeUsersStore) GetByEmail(_ context.Context, email string) (*store.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsersStore) List(_ context.Context) ([]store.User, error) {
	var users []store.User
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

type fakeReviewsStore struct {
	reviews map[string]*store.Review
	nextID  int64
}

func newFakeReviewsStore() *fakeReviewsStore {
	return &fakeReviewsStore{reviews: make(map[string]*store.Review)}
}

func reviewKey(username, email, breweryID string) string {
	return fmt.Sprintf("%s|%s|%s", username, email, breweryID)
}

func (f *fakeReviewsStore) Upsert(_ context.Context, review *store.Review) (bool, error) {
	key := reviewKey(review.Username, review.Email, review.BreweryID)
	if existing, ok := f.reviews[key]; ok {
		existing.Rating = review.Rating
		existing.Description = review.Description
		existing.UpdatedAt = time.Now()
		*review = *existing
		return false, nil
	}
	f.nextID++
	review.ID = f.nextID
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	stored := *review
	f.reviews[key] = &stored
	return true, nil
}

func (f *fakeReviewsStore) GetByBrewery(_ context.Context, breweryID string) ([]store.Review, error) {
	var reviews []store.Review
	for _, review := range f.reviews {
		if review.BreweryID == breweryID {
			reviews = append(reviews, *review)
		}
	}
	return reviews, nil
}

func (f *fakeReviewsStore) AverageRating(_ context.Context, breweryID string) (float64, error) {
	var sum, count int
	for _, review := range f.reviews {
		if review.BreweryID == breweryID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, store.ErrNotFound
	}
	return float64(sum) / float64(count), nil
}

type fakeDirectory struct {
	raw  json.RawMessage
	name string
	err  error
}

func (f *fakeDirectory) GetByID(context.Context, string) (json.RawMessage, error) {
	return f.raw, f.err
}

func (f *fakeDirectory) SearchByCity(context.Context, string) (json.RawMessage, error) {
	return f.raw, f.err
}

func (f *fakeDirectory) SearchByName(context.Context, string) (json.RawMessage, error) {
	return f.raw, f.err
}

func (f *fakeDirectory) SearchByType(context.Context, string) (json.RawMessage, error) {
	return f.raw, f.err
}

func (f *fakeDirectory) GetName(context.Context, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.name, nil
}

// --- helpers ---

func newTestApp(t *testing.T) *application {
	t.Helper()

	cfg := config{
		env: "test",
		auth: authConfig{
			basic: basicConfig{user: "admin", pass: "secret"},
			token: tokenConfig{secret: "test-secret", exp: time.Hour, iss: "brewhub"},
		},
		rateLimiter: ratelimiter.Config{Enabled: false},
	}

	return &application{
		config: cfg,
		logger: zap.NewNop().Sugar(),
		store: store.Storage{
			Users:   newFakeUsersStore(),
			Reviews: newFakeReviewsStore(),
		},
		directory: &fakeDirectory{
			raw:  json.RawMessage(`{"id":"123","name":"Moon Brewing"}`),
			name: "Moon Brewing",
		},
		authenticator: auth.NewJWTAuthenticator("test-secret", time.Hour, "brewhub", "brewhub"),
	}
}

func newTestLimiter(limit int) *ratelimiter.FixedWindowRateLimiter {
	return ratelimiter.NewFixedWindowLimiter(limit, time.Minute)
}

func newJSONRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func bearerToken(t *testing.T, app *application, email, username string) string {
	t.Helper()
	token, err := app.authenticator.GenerateToken(email, username)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return "Bearer " + token
}
