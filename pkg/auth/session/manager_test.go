package session

import (
	"context"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type stubStore struct {
	data map[string]string
}

func newStubStore() *stubStore {
	return &stubStore{data: map[string]string{}}
}

func (s *stubStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	s.data[key] = value.(string)
	return nil
}

func (s *stubStore) Get(ctx context.Context, key string) (string, error) {
	if v, ok := s.data[key]; ok {
		return v, nil
	}
	return "", redislib.Nil
}

func (s *stubStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s.data, key)
	}
	return nil
}

type stubKeyer struct{}

func (stubKeyer) AccessSessionKey(accessID string) string {
	return "brga:session:access:" + accessID
}

func newTestManager() (*Manager, *stubStore) {
	store := newStubStore()
	return &Manager{store: store, keyer: stubKeyer{}, ttl: time.Hour}, store
}

func TestGenerateAndHasSession(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	token, err := m.Generate(ctx, "abc")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty refresh token")
	}

	ok, err := m.HasSession(ctx, "abc")
	if err != nil {
		t.Fatalf("HasSession returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected session to exist after Generate")
	}

	ok, err = m.HasSession(ctx, "missing")
	if err != nil {
		t.Fatalf("HasSession returned error: %v", err)
	}
	if ok {
		t.Fatal("expected missing session to report false")
	}
}

func TestRotateInvalidatesOldSession(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	token, err := m.Generate(ctx, "old")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	newID, newToken, err := m.Rotate(ctx, "old", token)
	if err != nil {
		t.Fatalf("Rotate returned error: %v", err)
	}
	if newID == "old" || newToken == token {
		t.Fatal("expected rotation to issue a fresh pair")
	}

	if ok, _ := m.HasSession(ctx, "old"); ok {
		t.Fatal("expected old session to be revoked")
	}
	if ok, _ := m.HasSession(ctx, newID); !ok {
		t.Fatal("expected new session to be active")
	}
}

func TestRotateRejectsMismatchedToken(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	if _, err := m.Generate(ctx, "abc"); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if _, _, err := m.Rotate(ctx, "abc", "forged"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRevoke(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	if _, err := m.Generate(ctx, "abc"); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if err := m.Revoke(ctx, "abc"); err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}
	if ok, _ := m.HasSession(ctx, "abc"); ok {
		t.Fatal("expected session gone after revoke")
	}
}
