package repositories

import (
	"context"
	"sync"

	"github.com/todoflow/todoflow/internal/domain"
)

// MemoryStore is an in-memory backend implementing both persistence ports.
// It round-trips payloads through the same JSON codec as the durable
// backends, so serialization behavior is identical under test.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]byte),
	}
}

func (s *MemoryStore) LoadCollection(ctx context.Context, userID string) ([]domain.Task, error) {
	key := taskKey(userID)
	s.mu.RLock()
	payload, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrCollectionNotFound
	}
	return decodeTasks(key, payload)
}

func (s *MemoryStore) SaveCollection(ctx context.Context, userID string, tasks []domain.Task) error {
	payload, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records[taskKey(userID)] = []byte(payload)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DeleteCollection(ctx context.Context, userID string) error {
	s.mu.Lock()
	delete(s.records, taskKey(userID))
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) CurrentUser(ctx context.Context) (domain.User, error) {
	s.mu.RLock()
	payload, ok := s.records[sessionKey]
	s.mu.RUnlock()
	if !ok {
		return domain.User{}, domain.ErrSessionNotFound
	}
	return decodeUser(sessionKey, payload)
}

func (s *MemoryStore) SaveUser(ctx context.Context, user domain.User) error {
	payload, err := encodeUser(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records[sessionKey] = []byte(payload)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ClearUser(ctx context.Context) error {
	s.mu.Lock()
	delete(s.records, sessionKey)
	s.mu.Unlock()
	return nil
}

// PutRaw stores an arbitrary payload under a user's task key. Tests use it
// to exercise the malformed-payload path.
func (s *MemoryStore) PutRaw(userID string, payload []byte) {
	s.mu.Lock()
	s.records[taskKey(userID)] = payload
	s.mu.Unlock()
}

// Has reports whether anything is stored for the user.
func (s *MemoryStore) Has(userID string) bool {
	s.mu.RLock()
	_, ok := s.records[taskKey(userID)]
	s.mu.RUnlock()
	return ok
}
