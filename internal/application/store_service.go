package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/todoflow/todoflow/internal/domain"
)

// StoreService materializes a user's collection from the persistence port
// and writes it back after every mutation.
type StoreService struct {
	repo domain.CollectionRepository
	now  func() time.Time
}

func NewStoreService(repo domain.CollectionRepository) *StoreService {
	return &StoreService{
		repo: repo,
		now:  time.Now,
	}
}

// Load reads the user's collection. On first use it seeds the default
// collection and persists it immediately so subsequent loads are stable.
// A malformed payload surfaces as *domain.DeserializationError; loading
// never recovers from it by reseeding.
func (s *StoreService) Load(ctx context.Context, userID string) ([]domain.Task, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user id is required")
	}

	tasks, err := s.repo.LoadCollection(ctx, userID)
	if errors.Is(err, domain.ErrCollectionNotFound) {
		seeded := SeedTasks(userID, s.now())
		if err := s.repo.SaveCollection(ctx, userID, seeded); err != nil {
			return nil, fmt.Errorf("persist seed collection: %w", err)
		}
		return seeded, nil
	}
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Save overwrites the persisted collection unconditionally. Last writer
// wins; there is no versioning.
func (s *StoreService) Save(ctx context.Context, userID string, tasks []domain.Task) error {
	if strings.TrimSpace(userID) == "" {
		return errors.New("user id is required")
	}
	return s.repo.SaveCollection(ctx, userID, tasks)
}

// Purge removes the user's namespace so no task data leaks to the next
// session.
func (s *StoreService) Purge(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.New("user id is required")
	}
	return s.repo.DeleteCollection(ctx, userID)
}
