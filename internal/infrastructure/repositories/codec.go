package repositories

import (
	"encoding/json"

	"github.com/todoflow/todoflow/internal/domain"
)

// Key layout shared by every backend: one record per logged-in user plus
// one session record.
const (
	taskKeyPrefix = "tasks:"
	sessionKey    = "user:current"
)

func taskKey(userID string) string {
	return taskKeyPrefix + userID
}

func encodeTasks(tasks []domain.Task) (string, error) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeTasks parses a persisted collection. Malformed payloads surface as
// *domain.DeserializationError so callers cannot mistake them for an empty
// namespace.
func decodeTasks(key string, payload []byte) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := json.Unmarshal(payload, &tasks); err != nil {
		return nil, &domain.DeserializationError{Key: key, Err: err}
	}
	for i := range tasks {
		if tasks[i].Tags == nil {
			tasks[i].Tags = []string{}
		}
		if tasks[i].SharedWith == nil {
			tasks[i].SharedWith = []string{}
		}
	}
	return tasks, nil
}

func encodeUser(user domain.User) (string, error) {
	data, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeUser(key string, payload []byte) (domain.User, error) {
	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return domain.User{}, &domain.DeserializationError{Key: key, Err: err}
	}
	return user, nil
}
