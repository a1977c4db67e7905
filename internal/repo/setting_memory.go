package repo

import (
	"sort"

	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

// InMemorySettingRepository is an in-memory implementation of SettingRepository.
type InMemorySettingRepository struct {
	settings map[string]string
}

func NewInMemorySettingRepository() *InMemorySettingRepository {
	return &InMemorySettingRepository{settings: map[string]string{}}
}

func (r *InMemorySettingRepository) Get(key string) (models.Setting, error) {
	value, ok := r.settings[key]
	if !ok {
		return models.Setting{}, ErrSettingNotFound
	}
	return models.Setting{Key: key, Value: value}, nil
}

func (r *InMemorySettingRepository) GetAll() ([]models.Setting, error) {
	keys := make([]string, 0, len(r.settings))
	for k := range r.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	settings := make([]models.Setting, 0, len(keys))
	for _, k := range keys {
		settings = append(settings, models.Setting{Key: k, Value: r.settings[k]})
	}
	return settings, nil
}

func (r *InMemorySettingRepository) Upsert(s models.Setting) error {
	r.settings[s.Key] = s.Value
	return nil
}

func (r *InMemorySettingRepository) Clear() {
	r.settings = map[string]string{}
}
