package repo

import (
	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

// SettingRepository defines the interface for key/value settings.
type SettingRepository interface {
	Get(key string) (models.Setting, error)
	GetAll() ([]models.Setting, error)
	Upsert(setting models.Setting) error
}
