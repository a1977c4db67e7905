package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

type PostgresSettingRepository struct {
	db *sql.DB
}

func NewPostgresSettingRepository(db *sql.DB) *PostgresSettingRepository {
	return &PostgresSettingRepository{db: db}
}

func (r *PostgresSettingRepository) Get(key string) (models.Setting, error) {
	query := `SELECT key, value FROM system_settings WHERE key = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.Setting
	err := r.db.QueryRowContext(ctx, query, key).Scan(&s.Key, &s.Value)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Setting{}, ErrSettingNotFound
	}
	return s, err
}

func (r *PostgresSettingRepository) GetAll() ([]models.Setting, error) {
	query := `SELECT key, value FROM system_settings ORDER BY key`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []models.Setting
	for rows.Next() {
		var s models.Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *PostgresSettingRepository) Upsert(s models.Setting) error {
	query := `INSERT INTO system_settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, s.Key, s.Value)
	return err
}
