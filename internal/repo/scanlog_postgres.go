package repo

import (
	"context"
	"database/sql"
	"time"

	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

type PostgresScanLogRepository struct {
	db *sql.DB
}

func NewPostgresScanLogRepository(db *sql.DB) *PostgresScanLogRepository {
	return &PostgresScanLogRepository{db: db}
}

func (r *PostgresScanLogRepository) Add(l models.ScanLog) (models.ScanLog, error) {
	query := `INSERT INTO scan_logs (identified_name, created_at) VALUES ($1, $2) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, l.IdentifiedName, l.CreatedAt).Scan(&l.ID)
	return l, err
}

func (r *PostgresScanLogRepository) CountSince(since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM scan_logs WHERE created_at >= $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, query, since).Scan(&count)
	return count, err
}
