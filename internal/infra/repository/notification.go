package repository

import (
	"context"
	"log/slog"
	"time"

	"boxoffice/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotificationRepository(pool *pgxpool.Pool, logger *slog.Logger) *NotificationRepository {
	return &NotificationRepository{pool: pool, logger: logger}
}

// CreateJob enqueues a delivery job in the caller's transaction. The worker
// that drains the queue is outside this service.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx pgx.Tx, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO notification_jobs (kind, topic, payload, run_at, status, created_at)
		 VALUES ($1, $2, $3, $4, 'pending', now())`,
		kind, topic, payload, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to enqueue notification job", err)
	}
	return nil
}
