package readstore

import (
	"context"
	"errors"
	"log/slog"

	"boxoffice/internal/infra"
	"boxoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUserReadStore(pool *pgxpool.Pool, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{pool: pool, logger: logger}
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserCredentialView, error) {
	var v queries.UserCredentialView
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, role, is_active FROM users WHERE email = $1`, email).
		Scan(&v.ID, &v.Email, &v.PasswordHash, &v.Role, &v.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find user by email", err)
	}
	return &v, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, role, is_active FROM users WHERE id = $1`, id).
		Scan(&v.ID, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find user by id", err)
	}
	return &v, nil
}
