//go:build unit

package repository

import (
	"errors"
	"log/slog"
	"testing"

	"boxoffice/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505"},
			want: infra.KindDuplicateKey,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: "23503"},
			want: infra.KindForeignKeyViolated,
		},
		{
			name: "other pg error",
			err:  &pgconn.PgError{Code: "57014"},
			want: infra.KindDBFailure,
		},
		{
			name: "non-pg error",
			err:  errors.New("connection refused"),
			want: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgErrorKind(tt.err))
		})
	}

	t.Run("wrapped pg errors are still classified", func(t *testing.T) {
		wrapped := infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "insert booking", &pgconn.PgError{Code: "23505"})
		assert.Equal(t, infra.KindDuplicateKey, pgErrorKind(wrapped))
	})
}
