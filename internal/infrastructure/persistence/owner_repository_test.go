package persistence

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/propertyhub/backend/internal/domain/owner"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormOwnerRepository_Postgres(t *testing.T) {
	t.Run("delete blocked by foreign key", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "owners" WHERE id = $1`)).
			WithArgs(7).
			WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

		deleted, err := NewGormOwnerRepository(db.DB).Delete(context.Background(), 7)
		assert.False(t, deleted)
		assert.ErrorIs(t, err, shared.ErrHasDependents)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("company with unknown owner", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "companies"`)).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		err := NewGormCompanyRepository(db.DB).Create(context.Background(), newCompany(t, 99))
		assert.ErrorIs(t, err, shared.ErrReferenceNotFound)
		assert.Equal(t, "ownerId", shared.ReferenceField(err))
	})

	t.Run("find by id not found", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "owners" WHERE id = $1`)).
			WithArgs(3, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := NewGormOwnerRepository(db.DB).FindByID(context.Background(), 3)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func newCompany(t *testing.T, ownerID int) *owner.Company {
	t.Helper()
	c, err := owner.NewCompany(ownerID, "Acme", "")
	require.NoError(t, err)
	return c
}
