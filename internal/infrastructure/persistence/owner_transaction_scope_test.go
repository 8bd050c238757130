package persistence

import (
	"context"
	"errors"
	"testing"

	appowner "github.com/propertyhub/backend/internal/application/owner"
	"github.com/propertyhub/backend/internal/domain/owner"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTransactionScope_CompanyCreate(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()
	svc := appowner.NewCompanyService(NewGormTransactionScope(db), NewGormCompanyRepository(db), nil)

	t.Run("commit flags owner as contact", func(t *testing.T) {
		o := createOwner(t, db, "alice")

		resp, err := svc.Create(ctx, appowner.CreateCompanyRequest{
			OwnerID:     o.ID,
			CompanyName: "Alice Estates",
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Owner)
		assert.True(t, resp.Owner.IsCompanyContact)

		stored, err := NewGormOwnerRepository(db).FindByID(ctx, o.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsCompanyContact)
	})

	t.Run("unknown owner writes nothing", func(t *testing.T) {
		before, err := NewGormCompanyRepository(db).FindAll(ctx)
		require.NoError(t, err)

		_, err = svc.Create(ctx, appowner.CreateCompanyRequest{OwnerID: 4242, CompanyName: "Nobody Ltd"})
		assert.ErrorIs(t, err, shared.ErrReferenceNotFound)

		after, err := NewGormCompanyRepository(db).FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})
}

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()
	o := createOwner(t, db, "mallory")
	boom := errors.New("boom")

	var companyID int
	err := NewGormTransactionScope(db).Execute(ctx, func(repos appowner.TransactionalRepositories) error {
		c, err := owner.NewCompany(o.ID, "Doomed Co", "")
		if err != nil {
			return err
		}
		if err := repos.CompanyRepo().Create(ctx, c); err != nil {
			return err
		}
		companyID = c.ID

		o.MarkCompanyContact()
		if err := repos.OwnerRepo().Update(ctx, o); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Positive(t, companyID)

	_, err = NewGormCompanyRepository(db).FindByID(ctx, companyID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	stored, err := NewGormOwnerRepository(db).FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsCompanyContact)
}
