package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paysinc/paysinc/internal/apperrors"
	"github.com/paysinc/paysinc/internal/repository"
	"github.com/paysinc/paysinc/internal/testutil"
)

func Test_FriendRepo(t *testing.T) {
	t.Parallel() // It's ok to run in parallel with other tests, but not with subtests

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	t.Run("create friend ok", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := FriendRepo{DB: tx}
			user := createTestUser(t, tx, "alice@example.com")

			email := "friend@example.com"
			friend, err := r.Create(t.Context(), user.ID, repository.CreateFriendParams{Name: "bob", Email: &email})

			require.NoError(t, err)
			assert.Equal(t, user.ID, friend.UserID)
			assert.Equal(t, "bob", friend.Name)
			require.NotNil(t, friend.Email)
			assert.Equal(t, email, *friend.Email)
			assert.False(t, friend.IsOnline)
		})
	})

	t.Run("list with balance", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := FriendRepo{DB: tx}
			expenses := ExpenseRepo{DB: tx}
			user := createTestUser(t, tx, "alice@example.com")

			payer, err := r.Create(t.Context(), user.ID, repository.CreateFriendParams{Name: "anna"})
			require.NoError(t, err)
			_, err = r.Create(t.Context(), user.ID, repository.CreateFriendParams{Name: "zed"})
			require.NoError(t, err)

			arg := repository.ExpenseParams{
				PaidByFriendID: &payer.ID,
				Description:    "dinner",
				Amount:         decimal.RequireFromString("25.00"),
				Category:       "food",
				Date:           mustParseTime("2025-03-01 00:00:00Z"),
			}
			_, err = expenses.Create(t.Context(), user.ID, arg)
			require.NoError(t, err)
			_, err = expenses.Create(t.Context(), user.ID, arg)
			require.NoError(t, err)

			got, err := r.ListWithBalance(t.Context(), user.ID)

			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "anna", got[0].Name, "friends sorted by name")
			assert.True(t, got[0].Balance.Equal(decimal.RequireFromString("50.00")))
			assert.Equal(t, int64(2), got[0].ExpensesCount)
			assert.Equal(t, "zed", got[1].Name)
			assert.True(t, got[1].Balance.IsZero(), "friend without expenses has zero balance")
			assert.Equal(t, int64(0), got[1].ExpensesCount)
		})
	})

	t.Run("get scoped by user", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := FriendRepo{DB: tx}
			alice := createTestUser(t, tx, "alice@example.com")
			bob := createTestUser(t, tx, "bob@example.com")

			friend, err := r.Create(t.Context(), alice.ID, repository.CreateFriendParams{Name: "carol"})
			require.NoError(t, err)

			_, err = r.Get(t.Context(), bob.ID, friend.ID)
			assert.ErrorIs(t, err, apperrors.ErrFriendNotFound)

			got, err := r.Get(t.Context(), alice.ID, friend.ID)
			require.NoError(t, err)
			assert.Equal(t, friend.ID, got.ID)
		})
	})

	t.Run("delete returns the deleted row", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := FriendRepo{DB: tx}
			user := createTestUser(t, tx, "alice@example.com")

			friend, err := r.Create(t.Context(), user.ID, repository.CreateFriendParams{Name: "carol"})
			require.NoError(t, err)

			deleted, err := r.Delete(t.Context(), user.ID, friend.ID)
			require.NoError(t, err)
			assert.Equal(t, friend.ID, deleted.ID)
			assert.Equal(t, "carol", deleted.Name)

			_, err = r.Get(t.Context(), user.ID, friend.ID)
			assert.ErrorIs(t, err, apperrors.ErrFriendNotFound)
		})
	})

	t.Run("delete not found", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := FriendRepo{DB: tx}
			user := createTestUser(t, tx, "alice@example.com")

			_, err := r.Delete(t.Context(), user.ID, uuid.New())

			assert.ErrorIs(t, err, apperrors.ErrFriendNotFound)
		})
	})
}
