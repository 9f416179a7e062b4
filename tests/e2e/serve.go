package e2e

import (
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stretchr/testify/require"

	"github.com/paysinc/paysinc/internal/handlers"
	"github.com/paysinc/paysinc/internal/logger"
	"github.com/paysinc/paysinc/internal/repository/postgres"
	"github.com/paysinc/paysinc/internal/service/auth"
	"github.com/paysinc/paysinc/internal/service/auth/tokenmanager"
	"github.com/paysinc/paysinc/internal/service/category"
	"github.com/paysinc/paysinc/internal/service/expense"
	"github.com/paysinc/paysinc/internal/service/friend"
	"github.com/paysinc/paysinc/internal/service/group"
	"github.com/paysinc/paysinc/internal/service/user"
	"github.com/paysinc/paysinc/internal/testutil"
)

type Services struct {
	AuthService     *auth.AuthService
	ExpenseService  *expense.ExpenseService
	FriendService   *friend.FriendService
	GroupService    *group.GroupService
	CategoryService *category.CategoryService
	UserService     *user.UserService
}

// Create db transaction and run server with that connection (one connection cause one transaction)
// The created transaction passed to inner function: so, you can safely use testutil.WithTx with it
func ServeWithTx(dbpool *pgxpool.Pool, t *testing.T, fn func(tx pgx.Tx, srvURL string, services Services)) {
	testutil.WithTx(dbpool, t, func(tx pgx.Tx) {
		storage := postgres.NewStorage(tx)

		// Initialize services
		tokenManager, err := tokenmanager.New(tokenmanager.Config{
			AccessSecret:  "test-access-secret",
			RefreshSecret: "test-refresh-secret",
		}, storage.Refresh())
		require.NoError(t, err, "token manager should be created without errors")

		as, err := auth.NewService(auth.Config{}, tokenManager, storage.User(), storage.Refresh())
		require.NoError(t, err, "auth service starting error", err)

		es := expense.NewService(storage.Expense())
		fs := friend.NewService(storage.Friend())
		gs := group.NewService(storage.Group())
		cs := category.NewService(storage.Category())
		us := user.NewService(storage.User())

		// Complete all together as router
		router := handlers.NewRouter(as, es, fs, gs, cs, us, logger.NewNoOpLogger())

		// Run http server with the router in transaction
		srv := httptest.NewServer(router)
		defer srv.Close()

		fn(tx, srv.URL, Services{
			AuthService:     as,
			ExpenseService:  es,
			FriendService:   fs,
			GroupService:    gs,
			CategoryService: cs,
			UserService:     us,
		})
	})
}
