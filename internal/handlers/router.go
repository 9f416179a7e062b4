package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/paysinc/paysinc/internal/handlers/identity"
	"github.com/paysinc/paysinc/internal/handlers/middleware"
	"github.com/paysinc/paysinc/internal/handlers/render"
	"github.com/paysinc/paysinc/internal/logger"
	"github.com/paysinc/paysinc/internal/models"
	"github.com/paysinc/paysinc/internal/repository"
)

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

func NewRouter(
	authService authService,
	expenseService expenseService,
	friendService friendService,
	groupService groupService,
	categoryService categoryService,
	userService userService,
	logger logger.Logger,
) http.Handler {
	authMiddleware := middleware.AuthMiddleware(authService)
	withAuth := func(h http.Handler) http.Handler {
		return authMiddleware(h)
	}

	mux := http.NewServeMux()

	mux.Handle("GET /{$}", handleRoot())

	mux.Handle("POST /api/auth/register", handleRegister(authService, logger))
	mux.Handle("POST /api/auth/login", handleLogin(authService, logger))
	mux.Handle("POST /api/auth/refresh", withAuth(handleRefresh(authService, logger)))
	mux.Handle("POST /api/auth/logout", handleLogout(authService, logger))

	mux.Handle("GET /api/expenses", withAuth(handleListExpenses(expenseService, logger)))
	mux.Handle("POST /api/expenses", withAuth(handleCreateExpense(expenseService, logger)))
	mux.Handle("GET /api/expenses/stats/categories", withAuth(handleStatsByCategory(expenseService, logger)))
	mux.Handle("GET /api/expenses/stats/monthly", withAuth(handleStatsByMonth(expenseService, logger)))
	mux.Handle("GET /api/expenses/stats/friend", withAuth(handleStatsByFriend(expenseService, logger)))
	mux.Handle("GET /api/expenses/{id}", withAuth(handleGetExpense(expenseService, logger)))
	mux.Handle("PUT /api/expenses/{id}", withAuth(handleUpdateExpense(expenseService, logger)))
	mux.Handle("DELETE /api/expenses/{id}", withAuth(handleDeleteExpense(expenseService, logger)))

	mux.Handle("GET /api/friends", withAuth(handleListFriends(friendService, logger)))
	mux.Handle("POST /api/friends", withAuth(handleCreateFriend(friendService, logger)))
	mux.Handle("GET /api/friends/{id}", withAuth(handleGetFriend(friendService, logger)))
	mux.Handle("PUT /api/friends/{id}", withAuth(handleUpdateFriend(friendService, logger)))
	mux.Handle("DELETE /api/friends/{id}", withAuth(handleDeleteFriend(friendService, logger)))

	mux.Handle("GET /api/groups", withAuth(handleListGroups(groupService, logger)))
	mux.Handle("POST /api/groups", withAuth(handleCreateGroup(groupService, logger)))
	mux.Handle("GET /api/groups/{id}", withAuth(handleGetGroup(groupService, logger)))
	mux.Handle("PUT /api/groups/{id}", withAuth(handleUpdateGroup(groupService, logger)))
	mux.Handle("DELETE /api/groups/{id}", withAuth(handleDeleteGroup(groupService, logger)))

	mux.Handle("GET /api/categories", withAuth(handleListCategories(categoryService, logger)))
	mux.Handle("POST /api/categories", withAuth(handleCreateCategory(categoryService, logger)))
	mux.Handle("GET /api/categories/{id}", withAuth(handleGetCategory(categoryService, logger)))
	mux.Handle("PUT /api/categories/{id}", withAuth(handleUpdateCategory(categoryService, logger)))
	mux.Handle("DELETE /api/categories/{id}", withAuth(handleDeleteCategory(categoryService, logger)))

	mux.Handle("GET /api/users", withAuth(handleGetProfile(userService, logger)))
	mux.Handle("PUT /api/users", withAuth(handleUpdateProfile(userService, logger)))

	handler := chain(mux,
		middleware.LoggerMiddleware(logger),
	)

	return handler
}

type authService interface {
	// Register new user
	// Has to return apperrors.ErrEmailTaken if email is registered already
	Register(ctx context.Context, email string, password string, username string) (models.User, models.TokenPair, error)

	// Login user with email and password
	// Has to return the same apperrors.ErrInvalidCredentials for unknown
	// email and wrong password
	Login(ctx context.Context, email string, password string) (models.User, models.TokenPair, error)

	// Mint new access token from live refresh token
	// Revoked token: apperrors.ErrRefreshTokenRevoked
	// Invalid signature or expired: apperrors.ErrTokenInvalid
	Refresh(ctx context.Context, refresh string) (models.IssuedToken, error)

	// Revoke session, idempotent
	Logout(ctx context.Context, refresh string) error

	// Gate: verify the bearer access token on the request
	Authenticate(ctx context.Context, r *http.Request) (identity.Identity, error)
}

type expenseService interface {
	Create(ctx context.Context, userID uuid.UUID, arg repository.ExpenseParams) (models.Expense, error)
	List(ctx context.Context, userID uuid.UUID, page int, limit int) ([]models.Expense, error)
	Get(ctx context.Context, userID uuid.UUID, expenseID uuid.UUID) (models.Expense, error)
	Update(ctx context.Context, userID uuid.UUID, expenseID uuid.UUID, arg repository.ExpenseParams) (models.Expense, error)
	Delete(ctx context.Context, userID uuid.UUID, expenseID uuid.UUID) error
	StatsByCategory(ctx context.Context, userID uuid.UUID) ([]models.CategoryTotal, error)
	StatsByMonth(ctx context.Context, userID uuid.UUID) ([]models.MonthTotal, error)
	StatsByFriend(ctx context.Context, userID uuid.UUID) ([]models.FriendTotal, error)
}

type friendService interface {
	Create(ctx context.Context, userID uuid.UUID, arg repository.CreateFriendParams) (models.Friend, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.FriendWithBalance, error)
	Get(ctx context.Context, userID uuid.UUID, friendID uuid.UUID) (models.Friend, error)
	Update(ctx context.Context, userID uuid.UUID, friendID uuid.UUID, arg repository.CreateFriendParams) (models.Friend, error)
	Delete(ctx context.Context, userID uuid.UUID, friendID uuid.UUID) (models.Friend, error)
}

type groupService interface {
	Create(ctx context.Context, userID uuid.UUID, arg repository.CreateGroupParams) (models.Group, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.Group, error)
	Get(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) (models.Group, error)
	Update(ctx context.Context, userID uuid.UUID, groupID uuid.UUID, arg repository.CreateGroupParams) (models.Group, error)
	Delete(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) (models.Group, error)
}

type categoryService interface {
	Create(ctx context.Context, userID uuid.UUID, arg repository.CreateCategoryParams) (models.Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	Get(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (models.Category, error)
	Update(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID, arg repository.CreateCategoryParams) (models.Category, error)
	Delete(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (models.Category, error)
}

type userService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (models.User, error)
}

func handleRoot() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		type response struct {
			Message string `json:"message"`
		}
		render.JSON(w, response{Message: "PaySinc API running with PostgreSQL!"})
	})
}
