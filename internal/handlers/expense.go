package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paysinc/paysinc/internal/apperrors"
	"github.com/paysinc/paysinc/internal/handlers/render"
	"github.com/paysinc/paysinc/internal/logger"
	"github.com/paysinc/paysinc/internal/models"
	"github.com/paysinc/paysinc/internal/repository"
)

const expenseDateLayout = "2006-01-02"

type expenseRequest struct {
	GroupID        *uuid.UUID      `json:"group_id"`
	Description    string          `json:"description" validate:"required,max=255"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	PaidByFriendID *uuid.UUID      `json:"paid_by_friend_id"`
	Category       string          `json:"category" validate:"required,max=100"`
	Date           string          `json:"date" validate:"required,datetime=2006-01-02"`
	Note           *string         `json:"note"`
}

func (req expenseRequest) params() repository.ExpenseParams {
	// Date format is enforced by validation tag, parse can not fail here
	date, _ := time.Parse(expenseDateLayout, req.Date)

	return repository.ExpenseParams{
		GroupID:        req.GroupID,
		PaidByFriendID: req.PaidByFriendID,
		Description:    req.Description,
		Amount:         req.Amount,
		Category:       req.Category,
		Date:           date,
		Note:           req.Note,
	}
}

type expenseResponse struct {
	ID             uuid.UUID  `json:"id"`
	GroupID        *uuid.UUID `json:"group_id,omitempty"`
	PaidByFriendID *uuid.UUID `json:"paid_by_friend_id,omitempty"`
	Description    string     `json:"description"`
	Amount         float64    `json:"amount"`
	Category       string     `json:"category"`
	Date           string     `json:"date"`
	Note           *string    `json:"note,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toExpenseResponse(e models.Expense) expenseResponse {
	amount, _ := e.Amount.Float64()
	return expenseResponse{
		ID:             e.ID,
		GroupID:        e.GroupID,
		PaidByFriendID: e.PaidByFriendID,
		Description:    e.Description,
		Amount:         amount,
		Category:       e.Category,
		Date:           e.Date.Format(expenseDateLayout),
		Note:           e.Note,
		CreatedAt:      e.CreatedAt,
	}
}

func handleListExpenses(expenseService expenseService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		expenses, err := expenseService.List(r.Context(), id.UserID, page, limit)
		if err != nil {
			l.Error("Failed to list expenses", "error", err)
			render.DomainError(w, err)
			return
		}

		response := make([]expenseResponse, 0, len(expenses))
		for _, e := range expenses {
			response = append(response, toExpenseResponse(e))
		}
		render.JSON(w, response)
	})
}

func handleCreateExpense(expenseService expenseService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		data, err := render.BindAndValidate[expenseRequest](w, r)
		if err != nil {
			return
		}

		expense, err := expenseService.Create(r.Context(), id.UserID, data.params())
		if err != nil {
			l.Error("Failed to create expense", "error", err)
			render.DomainError(w, err)
			return
		}

		render.JSONStatus(w, toExpenseResponse(expense), http.StatusCreated)
	})
}

func handleGetExpense(expenseService expenseService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		expenseID, err := pathUUID(r)
		if err != nil {
			render.DomainError(w, apperrors.ErrExpenseNotFound)
			return
		}

		expense, err := expenseService.Get(r.Context(), id.UserID, expenseID)
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to get expense", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, toExpenseResponse(expense))
	})
}

func handleUpdateExpense(expenseService expenseService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		expenseID, err := pathUUID(r)
		if err != nil {
			render.DomainError(w, apperrors.ErrExpenseNotFound)
			return
		}

		data, err := render.BindAndValidate[expenseRequest](w, r)
		if err != nil {
			return
		}

		expense, err := expenseService.Update(r.Context(), id.UserID, expenseID, data.params())
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to update expense", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, toExpenseResponse(expense))
	})
}

func handleDeleteExpense(expenseService expenseService, l logger.Logger) http.Handler {
	type response struct {
		Message string `json:"message"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		expenseID, err := pathUUID(r)
		if err != nil {
			render.DomainError(w, apperrors.ErrExpenseNotFound)
			return
		}

		if err := expenseService.Delete(r.Context(), id.UserID, expenseID); err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to delete expense", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, response{Message: "Expense deleted successfully"})
	})
}

func handleStatsByCategory(expenseService expenseService, l logger.Logger) http.Handler {
	type row struct {
		Category string  `json:"category"`
		Total    float64 `json:"total"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		totals, err := expenseService.StatsByCategory(r.Context(), id.UserID)
		if err != nil {
			l.Error("Failed to get category stats", "error", err)
			render.DomainError(w, err)
			return
		}

		response := make([]row, 0, len(totals))
		for _, t := range totals {
			total, _ := t.Total.Float64()
			response = append(response, row{Category: t.Category, Total: total})
		}
		render.JSON(w, response)
	})
}

func handleStatsByMonth(expenseService expenseService, l logger.Logger) http.Handler {
	type row struct {
		Month string  `json:"month"`
		Total float64 `json:"total"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		totals, err := expenseService.StatsByMonth(r.Context(), id.UserID)
		if err != nil {
			l.Error("Failed to get monthly stats", "error", err)
			render.DomainError(w, err)
			return
		}

		response := make([]row, 0, len(totals))
		for _, t := range totals {
			total, _ := t.Total.Float64()
			response = append(response, row{Month: t.Month, Total: total})
		}
		render.JSON(w, response)
	})
}

func handleStatsByFriend(expenseService expenseService, l logger.Logger) http.Handler {
	type row struct {
		ID    uuid.UUID `json:"id"`
		Name  string    `json:"name"`
		Total float64   `json:"total"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		totals, err := expenseService.StatsByFriend(r.Context(), id.UserID)
		if err != nil {
			l.Error("Failed to get friend stats", "error", err)
			render.DomainError(w, err)
			return
		}

		response := make([]row, 0, len(totals))
		for _, t := range totals {
			total, _ := t.Total.Float64()
			response = append(response, row{ID: t.FriendID, Name: t.Name, Total: total})
		}
		render.JSON(w, response)
	})
}
