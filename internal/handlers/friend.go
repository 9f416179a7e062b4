package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/paysinc/paysinc/internal/apperrors"
	"github.com/paysinc/paysinc/internal/handlers/render"
	"github.com/paysinc/paysinc/internal/logger"
	"github.com/paysinc/paysinc/internal/models"
	"github.com/paysinc/paysinc/internal/repository"
)

type friendRequest struct {
	Name   string  `json:"name" validate:"required,max=100"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Gender *string `json:"gender" validate:"omitempty,max=20"`
}

func (req friendRequest) params() repository.CreateFriendParams {
	return repository.CreateFriendParams{Name: req.Name, Email: req.Email, Gender: req.Gender}
}

type friendResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	IsOnline  bool      `json:"is_online"`
	CreatedAt time.Time `json:"created_at"`
}

func toFriendResponse(f models.Friend) friendResponse {
	return friendResponse{
		ID:        f.ID,
		Name:      f.Name,
		Email:     f.Email,
		Gender:    f.Gender,
		IsOnline:  f.IsOnline,
		CreatedAt: f.CreatedAt,
	}
}

func handleListFriends(friendService friendService, l logger.Logger) http.Handler {
	type row struct {
		friendResponse
		Balance       float64 `json:"balance"`
		ExpensesCount int64   `json:"expenses_count"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		friends, err := friendService.List(r.Context(), id.UserID)
		if err != nil {
			l.Error("Failed to list friends", "error", err)
			render.DomainError(w, err)
			return
		}

		response := make([]row, 0, len(friends))
		for _, f := range friends {
			balance, _ := f.Balance.Float64()
			response = append(response, row{
				friendResponse: toFriendResponse(f.Friend),
				Balance:        balance,
				ExpensesCount:  f.ExpensesCount,
			})
		}
		render.JSON(w, response)
	})
}

func handleCreateFriend(friendService friendService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		data, err := render.BindAndValidate[friendRequest](w, r)
		if err != nil {
			return
		}

		friend, err := friendService.Create(r.Context(), id.UserID, data.params())
		if err != nil {
			l.Error("Failed to create friend", "error", err)
			render.DomainError(w, err)
			return
		}

		render.JSONStatus(w, toFriendResponse(friend), http.StatusCreated)
	})
}

func handleGetFriend(friendService friendService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		friendID, err := pathUUID(r)
		if err != nil {
			render.DomainError(w, apperrors.ErrFriendNotFound)
			return
		}

		friend, err := friendService.Get(r.Context(), id.UserID, friendID)
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to get friend", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, toFriendResponse(friend))
	})
}

func handleUpdateFriend(friendService friendService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		friendID, err := pathUUID(r)
		if err != nil {
			render.DomainError(w, apperrors.ErrFriendNotFound)
			return
		}

		data, err := render.BindAndValidate[friendRequest](w, r)
		if err != nil {
			return
		}

		friend, err := friendService.Update(r.Context(), id.UserID, friendID, data.params())
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to update friend", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, toFriendResponse(friend))
	})
}

func handleDeleteFriend(friendService friendService, l logger.Logger) http.Handler {
	type response struct {
		Message string         `json:"message"`
		Friend  friendResponse `json:"friend"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		friendID, err := pathUUID(r)
		if err != nil {
			render.DomainError(w, apperrors.ErrFriendNotFound)
			return
		}

		friend, err := friendService.Delete(r.Context(), id.UserID, friendID)
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to delete friend", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, response{Message: "Friend deleted", Friend: toFriendResponse(friend)})
	})
}
