package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/paysinc/paysinc/internal/handlers/render"
	"github.com/paysinc/paysinc/internal/logger"
	"github.com/paysinc/paysinc/internal/models"
	"github.com/paysinc/paysinc/internal/service/user"
)

type profileResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Phone     *string   `json:"phone,omitempty"`
	Birthdate *string   `json:"birthdate,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	IDNumber  *string   `json:"id_number,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toProfileResponse(u models.User) profileResponse {
	resp := profileResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Phone:     u.Phone,
		Gender:    u.Gender,
		IDNumber:  u.IDNumber,
		CreatedAt: u.CreatedAt,
	}
	if u.Birthdate != nil {
		birthdate := u.Birthdate.Format(expenseDateLayout)
		resp.Birthdate = &birthdate
	}
	return resp
}

func handleGetProfile(userService userService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		profile, err := userService.GetProfile(r.Context(), id.UserID)
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to get profile", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, toProfileResponse(profile))
	})
}

func handleUpdateProfile(userService userService, l logger.Logger) http.Handler {
	type request struct {
		Email     *string `json:"email" validate:"omitempty,email"`
		Username  *string `json:"username" validate:"omitempty,min=3,max=50"`
		Phone     *string `json:"phone" validate:"omitempty,max=30"`
		Birthdate *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
		Gender    *string `json:"gender" validate:"omitempty,max=20"`
		IDNumber  *string `json:"id_number" validate:"omitempty,max=50"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		update := models.ProfileUpdate{
			Email:    data.Email,
			Username: data.Username,
			Phone:    data.Phone,
			Gender:   data.Gender,
			IDNumber: data.IDNumber,
		}
		if data.Birthdate != nil {
			// Format is enforced by validation tag, parse can not fail here
			birthdate, _ := time.Parse(expenseDateLayout, *data.Birthdate)
			update.Birthdate = &birthdate
		}

		profile, err := userService.UpdateProfile(r.Context(), id.UserID, update)
		if err != nil {
			if errors.Is(err, user.ErrEmptyUpdate) {
				render.ServiceError(w, "At least one field is required", http.StatusBadRequest)
				return
			}
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to update profile", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, toProfileResponse(profile))
	})
}
